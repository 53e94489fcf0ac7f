package model

// Building 对应一栋建筑物
// 室内导航以建筑为边界：寻路永远不会跨建筑
type Building struct {
	BuildingID string  `json:"building_id" gorm:"primaryKey"`
	Name       string  `json:"name" gorm:"not null"`
	GPSLat     float64 `json:"gps_lat"`
	GPSLong    float64 `json:"gps_long"`
}

// Floor 对应建筑物中的一层
type Floor struct {
	FloorID       int     `json:"floor_id" gorm:"primaryKey"`
	BuildingID    string  `json:"building_id" gorm:"index"`
	FloorNumber   int     `json:"floor_number" gorm:"not null"`
	MapImageURL   string  `json:"map_image_url,omitempty"`
	MapScaleRatio float64 `json:"map_scale_ratio"` // 像素 -> 米的比例
}
