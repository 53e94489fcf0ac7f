package model

import "github.com/lib/pq"

// Landmark 对应一个有名字的兴趣点 (教室、卫生间、出口等)
// 寻路时用 NearestNodeID 把地标代理到图上的节点
type Landmark struct {
	LandmarkID      int            `json:"landmark_id" gorm:"primaryKey"`
	FloorID         int            `json:"floor_id" gorm:"index"`
	Name            string         `json:"name" gorm:"index;not null"`
	Aliases         pq.StringArray `json:"aliases,omitempty" gorm:"type:text[]"` // 别名，用于搜索
	NearestNodeID   *int           `json:"nearest_node_id"`                      // 可能为 null (地标尚未接入路网)
	DistanceToNode  float64        `json:"distance_to_node"`
	BearingFromNode string         `json:"bearing_from_node,omitempty"` // "North" / "South" / "East" / "West"
	MapCoordinateX  float64        `json:"map_coordinate_x"`
	MapCoordinateY  float64        `json:"map_coordinate_y"`
}

// LandmarkSearchResult 地标搜索接口的返回项
type LandmarkSearchResult struct {
	Name        string `json:"name"`
	Floor       int    `json:"floor"`
	NearestNode *int   `json:"nearest_node"`
}
