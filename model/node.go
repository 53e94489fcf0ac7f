package model

// PointXY 代表楼层平面图上的一个点 (像素坐标，仅用于渲染)
type PointXY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapNode 对应楼层平面图上的一个点 (路口、拐角、电梯、楼梯间、门)
// 参考数据，由地图制作工具生成，引擎只读不写
type MapNode struct {
	NodeID      int     `json:"node_id" gorm:"primaryKey"`
	FloorID     int     `json:"floor_id" gorm:"index"`
	BuildingID  string  `json:"building_id" gorm:"index"`
	CoordinateX float64 `json:"coordinate_x"`
	CoordinateY float64 `json:"coordinate_y"`
	NodeType    string  `json:"node_type"` // 如: "Intersection", "Corner", "Elevator", "Stairwell", "Door"
}
