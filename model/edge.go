package model

// MapEdge 对应两个节点之间的一条连线
// 边所属的建筑由起点节点决定
type MapEdge struct {
	EdgeID          int      `json:"edge_id" gorm:"primaryKey"`
	FloorID         int      `json:"floor_id" gorm:"index"`
	StartNodeID     int      `json:"start_node_id" gorm:"index"`
	EndNodeID       int      `json:"end_node_id"`
	DistanceMeters  float64  `json:"distance_meters"`   // 距离 (米)，非负
	Bearing         *float64 `json:"bearing,omitempty"` // 方位角 [0, 360)，从起点指向终点；未知时为 null
	IsBidirectional bool     `json:"is_bidirectional" gorm:"default:true"`
}

// MapData 用于解析种子文件 map_data.json
type MapData struct {
	Meta      map[string]interface{} `json:"meta"` // 存版本号等元数据
	Buildings []Building             `json:"buildings"`
	Floors    []Floor                `json:"floors"`
	Nodes     []MapNode              `json:"nodes"`
	Edges     []MapEdge              `json:"edges"`
	Landmarks []Landmark             `json:"landmarks"`
}
