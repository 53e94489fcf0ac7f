package nav

import (
	"log"
	"strconv"
	"stride-nav/model"
	"stride-nav/utils"
)

// Instruction 一条转向指引
type Instruction struct {
	Step         int           `json:"step"`          // 1 起始的步骤编号
	DistanceFeet float64       `json:"distance_feet"` // 到下一个节点的距离 (英尺)，最后一步为 0
	Direction    string        `json:"direction"`     // 罗盘方向 / "arrive" / "continue"
	NodeID       string        `json:"node_id"`
	Coordinates  model.PointXY `json:"coordinates"`
}

// edgeKey 有向边的查找键
type edgeKey struct {
	From int
	To   int
}

// edgeInfo 构建指引需要的边元数据
type edgeInfo struct {
	DistanceMeters float64
	Bearing        *float64
}

// buildEdgeIndex 把边集按 (起点, 终点) 建立索引
// 双向边同时登记反向键，方位角旋转 180°；方位角缺失时反向也缺失
func buildEdgeIndex(edges []model.MapEdge) map[edgeKey]edgeInfo {
	index := make(map[edgeKey]edgeInfo, len(edges)*2)
	for _, edge := range edges {
		index[edgeKey{edge.StartNodeID, edge.EndNodeID}] = edgeInfo{
			DistanceMeters: edge.DistanceMeters,
			Bearing:        edge.Bearing,
		}
		if edge.IsBidirectional {
			var reverse *float64
			if edge.Bearing != nil {
				b := utils.ReverseBearing(*edge.Bearing)
				reverse = &b
			}
			index[edgeKey{edge.EndNodeID, edge.StartNodeID}] = edgeInfo{
				DistanceMeters: edge.DistanceMeters,
				Bearing:        reverse,
			}
		}
	}
	return index
}

// BuildInstructions 把节点序列转换成逐步指引
// 指引条数等于路径节点数；最后一条固定是 distance 0 + "arrive"
// 路径中的边在边集里找不到时 (数据不一致)，降级为 0 英尺 + "continue"，
// 不让整个请求失败
func BuildInstructions(path []int, edges []model.MapEdge, coords map[int]model.PointXY) []Instruction {
	index := buildEdgeIndex(edges)
	instructions := make([]Instruction, 0, len(path))

	for i, nodeID := range path {
		inst := Instruction{
			Step:        i + 1,
			NodeID:      strconv.Itoa(nodeID),
			Coordinates: coords[nodeID],
		}

		if i == len(path)-1 {
			// 终点
			inst.DistanceFeet = 0
			inst.Direction = utils.DirectionArrive
		} else if info, ok := index[edgeKey{nodeID, path[i+1]}]; ok {
			inst.DistanceFeet = utils.MetersToFeet(info.DistanceMeters)
			if info.Bearing != nil {
				inst.Direction = utils.DirectionForBearing(*info.Bearing)
			} else {
				inst.Direction = utils.DirectionContinue
			}
		} else {
			// 路径用到的边不在边集里，说明地图数据不一致
			log.Printf("警告: 路径中的边 %d->%d 缺失，降级为 continue", nodeID, path[i+1])
			inst.DistanceFeet = 0
			inst.Direction = utils.DirectionContinue
		}

		instructions = append(instructions, inst)
	}

	return instructions
}
