package algo

import "stride-nav/model"

// Arc 邻接表中的一条有向弧
type Arc struct {
	To     int
	Weight float64 // 距离 (米)
}

// Graph 建筑范围内的加权有向图
// 每个导航请求根据查询到的边集临时构建，用完即弃，请求之间不共享
type Graph struct {
	Nodes   map[int]bool  // 出现在边集中的所有节点
	AdjList map[int][]Arc // 邻接表 (节点 ID -> 出弧列表)
}

// NewGraph 从建筑的边集构建邻接表
// 双向边会自动生成一条等权的反向弧
func NewGraph(edges []model.MapEdge) *Graph {
	g := &Graph{
		Nodes:   make(map[int]bool),
		AdjList: make(map[int][]Arc),
	}
	for _, edge := range edges {
		g.Nodes[edge.StartNodeID] = true
		g.Nodes[edge.EndNodeID] = true
		g.AdjList[edge.StartNodeID] = append(g.AdjList[edge.StartNodeID], Arc{
			To:     edge.EndNodeID,
			Weight: edge.DistanceMeters,
		})
		if edge.IsBidirectional {
			g.AdjList[edge.EndNodeID] = append(g.AdjList[edge.EndNodeID], Arc{
				To:     edge.StartNodeID,
				Weight: edge.DistanceMeters,
			})
		}
	}
	return g
}

// HasNode 判断节点是否出现在图中
func (g *Graph) HasNode(nodeID int) bool {
	return g.Nodes[nodeID]
}
