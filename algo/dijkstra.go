package algo

import (
	"container/heap"
	"errors"
	"math"
	"slices"
)

// ErrNoPath 起点和终点之间不存在连通路径
// 终点不可达、终点不在本建筑的图里都会返回它
var ErrNoPath = errors.New("不存在连通路径")

// PriorityQueueItem 优先队列中的元素
type PriorityQueueItem struct {
	NodeID int
	Cost   float64 // 从起点出发的累计距离 (米)
	Index  int     // 在堆中的索引
}

// PriorityQueue 实现 heap.Interface 接口的优先队列
type PriorityQueue []*PriorityQueueItem

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	return pq[i].Cost < pq[j].Cost
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*PriorityQueueItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // 避免内存泄漏
	item.Index = -1 // 标记为已移除
	*pq = old[0 : n-1]
	return item
}

// ShortestPath 使用 Dijkstra 算法寻找最短距离路径
// 返回从起点到终点的节点 ID 序列 (含两端) 和总距离 (米)
// 队列允许同一节点的重复条目，弹出时比较记录距离过滤过期条目，
// 不依赖支持 decrease-key 的堆
func (g *Graph) ShortestPath(startID, endID int) ([]int, float64, error) {
	// 起点即终点: 单节点路径，距离为 0
	if startID == endID {
		return []int{startID}, 0, nil
	}

	if !g.HasNode(startID) || !g.HasNode(endID) {
		return nil, 0, ErrNoPath
	}

	// 初始化距离和前驱
	dist := make(map[int]float64, len(g.Nodes))
	prev := make(map[int]int)
	for id := range g.Nodes {
		dist[id] = math.Inf(1) // 无穷大
	}
	dist[startID] = 0

	// 初始化优先队列
	pq := make(PriorityQueue, 0)
	heap.Init(&pq)
	heap.Push(&pq, &PriorityQueueItem{NodeID: startID, Cost: 0})

	// Dijkstra 主循环
	reached := false
	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*PriorityQueueItem)
		currentID := current.NodeID

		// 过期条目 (弹出的距离比已记录的大)，跳过
		if current.Cost > dist[currentID] {
			continue
		}

		// 如果到达终点，提前退出
		if currentID == endID {
			reached = true
			break
		}

		// 遍历邻居
		for _, arc := range g.AdjList[currentID] {
			newCost := dist[currentID] + arc.Weight
			if newCost < dist[arc.To] {
				dist[arc.To] = newCost
				prev[arc.To] = currentID
				heap.Push(&pq, &PriorityQueueItem{NodeID: arc.To, Cost: newCost})
			}
		}
	}

	// 队列耗尽也没到终点，或者终点从未被赋予前驱
	if _, ok := prev[endID]; !reached && !ok {
		return nil, 0, ErrNoPath
	}
	if math.IsInf(dist[endID], 1) {
		return nil, 0, ErrNoPath
	}

	// 回溯路径
	path := []int{}
	for at := endID; ; at = prev[at] {
		path = append(path, at)
		if at == startID {
			break
		}
	}
	slices.Reverse(path)

	return path, dist[endID], nil
}
