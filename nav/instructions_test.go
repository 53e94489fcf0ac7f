package nav

import (
	"testing"

	"stride-nav/model"
	"stride-nav/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearing(b float64) *float64 { return &b }

func navEdge(start, end int, dist float64, b *float64, bidirectional bool) model.MapEdge {
	return model.MapEdge{
		StartNodeID:     start,
		EndNodeID:       end,
		DistanceMeters:  dist,
		Bearing:         b,
		IsBidirectional: bidirectional,
	}
}

func TestBuildInstructions_WorkedExample(t *testing.T) {
	// 节点 {1,2,3}，边 (1->2, 10米, 90°, 双向)、(2->3, 5米, 0°, 双向)
	edges := []model.MapEdge{
		navEdge(1, 2, 10, bearing(90), true),
		navEdge(2, 3, 5, bearing(0), true),
	}
	coords := map[int]model.PointXY{
		1: {X: 0, Y: 0},
		2: {X: 100, Y: 0},
		3: {X: 100, Y: -50},
	}

	instructions := BuildInstructions([]int{1, 2, 3}, edges, coords)
	require.Len(t, instructions, 3)

	assert.Equal(t, 1, instructions[0].Step)
	assert.Equal(t, "1", instructions[0].NodeID)
	assert.InDelta(t, 32.81, instructions[0].DistanceFeet, 0.01)
	assert.Equal(t, utils.DirectionEast, instructions[0].Direction)
	assert.Equal(t, model.PointXY{X: 0, Y: 0}, instructions[0].Coordinates)

	assert.Equal(t, 2, instructions[1].Step)
	assert.Equal(t, "2", instructions[1].NodeID)
	assert.InDelta(t, 16.40, instructions[1].DistanceFeet, 0.01)
	assert.Equal(t, utils.DirectionNorth, instructions[1].Direction)

	assert.Equal(t, 3, instructions[2].Step)
	assert.Equal(t, "3", instructions[2].NodeID)
	assert.Zero(t, instructions[2].DistanceFeet)
	assert.Equal(t, utils.DirectionArrive, instructions[2].Direction)
}

func TestBuildInstructions_SingleNodePath(t *testing.T) {
	// 起点即终点: 只有到达指引
	instructions := BuildInstructions([]int{7}, nil, map[int]model.PointXY{7: {X: 1, Y: 2}})
	require.Len(t, instructions, 1)
	assert.Equal(t, 1, instructions[0].Step)
	assert.Zero(t, instructions[0].DistanceFeet)
	assert.Equal(t, utils.DirectionArrive, instructions[0].Direction)
}

func TestBuildInstructions_ReverseTraversal(t *testing.T) {
	// 逆着双向边走: 方位角旋转 180°，距离不变
	edges := []model.MapEdge{
		navEdge(1, 2, 10, bearing(90), true),
	}

	instructions := BuildInstructions([]int{2, 1}, edges, map[int]model.PointXY{})
	require.Len(t, instructions, 2)
	assert.InDelta(t, 32.81, instructions[0].DistanceFeet, 0.01)
	assert.Equal(t, utils.DirectionWest, instructions[0].Direction)
}

func TestBuildInstructions_ReverseTraversalNilBearing(t *testing.T) {
	// 方位角缺失时，反向通行同样没有方位角
	edges := []model.MapEdge{
		navEdge(1, 2, 10, nil, true),
	}

	instructions := BuildInstructions([]int{2, 1}, edges, map[int]model.PointXY{})
	require.Len(t, instructions, 2)
	assert.Equal(t, utils.DirectionContinue, instructions[0].Direction)
	assert.InDelta(t, 32.81, instructions[0].DistanceFeet, 0.01)
}

func TestBuildInstructions_NilBearing(t *testing.T) {
	edges := []model.MapEdge{
		navEdge(1, 2, 5, nil, true),
	}

	instructions := BuildInstructions([]int{1, 2}, edges, map[int]model.PointXY{})
	require.Len(t, instructions, 2)
	assert.Equal(t, utils.DirectionContinue, instructions[0].Direction)
	assert.InDelta(t, 16.40, instructions[0].DistanceFeet, 0.01)
}

func TestBuildInstructions_MissingEdgeDegrades(t *testing.T) {
	// 路径里用到的边不在边集里: 降级而不是失败
	edges := []model.MapEdge{
		navEdge(1, 2, 10, bearing(90), true),
	}

	instructions := BuildInstructions([]int{1, 2, 3}, edges, map[int]model.PointXY{})
	require.Len(t, instructions, 3)
	assert.Zero(t, instructions[1].DistanceFeet)
	assert.Equal(t, utils.DirectionContinue, instructions[1].Direction)
	// 最后一条仍然是到达
	assert.Equal(t, utils.DirectionArrive, instructions[2].Direction)
}

func TestBuildInstructions_CountEqualsPathLength(t *testing.T) {
	edges := []model.MapEdge{
		navEdge(1, 2, 1, bearing(45), true),
		navEdge(2, 3, 2, bearing(135), true),
		navEdge(3, 4, 3, bearing(225), true),
	}

	for _, path := range [][]int{{1}, {1, 2}, {1, 2, 3}, {1, 2, 3, 4}} {
		instructions := BuildInstructions(path, edges, map[int]model.PointXY{})
		assert.Len(t, instructions, len(path))
		last := instructions[len(instructions)-1]
		assert.Zero(t, last.DistanceFeet)
		assert.Equal(t, utils.DirectionArrive, last.Direction)
	}
}
