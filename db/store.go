package db

import (
	"context"
	"errors"
	"fmt"
	"stride-nav/model"

	"gorm.io/gorm"
)

// ErrNotFound 查询的记录不存在
// 用区分失败值代替异常控制流，调用方用 errors.Is 判断
var ErrNotFound = errors.New("记录不存在")

// MapStore 地图数据的只读查询接口
// 所有方法都不产生副作用；注入到导航服务中，测试时可以替换为假实现
type MapStore interface {
	// NearestNodeForLandmark 返回地标关联的最近节点 ID
	NearestNodeForLandmark(ctx context.Context, landmarkID int) (int, error)
	// BuildingForNode 返回节点所属的建筑 ID
	BuildingForNode(ctx context.Context, nodeID int) (string, error)
	// EdgesForBuilding 返回起点属于该建筑的所有边
	EdgesForBuilding(ctx context.Context, buildingID string) ([]model.MapEdge, error)
	// CoordinatesForNodes 批量返回节点的平面坐标
	CoordinatesForNodes(ctx context.Context, nodeIDs []int) (map[int]model.PointXY, error)
	// SearchLandmarks 按名称子串搜索地标 (含别名)
	SearchLandmarks(ctx context.Context, query string) ([]model.LandmarkSearchResult, error)
}

// GormMapStore MapStore 的 PostgreSQL 实现
type GormMapStore struct {
	db *gorm.DB
}

// NewMapStore 创建基于 GORM 的地图存储
func NewMapStore(gdb *gorm.DB) *GormMapStore {
	return &GormMapStore{db: gdb}
}

func (s *GormMapStore) NearestNodeForLandmark(ctx context.Context, landmarkID int) (int, error) {
	var landmark model.Landmark
	err := s.db.WithContext(ctx).First(&landmark, "landmark_id = ?", landmarkID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("查询地标失败: %w", err)
	}
	// 地标存在但尚未接入路网，同样视为找不到
	if landmark.NearestNodeID == nil {
		return 0, ErrNotFound
	}
	return *landmark.NearestNodeID, nil
}

func (s *GormMapStore) BuildingForNode(ctx context.Context, nodeID int) (string, error) {
	var node model.MapNode
	err := s.db.WithContext(ctx).First(&node, "node_id = ?", nodeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("查询节点失败: %w", err)
	}
	return node.BuildingID, nil
}

func (s *GormMapStore) EdgesForBuilding(ctx context.Context, buildingID string) ([]model.MapEdge, error) {
	var edges []model.MapEdge
	err := s.db.WithContext(ctx).
		Model(&model.MapEdge{}).
		Joins("JOIN map_nodes ON map_nodes.node_id = map_edges.start_node_id").
		Where("map_nodes.building_id = ?", buildingID).
		Find(&edges).Error
	if err != nil {
		return nil, fmt.Errorf("查询建筑 %s 的边失败: %w", buildingID, err)
	}
	return edges, nil
}

func (s *GormMapStore) CoordinatesForNodes(ctx context.Context, nodeIDs []int) (map[int]model.PointXY, error) {
	if len(nodeIDs) == 0 {
		return map[int]model.PointXY{}, nil
	}
	var nodes []model.MapNode
	err := s.db.WithContext(ctx).Where("node_id IN ?", nodeIDs).Find(&nodes).Error
	if err != nil {
		return nil, fmt.Errorf("批量查询节点坐标失败: %w", err)
	}
	coords := make(map[int]model.PointXY, len(nodes))
	for _, n := range nodes {
		coords[n.NodeID] = model.PointXY{X: n.CoordinateX, Y: n.CoordinateY}
	}
	return coords, nil
}

func (s *GormMapStore) SearchLandmarks(ctx context.Context, query string) ([]model.LandmarkSearchResult, error) {
	var results []model.LandmarkSearchResult
	pattern := "%" + query + "%"
	err := s.db.WithContext(ctx).
		Model(&model.Landmark{}).
		Select("landmarks.name AS name, floors.floor_number AS floor, landmarks.nearest_node_id AS nearest_node").
		Joins("JOIN floors ON floors.floor_id = landmarks.floor_id").
		Where("landmarks.name ILIKE ? OR array_to_string(landmarks.aliases, ' ') ILIKE ?", pattern, pattern).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("搜索地标失败: %w", err)
	}
	return results, nil
}
