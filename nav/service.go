package nav

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stride-nav/algo"
	"stride-nav/db"

	"golang.org/x/sync/errgroup"
)

// Service 导航请求编排器
// 每个请求都是无状态的独立工作单元：校验 -> 解析地标/建筑 -> 查边 ->
// 最短路 -> 生成指引。请求之间不共享可变状态，可以并发执行
type Service struct {
	Store db.MapStore
}

// NewService 创建导航服务，地图存储由外部注入 (测试时可替换为假实现)
func NewService(store db.MapStore) *Service {
	return &Service{Store: store}
}

// Result 导航成功的响应
type Result struct {
	SessionID    string        `json:"session_id"`
	Instructions []Instruction `json:"instructions"`
}

// Navigate 执行一次完整的导航请求
// startNodeID 是起点节点 ID，landmarkID 是目的地地标 ID，都是未解析的原始字符串
func (s *Service) Navigate(ctx context.Context, startNodeID, landmarkID string) (result *Result, err error) {
	// 存储层的 panic 在这里兜底，翻译成上游故障，不把实现细节泄漏给调用方
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &UpstreamError{
				Message: "地图数据服务异常",
				Err:     fmt.Errorf("存储层 panic: %v", r),
			}
		}
	}()

	// 1. 校验输入，不合法直接返回，不访问存储
	startID, err := parseID(startNodeID, "起点节点")
	if err != nil {
		return nil, err
	}
	destLandmarkID, err := parseID(landmarkID, "目的地地标")
	if err != nil {
		return nil, err
	}

	// 2. 解析目的地节点和起点所属建筑
	// 两个查询互不依赖，并行发出
	var destNodeID int
	var buildingID string
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		id, lerr := s.Store.NearestNodeForLandmark(gctx, destLandmarkID)
		if errors.Is(lerr, db.ErrNotFound) {
			return &NotFoundError{Message: "地标不存在或没有关联节点"}
		}
		if lerr != nil {
			return s.upstream(gctx, lerr)
		}
		destNodeID = id
		return nil
	})
	group.Go(func() error {
		b, berr := s.Store.BuildingForNode(gctx, startID)
		if errors.Is(berr, db.ErrNotFound) {
			return &NotFoundError{Message: "起点不属于任何已知建筑"}
		}
		if berr != nil {
			return s.upstream(gctx, berr)
		}
		buildingID = b
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// 3. 取建筑范围内的边集 (寻路永远不会跨建筑)
	edges, err := s.Store.EdgesForBuilding(ctx, buildingID)
	if err != nil {
		return nil, s.upstream(ctx, err)
	}

	// 4. 建图并求最短路
	graph := algo.NewGraph(edges)
	path, _, perr := graph.ShortestPath(startID, destNodeID)
	if errors.Is(perr, algo.ErrNoPath) {
		return nil, &NoPathError{Message: "未找到连续可行路径"}
	}

	// 5. 取路径节点的坐标，生成逐步指引
	coords, err := s.Store.CoordinatesForNodes(ctx, path)
	if err != nil {
		return nil, s.upstream(ctx, err)
	}
	instructions := BuildInstructions(path, edges, coords)

	return &Result{
		SessionID:    newSessionID(),
		Instructions: instructions,
	}, nil
}

// parseID 校验并解析数字 ID，失败返回 InputError
func parseID(raw, field string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &InputError{Message: field + "未指定"}
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil || id <= 0 {
		return 0, &InputError{Message: field + " ID 必须是正整数: " + raw}
	}
	return id, nil
}

// upstream 把存储层错误翻译成超时或上游故障
func (s *Service) upstream(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Message: "导航请求超时"}
	}
	return &UpstreamError{Message: "地图数据服务异常", Err: err}
}

// newSessionID 生成不透明的会话标识 (按时间戳派生)
func newSessionID() string {
	return fmt.Sprintf("nav_%d", time.Now().UnixNano())
}
