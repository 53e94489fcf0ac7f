package db

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"stride-nav/model"
	"stride-nav/utils"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB 连接 PostgreSQL 并自动迁移表结构
// 如果是第一次运行 (节点表为空)，会自动将 map_data.json 的数据导入数据库
func InitDB() (*gorm.DB, error) {
	// 从环境变量读取配置 (为了 Docker 部署方便)
	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "strideuser")
	password := getEnvOrDefault("DB_PASSWORD", "stridepassword")
	dbname := getEnvOrDefault("DB_NAME", "stride")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	// 带重试的数据库连接 (Docker 启动时数据库可能还没准备好)
	var gdb *gorm.DB
	var err error
	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("等待数据库就绪... (%d/%d): %v", i+1, maxRetries, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 自动迁移模式 (自动创建表结构)
	err = gdb.AutoMigrate(
		&model.User{},
		&model.Building{},
		&model.Floor{},
		&model.MapNode{},
		&model.MapEdge{},
		&model.Landmark{},
	)
	if err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	// 检查是否需要导入初始数据
	var nodeCount int64
	gdb.Model(&model.MapNode{}).Count(&nodeCount)
	if nodeCount == 0 {
		log.Println("检测到数据库为空，正在导入 map_data.json...")
		if err := importMapData(gdb, "map_data.json"); err != nil {
			log.Printf("警告: 导入地图数据失败: %v", err)
		} else {
			log.Println("地图数据导入成功!")
		}
	}

	log.Println("数据库连接并初始化成功！")
	return gdb, nil
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// importMapData 从 JSON 文件导入地图数据到数据库
// 边缺少距离/方位角时，根据两端节点的像素坐标和楼层比例自动计算
func importMapData(gdb *gorm.DB, filepath string) error {
	file, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}

	var data model.MapData
	if err := json.Unmarshal(file, &data); err != nil {
		return fmt.Errorf("解析 JSON 失败: %w", err)
	}

	if len(data.Buildings) > 0 {
		if err := gdb.CreateInBatches(data.Buildings, 100).Error; err != nil {
			return fmt.Errorf("插入建筑失败: %w", err)
		}
		log.Printf("导入了 %d 栋建筑", len(data.Buildings))
	}

	if len(data.Floors) > 0 {
		if err := gdb.CreateInBatches(data.Floors, 100).Error; err != nil {
			return fmt.Errorf("插入楼层失败: %w", err)
		}
		log.Printf("导入了 %d 个楼层", len(data.Floors))
	}

	// 建立索引方便计算派生字段
	nodeByID := make(map[int]*model.MapNode)
	for i := range data.Nodes {
		nodeByID[data.Nodes[i].NodeID] = &data.Nodes[i]
	}
	scaleByFloor := make(map[int]float64)
	for _, f := range data.Floors {
		scaleByFloor[f.FloorID] = f.MapScaleRatio
	}

	// 批量插入节点
	if len(data.Nodes) > 0 {
		if err := gdb.CreateInBatches(data.Nodes, 100).Error; err != nil {
			return fmt.Errorf("插入节点失败: %w", err)
		}
		log.Printf("导入了 %d 个节点", len(data.Nodes))
	}

	// 批量插入边，补全缺失的距离和方位角
	if len(data.Edges) > 0 {
		for i := range data.Edges {
			edge := &data.Edges[i]
			from := nodeByID[edge.StartNodeID]
			to := nodeByID[edge.EndNodeID]
			if from == nil || to == nil {
				continue
			}
			if edge.DistanceMeters == 0 {
				scale := scaleByFloor[edge.FloorID]
				if scale == 0 {
					scale = 0.03048 // 默认 10 像素 = 1 英尺
				}
				pixels := utils.PlanarDistance(from.CoordinateX, from.CoordinateY, to.CoordinateX, to.CoordinateY)
				edge.DistanceMeters = pixels * scale
			}
			if edge.Bearing == nil {
				b := utils.BearingBetween(from.CoordinateX, from.CoordinateY, to.CoordinateX, to.CoordinateY)
				edge.Bearing = &b
			}
		}
		if err := gdb.CreateInBatches(data.Edges, 100).Error; err != nil {
			return fmt.Errorf("插入边失败: %w", err)
		}
		log.Printf("导入了 %d 条边", len(data.Edges))
	}

	if len(data.Landmarks) > 0 {
		if err := gdb.CreateInBatches(data.Landmarks, 100).Error; err != nil {
			return fmt.Errorf("插入地标失败: %w", err)
		}
		log.Printf("导入了 %d 个地标", len(data.Landmarks))
	}

	return nil
}
