package utils

import "math"

// FeetPerMeter 米转英尺的换算系数
const FeetPerMeter = 3.28084

// 八个罗盘方向标签 (客户端直接展示，保持英文)
const (
	DirectionNorth     = "North"
	DirectionNortheast = "Northeast"
	DirectionEast      = "East"
	DirectionSoutheast = "Southeast"
	DirectionSouth     = "South"
	DirectionSouthwest = "Southwest"
	DirectionWest      = "West"
	DirectionNorthwest = "Northwest"

	DirectionArrive   = "arrive"   // 终点
	DirectionContinue = "continue" // 方位角缺失时的降级标签
)

// MetersToFeet 米转英尺
func MetersToFeet(meters float64) float64 {
	return meters * FeetPerMeter
}

// NormalizeBearing 把任意角度归一化到 [0, 360)
func NormalizeBearing(bearing float64) float64 {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	return b
}

// ReverseBearing 方位角旋转 180° (双向边的反向通行方向)
func ReverseBearing(bearing float64) float64 {
	return NormalizeBearing(bearing + 180)
}

// DirectionForBearing 把方位角映射到 8 个罗盘方向之一
// 每个桶跨 45°，以正方向为中心；边界值 (22.5, 67.5, ...) 归上一个桶
// 例如: 22.5 -> Northeast, 337.5 -> North
func DirectionForBearing(bearing float64) string {
	b := NormalizeBearing(bearing)
	switch {
	case b < 22.5 || b >= 337.5:
		return DirectionNorth
	case b < 67.5:
		return DirectionNortheast
	case b < 112.5:
		return DirectionEast
	case b < 157.5:
		return DirectionSoutheast
	case b < 202.5:
		return DirectionSouth
	case b < 247.5:
		return DirectionSouthwest
	case b < 292.5:
		return DirectionWest
	default:
		return DirectionNorthwest
	}
}

// PlanarDistance 平面图上两点间的欧氏距离 (像素)
func PlanarDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// BearingBetween 计算平面图上从点 1 指向点 2 的方位角
// 0° = 北 (屏幕上方), 90° = 东 (屏幕右方)
// 注意: 屏幕坐标系 Y 轴向下，所以 dy 取反
func BearingBetween(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y1 - y2
	angle := math.Atan2(dx, dy) * 180 / math.Pi
	return NormalizeBearing(angle)
}
