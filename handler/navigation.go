package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"stride-nav/nav"

	"github.com/gin-gonic/gin"
)

// NavigateRequest 导航请求
// ID 用 json.Number 接收，客户端传字符串或数字都可以
type NavigateRequest struct {
	Destination struct {
		LandmarkID json.Number `json:"landmark_id"`
	} `json:"destination"`
	StartLocation struct {
		NodeID json.Number `json:"node_id"`
	} `json:"start_location"`
}

// Navigate 室内导航接口
// 输出逐步转向指引；失败分类映射到状态码：
// 参数错误 400 / 找不到 404 / 无路径 404 / 超时 504 / 上游故障 500
func (h *Handler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	// 整个 解析 -> 寻路 -> 生成指引 流程共用一个截止时间
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.NavigateTimeout)
	defer cancel()

	result, err := h.Nav.Navigate(ctx, req.StartLocation.NodeID.String(), req.Destination.LandmarkID.String())
	if err != nil {
		status, msg := navErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, result)
}

// navErrorStatus 把导航错误分类映射到 HTTP 状态码
func navErrorStatus(err error) (int, string) {
	var inputErr *nav.InputError
	var notFoundErr *nav.NotFoundError
	var noPathErr *nav.NoPathError
	var timeoutErr *nav.TimeoutError

	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, inputErr.Message
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Message
	case errors.As(err, &noPathErr):
		return http.StatusNotFound, noPathErr.Message
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout, timeoutErr.Message
	default:
		return http.StatusInternalServerError, "地图数据服务异常"
	}
}
