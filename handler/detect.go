package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DetectRequest 目标检测请求，body 是 base64 编码的 JPEG
type DetectRequest struct {
	Body string `json:"body" binding:"required"`
}

// Detect 目标检测代理接口
// 把图片转发给外部推理服务，返回 {class, confidence, box} 列表
func (h *Handler) Detect(c *gin.Context) {
	if h.Detector == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "推理服务未配置"})
		return
	}

	var req DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "请求参数错误"})
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "图片不是合法的 base64"})
		return
	}

	detections, err := h.Detector.Detect(c.Request.Context(), image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"valid": false, "error": "推理服务调用失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":      true,
		"detections": detections,
	})
}
