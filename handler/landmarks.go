package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchLandmarks 搜索地标 (根据名称模糊匹配，含别名)
func (h *Handler) SearchLandmarks(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少搜索关键词"})
		return
	}

	results, err := h.Store.SearchLandmarks(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "地图数据服务异常"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}
