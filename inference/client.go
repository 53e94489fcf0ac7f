package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Detection 一条目标检测结果
type Detection struct {
	Class      string     `json:"class"`
	Confidence float64    `json:"confidence"`
	Box        [4]float64 `json:"box"` // [x1, y1, x2, y2]
}

// Client 目标检测推理接口：图片字节进，检测结果出
// 推理本身由外部托管服务完成，这里只做请求/响应的封送
type Client interface {
	Detect(ctx context.Context, image []byte) ([]Detection, error)
}

// HTTPClient 通过 HTTP 调用外部推理服务的 Client 实现
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPClient 创建推理客户端
func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Detect(ctx context.Context, image []byte) ([]Detection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("构造推理请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-image")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用推理服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("推理服务返回异常状态码: %d", resp.StatusCode)
	}

	var detections []Detection
	if err := json.NewDecoder(resp.Body).Decode(&detections); err != nil {
		return nil, fmt.Errorf("解析推理结果失败: %w", err)
	}
	return detections, nil
}
