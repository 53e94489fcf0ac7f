package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stride-nav/db"
	"stride-nav/inference"
	"stride-nav/model"
	"stride-nav/nav"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore 测试用的内存地图存储
type fakeStore struct {
	landmarkNode map[int]int
	nodeBuilding map[int]string
	edges        map[string][]model.MapEdge
	coords       map[int]model.PointXY
	searchHits   []model.LandmarkSearchResult
}

func (f *fakeStore) NearestNodeForLandmark(ctx context.Context, landmarkID int) (int, error) {
	node, ok := f.landmarkNode[landmarkID]
	if !ok {
		return 0, db.ErrNotFound
	}
	return node, nil
}

func (f *fakeStore) BuildingForNode(ctx context.Context, nodeID int) (string, error) {
	building, ok := f.nodeBuilding[nodeID]
	if !ok {
		return "", db.ErrNotFound
	}
	return building, nil
}

func (f *fakeStore) EdgesForBuilding(ctx context.Context, buildingID string) ([]model.MapEdge, error) {
	return f.edges[buildingID], nil
}

func (f *fakeStore) CoordinatesForNodes(ctx context.Context, nodeIDs []int) (map[int]model.PointXY, error) {
	return f.coords, nil
}

func (f *fakeStore) SearchLandmarks(ctx context.Context, query string) ([]model.LandmarkSearchResult, error) {
	return f.searchHits, nil
}

func b(v float64) *float64 { return &v }

func testStore() *fakeStore {
	node3 := 3
	return &fakeStore{
		landmarkNode: map[int]int{10: 3},
		nodeBuilding: map[int]string{1: "ENG", 2: "ENG", 3: "ENG"},
		edges: map[string][]model.MapEdge{
			"ENG": {
				{StartNodeID: 1, EndNodeID: 2, DistanceMeters: 10, Bearing: b(90), IsBidirectional: true},
				{StartNodeID: 2, EndNodeID: 3, DistanceMeters: 5, Bearing: b(0), IsBidirectional: true},
			},
		},
		coords: map[int]model.PointXY{
			1: {X: 0, Y: 400},
			2: {X: 100, Y: 400},
			3: {X: 100, Y: 350},
		},
		searchHits: []model.LandmarkSearchResult{
			{Name: "电梯厅", Floor: 1, NearestNode: &node3},
		},
	}
}

func newTestRouter(store db.MapStore, detector inference.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nil, store, nav.NewService(store), detector, "test-secret", 5*time.Second)
	r := gin.New()
	api := r.Group("/api")
	api.POST("/navigate", h.Navigate)
	api.GET("/landmarks/search", h.SearchLandmarks)
	api.POST("/detect", h.Detect)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNavigate_OK(t *testing.T) {
	r := newTestRouter(testStore(), nil)

	w := doJSON(r, http.MethodPost, "/api/navigate",
		`{"destination": {"landmark_id": 10}, "start_location": {"node_id": "1"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		SessionID    string `json:"session_id"`
		Instructions []struct {
			Step         int     `json:"step"`
			DistanceFeet float64 `json:"distance_feet"`
			Direction    string  `json:"direction"`
			NodeID       string  `json:"node_id"`
			Coordinates  struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"coordinates"`
		} `json:"instructions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.SessionID)
	require.Len(t, resp.Instructions, 3)
	assert.Equal(t, 1, resp.Instructions[0].Step)
	assert.Equal(t, "1", resp.Instructions[0].NodeID)
	assert.InDelta(t, 32.81, resp.Instructions[0].DistanceFeet, 0.01)
	assert.Equal(t, "East", resp.Instructions[0].Direction)
	assert.InDelta(t, 400, resp.Instructions[0].Coordinates.Y, 1e-9)
	assert.Equal(t, "arrive", resp.Instructions[2].Direction)
}

func TestNavigate_BadJSON(t *testing.T) {
	r := newTestRouter(testStore(), nil)

	w := doJSON(r, http.MethodPost, "/api/navigate", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNavigate_MissingFields(t *testing.T) {
	r := newTestRouter(testStore(), nil)

	w := doJSON(r, http.MethodPost, "/api/navigate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestNavigate_LandmarkNotFound(t *testing.T) {
	r := newTestRouter(testStore(), nil)

	w := doJSON(r, http.MethodPost, "/api/navigate",
		`{"destination": {"landmark_id": 999}, "start_location": {"node_id": 1}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "地标不存在")
}

func TestNavigate_NoPath(t *testing.T) {
	store := testStore()
	// 地标解析到另一栋建筑
	store.landmarkNode[20] = 99
	store.nodeBuilding[99] = "LIB"
	r := newTestRouter(store, nil)

	w := doJSON(r, http.MethodPost, "/api/navigate",
		`{"destination": {"landmark_id": 20}, "start_location": {"node_id": 1}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "未找到连续可行路径")
}

func TestSearchLandmarks_OK(t *testing.T) {
	r := newTestRouter(testStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/landmarks/search?q=电梯", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count   int `json:"count"`
		Results []struct {
			Name        string `json:"name"`
			Floor       int    `json:"floor"`
			NearestNode *int   `json:"nearest_node"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "电梯厅", resp.Results[0].Name)
	assert.Equal(t, 1, resp.Results[0].Floor)
	require.NotNil(t, resp.Results[0].NearestNode)
	assert.Equal(t, 3, *resp.Results[0].NearestNode)
}

func TestSearchLandmarks_MissingQuery(t *testing.T) {
	r := newTestRouter(testStore(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/landmarks/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// fakeDetector 测试用的推理客户端
type fakeDetector struct {
	detections []inference.Detection
	err        error
}

func (f *fakeDetector) Detect(ctx context.Context, image []byte) ([]inference.Detection, error) {
	return f.detections, f.err
}

func TestDetect_OK(t *testing.T) {
	detector := &fakeDetector{
		detections: []inference.Detection{
			{Class: "door", Confidence: 0.92, Box: [4]float64{10, 20, 110, 220}},
		},
	}
	r := newTestRouter(testStore(), detector)

	// "hello" 的 base64
	w := doJSON(r, http.MethodPost, "/api/detect", `{"body": "aGVsbG8="}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
	assert.Contains(t, w.Body.String(), `"door"`)
}

func TestDetect_InvalidBase64(t *testing.T) {
	r := newTestRouter(testStore(), &fakeDetector{})

	w := doJSON(r, http.MethodPost, "/api/detect", `{"body": "!!!not-base64!!!"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
}

func TestDetect_NotConfigured(t *testing.T) {
	r := newTestRouter(testStore(), nil)

	w := doJSON(r, http.MethodPost, "/api/detect", `{"body": "aGVsbG8="}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
