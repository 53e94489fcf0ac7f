package nav

// 导航请求的失败分类
// 用带类型的错误值代替异常控制流，transport 层据此映射状态码

// InputError 请求参数缺失或格式错误，未访问存储就直接返回
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

// NotFoundError 地标不存在、地标没有关联节点、或起点不属于任何建筑
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NoPathError 在建筑范围内不存在从起点到终点的连通路径
// 终点在不连通的分量里、终点在另一栋建筑里都归入这一类
type NoPathError struct {
	Message string
}

func (e *NoPathError) Error() string { return e.Message }

// TimeoutError 整个导航流程超出调用方设定的截止时间
type TimeoutError struct {
	Message string
}

func (e *TimeoutError) Error() string { return e.Message }

// UpstreamError 地图数据服务不可用或查询出错
// 不在本层重试，重试策略由调用方决定
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return e.Err }
