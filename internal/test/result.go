package test

// Result 管理端接口的统一响应，测试里反序列化用
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
