package web

import "encoding/json"

type ContentResp struct {
	Success bool         `json:"success"`
	Cached  bool         `json:"cached"`
	Data    *ContentData `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Code    int          `json:"code,omitempty"`
}

type ContentData struct {
	Payload       json.RawMessage `json:"payload"`
	SchemaVersion int64           `json:"schemaVersion"`
}

type SaveReq struct {
	CourseId int64  `json:"courseId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type UpdateContentReq struct {
	Id int64 `json:"id"`
	// Content 新的 JSON 文档，整体替换
	Content string `json:"content"`
}
