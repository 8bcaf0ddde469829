package domain

// Lesson 课程内容单元。Version 从 1 开始，
// 每次内容更新严格 +1，只增不减
type Lesson struct {
	Id       int64
	CourseId int64
	Title    string
	// Content 结构化内容，JSON 文档，内含 schema_version 标记
	Content string
	Version int64
}

// ContentView 读路径的投影，按 (lessonId, version) 缓存。
// 同一个 key 下的内容不可变，版本推进之后旧 key 自然失效
type ContentView struct {
	LessonId      int64  `json:"lessonId"`
	Version       int64  `json:"version"`
	Payload       string `json:"payload"`
	SchemaVersion int64  `json:"schemaVersion"`
}
