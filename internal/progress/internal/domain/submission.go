package domain

// Submission 学习进度提交，只追加不修改。
// AttemptId 非空时，(Uid, LessonId, AttemptId) 全局至多一条
type Submission struct {
	Id       int64
	Uid      int64
	LessonId int64
	// AttemptId 调用方提供的幂等标识，可以为空。
	// 为空表示匿名尝试，不参与去重
	AttemptId string
	Score     float64
	TimeSpent int64
	// Answers 自由格式的答题内容，JSON
	Answers string
}
