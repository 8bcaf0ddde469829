package errs

var (
	SystemError    = ErrorCode{Code: 502001, Msg: "系统错误"}
	LessonNotFound = ErrorCode{Code: 502002, Msg: "课程不存在"}
	InvalidContent = ErrorCode{Code: 502003, Msg: "内容格式不正确"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
