package errs

var (
	SystemError      = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserDuplicate    = ErrorCode{Code: 501002, Msg: "邮箱已经注册"}
	UserInvalidOrPwd = ErrorCode{Code: 501003, Msg: "邮箱或者密码错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
