package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/studyhub/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateUserResult = ginx.Result{
		Code: errs.UserDuplicate.Code,
		Msg:  errs.UserDuplicate.Msg,
	}
	invalidUserOrPwdResult = ginx.Result{
		Code: errs.UserInvalidOrPwd.Code,
		Msg:  errs.UserInvalidOrPwd.Msg,
	}
)
