package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	lessonNotFoundResult = ginx.Result{
		Code: errs.LessonNotFound.Code,
		Msg:  errs.LessonNotFound.Msg,
	}
	invalidContentResult = ginx.Result{
		Code: errs.InvalidContent.Code,
		Msg:  errs.InvalidContent.Msg,
	}
)
