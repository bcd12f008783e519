package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/shophub/shophub/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
)
