package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/shophub/shophub/internal/bff/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
