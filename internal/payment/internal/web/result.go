package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/shophub/shophub/internal/payment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	paymentNotFoundResult = ginx.Result{
		Code: errs.PaymentNotFound.Code,
		Msg:  errs.PaymentNotFound.Msg,
	}
	signatureMismatchResult = ginx.Result{
		Code: errs.SignatureMismatch.Code,
		Msg:  errs.SignatureMismatch.Msg,
	}
	gatewayOrderMismatchResult = ginx.Result{
		Code: errs.GatewayOrderMismatch.Code,
		Msg:  errs.GatewayOrderMismatch.Msg,
	}
)
