package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/shophub/shophub/internal/coupon/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	couponNotFoundResult = ginx.Result{
		Code: errs.CouponNotFound.Code,
		Msg:  errs.CouponNotFound.Msg,
	}
	couponExhaustedResult = ginx.Result{
		Code: errs.CouponExhausted.Code,
		Msg:  errs.CouponExhausted.Msg,
	}
	minimumPurchaseNotMetResult = ginx.Result{
		Code: errs.MinimumPurchaseNotMet.Code,
		Msg:  errs.MinimumPurchaseNotMet.Msg,
	}
)
