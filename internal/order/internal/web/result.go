package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/shophub/shophub/internal/order/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	emptyOrderResult = ginx.Result{
		Code: errs.EmptyOrder.Code,
		Msg:  errs.EmptyOrder.Msg,
	}
	insufficientStockResult = ginx.Result{
		Code: errs.InsufficientStock.Code,
		Msg:  errs.InsufficientStock.Msg,
	}
	invalidStatusTransitionResult = ginx.Result{
		Code: errs.InvalidStatusTransition.Code,
		Msg:  errs.InvalidStatusTransition.Msg,
	}
	productUnavailableResult = ginx.Result{
		Code: errs.ProductUnavailable.Code,
		Msg:  errs.ProductUnavailable.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	couponUnusableResult = ginx.Result{
		Code: errs.CouponUnusable.Code,
		Msg:  errs.CouponUnusable.Msg,
	}
)
