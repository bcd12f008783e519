package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/shophub/shophub/internal/cart/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	productUnavailableResult = ginx.Result{
		Code: errs.ProductUnavailable.Code,
		Msg:  errs.ProductUnavailable.Msg,
	}
	itemNotFoundResult = ginx.Result{
		Code: errs.ItemNotFound.Code,
		Msg:  errs.ItemNotFound.Msg,
	}
)
