package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/shophub/shophub/internal/wishlist/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productUnavailableResult = ginx.Result{
		Code: errs.ProductUnavailable.Code,
		Msg:  errs.ProductUnavailable.Msg,
	}
	notInWishlistResult = ginx.Result{
		Code: errs.NotInWishlist.Code,
		Msg:  errs.NotInWishlist.Msg,
	}
)
