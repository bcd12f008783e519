// Copyright 2024 shophub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/shophub/shophub/internal/coupon/internal/domain"
	"github.com/shophub/shophub/internal/coupon/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/validate", ginx.BS[ValidateCouponReq](h.Validate))
	g.POST("/apply", ginx.BS[ApplyCouponReq](h.Apply))
}

// Validate 只校验优惠码本身是否可用, 不校验消费门槛
func (h *Handler) Validate(ctx *ginx.Context, req ValidateCouponReq, _ session.Session) (ginx.Result, error) {
	c, err := h.svc.Validate(ctx.Request.Context(), req.Code)
	if err != nil {
		return toErrorResult(err), err
	}
	return ginx.Result{
		Data: ValidateCouponResp{Coupon: toCouponVO(c)},
	}, nil
}

// Apply 按订单小计试算折扣
func (h *Handler) Apply(ctx *ginx.Context, req ApplyCouponReq, _ session.Session) (ginx.Result, error) {
	d, err := h.svc.Evaluate(ctx.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		return toErrorResult(err), err
	}
	return ginx.Result{
		Data: ApplyCouponResp{
			Discount: d.Amount,
			Coupon:   toCouponVO(d.Coupon),
		},
	}, nil
}

func toErrorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrCouponNotFound):
		return couponNotFoundResult
	case errors.Is(err, service.ErrCouponExhausted):
		return couponExhaustedResult
	case errors.Is(err, service.ErrMinimumPurchaseNotMet):
		return minimumPurchaseNotMetResult
	default:
		return systemErrorResult
	}
}

func toCouponVO(c domain.Coupon) Coupon {
	return Coupon{
		ID:              c.ID,
		Code:            c.Code,
		Description:     c.Description,
		Type:            c.Type.ToUint8(),
		Value:           c.Value,
		MinimumPurchase: c.MinimumPurchase,
		MaximumDiscount: c.MaximumDiscount,
		ValidFrom:       c.ValidFrom,
		ValidUntil:      c.ValidUntil,
		UsageLimit:      c.UsageLimit,
		UsedCount:       c.UsedCount,
		Status:          c.Status.ToUint8(),
	}
}
