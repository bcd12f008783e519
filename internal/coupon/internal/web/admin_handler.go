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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/shophub/shophub/internal/coupon/internal/domain"
	"github.com/shophub/shophub/internal/coupon/internal/service"
	"golang.org/x/sync/errgroup"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/list", ginx.B[ListCouponsReq](h.List))
	g.POST("/save", ginx.B[SaveCouponReq](h.Save))
	g.POST("/delete", ginx.B[DeleteCouponReq](h.Delete))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListCouponsReq) (ginx.Result, error) {
	var (
		eg      errgroup.Group
		coupons []domain.Coupon
		total   int64
	)
	eg.Go(func() error {
		var err error
		coupons, err = h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = h.svc.Count(ctx.Request.Context())
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCouponsResp{
			Total: total,
			Coupons: slice.Map(coupons, func(idx int, src domain.Coupon) Coupon {
				return toCouponVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveCouponReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), domain.Coupon{
		ID:              req.Coupon.ID,
		Code:            req.Coupon.Code,
		Description:     req.Coupon.Description,
		Type:            domain.DiscountType(req.Coupon.Type),
		Value:           req.Coupon.Value,
		MinimumPurchase: req.Coupon.MinimumPurchase,
		MaximumDiscount: req.Coupon.MaximumDiscount,
		ValidFrom:       req.Coupon.ValidFrom,
		ValidUntil:      req.Coupon.ValidUntil,
		UsageLimit:      req.Coupon.UsageLimit,
		Status:          domain.Status(req.Coupon.Status),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveCouponResp{ID: id},
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteCouponReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
