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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/shophub/shophub/internal/coupon"
	"github.com/shophub/shophub/internal/order/internal/domain"
	"github.com/shophub/shophub/internal/order/internal/service"
	"github.com/shophub/shophub/internal/payment"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc        service.Service
	paymentSvc payment.Service
	cache      ecache.Cache
	currency   string
}

func NewHandler(svc service.Service, paymentSvc payment.Service, cache ecache.Cache, currency string) *Handler {
	return &Handler{svc: svc, paymentSvc: paymentSvc, cache: cache, currency: currency}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

// CreateOrder 下单并在需要在线支付时同步创建支付单
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}

	uid := sess.Claims().Uid
	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.Order{
		BuyerID:       uid,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Address:       toAddressDomain(req.Address),
		Pricing:       domain.Pricing{CouponCode: req.CouponCode},
	}, slice.Map(req.Items, func(idx int, src Item) domain.PurchaseItem {
		return domain.PurchaseItem{ProductID: src.ProductID, Quantity: src.Quantity}
	}))
	if err != nil {
		return toErrorResult(err), err
	}

	resp := CreateOrderResp{OrderSN: order.SN, Total: order.Pricing.Total}
	if order.PaymentMethod == domain.PaymentMethodGateway {
		p, err := h.paymentSvc.CreatePayment(ctx.Request.Context(), payment.Payment{
			PayerID:  uid,
			OrderID:  order.ID,
			OrderSN:  order.SN,
			Amount:   order.Pricing.Total,
			Currency: h.currency,
		})
		if err != nil {
			return systemErrorResult, fmt.Errorf("创建支付失败: %w", err)
		}
		if err = h.svc.AttachPayment(ctx.Request.Context(), order.ID, p.ID, p.SN); err != nil {
			return systemErrorResult, fmt.Errorf("订单冗余支付ID及SN失败: %w", err)
		}
		resp.GatewayOrderID = p.GatewayOrderID
	}
	return ginx.Result{Data: resp}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if err != nil {
		return toErrorResult(err), err
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return toErrorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toErrorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult
	case errors.Is(err, service.ErrEmptyOrder):
		return emptyOrderResult
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidQuantityResult
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return invalidStatusTransitionResult
	case errors.Is(err, coupon.ErrCouponNotFound),
		errors.Is(err, coupon.ErrCouponExhausted),
		errors.Is(err, coupon.ErrMinimumPurchaseNotMet):
		return couponUnusableResult
	default:
		return systemErrorResult
	}
}

func toAddressDomain(a ShippingAddress) domain.ShippingAddress {
	return domain.ShippingAddress{
		Recipient:  a.Recipient,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN:               order.SN,
		BuyerID:          order.BuyerID,
		PaymentSN:        order.PaymentSN,
		GatewayPaymentID: order.GatewayPaymentID,
		PaymentMethod:    order.PaymentMethod.ToUint8(),
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID: src.ProductID,
				Name:      src.Name,
				Image:     src.Image,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		Address: ShippingAddress{
			Recipient:  order.Address.Recipient,
			Phone:      order.Address.Phone,
			Line1:      order.Address.Line1,
			Line2:      order.Address.Line2,
			City:       order.Address.City,
			State:      order.Address.State,
			PostalCode: order.Address.PostalCode,
			Country:    order.Address.Country,
		},
		Subtotal:    order.Pricing.Subtotal,
		Discount:    order.Pricing.Discount,
		CouponCode:  order.Pricing.CouponCode,
		Shipping:    order.Pricing.Shipping,
		Tax:         order.Pricing.Tax,
		Total:       order.Pricing.Total,
		Status:      order.Status.ToUint8(),
		PaidAt:      order.PaidAt,
		DeliveredAt: order.DeliveredAt,
		CancelledAt: order.CancelledAt,
		Ctime:       order.Ctime,
	}
}
