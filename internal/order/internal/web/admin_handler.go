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
	"github.com/shophub/shophub/internal/order/internal/domain"
	"github.com/shophub/shophub/internal/order/internal/service"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[RetrieveOrderDetailReq](h.Detail))
	g.POST("/status/update", ginx.B[UpdateOrderStatusReq](h.UpdateStatus))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListAllOrders(ctx.Request.Context(), req.Offset, req.Limit)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrieveOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return toErrorResult(err), err
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{Order: toOrderVO(order)},
	}, nil
}

// UpdateStatus 推进订单状态, 响应里带上还能推进到哪些状态
func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateOrderStatusReq) (ginx.Result, error) {
	order, err := h.svc.UpdateStatus(ctx.Request.Context(), req.OrderSN, domain.OrderStatus(req.Status))
	if err != nil {
		return toErrorResult(err), err
	}
	return ginx.Result{
		Data: UpdateOrderStatusResp{
			Order: toOrderVO(order),
			AllowedNext: slice.Map(order.Status.AllowedNext(), func(idx int, src domain.OrderStatus) uint8 {
				return src.ToUint8()
			}),
		},
	}, nil
}
