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
	"github.com/shophub/shophub/internal/order"
	"github.com/shophub/shophub/internal/product"
	"github.com/shophub/shophub/internal/user"
	"golang.org/x/sync/errgroup"
)

// Handler 后台看板, 聚合多个模块的统计数据
type Handler struct {
	orderSvc   order.Service
	userSvc    user.UserService
	productSvc product.Service
}

func NewHandler(orderSvc order.Service,
	userSvc user.UserService,
	productSvc product.Service) *Handler {
	return &Handler{
		orderSvc:   orderSvc,
		userSvc:    userSvc,
		productSvc: productSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin")
	g.POST("/dashboard", ginx.B[DashboardReq](h.Dashboard))
}

func (h *Handler) Dashboard(ctx *ginx.Context, req DashboardReq) (ginx.Result, error) {
	const (
		defaultThreshold = 10
		defaultLimit     = 20
	)
	if req.LowStockThreshold <= 0 {
		req.LowStockThreshold = defaultThreshold
	}
	if req.LowStockLimit <= 0 {
		req.LowStockLimit = defaultLimit
	}
	dashCtx := ctx.Request.Context()
	var (
		eg         errgroup.Group
		orderCount int64
		revenue    int64
		userCount  int64
		lowStock   []product.Product
	)
	eg.Go(func() error {
		var err error
		orderCount, revenue, err = h.orderSvc.Stats(dashCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		userCount, err = h.userSvc.Total(dashCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		lowStock, err = h.productSvc.ListLowStock(dashCtx, req.LowStockThreshold, req.LowStockLimit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DashboardResp{
			OrderCount: orderCount,
			Revenue:    revenue,
			UserCount:  userCount,
			LowStockProducts: slice.Map(lowStock, func(idx int, src product.Product) LowStockProduct {
				return LowStockProduct{
					ID:    src.ID,
					Name:  src.Name,
					Stock: src.Stock,
				}
			}),
		},
	}, nil
}
