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
	"github.com/shophub/shophub/internal/product/internal/domain"
	"github.com/shophub/shophub/internal/product/internal/service"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveProductReq](h.Save))
	g.POST("/delete", ginx.B[DeleteProductReq](h.Delete))
	g.POST("/stock/low", ginx.B[ListLowStockReq](h.ListLowStock))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), domain.Product{
		ID:          req.Product.ID,
		Name:        req.Product.Name,
		Description: req.Product.Description,
		Brand:       req.Product.Brand,
		Category:    req.Product.Category,
		Price:       req.Product.Price,
		Stock:       req.Product.Stock,
		Image:       req.Product.Image,
		Status:      domain.Status(req.Product.Status),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveProductResp{ID: id},
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteProductReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// ListLowStock 低库存商品, 供后台补货提醒
func (h *AdminHandler) ListLowStock(ctx *ginx.Context, req ListLowStockReq) (ginx.Result, error) {
	const defaultLimit = 20
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	products, err := h.svc.ListLowStock(ctx.Request.Context(), req.Threshold, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProductsResp{
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}
