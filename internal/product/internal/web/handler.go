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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/shophub/shophub/internal/product/internal/domain"
	"github.com/shophub/shophub/internal/product/internal/service"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.B[ListProductsReq](h.List))
	g.POST("/detail", ginx.B[ProductDetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// List 分页查询在售商品, 按上架时间倒序
func (h *Handler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	var (
		eg       errgroup.Group
		products []domain.Product
		total    int64
	)
	eg.Go(func() error {
		var err error
		products, err = h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
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
		Data: ListProductsResp{
			Total: total,
			Products: slice.Map(products, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ProductDetailReq) (ginx.Result, error) {
	p, err := h.svc.FindProduct(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return productNotFoundResult, fmt.Errorf("商品ID非法: %w", err)
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductDetailResp{Product: toProductVO(p)},
	}, nil
}

func toProductVO(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		Status:      p.Status.ToUint8(),
	}
}
