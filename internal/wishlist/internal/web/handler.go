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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/shophub/shophub/internal/product"
	"github.com/shophub/shophub/internal/wishlist/internal/service"
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
	g := server.Group("/wishlist")
	g.GET("/list", ginx.S(h.List))
	g.POST("/add", ginx.BS[ItemReq](h.Add))
	g.POST("/remove", ginx.BS[ItemReq](h.Remove))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	products, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Products: slice.Map(products, func(idx int, src product.Product) Product {
				return Product{
					ID:    src.ID,
					Name:  src.Name,
					Image: src.Image,
					Price: src.Price,
					Stock: src.Stock,
				}
			}),
		},
	}, nil
}

func (h *Handler) Add(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Add(ctx.Request.Context(), sess.Claims().Uid, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductUnavailable) {
			return productUnavailableResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Remove(ctx.Request.Context(), sess.Claims().Uid, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrNotInWishlist) {
			return notInWishlistResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
