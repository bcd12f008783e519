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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shophub/shophub/internal/cart/internal/domain"
	"github.com/shophub/shophub/internal/cart/internal/repository/cache"
	"github.com/shophub/shophub/internal/product"
	"gorm.io/gorm"
)

var (
	// ErrInvalidQuantity 数量非法
	ErrInvalidQuantity = errors.New("数量非法")
	// ErrProductUnavailable 商品不存在或已下架
	ErrProductUnavailable = errors.New("商品不存在或已下架")
	// ErrItemNotFound 购物车里没有这个商品
	ErrItemNotFound = errors.New("购物车里没有这个商品")
)

//go:generate mockgen -source=./cart.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	// AddItem 加购, 已在购物车里的商品累加数量
	AddItem(ctx context.Context, uid, productID, quantity int64) (domain.Cart, error)
	// UpdateQuantity 直接改数量, 改成 0 等价于移除
	UpdateQuantity(ctx context.Context, uid, productID, quantity int64) (domain.Cart, error)
	RemoveItem(ctx context.Context, uid, productID int64) (domain.Cart, error)
	Clear(ctx context.Context, uid int64) error
	GetCart(ctx context.Context, uid int64) (domain.Cart, error)
}

func NewService(c cache.CartCache, productSvc product.Service) Service {
	return &service{
		cache:      c,
		productSvc: productSvc,
	}
}

type service struct {
	cache      cache.CartCache
	productSvc product.Service
}

func (s *service) AddItem(ctx context.Context, uid, productID, quantity int64) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, ErrInvalidQuantity
	}
	p, err := s.productSvc.FindProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Cart{}, ErrProductUnavailable
		}
		return domain.Cart{}, fmt.Errorf("查找商品失败: %w", err)
	}
	cart, err := s.cache.Get(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	cart.Upsert(domain.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  quantity,
	})
	if err = s.cache.Set(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *service) UpdateQuantity(ctx context.Context, uid, productID, quantity int64) (domain.Cart, error) {
	if quantity < 0 {
		return domain.Cart{}, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveItem(ctx, uid, productID)
	}
	cart, err := s.cache.Get(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if !cart.SetQuantity(productID, quantity) {
		return domain.Cart{}, ErrItemNotFound
	}
	if err = s.cache.Set(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *service) RemoveItem(ctx context.Context, uid, productID int64) (domain.Cart, error) {
	cart, err := s.cache.Get(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if !cart.Remove(productID) {
		return domain.Cart{}, ErrItemNotFound
	}
	if err = s.cache.Set(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.cache.Delete(ctx, uid)
}

func (s *service) GetCart(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.cache.Get(ctx, uid)
}
