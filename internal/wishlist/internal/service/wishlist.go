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

	"github.com/gotomicro/ego/core/elog"
	"github.com/shophub/shophub/internal/product"
	"github.com/shophub/shophub/internal/wishlist/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrProductUnavailable 商品不存在或已下架
	ErrProductUnavailable = errors.New("商品不存在或已下架")
	// ErrNotInWishlist 没收藏过
	ErrNotInWishlist = errors.New("没有收藏过这个商品")
)

//go:generate mockgen -source=./wishlist.go -package=wishlistmocks -destination=../../mocks/wishlist.mock.go Service
type Service interface {
	Add(ctx context.Context, uid, productID int64) error
	Remove(ctx context.Context, uid, productID int64) error
	// List 返回收藏的商品快照, 已下架或删除的商品直接跳过
	List(ctx context.Context, uid int64) ([]product.Product, error)
}

func NewService(repo repository.WishlistRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		logger:     elog.DefaultLogger,
	}
}

type service struct {
	repo       repository.WishlistRepository
	productSvc product.Service
	logger     *elog.Component
}

func (s *service) Add(ctx context.Context, uid, productID int64) error {
	_, err := s.productSvc.FindProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductUnavailable
		}
		return fmt.Errorf("查找商品失败: %w", err)
	}
	return s.repo.Add(ctx, uid, productID)
}

func (s *service) Remove(ctx context.Context, uid, productID int64) error {
	removed, err := s.repo.Remove(ctx, uid, productID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotInWishlist
	}
	return nil
}

func (s *service) List(ctx context.Context, uid int64) ([]product.Product, error) {
	items, err := s.repo.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	res := make([]product.Product, 0, len(items))
	for _, it := range items {
		p, err := s.productSvc.FindProduct(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			s.logger.Warn("查找收藏的商品失败",
				elog.FieldErr(err),
				elog.Int64("product_id", it.ProductID))
			continue
		}
		if p.Status != product.StatusOnShelf {
			continue
		}
		res = append(res, p)
	}
	return res, nil
}
