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

	"github.com/shophub/shophub/internal/product/internal/domain"
	"github.com/shophub/shophub/internal/product/internal/repository"
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	FindProduct(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	ListLowStock(ctx context.Context, threshold int64, limit int) ([]domain.Product, error)
	// DecrementStock 原子扣减库存, 库存不足返回 dao.ErrInsufficientStock
	DecrementStock(ctx context.Context, id, quantity int64) error
	// RestoreStock 回补库存, 作为订单创建失败的补偿动作
	RestoreStock(ctx context.Context, id, quantity int64) error
	Save(ctx context.Context, p domain.Product) (int64, error)
	Delete(ctx context.Context, id int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindProduct(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) ListLowStock(ctx context.Context, threshold int64, limit int) ([]domain.Product, error) {
	return s.repo.ListLowStock(ctx, threshold, limit)
}

func (s *service) DecrementStock(ctx context.Context, id, quantity int64) error {
	return s.repo.DecrementStock(ctx, id, quantity)
}

func (s *service) RestoreStock(ctx context.Context, id, quantity int64) error {
	return s.repo.IncrementStock(ctx, id, quantity)
}

func (s *service) Save(ctx context.Context, p domain.Product) (int64, error) {
	if p.ID == 0 {
		return s.repo.Create(ctx, p)
	}
	return p.ID, s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
