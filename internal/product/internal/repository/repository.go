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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/shophub/shophub/internal/product/internal/domain"
	"github.com/shophub/shophub/internal/product/internal/repository/dao"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	ListLowStock(ctx context.Context, threshold int64, limit int) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (int64, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
	DecrementStock(ctx context.Context, id, quantity int64) error
	IncrementStock(ctx context.Context, id, quantity int64) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	res, err := p.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(res), nil
}

func (p *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	res, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *productRepository) ListLowStock(ctx context.Context, threshold int64, limit int) ([]domain.Product, error) {
	res, err := p.d.ListLowStock(ctx, threshold, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) Create(ctx context.Context, product domain.Product) (int64, error) {
	return p.d.Create(ctx, p.toEntity(product))
}

func (p *productRepository) Update(ctx context.Context, product domain.Product) error {
	return p.d.Update(ctx, p.toEntity(product))
}

func (p *productRepository) Delete(ctx context.Context, id int64) error {
	return p.d.Delete(ctx, id)
}

func (p *productRepository) DecrementStock(ctx context.Context, id, quantity int64) error {
	return p.d.DecrementStock(ctx, id, quantity)
}

func (p *productRepository) IncrementStock(ctx context.Context, id, quantity int64) error {
	return p.d.IncrementStock(ctx, id, quantity)
}

func (p *productRepository) toDomain(product dao.Product) domain.Product {
	return domain.Product{
		ID:          product.Id,
		Name:        product.Name,
		Description: product.Description,
		Brand:       product.Brand,
		Category:    product.Category,
		Price:       product.Price,
		Stock:       product.Stock,
		Image:       product.Image,
		Status:      domain.Status(product.Status),
		Ctime:       product.Ctime,
		Utime:       product.Utime,
	}
}

func (p *productRepository) toEntity(product domain.Product) dao.Product {
	return dao.Product{
		Id:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Brand:       product.Brand,
		Category:    product.Category,
		Price:       product.Price,
		Stock:       product.Stock,
		Image:       product.Image,
		Status:      product.Status.ToUint8(),
	}
}
