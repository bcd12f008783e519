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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shophub/shophub/internal/product/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrInsufficientStock 库存不足, 或者被并发订单抢先扣减
	ErrInsufficientStock = errors.New("库存不足")
)

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	ListLowStock(ctx context.Context, threshold int64, limit int) ([]Product, error)
	Create(ctx context.Context, p Product) (int64, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int64) error
	DecrementStock(ctx context.Context, id, quantity int64) error
	IncrementStock(ctx context.Context, id, quantity int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("status = ?", domain.StatusOnShelf.ToUint8()).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("status = ?", domain.StatusOnShelf.ToUint8()).Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) ListLowStock(ctx context.Context, threshold int64, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("status = ? AND stock <= ?", domain.StatusOnShelf.ToUint8(), threshold).
		Order("stock ASC").Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Create(ctx context.Context, p Product) (int64, error) {
	now := time.Now()
	p.Utime, p.Ctime = now.UnixMilli(), now.UnixMilli()
	return p.Id, d.db.WithContext(ctx).Create(&p).Error
}

func (d *ProductGORMDAO) Update(ctx context.Context, p Product) error {
	p.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Product{}).Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"brand":       p.Brand,
			"category":    p.Category,
			"price":       p.Price,
			"stock":       p.Stock,
			"image":       p.Image,
			"status":      p.Status,
			"utime":       p.Utime,
		}).Error
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{}).Error
}

// DecrementStock 条件化的原子扣减, 库存不够时不会产生任何修改
func (d *ProductGORMDAO) DecrementStock(ctx context.Context, id, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// IncrementStock 库存回补, 用于订单创建失败后的补偿
func (d *ProductGORMDAO) IncrementStock(ctx context.Context, id, quantity int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", quantity),
			"utime": time.Now().UnixMilli(),
		}).Error
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Brand       string `gorm:"type:varchar(255);not null;comment:品牌"`
	Category    string `gorm:"type:varchar(255);not null;index:idx_category;comment:商品分类"`
	Price       int64  `gorm:"not null;comment:商品单价;单位为分, 999表示9.99元"`
	Stock       int64  `gorm:"not null;default:0;comment:库存数量"`
	Image       string `gorm:"type:varchar(512);not null;comment:商品缩略图,CDN绝对路径"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}
