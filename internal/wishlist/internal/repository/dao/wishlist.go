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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./wishlist.go -package=daomocks -destination=mocks/wishlist.mock.go WishlistDAO
type WishlistDAO interface {
	// Upsert 重复收藏不报错, 也不生成新记录
	Upsert(ctx context.Context, item WishlistItem) error
	Delete(ctx context.Context, uid, productID int64) (int64, error)
	ListByUid(ctx context.Context, uid int64) ([]WishlistItem, error)
}

type GORMWishlistDAO struct {
	db *egorm.Component
}

func NewGORMWishlistDAO(db *egorm.Component) WishlistDAO {
	return &GORMWishlistDAO{db: db}
}

func (d *GORMWishlistDAO) Upsert(ctx context.Context, item WishlistItem) error {
	now := time.Now().UnixMilli()
	item.Ctime = now
	item.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]interface{}{
			"utime": now,
		}),
	}).Create(&item).Error
}

func (d *GORMWishlistDAO) Delete(ctx context.Context, uid, productID int64) (int64, error) {
	res := d.db.WithContext(ctx).
		Where("uid = ? AND product_id = ?", uid, productID).
		Delete(&WishlistItem{})
	return res.RowsAffected, res.Error
}

func (d *GORMWishlistDAO) ListByUid(ctx context.Context, uid int64) ([]WishlistItem, error) {
	var items []WishlistItem
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Find(&items).Error
	return items, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&WishlistItem{})
}

type WishlistItem struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"uniqueIndex:uid_product;comment:用户ID"`
	// ProductID 同一个人收藏同一个商品只留一条
	ProductID int64 `gorm:"uniqueIndex:uid_product;comment:商品ID"`
	Ctime     int64
	Utime     int64
}
