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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrUsageExhausted 使用次数已达上限, 或被并发订单抢先用完
	ErrUsageExhausted = errors.New("优惠券使用次数已耗尽")
)

type CouponDAO interface {
	FindByCode(ctx context.Context, code string) (Coupon, error)
	List(ctx context.Context, offset, limit int) ([]Coupon, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, c Coupon) (int64, error)
	Update(ctx context.Context, c Coupon) error
	Delete(ctx context.Context, id int64) error
	IncrementUsage(ctx context.Context, code string) error
}

type CouponGORMDAO struct {
	db *egorm.Component
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &CouponGORMDAO{db: db}
}

func (d *CouponGORMDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var res Coupon
	err := d.db.WithContext(ctx).Where("code = ?", code).First(&res).Error
	return res, err
}

func (d *CouponGORMDAO) List(ctx context.Context, offset, limit int) ([]Coupon, error) {
	var res []Coupon
	err := d.db.WithContext(ctx).Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *CouponGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Coupon{}).Count(&res).Error
	return res, err
}

func (d *CouponGORMDAO) Create(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now()
	c.Utime, c.Ctime = now.UnixMilli(), now.UnixMilli()
	return c.Id, d.db.WithContext(ctx).Create(&c).Error
}

func (d *CouponGORMDAO) Update(ctx context.Context, c Coupon) error {
	c.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Coupon{}).Where("id = ?", c.Id).
		Updates(map[string]any{
			"description":      c.Description,
			"type":             c.Type,
			"value":            c.Value,
			"minimum_purchase": c.MinimumPurchase,
			"maximum_discount": c.MaximumDiscount,
			"valid_from":       c.ValidFrom,
			"valid_until":      c.ValidUntil,
			"usage_limit":      c.UsageLimit,
			"status":           c.Status,
			"utime":            c.Utime,
		}).Error
}

func (d *CouponGORMDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Coupon{}).Error
}

// IncrementUsage 条件化的原子自增, 次数用尽时不产生任何修改
func (d *CouponGORMDAO) IncrementUsage(ctx context.Context, code string) error {
	res := d.db.WithContext(ctx).Model(&Coupon{}).
		Where("code = ? AND (usage_limit = 0 OR used_count < usage_limit)", code).
		Updates(map[string]any{
			"used_count": gorm.Expr("used_count + 1"),
			"utime":      time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUsageExhausted
	}
	return nil
}

type Coupon struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:优惠券自增ID"`
	Code            string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code;comment:优惠码,大写存储"`
	Description     string `gorm:"type:varchar(255);not null;comment:优惠描述"`
	Type            uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:折扣类型 1=百分比 2=固定金额"`
	Value           int64  `gorm:"not null;comment:折扣数值;百分比类型为百分数,固定类型单位为分"`
	MinimumPurchase int64  `gorm:"not null;default:0;comment:最低消费门槛;单位为分"`
	MaximumDiscount int64  `gorm:"not null;default:0;comment:折扣上限;单位为分,0表示不设上限"`
	ValidFrom       int64  `gorm:"not null;comment:生效时间"`
	ValidUntil      int64  `gorm:"not null;comment:失效时间"`
	UsageLimit      int64  `gorm:"not null;default:0;comment:使用次数上限,0表示不限"`
	UsedCount       int64  `gorm:"not null;default:0;comment:已使用次数"`
	Status          uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=停用 2=启用"`
	Ctime           int64
	Utime           int64
}
