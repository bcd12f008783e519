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
	"github.com/shophub/shophub/internal/coupon/internal/domain"
	"github.com/shophub/shophub/internal/coupon/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/coupon_repository.mock.go CouponRepository
type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, c domain.Coupon) (int64, error)
	Update(ctx context.Context, c domain.Coupon) error
	Delete(ctx context.Context, id int64) error
	IncrementUsage(ctx context.Context, code string) error
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{d: d}
}

type couponRepository struct {
	d dao.CouponDAO
}

func (c *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	res, err := c.d.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return c.toDomain(res), nil
}

func (c *couponRepository) List(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	res, err := c.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Coupon) domain.Coupon {
		return c.toDomain(src)
	}), nil
}

func (c *couponRepository) Count(ctx context.Context) (int64, error) {
	return c.d.Count(ctx)
}

func (c *couponRepository) Create(ctx context.Context, coupon domain.Coupon) (int64, error) {
	return c.d.Create(ctx, c.toEntity(coupon))
}

func (c *couponRepository) Update(ctx context.Context, coupon domain.Coupon) error {
	return c.d.Update(ctx, c.toEntity(coupon))
}

func (c *couponRepository) Delete(ctx context.Context, id int64) error {
	return c.d.Delete(ctx, id)
}

func (c *couponRepository) IncrementUsage(ctx context.Context, code string) error {
	return c.d.IncrementUsage(ctx, code)
}

func (c *couponRepository) toDomain(coupon dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:              coupon.Id,
		Code:            coupon.Code,
		Description:     coupon.Description,
		Type:            domain.DiscountType(coupon.Type),
		Value:           coupon.Value,
		MinimumPurchase: coupon.MinimumPurchase,
		MaximumDiscount: coupon.MaximumDiscount,
		ValidFrom:       coupon.ValidFrom,
		ValidUntil:      coupon.ValidUntil,
		UsageLimit:      coupon.UsageLimit,
		UsedCount:       coupon.UsedCount,
		Status:          domain.Status(coupon.Status),
		Ctime:           coupon.Ctime,
		Utime:           coupon.Utime,
	}
}

func (c *couponRepository) toEntity(coupon domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:              coupon.ID,
		Code:            coupon.Code,
		Description:     coupon.Description,
		Type:            coupon.Type.ToUint8(),
		Value:           coupon.Value,
		MinimumPurchase: coupon.MinimumPurchase,
		MaximumDiscount: coupon.MaximumDiscount,
		ValidFrom:       coupon.ValidFrom,
		ValidUntil:      coupon.ValidUntil,
		UsageLimit:      coupon.UsageLimit,
		UsedCount:       coupon.UsedCount,
		Status:          coupon.Status.ToUint8(),
	}
}
