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
	"strings"
	"time"

	"github.com/shophub/shophub/internal/coupon/internal/domain"
	"github.com/shophub/shophub/internal/coupon/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrCouponNotFound 优惠码不存在、已停用或不在有效期内
	ErrCouponNotFound = errors.New("优惠券不存在或已失效")
	// ErrCouponExhausted 使用次数已达上限
	ErrCouponExhausted = errors.New("优惠券使用次数已达上限")
	// ErrMinimumPurchaseNotMet 订单小计未达到使用门槛
	ErrMinimumPurchaseNotMet = errors.New("未达到优惠券最低消费金额")
)

//go:generate mockgen -source=./service.go -package=couponmocks -destination=../../mocks/coupon.mock.go Service
type Service interface {
	// Validate 只校验优惠码本身是否可用, 不校验消费门槛
	Validate(ctx context.Context, code string) (domain.Coupon, error)
	// Evaluate 评估优惠码对给定订单小计的折扣, 不会递增使用次数
	Evaluate(ctx context.Context, code string, subtotal int64) (domain.Discount, error)
	// IncrementUsage 订单成功落库后递增使用次数, 原子且不可超限
	IncrementUsage(ctx context.Context, code string) error
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	Delete(ctx context.Context, id int64) error
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CouponRepository
}

func (s *service) Validate(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := s.repo.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Coupon{}, ErrCouponNotFound
		}
		return domain.Coupon{}, err
	}

	now := time.Now().UnixMilli()
	if c.Status != domain.StatusActive || now < c.ValidFrom || now > c.ValidUntil {
		return domain.Coupon{}, ErrCouponNotFound
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return domain.Coupon{}, ErrCouponExhausted
	}
	return c, nil
}

func (s *service) Evaluate(ctx context.Context, code string, subtotal int64) (domain.Discount, error) {
	c, err := s.Validate(ctx, code)
	if err != nil {
		return domain.Discount{}, err
	}
	if subtotal < c.MinimumPurchase {
		return domain.Discount{}, ErrMinimumPurchaseNotMet
	}

	amount := s.rawDiscount(c, subtotal)
	// 优惠金额不可能超过订单小计
	if amount > subtotal {
		amount = subtotal
	}
	return domain.Discount{Amount: amount, Coupon: c}, nil
}

func (s *service) rawDiscount(c domain.Coupon, subtotal int64) int64 {
	if c.Type == domain.DiscountTypeFixed {
		return c.Value
	}
	amount := subtotal * c.Value / 100
	if c.MaximumDiscount > 0 && amount > c.MaximumDiscount {
		amount = c.MaximumDiscount
	}
	return amount
}

func (s *service) IncrementUsage(ctx context.Context, code string) error {
	return s.repo.IncrementUsage(ctx, strings.ToUpper(code))
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	c.Code = strings.ToUpper(c.Code)
	if c.ID == 0 {
		return s.repo.Create(ctx, c)
	}
	return c.ID, s.repo.Update(ctx, c)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
