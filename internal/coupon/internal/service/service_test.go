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
	"testing"
	"time"

	"github.com/shophub/shophub/internal/coupon/internal/domain"
	"github.com/shophub/shophub/internal/coupon/internal/repository"
	repomocks "github.com/shophub/shophub/internal/coupon/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Evaluate(t *testing.T) {
	t.Parallel()
	now := time.Now().UnixMilli()
	save20 := domain.Coupon{
		ID:              1,
		Code:            "SAVE20",
		Type:            domain.DiscountTypePercentage,
		Value:           20,
		MinimumPurchase: 5000,
		MaximumDiscount: 1500,
		ValidFrom:       now - time.Hour.Milliseconds(),
		ValidUntil:      now + time.Hour.Milliseconds(),
		UsageLimit:      100,
		UsedCount:       3,
		Status:          domain.StatusActive,
	}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.CouponRepository
		code     string
		subtotal int64

		wantDiscount int64
		wantErr      error
	}{
		{
			name: "百分比折扣_触达上限",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "SAVE20").Return(save20, nil)
				return repo
			},
			code:     "SAVE20",
			subtotal: 10000,
			// 20% 是 2000, 但上限是 1500
			wantDiscount: 1500,
		},
		{
			name: "百分比折扣_未触达上限",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "SAVE20").Return(save20, nil)
				return repo
			},
			code:         "SAVE20",
			subtotal:     6000,
			wantDiscount: 1200,
		},
		{
			name: "优惠码小写_归一化后命中",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "SAVE20").Return(save20, nil)
				return repo
			},
			code:         "save20",
			subtotal:     10000,
			wantDiscount: 1500,
		},
		{
			name: "未达到最低消费",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "SAVE20").Return(save20, nil)
				return repo
			},
			code:     "SAVE20",
			subtotal: 4000,
			wantErr:  ErrMinimumPurchaseNotMet,
		},
		{
			name: "固定金额折扣_钳制到小计",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "FLAT30").Return(domain.Coupon{
					ID:         2,
					Code:       "FLAT30",
					Type:       domain.DiscountTypeFixed,
					Value:      3000,
					ValidFrom:  now - time.Hour.Milliseconds(),
					ValidUntil: now + time.Hour.Milliseconds(),
					Status:     domain.StatusActive,
				}, nil)
				return repo
			},
			code:     "FLAT30",
			subtotal: 2000,
			// 固定折扣 3000 超过小计, 钳制到 2000
			wantDiscount: 2000,
		},
		{
			name: "优惠码不存在",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "NOPE").
					Return(domain.Coupon{}, gorm.ErrRecordNotFound)
				return repo
			},
			code:     "NOPE",
			subtotal: 10000,
			wantErr:  ErrCouponNotFound,
		},
		{
			name: "优惠码已停用",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				c := save20
				c.Status = domain.StatusDisabled
				repo.EXPECT().FindByCode(gomock.Any(), "SAVE20").Return(c, nil)
				return repo
			},
			code:     "SAVE20",
			subtotal: 10000,
			wantErr:  ErrCouponNotFound,
		},
		{
			name: "优惠码已过期",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				c := save20
				c.ValidUntil = now - time.Minute.Milliseconds()
				repo.EXPECT().FindByCode(gomock.Any(), "SAVE20").Return(c, nil)
				return repo
			},
			code:     "SAVE20",
			subtotal: 10000,
			wantErr:  ErrCouponNotFound,
		},
		{
			name: "优惠码未生效",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				c := save20
				c.ValidFrom = now + time.Minute.Milliseconds()
				repo.EXPECT().FindByCode(gomock.Any(), "SAVE20").Return(c, nil)
				return repo
			},
			code:     "SAVE20",
			subtotal: 10000,
			wantErr:  ErrCouponNotFound,
		},
		{
			name: "使用次数已达上限",
			mock: func(ctrl *gomock.Controller) repository.CouponRepository {
				repo := repomocks.NewMockCouponRepository(ctrl)
				c := save20
				c.UsedCount = c.UsageLimit
				repo.EXPECT().FindByCode(gomock.Any(), "SAVE20").Return(c, nil)
				return repo
			},
			code:     "SAVE20",
			subtotal: 10000,
			wantErr:  ErrCouponExhausted,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			d, err := svc.Evaluate(context.Background(), tc.code, tc.subtotal)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantDiscount, d.Amount)
			}
		})
	}
}

func TestService_Validate(t *testing.T) {
	t.Parallel()
	now := time.Now().UnixMilli()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCouponRepository(ctrl)
	// 不校验消费门槛, 门槛很高也能通过
	repo.EXPECT().FindByCode(gomock.Any(), "WELCOME10").Return(domain.Coupon{
		ID:              3,
		Code:            "WELCOME10",
		Type:            domain.DiscountTypePercentage,
		Value:           10,
		MinimumPurchase: 100000,
		ValidFrom:       now - time.Hour.Milliseconds(),
		ValidUntil:      now + time.Hour.Milliseconds(),
		Status:          domain.StatusActive,
	}, nil)
	svc := NewService(repo)
	c, err := svc.Validate(context.Background(), "welcome10")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", c.Code)
}

func TestService_Save(t *testing.T) {
	t.Parallel()
	t.Run("创建时优惠码转大写", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockCouponRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c domain.Coupon) (int64, error) {
				assert.Equal(t, "NEWYEAR", c.Code)
				return 10, nil
			})
		svc := NewService(repo)
		id, err := svc.Save(context.Background(), domain.Coupon{Code: "newyear"})
		require.NoError(t, err)
		assert.Equal(t, int64(10), id)
	})

	t.Run("带ID走更新", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockCouponRepository(ctrl)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		svc := NewService(repo)
		id, err := svc.Save(context.Background(), domain.Coupon{ID: 7, Code: "SAVE20"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})
}
