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

	"github.com/shophub/shophub/internal/cart/internal/domain"
	cachemocks "github.com/shophub/shophub/internal/cart/internal/repository/cache/mocks"
	"github.com/shophub/shophub/internal/product"
	productmocks "github.com/shophub/shophub/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testUid = int64(2024)

func TestService_AddItem(t *testing.T) {
	t.Parallel()
	phone := product.Product{ID: 1, Name: "手机", Image: "phone.png", Price: 10000, Stock: 10, Status: product.StatusOnShelf}

	t.Run("首次加购", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := cachemocks.NewMockCartCache(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		productSvc.EXPECT().FindProduct(gomock.Any(), int64(1)).Return(phone, nil)
		c.EXPECT().Get(gomock.Any(), testUid).Return(domain.Cart{Uid: testUid}, nil)
		c.EXPECT().Set(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, cart domain.Cart) error {
				require.Len(t, cart.Items, 1)
				assert.Equal(t, int64(2), cart.Items[0].Quantity)
				assert.Equal(t, "手机", cart.Items[0].Name)
				return nil
			})

		cart, err := NewService(c, productSvc).AddItem(context.Background(), testUid, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(20000), cart.Subtotal())
	})

	t.Run("重复加购累加数量", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := cachemocks.NewMockCartCache(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		productSvc.EXPECT().FindProduct(gomock.Any(), int64(1)).Return(phone, nil)
		c.EXPECT().Get(gomock.Any(), testUid).Return(domain.Cart{
			Uid:   testUid,
			Items: []domain.CartItem{{ProductID: 1, Name: "手机", Price: 10000, Quantity: 1}},
		}, nil)
		c.EXPECT().Set(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, cart domain.Cart) error {
				require.Len(t, cart.Items, 1)
				assert.Equal(t, int64(3), cart.Items[0].Quantity)
				return nil
			})

		_, err := NewService(c, productSvc).AddItem(context.Background(), testUid, 1, 2)
		require.NoError(t, err)
	})

	t.Run("商品不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := cachemocks.NewMockCartCache(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		productSvc.EXPECT().FindProduct(gomock.Any(), int64(404)).
			Return(product.Product{}, gorm.ErrRecordNotFound)

		_, err := NewService(c, productSvc).AddItem(context.Background(), testUid, 404, 1)
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("数量非法", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := cachemocks.NewMockCartCache(ctrl)
		productSvc := productmocks.NewMockService(ctrl)

		_, err := NewService(c, productSvc).AddItem(context.Background(), testUid, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_UpdateQuantity(t *testing.T) {
	t.Parallel()

	t.Run("改数量", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := cachemocks.NewMockCartCache(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		c.EXPECT().Get(gomock.Any(), testUid).Return(domain.Cart{
			Uid:   testUid,
			Items: []domain.CartItem{{ProductID: 1, Price: 10000, Quantity: 1}},
		}, nil)
		c.EXPECT().Set(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, cart domain.Cart) error {
				assert.Equal(t, int64(5), cart.Items[0].Quantity)
				return nil
			})

		_, err := NewService(c, productSvc).UpdateQuantity(context.Background(), testUid, 1, 5)
		require.NoError(t, err)
	})

	t.Run("改成0等价于移除", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := cachemocks.NewMockCartCache(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		c.EXPECT().Get(gomock.Any(), testUid).Return(domain.Cart{
			Uid:   testUid,
			Items: []domain.CartItem{{ProductID: 1, Price: 10000, Quantity: 1}},
		}, nil)
		c.EXPECT().Set(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, cart domain.Cart) error {
				assert.Empty(t, cart.Items)
				return nil
			})

		_, err := NewService(c, productSvc).UpdateQuantity(context.Background(), testUid, 1, 0)
		require.NoError(t, err)
	})

	t.Run("商品不在购物车里", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := cachemocks.NewMockCartCache(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		c.EXPECT().Get(gomock.Any(), testUid).Return(domain.Cart{Uid: testUid}, nil)

		_, err := NewService(c, productSvc).UpdateQuantity(context.Background(), testUid, 99, 5)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestService_Clear(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockCartCache(ctrl)
	productSvc := productmocks.NewMockService(ctrl)
	c.EXPECT().Delete(gomock.Any(), testUid).Return(nil)

	require.NoError(t, NewService(c, productSvc).Clear(context.Background(), testUid))
}
