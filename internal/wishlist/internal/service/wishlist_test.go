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

	"github.com/shophub/shophub/internal/product"
	productmocks "github.com/shophub/shophub/internal/product/mocks"
	"github.com/shophub/shophub/internal/wishlist/internal/domain"
	repomocks "github.com/shophub/shophub/internal/wishlist/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testUid = int64(2024)

func TestService_Add(t *testing.T) {
	t.Parallel()

	t.Run("收藏成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockWishlistRepository(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		productSvc.EXPECT().FindProduct(gomock.Any(), int64(1)).
			Return(product.Product{ID: 1, Status: product.StatusOnShelf}, nil)
		repo.EXPECT().Add(gomock.Any(), testUid, int64(1)).Return(nil)

		require.NoError(t, NewService(repo, productSvc).Add(context.Background(), testUid, 1))
	})

	t.Run("商品不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockWishlistRepository(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		productSvc.EXPECT().FindProduct(gomock.Any(), int64(404)).
			Return(product.Product{}, gorm.ErrRecordNotFound)

		err := NewService(repo, productSvc).Add(context.Background(), testUid, 404)
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})
}

func TestService_Remove(t *testing.T) {
	t.Parallel()

	t.Run("移除成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockWishlistRepository(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		repo.EXPECT().Remove(gomock.Any(), testUid, int64(1)).Return(true, nil)

		require.NoError(t, NewService(repo, productSvc).Remove(context.Background(), testUid, 1))
	})

	t.Run("本来就没收藏", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockWishlistRepository(ctrl)
		productSvc := productmocks.NewMockService(ctrl)
		repo.EXPECT().Remove(gomock.Any(), testUid, int64(1)).Return(false, nil)

		err := NewService(repo, productSvc).Remove(context.Background(), testUid, 1)
		assert.ErrorIs(t, err, ErrNotInWishlist)
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockWishlistRepository(ctrl)
	productSvc := productmocks.NewMockService(ctrl)
	repo.EXPECT().List(gomock.Any(), testUid).Return([]domain.Item{
		{Id: 1, Uid: testUid, ProductID: 1},
		{Id: 2, Uid: testUid, ProductID: 2},
		{Id: 3, Uid: testUid, ProductID: 3},
	}, nil)
	productSvc.EXPECT().FindProduct(gomock.Any(), int64(1)).
		Return(product.Product{ID: 1, Name: "手机", Status: product.StatusOnShelf}, nil)
	// 已删除的商品直接跳过
	productSvc.EXPECT().FindProduct(gomock.Any(), int64(2)).
		Return(product.Product{}, gorm.ErrRecordNotFound)
	// 已下架的也不展示
	productSvc.EXPECT().FindProduct(gomock.Any(), int64(3)).
		Return(product.Product{ID: 3, Status: product.StatusOffShelf}, nil)

	products, err := NewService(repo, productSvc).List(context.Background(), testUid)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "手机", products[0].Name)
}
