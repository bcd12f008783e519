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
	"github.com/shophub/shophub/internal/wishlist/internal/domain"
	"github.com/shophub/shophub/internal/wishlist/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/wishlist_repository.mock.go WishlistRepository
type WishlistRepository interface {
	Add(ctx context.Context, uid, productID int64) error
	// Remove 返回 false 表示本来就没收藏
	Remove(ctx context.Context, uid, productID int64) (bool, error)
	List(ctx context.Context, uid int64) ([]domain.Item, error)
}

func NewRepository(d dao.WishlistDAO) WishlistRepository {
	return &wishlistRepository{d: d}
}

type wishlistRepository struct {
	d dao.WishlistDAO
}

func (w *wishlistRepository) Add(ctx context.Context, uid, productID int64) error {
	return w.d.Upsert(ctx, dao.WishlistItem{
		Uid:       uid,
		ProductID: productID,
	})
}

func (w *wishlistRepository) Remove(ctx context.Context, uid, productID int64) (bool, error) {
	affected, err := w.d.Delete(ctx, uid, productID)
	return affected > 0, err
}

func (w *wishlistRepository) List(ctx context.Context, uid int64) ([]domain.Item, error) {
	items, err := w.d.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.WishlistItem) domain.Item {
		return domain.Item{
			Id:        src.Id,
			Uid:       src.Uid,
			ProductID: src.ProductID,
			Ctime:     src.Ctime,
		}
	}), nil
}
