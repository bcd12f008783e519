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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/shophub/shophub/internal/cart/internal/domain"
)

const (
	// 购物车放得住, 但不是永久的
	expiration = 30 * 24 * time.Hour
)

//go:generate mockgen -source=./cart.go -package=cachemocks -destination=mocks/cart.mock.go CartCache
type CartCache interface {
	// Get 没有购物车时返回空购物车, 不报错
	Get(ctx context.Context, uid int64) (domain.Cart, error)
	Set(ctx context.Context, cart domain.Cart) error
	Delete(ctx context.Context, uid int64) error
}

type cartECache struct {
	ec ecache.Cache
}

func NewCartECache(ec ecache.Cache) CartCache {
	return &cartECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "cart:",
		},
	}
}

func (c *cartECache) Get(ctx context.Context, uid int64) (domain.Cart, error) {
	val := c.ec.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Cart{Uid: uid}, nil
	}
	if val.Err != nil {
		return domain.Cart{}, errors.Wrap(val.Err, "读取购物车失败")
	}
	var cart domain.Cart
	if err := json.Unmarshal([]byte(val.Val.(string)), &cart); err != nil {
		return domain.Cart{}, errors.Wrap(err, "反序列化购物车失败")
	}
	cart.Uid = uid
	return cart, nil
}

func (c *cartECache) Set(ctx context.Context, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "序列化购物车失败")
	}
	return errors.Wrap(c.ec.Set(ctx, c.key(cart.Uid), string(data), expiration), "写入购物车失败")
}

func (c *cartECache) Delete(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.key(uid))
	return errors.Wrap(err, "清空购物车失败")
}

func (c *cartECache) key(uid int64) string {
	return fmt.Sprintf("uid:%d", uid)
}
