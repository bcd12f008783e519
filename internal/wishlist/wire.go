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

//go:build wireinject

package wishlist

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/shophub/shophub/internal/product"
	"github.com/shophub/shophub/internal/wishlist/internal/repository"
	"github.com/shophub/shophub/internal/wishlist/internal/repository/dao"
	"github.com/shophub/shophub/internal/wishlist/internal/service"
	"github.com/shophub/shophub/internal/wishlist/internal/web"
)

func InitModule(db *egorm.Component, productSvc product.Service) *Module {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"))
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.WishlistDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMWishlistDAO(db)
}
