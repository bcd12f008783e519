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

package bff

import (
	"github.com/google/wire"
	"github.com/shophub/shophub/internal/bff/internal/web"
	"github.com/shophub/shophub/internal/order"
	"github.com/shophub/shophub/internal/product"
	"github.com/shophub/shophub/internal/user"
)

func InitModule(orderModule *order.Module,
	userModule *user.Module,
	productModule *product.Module) (*Module, error) {
	wire.Build(
		web.NewHandler,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
