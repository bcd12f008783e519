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

package order

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/shophub/shophub/internal/coupon"
	"github.com/shophub/shophub/internal/order/internal/event"
	"github.com/shophub/shophub/internal/order/internal/repository"
	"github.com/shophub/shophub/internal/order/internal/repository/dao"
	"github.com/shophub/shophub/internal/order/internal/service"
	"github.com/shophub/shophub/internal/order/internal/web"
	"github.com/shophub/shophub/internal/payment"
	"github.com/shophub/shophub/internal/pkg/sequencenumber"
	"github.com/shophub/shophub/internal/product"
)

func InitModule(db *egorm.Component, q mq.MQ, cache ecache.Cache,
	productSvc product.Service, couponSvc coupon.Service, paymentSvc payment.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		sequencenumber.NewGenerator,
		initPricingConfig,
		event.NewOrderEventProducer,
		service.NewService,
		wire.Bind(new(event.OrderPaidMarker), new(service.Service)),
		event.NewPaymentConsumer,
		initCurrency,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initPricingConfig() service.PricingConfig {
	var cfg service.PricingConfig
	err := econf.UnmarshalKey("order.pricing", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initCurrency() string {
	c := econf.GetString("payment.currency")
	if c == "" {
		c = "INR"
	}
	return c
}
