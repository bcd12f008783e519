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

package notification

import (
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/shophub/shophub/internal/email"
	"github.com/shophub/shophub/internal/notification/internal/event/consumer"
	"github.com/shophub/shophub/internal/notification/internal/service"
	"github.com/shophub/shophub/internal/order"
	smsclient "github.com/shophub/shophub/internal/sms/client"
	"github.com/shophub/shophub/internal/user"
)

func InitModule(q mq.MQ,
	emailSvc email.Service,
	smsClient smsclient.Client,
	userSvc user.UserService,
	orderSvc order.Service) (*Module, error) {
	wire.Build(
		initService,
		consumer.NewOrderEventConsumer,
		consumer.NewRegistrationEventConsumer,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func initService(emailSvc email.Service,
	smsClient smsclient.Client,
	userSvc user.UserService,
	orderSvc order.Service) service.Service {
	type Config struct {
		From string            `yaml:"from"`
		SMS  service.SMSConfig `yaml:"sms"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("notification", &cfg); err != nil {
		panic(err)
	}
	return service.NewService(emailSvc, smsClient, userSvc, orderSvc, cfg.From, cfg.SMS)
}
