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

package order

import (
	"github.com/shophub/shophub/internal/order/internal/domain"
	"github.com/shophub/shophub/internal/order/internal/event"
	"github.com/shophub/shophub/internal/order/internal/service"
	"github.com/shophub/shophub/internal/order/internal/web"
)

type (
	Handler         = web.Handler
	AdminHandler    = web.AdminHandler
	Service         = service.Service
	PricingConfig   = service.PricingConfig
	Order           = domain.Order
	OrderItem       = domain.OrderItem
	Pricing         = domain.Pricing
	ShippingAddress = domain.ShippingAddress
	Status          = domain.OrderStatus
	PaymentMethod   = domain.PaymentMethod
	PaymentConsumer = event.PaymentConsumer
)

const (
	StatusPending        = domain.StatusPending
	StatusConfirmed      = domain.StatusConfirmed
	StatusShipped        = domain.StatusShipped
	StatusOutForDelivery = domain.StatusOutForDelivery
	StatusDelivered      = domain.StatusDelivered
	StatusCancelled      = domain.StatusCancelled

	PaymentMethodGateway        = domain.PaymentMethodGateway
	PaymentMethodCashOnDelivery = domain.PaymentMethodCashOnDelivery
)

var (
	ErrOrderNotFound           = service.ErrOrderNotFound
	ErrInsufficientStock       = service.ErrInsufficientStock
	ErrInvalidStatusTransition = service.ErrInvalidStatusTransition
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
	// PaymentC 消费支付事件, 在应用启动时 Start
	PaymentC *PaymentConsumer
}
