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

package coupon

import (
	"github.com/shophub/shophub/internal/coupon/internal/domain"
	"github.com/shophub/shophub/internal/coupon/internal/service"
	"github.com/shophub/shophub/internal/coupon/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Coupon       = domain.Coupon
	Discount     = domain.Discount
	DiscountType = domain.DiscountType
	Status       = domain.Status
)

const (
	DiscountTypePercentage = domain.DiscountTypePercentage
	DiscountTypeFixed      = domain.DiscountTypeFixed

	StatusDisabled = domain.StatusDisabled
	StatusActive   = domain.StatusActive
)

var (
	ErrCouponNotFound        = service.ErrCouponNotFound
	ErrCouponExhausted       = service.ErrCouponExhausted
	ErrMinimumPurchaseNotMet = service.ErrMinimumPurchaseNotMet
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
