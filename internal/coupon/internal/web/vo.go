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

package web

// ValidateCouponReq 校验优惠码是否可用, 不计算金额
type ValidateCouponReq struct {
	Code string `json:"code"`
}

type ValidateCouponResp struct {
	Coupon Coupon `json:"coupon"`
}

// ApplyCouponReq 按订单小计试算折扣金额
type ApplyCouponReq struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"`
}

type ApplyCouponResp struct {
	Discount int64  `json:"discount"`
	Coupon   Coupon `json:"coupon"`
}

type Coupon struct {
	ID              int64  `json:"id,omitempty"`
	Code            string `json:"code"`
	Description     string `json:"description,omitempty"`
	Type            uint8  `json:"type"`
	Value           int64  `json:"value"`
	MinimumPurchase int64  `json:"minimumPurchase,omitempty"`
	MaximumDiscount int64  `json:"maximumDiscount,omitempty"`
	ValidFrom       int64  `json:"validFrom,omitempty"`
	ValidUntil      int64  `json:"validUntil,omitempty"`
	UsageLimit      int64  `json:"usageLimit,omitempty"`
	UsedCount       int64  `json:"usedCount,omitempty"`
	Status          uint8  `json:"status,omitempty"`
}

// SaveCouponReq 创建或更新优惠券, ID为0表示创建
type SaveCouponReq struct {
	Coupon Coupon `json:"coupon"`
}

type SaveCouponResp struct {
	ID int64 `json:"id"`
}

// DeleteCouponReq 删除优惠券
type DeleteCouponReq struct {
	ID int64 `json:"id"`
}

// ListCouponsReq 分页查询优惠券
type ListCouponsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListCouponsResp struct {
	Total   int64    `json:"total,omitempty"`
	Coupons []Coupon `json:"coupons,omitempty"`
}
