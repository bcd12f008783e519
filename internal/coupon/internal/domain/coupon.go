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

package domain

type DiscountType uint8

func (t DiscountType) ToUint8() uint8 {
	return uint8(t)
}

const (
	// DiscountTypePercentage 按订单小计的百分比折扣
	DiscountTypePercentage DiscountType = 1
	// DiscountTypeFixed 固定金额折扣
	DiscountTypeFixed DiscountType = 2
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusDisabled Status = 1
	StatusActive   Status = 2
)

type Coupon struct {
	ID          int64
	// Code 全部大写存储, 查找前先归一化
	Code        string
	Description string
	Type        DiscountType
	// Value 百分比类型表示折扣百分数, 固定类型单位为分
	Value int64
	// MinimumPurchase 使用门槛, 单位为分
	MinimumPurchase int64
	// MaximumDiscount 折扣上限, 单位为分, 仅对百分比类型生效, 0表示不设上限
	MaximumDiscount int64
	ValidFrom       int64
	ValidUntil      int64
	// UsageLimit 0表示不限次数
	UsageLimit int64
	UsedCount  int64
	Status     Status
	Ctime      int64
	Utime      int64
}

// Discount 优惠计算结果
type Discount struct {
	// Amount 实际折扣金额, 单位为分, 已按小计钳制
	Amount int64
	Coupon Coupon
}
