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

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusPending 已下单, 等待商家确认或买家支付
	StatusPending        OrderStatus = 1
	StatusConfirmed      OrderStatus = 2
	StatusShipped        OrderStatus = 3
	StatusOutForDelivery OrderStatus = 4
	StatusDelivered      OrderStatus = 5
	StatusCancelled      OrderStatus = 6
)

// transitions 订单状态机, 只允许沿着配送流程单向推进,
// 送达之前任何状态都可以取消
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusShipped, StatusCancelled},
	StatusShipped:        {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// CanTransitionTo 判断能否从当前状态推进到 next
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, st := range transitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// AllowedNext 当前状态的全部合法后继, 终态返回空切片
func (s OrderStatus) AllowedNext() []OrderStatus {
	next := transitions[s]
	res := make([]OrderStatus, len(next))
	copy(res, next)
	return res
}

// IsTerminal 是否终态
func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

type PaymentMethod uint8

func (m PaymentMethod) ToUint8() uint8 {
	return uint8(m)
}

const (
	// PaymentMethodGateway 在线支付, 走支付网关
	PaymentMethodGateway PaymentMethod = 1
	// PaymentMethodCashOnDelivery 货到付款
	PaymentMethodCashOnDelivery PaymentMethod = 2
)

type Order struct {
	ID      int64
	SN      string
	BuyerID int64
	// PaymentID/PaymentSN 冗余支付模块的记录, 下单成功后回填
	PaymentID int64
	PaymentSN string
	// GatewayPaymentID 网关交易号, 支付成功后回填
	GatewayPaymentID string
	Items            []OrderItem
	Address          ShippingAddress
	PaymentMethod    PaymentMethod
	Pricing          Pricing
	Status           OrderStatus
	PaidAt           int64
	DeliveredAt      int64
	CancelledAt      int64
	Ctime            int64
	Utime            int64
}

// OrderItem 下单时的商品快照, 商品后续改价改名不影响已有订单
type OrderItem struct {
	OrderID   int64
	ProductID int64
	Name      string
	Image     string
	// Price 下单时单价, 单位为分
	Price    int64
	Quantity int64
}

type ShippingAddress struct {
	Recipient  string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Pricing 订单金额明细, 全部单位为分
type Pricing struct {
	Subtotal int64
	// Discount 优惠金额
	Discount   int64
	CouponCode string
	Shipping   int64
	Tax        int64
	// Total = Subtotal - Discount + Shipping + Tax
	Total int64
}

// PurchaseItem 买家提交的购买请求项
type PurchaseItem struct {
	ProductID int64
	Quantity  int64
}
