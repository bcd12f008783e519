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

// CreateOrderReq 下单请求, RequestID用于幂等去重
type CreateOrderReq struct {
	RequestID     string          `json:"requestID"`
	Items         []Item          `json:"items"`
	Address       ShippingAddress `json:"address"`
	PaymentMethod uint8           `json:"paymentMethod"`
	CouponCode    string          `json:"couponCode,omitempty"`
}

type Item struct {
	ProductID int64 `json:"productID"`
	Quantity  int64 `json:"quantity"`
}

type CreateOrderResp struct {
	OrderSN string `json:"orderSN"`
	// GatewayOrderID 在线支付时返回, 前端用它拉起收银台
	GatewayOrderID string `json:"gatewayOrderID,omitempty"`
	Total          int64  `json:"total"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type RetrieveOrderDetailReq struct {
	OrderSN string `json:"orderSN"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type CancelOrderReq struct {
	OrderSN string `json:"orderSN"`
}

// UpdateOrderStatusReq 后台推进订单状态
type UpdateOrderStatusReq struct {
	OrderSN string `json:"orderSN"`
	Status  uint8  `json:"status"`
}

type UpdateOrderStatusResp struct {
	Order Order `json:"order"`
	// AllowedNext 推进后的合法后继状态, 终态为空
	AllowedNext []uint8 `json:"allowedNext"`
}

type Order struct {
	SN               string          `json:"sn"`
	BuyerID          int64           `json:"buyerID,omitempty"`
	PaymentSN        string          `json:"paymentSN,omitempty"`
	GatewayPaymentID string          `json:"gatewayPaymentID,omitempty"`
	PaymentMethod    uint8           `json:"paymentMethod"`
	Items            []OrderItem     `json:"items"`
	Address          ShippingAddress `json:"address"`
	Subtotal         int64           `json:"subtotal"`
	Discount         int64           `json:"discount,omitempty"`
	CouponCode       string          `json:"couponCode,omitempty"`
	Shipping         int64           `json:"shipping"`
	Tax              int64           `json:"tax"`
	Total            int64           `json:"total"`
	Status           uint8           `json:"status"`
	PaidAt           int64           `json:"paidAt,omitempty"`
	DeliveredAt      int64           `json:"deliveredAt,omitempty"`
	CancelledAt      int64           `json:"cancelledAt,omitempty"`
	Ctime            int64           `json:"ctime"`
}

type OrderItem struct {
	ProductID int64  `json:"productID"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type ShippingAddress struct {
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}
