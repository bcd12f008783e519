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

package event

const (
	orderEventName   = "order_events"
	paymentEventName = "payment_events"
)

// OrderEvent 订单创建或状态推进时发出, 通知模块消费后给买家发邮件和短信
type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerID"`
	// Total 实付总价, 单位为分
	Total  int64 `json:"total"`
	Status uint8 `json:"status"`
}

func (OrderEvent) Topic() string {
	return orderEventName
}

// PaymentEvent 支付模块发出的支付终态事件
type PaymentEvent struct {
	OrderSN          string `json:"orderSN"`
	PaymentSN        string `json:"paymentSN"`
	GatewayPaymentID string `json:"gatewayPaymentID"`
	Status           uint8  `json:"status"`
}
