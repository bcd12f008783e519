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

// PaymentEvent 只携带订单号和终态, 订单模块消费后推进订单状态,
// 需要支付详情的消费方自行回查
type PaymentEvent struct {
	OrderSN string `json:"orderSN"`
	// PaymentSN 支付流水号
	PaymentSN string `json:"paymentSN"`
	// GatewayPaymentID 网关交易号, 冗余给订单做支付凭证
	GatewayPaymentID string `json:"gatewayPaymentID"`
	Status           uint8  `json:"status"`
}

func (PaymentEvent) Topic() string {
	return "payment_events"
}
