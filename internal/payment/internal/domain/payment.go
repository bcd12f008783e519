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

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// PaymentStatusUnpaid 已在网关创建支付单, 等待买家支付
	PaymentStatusUnpaid PaymentStatus = 1
	// PaymentStatusPaidSuccess 回调验签通过
	PaymentStatusPaidSuccess PaymentStatus = 2
	// PaymentStatusPaidFailed 验签失败或网关明确告知失败
	PaymentStatusPaidFailed PaymentStatus = 3
)

type Payment struct {
	ID int64
	// SN 支付流水号, 同时作为网关侧的 receipt
	SN      string
	PayerID int64
	OrderID int64
	OrderSN string
	// Amount 单位为分
	Amount   int64
	Currency string
	// GatewayOrderID 网关生成的支付单号, 前端拉起收银台时使用
	GatewayOrderID string
	// GatewayPaymentID 买家支付成功后网关生成的交易号
	GatewayPaymentID string
	Status           PaymentStatus
	PaidAt           int64
	Ctime            int64
	Utime            int64
}
