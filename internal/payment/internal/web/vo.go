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

// VerifyPaymentReq 支付完成后前端回传网关凭证
type VerifyPaymentReq struct {
	OrderSN          string `json:"orderSN"`
	GatewayOrderID   string `json:"gatewayOrderID"`
	GatewayPaymentID string `json:"gatewayPaymentID"`
	Signature        string `json:"signature"`
}

type VerifyPaymentResp struct {
	Payment Payment `json:"payment"`
}

// PaymentDetailReq 按订单号查询支付记录
type PaymentDetailReq struct {
	OrderSN string `json:"orderSN"`
}

type PaymentDetailResp struct {
	Payment Payment `json:"payment"`
}

type Payment struct {
	SN               string `json:"sn"`
	OrderSN          string `json:"orderSN"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	GatewayOrderID   string `json:"gatewayOrderID"`
	GatewayPaymentID string `json:"gatewayPaymentID,omitempty"`
	Status           uint8  `json:"status"`
	PaidAt           int64  `json:"paidAt,omitempty"`
}
