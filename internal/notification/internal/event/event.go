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
	OrderEventName        = "order_events"
	RegistrationEventName = "user_registration_events"
)

// OrderEvent 和订单模块发出的事件保持一致
type OrderEvent struct {
	OrderSN string `json:"orderSN"`
	BuyerID int64  `json:"buyerID"`
	// Total 单位为分
	Total  int64 `json:"total"`
	Status uint8 `json:"status"`
}

type RegistrationEvent struct {
	Uid   int64  `json:"uid"`
	Email string `json:"email"`
}
