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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "待确认到已确认", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "待确认到已取消", from: StatusPending, to: StatusCancelled, want: true},
		{name: "待确认不能直接发货", from: StatusPending, to: StatusShipped, want: false},
		{name: "待确认不能直接送达", from: StatusPending, to: StatusDelivered, want: false},
		{name: "已确认到已发货", from: StatusConfirmed, to: StatusShipped, want: true},
		{name: "已确认到已取消", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "已确认不能倒退回待确认", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "已发货到派送中", from: StatusShipped, to: StatusOutForDelivery, want: true},
		{name: "已发货仍可取消", from: StatusShipped, to: StatusCancelled, want: true},
		{name: "已发货不能直接送达", from: StatusShipped, to: StatusDelivered, want: false},
		{name: "派送中到已送达", from: StatusOutForDelivery, to: StatusDelivered, want: true},
		{name: "派送中仍可取消", from: StatusOutForDelivery, to: StatusCancelled, want: true},
		{name: "已送达是终态", from: StatusDelivered, to: StatusCancelled, want: false},
		{name: "已取消是终态", from: StatusCancelled, to: StatusPending, want: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_AllowedNext(t *testing.T) {
	t.Parallel()
	assert.ElementsMatch(t,
		[]OrderStatus{StatusConfirmed, StatusCancelled},
		StatusPending.AllowedNext())
	assert.ElementsMatch(t,
		[]OrderStatus{StatusShipped, StatusCancelled},
		StatusConfirmed.AllowedNext())
	assert.ElementsMatch(t,
		[]OrderStatus{StatusOutForDelivery, StatusCancelled},
		StatusShipped.AllowedNext())
	assert.ElementsMatch(t,
		[]OrderStatus{StatusDelivered, StatusCancelled},
		StatusOutForDelivery.AllowedNext())
	assert.Empty(t, StatusDelivered.AllowedNext())
	assert.Empty(t, StatusCancelled.AllowedNext())
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusOutForDelivery.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestOrderStatus_Valid(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusShipped.Valid())
	assert.False(t, OrderStatus(0).Valid())
	assert.False(t, OrderStatus(7).Valid())
}
