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

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMQConsumer struct {
	msg *mq.Message
	err error
}

func (s *stubMQConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	return s.msg, s.err
}

func (s *stubMQConsumer) ConsumeChan(ctx context.Context) (<-chan *mq.Message, error) {
	return nil, nil
}

func (s *stubMQConsumer) Close() error {
	return nil
}

type paidMarkerFunc func(ctx context.Context, sn, gatewayPaymentID string) error

func (f paidMarkerFunc) MarkPaid(ctx context.Context, sn, gatewayPaymentID string) error {
	return f(ctx, sn, gatewayPaymentID)
}

func newTestConsumer(c mq.Consumer, marker OrderPaidMarker) *PaymentConsumer {
	return &PaymentConsumer{
		svc:      marker,
		consumer: c,
		logger:   elog.DefaultLogger,
	}
}

func TestPaymentConsumer_Consume(t *testing.T) {
	t.Parallel()

	t.Run("支付事件转成标记支付调用", func(t *testing.T) {
		t.Parallel()
		payload, err := json.Marshal(PaymentEvent{
			OrderSN:          "SN-100",
			PaymentSN:        "PMT-1",
			GatewayPaymentID: "pay_P1",
		})
		require.NoError(t, err)

		var gotSN, gotPaymentID string
		c := newTestConsumer(
			&stubMQConsumer{msg: &mq.Message{Value: payload}},
			paidMarkerFunc(func(ctx context.Context, sn, gatewayPaymentID string) error {
				gotSN, gotPaymentID = sn, gatewayPaymentID
				return nil
			}))

		require.NoError(t, c.Consume(context.Background()))
		assert.Equal(t, "SN-100", gotSN)
		assert.Equal(t, "pay_P1", gotPaymentID)
	})

	t.Run("消息不是合法JSON", func(t *testing.T) {
		t.Parallel()
		c := newTestConsumer(
			&stubMQConsumer{msg: &mq.Message{Value: []byte("not-json")}},
			paidMarkerFunc(func(ctx context.Context, sn, gatewayPaymentID string) error {
				t.Fatal("不应该走到标记支付")
				return nil
			}))

		assert.Error(t, c.Consume(context.Background()))
	})

	t.Run("标记支付失败错误向上传", func(t *testing.T) {
		t.Parallel()
		payload, err := json.Marshal(PaymentEvent{OrderSN: "SN-100", GatewayPaymentID: "pay_P1"})
		require.NoError(t, err)

		wantErr := errors.New("db down")
		c := newTestConsumer(
			&stubMQConsumer{msg: &mq.Message{Value: payload}},
			paidMarkerFunc(func(ctx context.Context, sn, gatewayPaymentID string) error {
				return wantErr
			}))

		assert.ErrorIs(t, c.Consume(context.Background()), wantErr)
	})
}
