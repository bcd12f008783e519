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
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// OrderPaidMarker 把支付结果落到订单上, 由订单服务实现。
// 只依赖这个窄接口, 避免 event 和 service 互相引用
type OrderPaidMarker interface {
	MarkPaid(ctx context.Context, sn, gatewayPaymentID string) error
}

// PaymentConsumer 消费支付模块的终态事件, 给订单记上支付结果
type PaymentConsumer struct {
	svc      OrderPaidMarker
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentConsumer(svc OrderPaidMarker, q mq.MQ) (*PaymentConsumer, error) {
	const groupID = "order"
	consumer, err := q.Consumer(paymentEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费支付事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt PaymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.MarkPaid(ctx, evt.OrderSN, evt.GatewayPaymentID)
	if err != nil {
		c.logger.Error("标记订单已支付失败",
			elog.FieldErr(err),
			elog.String("order_sn", evt.OrderSN))
	}
	return err
}
