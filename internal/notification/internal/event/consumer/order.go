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

package consumer

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shophub/shophub/internal/notification/internal/event"
	"github.com/shophub/shophub/internal/notification/internal/service"
)

const statusPending uint8 = 1

// OrderEventConsumer 把订单事件转成买家通知。
// 通知失败只记日志, 不阻塞订单流程
type OrderEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderEventConsumer(svc service.Service, q mq.MQ) (*OrderEventConsumer, error) {
	groupID := "notification-order"
	consumer, err := q.Consumer(event.OrderEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费订单事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt event.OrderEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	if evt.Status == statusPending {
		// 刚下单, 发订单确认邮件
		if err = c.svc.SendOrderConfirmation(ctx, evt.OrderSN, evt.BuyerID); err != nil {
			c.logger.Error("发送订单确认邮件失败",
				elog.FieldErr(err),
				elog.String("order_sn", evt.OrderSN))
		}
		return nil
	}
	if err = c.svc.SendOrderStatusChanged(ctx, evt.OrderSN, evt.BuyerID, evt.Status); err != nil {
		c.logger.Error("发送订单状态通知失败",
			elog.FieldErr(err),
			elog.String("order_sn", evt.OrderSN))
	}
	return nil
}
