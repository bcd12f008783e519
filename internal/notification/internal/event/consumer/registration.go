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

// RegistrationEventConsumer 注册成功后发欢迎邮件
type RegistrationEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRegistrationEventConsumer(svc service.Service, q mq.MQ) (*RegistrationEventConsumer, error) {
	groupID := "notification-registration"
	consumer, err := q.Consumer(event.RegistrationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &RegistrationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RegistrationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费注册事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RegistrationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt event.RegistrationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	if err = c.svc.SendWelcome(ctx, evt.Email); err != nil {
		c.logger.Error("发送欢迎邮件失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid))
	}
	return nil
}
