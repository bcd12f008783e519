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
)

const registrationEventName = "user_registration_events"

type RegistrationEvent struct {
	Uid   int64  `json:"uid"`
	Email string `json:"email"`
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go RegistrationEventProducer
type RegistrationEventProducer interface {
	Produce(ctx context.Context, evt RegistrationEvent) error
}

type registrationEventProducer struct {
	producer mq.Producer
}

func NewRegistrationEventProducer(q mq.MQ) (RegistrationEventProducer, error) {
	p, err := q.Producer(registrationEventName)
	if err != nil {
		return nil, err
	}
	return &registrationEventProducer{producer: p}, nil
}

func (p *registrationEventProducer) Produce(ctx context.Context, evt RegistrationEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送注册成功消息失败: %w", err)
	}
	return nil
}
