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

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/shophub/shophub/internal/email"
	"github.com/shophub/shophub/internal/order"
	smsclient "github.com/shophub/shophub/internal/sms/client"
	"github.com/shophub/shophub/internal/user"
)

// 和订单模块的状态值保持一致
const (
	statusConfirmed      uint8 = 2
	statusShipped        uint8 = 3
	statusOutForDelivery uint8 = 4
	statusDelivered      uint8 = 5
	statusCancelled      uint8 = 6
)

var statusTexts = map[uint8]string{
	statusConfirmed:      "已确认",
	statusShipped:        "已发货",
	statusOutForDelivery: "正在派送中",
	statusDelivered:      "已送达",
	statusCancelled:      "已取消",
}

// SMSConfig 短信签名和模板
type SMSConfig struct {
	SignName string `yaml:"signName"`
	// StatusTemplateID 订单状态变更通知的模板
	StatusTemplateID string `yaml:"statusTemplateID"`
}

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=../../mocks/notification.mock.go Service
type Service interface {
	// SendWelcome 注册成功后的欢迎邮件
	SendWelcome(ctx context.Context, to string) error
	// SendOrderConfirmation 下单成功后的确认邮件
	SendOrderConfirmation(ctx context.Context, orderSN string, buyerID int64) error
	// SendOrderStatusChanged 状态变更邮件, 发货之后的状态同时发短信
	SendOrderStatusChanged(ctx context.Context, orderSN string, buyerID int64, status uint8) error
}

func NewService(emailSvc email.Service,
	smsClient smsclient.Client,
	userSvc user.UserService,
	orderSvc order.Service,
	from string,
	smsCfg SMSConfig) Service {
	return &service{
		emailSvc:  emailSvc,
		smsClient: smsClient,
		userSvc:   userSvc,
		orderSvc:  orderSvc,
		from:      from,
		smsCfg:    smsCfg,
		logger:    elog.DefaultLogger,
	}
}

type service struct {
	emailSvc  email.Service
	smsClient smsclient.Client
	userSvc   user.UserService
	orderSvc  order.Service
	// from 发信人昵称
	from   string
	smsCfg SMSConfig
	logger *elog.Component
}

func (s *service) SendWelcome(ctx context.Context, to string) error {
	var body bytes.Buffer
	if err := welcomeTmpl.Execute(&body, nil); err != nil {
		return fmt.Errorf("渲染欢迎邮件失败: %w", err)
	}
	return s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.from,
		To:      to,
		Subject: "欢迎加入 ShopHub",
		Body:    body.Bytes(),
	})
}

func (s *service) SendOrderConfirmation(ctx context.Context, orderSN string, buyerID int64) error {
	o, u, err := s.find(ctx, orderSN, buyerID)
	if err != nil {
		return err
	}
	var body bytes.Buffer
	err = orderConfirmationTmpl.Execute(&body, map[string]any{
		"Nickname": u.Nickname,
		"OrderSN":  o.SN,
		"Items":    o.Items,
		"Subtotal": o.Pricing.Subtotal,
		"Discount": o.Pricing.Discount,
		"Shipping": o.Pricing.Shipping,
		"Tax":      o.Pricing.Tax,
		"Total":    o.Pricing.Total,
	})
	if err != nil {
		return fmt.Errorf("渲染订单确认邮件失败: %w", err)
	}
	return s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.from,
		To:      u.Email,
		Subject: fmt.Sprintf("订单 %s 已确认", o.SN),
		Body:    body.Bytes(),
	})
}

func (s *service) SendOrderStatusChanged(ctx context.Context, orderSN string, buyerID int64, status uint8) error {
	statusText, ok := statusTexts[status]
	if !ok {
		// 待确认之类的状态不通知
		return nil
	}
	o, u, err := s.find(ctx, orderSN, buyerID)
	if err != nil {
		return err
	}
	var body bytes.Buffer
	err = orderStatusTmpl.Execute(&body, map[string]any{
		"Nickname":   u.Nickname,
		"OrderSN":    o.SN,
		"StatusText": statusText,
		"Total":      o.Pricing.Total,
	})
	if err != nil {
		return fmt.Errorf("渲染状态变更邮件失败: %w", err)
	}
	if err = s.emailSvc.SendMail(ctx, email.Mail{
		From:    s.from,
		To:      u.Email,
		Subject: fmt.Sprintf("订单 %s %s", o.SN, statusText),
		Body:    body.Bytes(),
	}); err != nil {
		return err
	}

	// 发货之后的物流状态, 有手机号的再发一条短信
	if status >= statusShipped && status <= statusDelivered && u.Phone != "" {
		_, err = s.smsClient.Send(smsclient.SendReq{
			PhoneNumbers: []string{u.Phone},
			SignName:     s.smsCfg.SignName,
			TemplateID:   s.smsCfg.StatusTemplateID,
			TemplateParam: map[string]string{
				"order_sn": o.SN,
				"status":   statusText,
			},
		})
		if err != nil {
			// 短信失败不影响邮件结果
			s.logger.Warn("发送订单状态短信失败",
				elog.FieldErr(err),
				elog.String("order_sn", o.SN))
		}
	}
	return nil
}

func (s *service) find(ctx context.Context, orderSN string, buyerID int64) (order.Order, user.User, error) {
	o, err := s.orderSvc.FindOrderBySN(ctx, orderSN)
	if err != nil {
		return order.Order{}, user.User{}, fmt.Errorf("查找订单失败: %w", err)
	}
	u, err := s.userSvc.Profile(ctx, buyerID)
	if err != nil {
		return order.Order{}, user.User{}, fmt.Errorf("查找买家失败: %w", err)
	}
	return o, u, nil
}
