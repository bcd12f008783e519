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
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/shophub/shophub/internal/payment/internal/domain"
	"github.com/shophub/shophub/internal/payment/internal/event"
	"github.com/shophub/shophub/internal/payment/internal/repository"
	"github.com/shophub/shophub/internal/payment/internal/service/razorpay"
	"github.com/shophub/shophub/internal/pkg/sequencenumber"
	"github.com/shophub/shophub/internal/pkg/snowflake"
	"gorm.io/gorm"
)

var (
	// ErrPaymentNotFound 支付记录不存在
	ErrPaymentNotFound = errors.New("支付记录不存在")
	// ErrSignatureMismatch 回调验签失败
	ErrSignatureMismatch = razorpay.ErrSignatureMismatch
	// ErrGatewayOrderMismatch 回调里的网关支付单号与本地记录不符
	ErrGatewayOrderMismatch = errors.New("网关支付单号不匹配")
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// CreatePayment 为订单在网关侧创建支付单并落库,
	// 返回的 Payment 已填充 GatewayOrderID
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	// VerifyPayment 校验支付回调签名并把支付单推进到终态。
	// 验签通过后幂等生效: 重复回调返回已有记录, 不会重复发事件
	VerifyPayment(ctx context.Context, orderSN, gatewayOrderID, gatewayPaymentID, signature string) (domain.Payment, error)
	FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
}

func NewService(gateway *razorpay.GatewayService,
	repo repository.PaymentRepository,
	snGenerator *sequencenumber.Generator,
	receiptGenerator *snowflake.Generator,
	producer event.PaymentEventProducer) Service {
	return &service{
		gateway:          gateway,
		repo:             repo,
		snGenerator:      snGenerator,
		receiptGenerator: receiptGenerator,
		producer:         producer,
		l:                elog.DefaultLogger,
	}
}

type service struct {
	gateway          *razorpay.GatewayService
	repo             repository.PaymentRepository
	snGenerator      *sequencenumber.Generator
	receiptGenerator *snowflake.Generator
	producer         event.PaymentEventProducer
	l                *elog.Component
}

func (s *service) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	sn, err := s.snGenerator.Generate(pmt.PayerID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("生成支付流水号失败: %w", err)
	}
	// receipt 用雪花ID, 网关要求同一商户下唯一
	receipt := strconv.FormatInt(s.receiptGenerator.Generate(), 10)
	gatewayOrderID, err := s.gateway.CreateOrder(ctx, pmt.Amount, pmt.Currency, receipt)
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.SN = sn
	pmt.GatewayOrderID = gatewayOrderID
	pmt.Status = domain.PaymentStatusUnpaid
	id, err := s.repo.Create(ctx, pmt)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("创建支付记录失败: %w", err)
	}
	pmt.ID = id
	return pmt, nil
}

func (s *service) VerifyPayment(ctx context.Context, orderSN, gatewayOrderID, gatewayPaymentID, signature string) (domain.Payment, error) {
	if err := s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, signature); err != nil {
		return domain.Payment{}, err
	}
	pmt, err := s.repo.FindByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Payment{}, ErrPaymentNotFound
		}
		return domain.Payment{}, err
	}
	if pmt.OrderSN != orderSN {
		return domain.Payment{}, ErrGatewayOrderMismatch
	}

	paidAt := time.Now().UnixMilli()
	affected, err := s.repo.MarkPaid(ctx, gatewayOrderID, gatewayPaymentID,
		domain.PaymentStatusPaidSuccess, paidAt)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("更新支付状态失败: %w", err)
	}
	if affected == 0 {
		// 重复回调, 返回已有终态记录
		return pmt, nil
	}

	pmt.GatewayPaymentID = gatewayPaymentID
	pmt.Status = domain.PaymentStatusPaidSuccess
	pmt.PaidAt = paidAt

	evt := event.PaymentEvent{
		OrderSN:          pmt.OrderSN,
		PaymentSN:        pmt.SN,
		GatewayPaymentID: gatewayPaymentID,
		Status:           pmt.Status.ToUint8(),
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		// 发送失败只记录日志, 订单状态依赖对账兜底
		s.l.Error("发送支付成功事件失败",
			elog.FieldErr(er),
			elog.String("order_sn", pmt.OrderSN),
			elog.String("payment_sn", pmt.SN))
	}
	return pmt, nil
}

func (s *service) FindPaymentByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	pmt, err := s.repo.FindByOrderSN(ctx, orderSN)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Payment{}, ErrPaymentNotFound
		}
		return domain.Payment{}, err
	}
	return pmt, nil
}
