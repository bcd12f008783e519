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

package repository

import (
	"context"

	"github.com/shophub/shophub/internal/payment/internal/domain"
	"github.com/shophub/shophub/internal/payment/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/payment_repository.mock.go PaymentRepository
type PaymentRepository interface {
	Create(ctx context.Context, pmt domain.Payment) (int64, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Payment, error)
	// MarkPaid 返回受影响行数, 0表示该支付单已处于终态
	MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID string, status domain.PaymentStatus, paidAt int64) (int64, error)
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{d: d}
}

type paymentRepository struct {
	d dao.PaymentDAO
}

func (p *paymentRepository) Create(ctx context.Context, pmt domain.Payment) (int64, error) {
	return p.d.Insert(ctx, p.toEntity(pmt))
}

func (p *paymentRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.Payment, error) {
	res, err := p.d.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(res), nil
}

func (p *paymentRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Payment, error) {
	res, err := p.d.FindByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(res), nil
}

func (p *paymentRepository) MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID string, status domain.PaymentStatus, paidAt int64) (int64, error) {
	return p.d.UpdatePaid(ctx, gatewayOrderID, gatewayPaymentID, status.ToUint8(), paidAt)
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:               pmt.Id,
		SN:               pmt.SN,
		PayerID:          pmt.PayerId,
		OrderID:          pmt.OrderId,
		OrderSN:          pmt.OrderSn,
		Amount:           pmt.Amount,
		Currency:         pmt.Currency,
		GatewayOrderID:   pmt.GatewayOrderId,
		GatewayPaymentID: pmt.GatewayPaymentId,
		Status:           domain.PaymentStatus(pmt.Status),
		PaidAt:           pmt.PaidAt,
		Ctime:            pmt.Ctime,
		Utime:            pmt.Utime,
	}
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		Id:               pmt.ID,
		SN:               pmt.SN,
		PayerId:          pmt.PayerID,
		OrderId:          pmt.OrderID,
		OrderSn:          pmt.OrderSN,
		Amount:           pmt.Amount,
		Currency:         pmt.Currency,
		GatewayOrderId:   pmt.GatewayOrderID,
		GatewayPaymentId: pmt.GatewayPaymentID,
		Status:           pmt.Status.ToUint8(),
		PaidAt:           pmt.PaidAt,
	}
}
