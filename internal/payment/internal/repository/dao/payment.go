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

package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type PaymentDAO interface {
	Insert(ctx context.Context, pmt Payment) (int64, error)
	FindByOrderSN(ctx context.Context, orderSN string) (Payment, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Payment, error)
	// UpdatePaid 把未支付的记录标记为已支付并写入网关交易号,
	// 已经是终态的记录不会被重复更新
	UpdatePaid(ctx context.Context, gatewayOrderID, gatewayPaymentID string, status uint8, paidAt int64) (int64, error)
}

type PaymentGORMDAO struct {
	db *gorm.DB
}

func NewPaymentGORMDAO(db *gorm.DB) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) Insert(ctx context.Context, pmt Payment) (int64, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := g.db.WithContext(ctx).Create(&pmt).Error
	return pmt.Id, err
}

func (g *PaymentGORMDAO) FindByOrderSN(ctx context.Context, orderSN string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("order_sn = ?", orderSN).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("gateway_order_id = ?", gatewayOrderID).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) UpdatePaid(ctx context.Context, gatewayOrderID, gatewayPaymentID string, status uint8, paidAt int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("gateway_order_id = ? AND status = ?", gatewayOrderID, statusUnpaid).
		Updates(map[string]any{
			"gateway_payment_id": gatewayPaymentID,
			"status":             status,
			"paid_at":            paidAt,
			"utime":              time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

// 与 domain.PaymentStatusUnpaid 保持一致
const statusUnpaid = 1

type Payment struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	SN               string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付流水号"`
	PayerId          int64  `gorm:"index:idx_payer_id;comment:支付者ID"`
	OrderId          int64  `gorm:"uniqueIndex:uniq_order_id;comment:订单自增ID"`
	OrderSn          string `gorm:"type:varchar(255);uniqueIndex:uniq_order_sn;comment:订单序列号"`
	Amount           int64  `gorm:"not null;comment:支付金额, 单位为分"`
	Currency         string `gorm:"type:varchar(8);not null;comment:币种"`
	GatewayOrderId   string `gorm:"type:varchar(255);uniqueIndex:uniq_gateway_order_id;comment:网关支付单号"`
	GatewayPaymentId string `gorm:"type:varchar(255);comment:网关交易号"`
	Status           uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=未支付 2=支付成功 3=支付失败"`
	PaidAt           int64  `gorm:"comment:支付时间"`
	Ctime            int64
	Utime            int64
}
