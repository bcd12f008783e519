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
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrConcurrentStatusChange CAS更新时订单状态已被其他请求改掉
	ErrConcurrentStatusChange = errors.New("订单状态已变更")
)

type OrderDAO interface {
	// CreateOrder 同一事务内落订单主记录和订单项
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error)
	UpdatePayment(ctx context.Context, oid, paymentID int64, paymentSN string) error
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	// ListByBuyerID 按创建时间倒序
	ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	// UpdateStatus 带旧状态做 CAS, 并发推进时只有一个赢家
	UpdateStatus(ctx context.Context, oid int64, oldStatus, newStatus uint8, extra map[string]any) error
	// MarkPaidBySN 只写支付字段不动配送状态, 支付和配送是两条独立的轴。
	// 幂等: 只有未记录过网关交易号的订单才会被更新
	MarkPaidBySN(ctx context.Context, sn, gatewayPaymentID string, paidAt int64) (int64, error)
	// Stats 订单总数和已支付订单的营收总额
	Stats(ctx context.Context) (count int64, revenue int64, err error)
}

type OrderGORMDAO struct {
	db *gorm.DB
}

func NewOrderGORMDAO(db *gorm.DB) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return fmt.Errorf("创建订单主记录失败: %w", err)
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("创建订单项失败: %w", err)
		}
		return nil
	})
	return o.Id, err
}

func (d *OrderGORMDAO) UpdatePayment(ctx context.Context, oid, paymentID int64, paymentSN string) error {
	return d.db.WithContext(ctx).Model(&Order{}).Where("id = ?", oid).
		Updates(map[string]any{
			"payment_id": paymentID,
			"payment_sn": paymentSN,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", oid).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerID).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) UpdateStatus(ctx context.Context, oid int64, oldStatus, newStatus uint8, extra map[string]any) error {
	updates := map[string]any{
		"status": newStatus,
		"utime":  time.Now().UnixMilli(),
	}
	for k, v := range extra {
		updates[k] = v
	}
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", oid, oldStatus).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConcurrentStatusChange
	}
	return nil
}

func (d *OrderGORMDAO) MarkPaidBySN(ctx context.Context, sn, gatewayPaymentID string, paidAt int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND gateway_payment_id = ''", sn).
		Updates(map[string]any{
			"gateway_payment_id": gatewayPaymentID,
			"paid_at":            paidAt,
			"utime":              time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *OrderGORMDAO) Stats(ctx context.Context) (int64, int64, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&Order{}).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	var revenue struct {
		Total int64
	}
	err := d.db.WithContext(ctx).Model(&Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("paid_at > 0").
		Scan(&revenue).Error
	if err != nil {
		return 0, 0, err
	}
	return count, revenue.Total, nil
}

type Order struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN               string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId          int64  `gorm:"not null;index:idx_buyer_id;comment:买家ID"`
	PaymentId        int64  `gorm:"comment:支付自增ID, 下单成功后回填"`
	PaymentSn        string `gorm:"type:varchar(255);comment:支付序列号"`
	GatewayPaymentId string `gorm:"type:varchar(255);not null;default:'';comment:网关交易号, 支付成功后回填"`
	PaymentMethod    uint8  `gorm:"type:tinyint unsigned;not null;comment:支付方式 1=网关在线支付 2=货到付款"`
	Recipient        string `gorm:"type:varchar(255);not null;comment:收件人"`
	Phone            string `gorm:"type:varchar(32);not null;comment:收件人电话"`
	AddressLine1     string `gorm:"type:varchar(255);not null;comment:地址第一行"`
	AddressLine2     string `gorm:"type:varchar(255);comment:地址第二行"`
	City             string `gorm:"type:varchar(128);not null;comment:城市"`
	State            string `gorm:"type:varchar(128);comment:省/邦"`
	PostalCode       string `gorm:"type:varchar(32);not null;comment:邮编"`
	Country          string `gorm:"type:varchar(128);not null;comment:国家"`
	Subtotal         int64  `gorm:"not null;comment:商品小计;单位为分, 999表示9.99元"`
	Discount         int64  `gorm:"not null;comment:优惠金额;单位为分"`
	CouponCode       string `gorm:"type:varchar(64);comment:使用的优惠码"`
	Shipping         int64  `gorm:"not null;comment:运费;单位为分"`
	Tax              int64  `gorm:"not null;comment:税费;单位为分"`
	Total            int64  `gorm:"not null;comment:实付总价;单位为分"`
	Status           uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:订单状态 1=待确认 2=已确认 3=已发货 4=派送中 5=已送达 6=已取消"`
	PaidAt           int64  `gorm:"comment:支付时间"`
	DeliveredAt      int64  `gorm:"comment:送达时间"`
	CancelledAt      int64  `gorm:"comment:取消时间"`
	Ctime            int64
	Utime            int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ProductId int64  `gorm:"not null;index:idx_product_id;comment:商品自增ID"`
	Name      string `gorm:"type:varchar(255);not null;comment:下单时商品名称快照"`
	Image     string `gorm:"type:varchar(512);comment:下单时商品主图快照"`
	Price     int64  `gorm:"not null;comment:下单时单价;单位为分, 999表示9.99元"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	Ctime     int64
	Utime     int64
}
