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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/shophub/shophub/internal/order/internal/domain"
	"github.com/shophub/shophub/internal/order/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/order_repository.mock.go OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdatePayment(ctx context.Context, oid, paymentID int64, paymentSN string) error
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrdersByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error)
	TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error)
	TotalOrders(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, oid int64, oldStatus, newStatus domain.OrderStatus, extra map[string]any) error
	// MarkPaidBySN 只记录支付结果, 不推进配送状态
	MarkPaidBySN(ctx context.Context, sn, gatewayPaymentID string, paidAt int64) (int64, error)
	// Stats 订单总数和已支付订单的营收总额
	Stats(ctx context.Context) (count int64, revenue int64, err error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) UpdatePayment(ctx context.Context, oid, paymentID int64, paymentSN string) error {
	return o.d.UpdatePayment(ctx, oid, paymentID, paymentSN)
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单序列号及买家ID查找订单失败: %w", err)
	}
	items, err := o.d.FindItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrdersByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error) {
	os, err := o.d.ListByBuyerID(ctx, offset, limit, buyerID)
	if err != nil {
		return nil, err
	}
	return o.attachItems(ctx, os)
}

func (o *orderRepository) TotalOrdersByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.CountByBuyerID(ctx, buyerID)
}

func (o *orderRepository) ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := o.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.attachItems(ctx, os)
}

func (o *orderRepository) TotalOrders(ctx context.Context) (int64, error) {
	return o.d.Count(ctx)
}

func (o *orderRepository) UpdateStatus(ctx context.Context, oid int64, oldStatus, newStatus domain.OrderStatus, extra map[string]any) error {
	return o.d.UpdateStatus(ctx, oid, oldStatus.ToUint8(), newStatus.ToUint8(), extra)
}

func (o *orderRepository) MarkPaidBySN(ctx context.Context, sn, gatewayPaymentID string, paidAt int64) (int64, error) {
	return o.d.MarkPaidBySN(ctx, sn, gatewayPaymentID, paidAt)
}

func (o *orderRepository) Stats(ctx context.Context) (int64, int64, error) {
	return o.d.Stats(ctx)
}

func (o *orderRepository) attachItems(ctx context.Context, os []dao.Order) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(os))
	for _, src := range os {
		items, err := o.d.FindItemsByOrderID(ctx, src.Id)
		if err != nil {
			return nil, err
		}
		res = append(res, o.toOrderDomain(src, items))
	}
	return res, nil
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:               order.ID,
		SN:               order.SN,
		BuyerId:          order.BuyerID,
		PaymentId:        order.PaymentID,
		PaymentSn:        order.PaymentSN,
		GatewayPaymentId: order.GatewayPaymentID,
		PaymentMethod:    order.PaymentMethod.ToUint8(),
		Recipient:        order.Address.Recipient,
		Phone:            order.Address.Phone,
		AddressLine1:     order.Address.Line1,
		AddressLine2:     order.Address.Line2,
		City:             order.Address.City,
		State:            order.Address.State,
		PostalCode:       order.Address.PostalCode,
		Country:          order.Address.Country,
		Subtotal:         order.Pricing.Subtotal,
		Discount:         order.Pricing.Discount,
		CouponCode:       order.Pricing.CouponCode,
		Shipping:         order.Pricing.Shipping,
		Tax:              order.Pricing.Tax,
		Total:            order.Pricing.Total,
		Status:           order.Status.ToUint8(),
		PaidAt:           order.PaidAt,
		DeliveredAt:      order.DeliveredAt,
		CancelledAt:      order.CancelledAt,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId: src.ProductID,
			Name:      src.Name,
			Image:     src.Image,
			Price:     src.Price,
			Quantity:  src.Quantity,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:               order.Id,
		SN:               order.SN,
		BuyerID:          order.BuyerId,
		PaymentID:        order.PaymentId,
		PaymentSN:        order.PaymentSn,
		GatewayPaymentID: order.GatewayPaymentId,
		PaymentMethod:    domain.PaymentMethod(order.PaymentMethod),
		Address: domain.ShippingAddress{
			Recipient:  order.Recipient,
			Phone:      order.Phone,
			Line1:      order.AddressLine1,
			Line2:      order.AddressLine2,
			City:       order.City,
			State:      order.State,
			PostalCode: order.PostalCode,
			Country:    order.Country,
		},
		Pricing: domain.Pricing{
			Subtotal:   order.Subtotal,
			Discount:   order.Discount,
			CouponCode: order.CouponCode,
			Shipping:   order.Shipping,
			Tax:        order.Tax,
			Total:      order.Total,
		},
		Status:      domain.OrderStatus(order.Status),
		PaidAt:      order.PaidAt,
		DeliveredAt: order.DeliveredAt,
		CancelledAt: order.CancelledAt,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				OrderID:   src.OrderId,
				ProductID: src.ProductId,
				Name:      src.Name,
				Image:     src.Image,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
