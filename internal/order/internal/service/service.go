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
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/shophub/shophub/internal/coupon"
	"github.com/shophub/shophub/internal/order/internal/domain"
	"github.com/shophub/shophub/internal/order/internal/event"
	"github.com/shophub/shophub/internal/order/internal/repository"
	"github.com/shophub/shophub/internal/pkg/sequencenumber"
	"github.com/shophub/shophub/internal/product"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	// ErrEmptyOrder 订单里一件商品都没有
	ErrEmptyOrder = errors.New("订单不能为空")
	// ErrInvalidQuantity 购买数量非法
	ErrInvalidQuantity = errors.New("购买数量非法")
	// ErrProductUnavailable 商品不存在或已下架
	ErrProductUnavailable = errors.New("商品不存在或已下架")
	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = product.ErrInsufficientStock
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("订单不存在")
	// ErrInvalidStatusTransition 不允许的状态推进
	ErrInvalidStatusTransition = errors.New("订单状态不允许此变更")
)

// PricingConfig 金额计算规则, 全部单位为分
type PricingConfig struct {
	// ShippingFee 固定运费
	ShippingFee int64 `yaml:"shippingFee"`
	// FreeShippingThreshold 商品小计达到该值免运费
	FreeShippingThreshold int64 `yaml:"freeShippingThreshold"`
	// TaxRateBasisPoints 税率, 单位为万分之一, 1000表示10%
	TaxRateBasisPoints int64 `yaml:"taxRateBasisPoints"`
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// CreateOrder 下单主流程: 快照商品、试算优惠、计算运费税费、
	// 预占库存、落库。库存预占是全有或全无的, 任何一件不足都会回滚
	CreateOrder(ctx context.Context, order domain.Order, items []domain.PurchaseItem) (domain.Order, error)
	// AttachPayment 回填支付模块生成的支付ID和流水号
	AttachPayment(ctx context.Context, oid, paymentID int64, paymentSN string) error
	FindOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error)
	ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	// UpdateStatus 按状态机推进订单状态, 返回推进后的订单
	UpdateStatus(ctx context.Context, sn string, next domain.OrderStatus) (domain.Order, error)
	// CancelOrder 买家取消自己的订单, 送达之前都允许, 取消后归还库存
	CancelOrder(ctx context.Context, buyerID int64, sn string) error
	// MarkPaid 记录支付成功, 不推进配送状态, 按网关交易号幂等
	MarkPaid(ctx context.Context, sn, gatewayPaymentID string) error
	// Stats 订单总数和已支付订单的营收总额, 给后台看板用
	Stats(ctx context.Context) (count int64, revenue int64, err error)
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	couponSvc coupon.Service,
	snGenerator *sequencenumber.Generator,
	producer event.OrderEventProducer,
	cfg PricingConfig) Service {
	return &service{
		repo:        repo,
		productSvc:  productSvc,
		couponSvc:   couponSvc,
		snGenerator: snGenerator,
		producer:    producer,
		cfg:         cfg,
		l:           elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	productSvc  product.Service
	couponSvc   coupon.Service
	snGenerator *sequencenumber.Generator
	producer    event.OrderEventProducer
	cfg         PricingConfig
	l           *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order, items []domain.PurchaseItem) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	orderItems, subtotal, err := s.snapshotItems(ctx, items)
	if err != nil {
		return domain.Order{}, err
	}

	pricing, err := s.calculatePricing(ctx, subtotal, order.Pricing.CouponCode)
	if err != nil {
		return domain.Order{}, err
	}

	sn, err := s.snGenerator.Generate(order.BuyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}

	reserved, err := s.reserveStock(ctx, orderItems)
	if err != nil {
		return domain.Order{}, err
	}

	order.SN = sn
	order.Items = orderItems
	order.Pricing = pricing
	order.Status = domain.StatusPending
	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		// 落库失败, 归还已预占的库存
		s.releaseStock(ctx, reserved)
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}

	if pricing.CouponCode != "" {
		// 订单已经落库, 递增失败只告警, 靠对账修正
		if er := s.couponSvc.IncrementUsage(ctx, pricing.CouponCode); er != nil {
			s.l.Warn("递增优惠券使用次数失败",
				elog.FieldErr(er),
				elog.String("coupon_code", pricing.CouponCode),
				elog.String("order_sn", created.SN))
		}
	}

	s.produceEvent(ctx, created)
	return created, nil
}

func (s *service) snapshotItems(ctx context.Context, items []domain.PurchaseItem) ([]domain.OrderItem, int64, error) {
	orderItems := make([]domain.OrderItem, 0, len(items))
	var subtotal int64
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, 0, ErrInvalidQuantity
		}
		p, err := s.productSvc.FindProduct(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, fmt.Errorf("%w: id %d", ErrProductUnavailable, it.ProductID)
			}
			return nil, 0, fmt.Errorf("查找商品失败: %w", err)
		}
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})
		subtotal += p.Price * it.Quantity
	}
	return orderItems, subtotal, nil
}

func (s *service) calculatePricing(ctx context.Context, subtotal int64, couponCode string) (domain.Pricing, error) {
	pricing := domain.Pricing{Subtotal: subtotal}
	if couponCode != "" {
		d, err := s.couponSvc.Evaluate(ctx, couponCode, subtotal)
		if err != nil {
			return domain.Pricing{}, err
		}
		pricing.Discount = d.Amount
		pricing.CouponCode = d.Coupon.Code
	}
	// 税和包邮门槛都按折扣前的小计算, 优惠只抵扣总价
	if subtotal < s.cfg.FreeShippingThreshold {
		pricing.Shipping = s.cfg.ShippingFee
	}
	pricing.Tax = subtotal * s.cfg.TaxRateBasisPoints / 10000
	pricing.Total = subtotal - pricing.Discount + pricing.Shipping + pricing.Tax
	if pricing.Total < 0 {
		pricing.Total = 0
	}
	return pricing, nil
}

// reserveStock 逐件预占库存, 任何一件失败都归还此前已预占的部分
func (s *service) reserveStock(ctx context.Context, items []domain.OrderItem) ([]domain.OrderItem, error) {
	reserved := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		if err := s.productSvc.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			s.releaseStock(ctx, reserved)
			if errors.Is(err, product.ErrInsufficientStock) {
				return nil, fmt.Errorf("%w: 商品 %s", ErrInsufficientStock, it.Name)
			}
			return nil, fmt.Errorf("预占库存失败: %w", err)
		}
		reserved = append(reserved, it)
	}
	return reserved, nil
}

func (s *service) releaseStock(ctx context.Context, items []domain.OrderItem) {
	for _, it := range items {
		if err := s.productSvc.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
			// 归还失败会造成库存少卖, 记下来人工修
			s.l.Error("归还库存失败",
				elog.FieldErr(err),
				elog.Int64("product_id", it.ProductID),
				elog.Int64("quantity", it.Quantity))
		}
	}
}

func (s *service) AttachPayment(ctx context.Context, oid, paymentID int64, paymentSN string) error {
	return s.repo.UpdatePayment(ctx, oid, paymentID, paymentSN)
}

func (s *service) FindOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByBuyerID(ctx, offset, limit, buyerID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrdersByBuyerID(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, sn string, next domain.OrderStatus) (domain.Order, error) {
	order, err := s.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	if err = s.transition(ctx, order, next); err != nil {
		return domain.Order{}, err
	}
	order.Status = next
	s.produceEvent(ctx, order)
	return order, nil
}

// transition 校验并执行一次状态推进, 带副作用:
// 送达记录送达时间, 取消记录取消时间并归还库存
func (s *service) transition(ctx context.Context, order domain.Order, next domain.OrderStatus) error {
	if !next.Valid() || !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidStatusTransition, order.Status, next)
	}
	now := time.Now().UnixMilli()
	extra := map[string]any{}
	switch next {
	case domain.StatusDelivered:
		extra["delivered_at"] = now
	case domain.StatusCancelled:
		extra["cancelled_at"] = now
	}
	err := s.repo.UpdateStatus(ctx, order.ID, order.Status, next, extra)
	if err != nil {
		// CAS失败说明状态已被并发改掉, 不重试, 让调用方重新查询后决策
		return fmt.Errorf("%w: %v", ErrInvalidStatusTransition, err)
	}
	if next == domain.StatusCancelled {
		s.releaseStock(ctx, order.Items)
	}
	return nil
}

func (s *service) CancelOrder(ctx context.Context, buyerID int64, sn string) error {
	order, err := s.FindOrder(ctx, sn, buyerID)
	if err != nil {
		return err
	}
	if err = s.transition(ctx, order, domain.StatusCancelled); err != nil {
		return err
	}
	order.Status = domain.StatusCancelled
	s.produceEvent(ctx, order)
	return nil
}

// MarkPaid 只记录支付结果, 配送状态由商家通过 UpdateStatus 单独推进,
// 支付成功的订单在商家确认前仍然是待确认
func (s *service) MarkPaid(ctx context.Context, sn, gatewayPaymentID string) error {
	if _, err := s.FindOrderBySN(ctx, sn); err != nil {
		return err
	}
	affected, err := s.repo.MarkPaidBySN(ctx, sn, gatewayPaymentID, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("标记订单已支付失败: %w", err)
	}
	if affected == 0 {
		// 重复的支付事件, 幂等跳过
		s.l.Info("订单已记录过支付, 忽略重复事件", elog.String("order_sn", sn))
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (int64, int64, error) {
	return s.repo.Stats(ctx)
}

// produceEvent 发事件失败不影响主流程, 只记日志
func (s *service) produceEvent(ctx context.Context, order domain.Order) {
	evt := event.OrderEvent{
		OrderSN: order.SN,
		BuyerID: order.BuyerID,
		Total:   order.Pricing.Total,
		Status:  order.Status.ToUint8(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.l.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("order_sn", order.SN))
	}
}
