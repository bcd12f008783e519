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
	"testing"

	"github.com/shophub/shophub/internal/coupon"
	couponmocks "github.com/shophub/shophub/internal/coupon/mocks"
	"github.com/shophub/shophub/internal/order/internal/domain"
	evtmocks "github.com/shophub/shophub/internal/order/internal/event/mocks"
	"github.com/shophub/shophub/internal/order/internal/repository/dao"
	repomocks "github.com/shophub/shophub/internal/order/internal/repository/mocks"
	"github.com/shophub/shophub/internal/pkg/sequencenumber"
	"github.com/shophub/shophub/internal/product"
	productmocks "github.com/shophub/shophub/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var testPricing = PricingConfig{
	ShippingFee:           500,
	FreeShippingThreshold: 50000,
	TaxRateBasisPoints:    1000,
}

type testDeps struct {
	repo       *repomocks.MockOrderRepository
	productSvc *productmocks.MockService
	couponSvc  *couponmocks.MockService
	producer   *evtmocks.MockOrderEventProducer
}

func newTestService(ctrl *gomock.Controller) (Service, testDeps) {
	deps := testDeps{
		repo:       repomocks.NewMockOrderRepository(ctrl),
		productSvc: productmocks.NewMockService(ctrl),
		couponSvc:  couponmocks.NewMockService(ctrl),
		producer:   evtmocks.NewMockOrderEventProducer(ctrl),
	}
	svc := NewService(deps.repo, deps.productSvc, deps.couponSvc,
		sequencenumber.NewGenerator(), deps.producer, testPricing)
	return svc, deps
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()
	phone := product.Product{ID: 1, Name: "手机", Image: "phone.png", Price: 10000, Stock: 10, Status: product.StatusOnShelf}
	earbuds := product.Product{ID: 5, Name: "耳机", Image: "earbuds.png", Price: 5900, Stock: 3, Status: product.StatusOnShelf}

	t.Run("无优惠码下单成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(1)).Return(phone, nil)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(5)).Return(earbuds, nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(1), int64(2)).Return(nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(5), int64(1)).Return(nil)
		deps.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
				assert.Len(t, o.SN, 32)
				assert.Equal(t, domain.StatusPending, o.Status)
				assert.Equal(t, int64(25900), o.Pricing.Subtotal)
				assert.Equal(t, int64(0), o.Pricing.Discount)
				assert.Equal(t, int64(500), o.Pricing.Shipping)
				assert.Equal(t, int64(2590), o.Pricing.Tax)
				assert.Equal(t, int64(28990), o.Pricing.Total)
				// 快照下单时的商品信息
				assert.Equal(t, "手机", o.Items[0].Name)
				assert.Equal(t, int64(10000), o.Items[0].Price)
				o.ID = 100
				return o, nil
			})
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		order, err := svc.CreateOrder(context.Background(),
			domain.Order{BuyerID: 2024, PaymentMethod: domain.PaymentMethodGateway},
			[]domain.PurchaseItem{{ProductID: 1, Quantity: 2}, {ProductID: 5, Quantity: 1}})
		require.NoError(t, err)
		assert.Equal(t, int64(100), order.ID)
	})

	t.Run("使用优惠码", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(1)).Return(phone, nil)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(5)).Return(earbuds, nil)
		deps.couponSvc.EXPECT().Evaluate(gomock.Any(), "SAVE20", int64(25900)).
			Return(coupon.Discount{Amount: 2000, Coupon: coupon.Coupon{Code: "SAVE20"}}, nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(1), int64(2)).Return(nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(5), int64(1)).Return(nil)
		deps.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
				assert.Equal(t, int64(2000), o.Pricing.Discount)
				assert.Equal(t, "SAVE20", o.Pricing.CouponCode)
				assert.Equal(t, int64(500), o.Pricing.Shipping)
				// 税按折扣前的小计算
				assert.Equal(t, int64(2590), o.Pricing.Tax)
				assert.Equal(t, int64(26990), o.Pricing.Total)
				return o, nil
			})
		deps.couponSvc.EXPECT().IncrementUsage(gomock.Any(), "SAVE20").Return(nil)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.CreateOrder(context.Background(),
			domain.Order{BuyerID: 2024, Pricing: domain.Pricing{CouponCode: "SAVE20"}},
			[]domain.PurchaseItem{{ProductID: 1, Quantity: 2}, {ProductID: 5, Quantity: 1}})
		require.NoError(t, err)
	})

	t.Run("小计达到门槛免运费", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		laptop := product.Product{ID: 9, Name: "笔记本", Price: 60000, Stock: 5, Status: product.StatusOnShelf}
		svc, deps := newTestService(ctrl)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(9)).Return(laptop, nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(9), int64(1)).Return(nil)
		deps.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
				assert.Equal(t, int64(0), o.Pricing.Shipping)
				assert.Equal(t, int64(6000), o.Pricing.Tax)
				assert.Equal(t, int64(66000), o.Pricing.Total)
				return o, nil
			})
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.CreateOrder(context.Background(),
			domain.Order{BuyerID: 2024},
			[]domain.PurchaseItem{{ProductID: 9, Quantity: 1}})
		require.NoError(t, err)
	})

	t.Run("优惠不影响税和包邮门槛", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		laptop := product.Product{ID: 9, Name: "笔记本", Price: 60000, Stock: 5, Status: product.StatusOnShelf}
		svc, deps := newTestService(ctrl)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(9)).Return(laptop, nil)
		deps.couponSvc.EXPECT().Evaluate(gomock.Any(), "BIG15K", int64(60000)).
			Return(coupon.Discount{Amount: 15000, Coupon: coupon.Coupon{Code: "BIG15K"}}, nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(9), int64(1)).Return(nil)
		deps.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, o domain.Order) (domain.Order, error) {
				// 折扣把应付压到门槛之下也不补收运费, 税仍按 60000 算
				assert.Equal(t, int64(0), o.Pricing.Shipping)
				assert.Equal(t, int64(6000), o.Pricing.Tax)
				assert.Equal(t, int64(51000), o.Pricing.Total)
				return o, nil
			})
		deps.couponSvc.EXPECT().IncrementUsage(gomock.Any(), "BIG15K").Return(nil)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.CreateOrder(context.Background(),
			domain.Order{BuyerID: 2024, Pricing: domain.Pricing{CouponCode: "BIG15K"}},
			[]domain.PurchaseItem{{ProductID: 9, Quantity: 1}})
		require.NoError(t, err)
	})

	t.Run("空订单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _ := newTestService(ctrl)
		_, err := svc.CreateOrder(context.Background(), domain.Order{BuyerID: 2024}, nil)
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("数量非法", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _ := newTestService(ctrl)
		_, err := svc.CreateOrder(context.Background(), domain.Order{BuyerID: 2024},
			[]domain.PurchaseItem{{ProductID: 1, Quantity: 0}})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("商品不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(404)).
			Return(product.Product{}, gorm.ErrRecordNotFound)
		_, err := svc.CreateOrder(context.Background(), domain.Order{BuyerID: 2024},
			[]domain.PurchaseItem{{ProductID: 404, Quantity: 1}})
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("库存不足时回滚已预占的库存", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(1)).Return(phone, nil)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(5)).Return(earbuds, nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(1), int64(2)).Return(nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(5), int64(5)).
			Return(product.ErrInsufficientStock)
		// 第一件已经扣掉的库存要还回去
		deps.productSvc.EXPECT().RestoreStock(gomock.Any(), int64(1), int64(2)).Return(nil)

		_, err := svc.CreateOrder(context.Background(), domain.Order{BuyerID: 2024},
			[]domain.PurchaseItem{{ProductID: 1, Quantity: 2}, {ProductID: 5, Quantity: 5}})
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("落库失败时归还全部库存", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.productSvc.EXPECT().FindProduct(gomock.Any(), int64(1)).Return(phone, nil)
		deps.productSvc.EXPECT().DecrementStock(gomock.Any(), int64(1), int64(2)).Return(nil)
		deps.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(domain.Order{}, errors.New("db down"))
		deps.productSvc.EXPECT().RestoreStock(gomock.Any(), int64(1), int64(2)).Return(nil)

		_, err := svc.CreateOrder(context.Background(), domain.Order{BuyerID: 2024},
			[]domain.PurchaseItem{{ProductID: 1, Quantity: 2}})
		assert.Error(t, err)
	})
}

func TestService_MarkPaid(t *testing.T) {
	t.Parallel()
	stored := domain.Order{ID: 100, SN: "SN-100", BuyerID: 2024, Status: domain.StatusPending}

	t.Run("只记录支付结果不推进配送状态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").Return(stored, nil)
		// 支付和配送是两条轴, 待确认的订单支付完仍是待确认
		deps.repo.EXPECT().MarkPaidBySN(gomock.Any(), "SN-100", "pay_P1", gomock.Any()).
			Return(int64(1), nil)

		require.NoError(t, svc.MarkPaid(context.Background(), "SN-100", "pay_P1"))
	})

	t.Run("重复支付事件幂等跳过", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").Return(stored, nil)
		deps.repo.EXPECT().MarkPaidBySN(gomock.Any(), "SN-100", "pay_P1", gomock.Any()).
			Return(int64(0), nil)

		require.NoError(t, svc.MarkPaid(context.Background(), "SN-100", "pay_P1"))
	})

	t.Run("已取消的订单不会被支付事件改回来", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		cancelled := domain.Order{ID: 100, SN: "SN-100", BuyerID: 2024, Status: domain.StatusCancelled}
		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").Return(cancelled, nil)
		// 迟到的回调只落支付字段, 终态不回退
		deps.repo.EXPECT().MarkPaidBySN(gomock.Any(), "SN-100", "pay_P1", gomock.Any()).
			Return(int64(1), nil)

		require.NoError(t, svc.MarkPaid(context.Background(), "SN-100", "pay_P1"))
	})
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("合法推进", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").
			Return(domain.Order{ID: 100, SN: "SN-100", Status: domain.StatusConfirmed}, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusConfirmed, domain.StatusShipped, gomock.Any()).Return(nil)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		order, err := svc.UpdateStatus(context.Background(), "SN-100", domain.StatusShipped)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusShipped, order.Status)
	})

	t.Run("非法推进", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").
			Return(domain.Order{ID: 100, SN: "SN-100", Status: domain.StatusShipped}, nil)

		// 已发货不能跳过派送直接送达
		_, err := svc.UpdateStatus(context.Background(), "SN-100", domain.StatusDelivered)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("并发推进只有一个赢家", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").
			Return(domain.Order{ID: 100, SN: "SN-100", Status: domain.StatusPending}, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusPending, domain.StatusConfirmed, gomock.Any()).
			Return(dao.ErrConcurrentStatusChange)

		_, err := svc.UpdateStatus(context.Background(), "SN-100", domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})
}

func TestService_CancelOrder(t *testing.T) {
	t.Parallel()

	t.Run("取消后归还库存", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "SN-100", int64(2024)).
			Return(domain.Order{
				ID: 100, SN: "SN-100", BuyerID: 2024, Status: domain.StatusPending,
				Items: []domain.OrderItem{{ProductID: 1, Quantity: 2}},
			}, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusPending, domain.StatusCancelled, gomock.Any()).Return(nil)
		deps.productSvc.EXPECT().RestoreStock(gomock.Any(), int64(1), int64(2)).Return(nil)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.CancelOrder(context.Background(), 2024, "SN-100"))
	})

	t.Run("已发货仍可取消", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "SN-100", int64(2024)).
			Return(domain.Order{
				ID: 100, SN: "SN-100", BuyerID: 2024, Status: domain.StatusShipped,
				Items: []domain.OrderItem{{ProductID: 1, Quantity: 1}},
			}, nil)
		deps.repo.EXPECT().UpdateStatus(gomock.Any(), int64(100),
			domain.StatusShipped, domain.StatusCancelled, gomock.Any()).Return(nil)
		deps.productSvc.EXPECT().RestoreStock(gomock.Any(), int64(1), int64(1)).Return(nil)
		deps.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.CancelOrder(context.Background(), 2024, "SN-100"))
	})

	t.Run("已送达不允许取消", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "SN-100", int64(2024)).
			Return(domain.Order{ID: 100, SN: "SN-100", BuyerID: 2024, Status: domain.StatusDelivered}, nil)

		err := svc.CancelOrder(context.Background(), 2024, "SN-100")
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "SN-404", int64(2024)).
			Return(domain.Order{}, gorm.ErrRecordNotFound)

		err := svc.CancelOrder(context.Background(), 2024, "SN-404")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
