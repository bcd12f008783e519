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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/shophub/shophub/internal/payment/internal/domain"
	"github.com/shophub/shophub/internal/payment/internal/event"
	evtmocks "github.com/shophub/shophub/internal/payment/internal/event/mocks"
	repomocks "github.com/shophub/shophub/internal/payment/internal/repository/mocks"
	"github.com/shophub/shophub/internal/payment/internal/service/razorpay"
	razorpaymocks "github.com/shophub/shophub/internal/payment/internal/service/razorpay/mocks"
	"github.com/shophub/shophub/internal/pkg/sequencenumber"
	"github.com/shophub/shophub/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test_key_secret"

func sign(gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func newTestService(t *testing.T, ctrl *gomock.Controller,
	api razorpay.GatewayOrderAPI,
	repo *repomocks.MockPaymentRepository,
	producer *evtmocks.MockPaymentEventProducer) Service {
	t.Helper()
	receiptGen, err := snowflake.NewGenerator(1)
	require.NoError(t, err)
	return NewService(
		razorpay.NewGatewayService(api, testSecret),
		repo,
		sequencenumber.NewGenerator(),
		receiptGen,
		producer)
}

func TestService_CreatePayment(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := razorpaymocks.NewMockGatewayOrderAPI(ctrl)
	api.EXPECT().Create(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
			assert.Equal(t, int64(25900), data["amount"])
			assert.Equal(t, "INR", data["currency"])
			assert.NotEmpty(t, data["receipt"])
			return map[string]interface{}{"id": "order_G1"}, nil
		})

	repo := repomocks.NewMockPaymentRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, pmt domain.Payment) (int64, error) {
			assert.Len(t, pmt.SN, 32)
			assert.Equal(t, "order_G1", pmt.GatewayOrderID)
			assert.Equal(t, domain.PaymentStatusUnpaid, pmt.Status)
			return 11, nil
		})

	svc := newTestService(t, ctrl, api, repo, evtmocks.NewMockPaymentEventProducer(ctrl))
	pmt, err := svc.CreatePayment(context.Background(), domain.Payment{
		PayerID:  2024,
		OrderID:  7,
		OrderSN:  "SN-7",
		Amount:   25900,
		Currency: "INR",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), pmt.ID)
	assert.Equal(t, "order_G1", pmt.GatewayOrderID)
}

func TestService_VerifyPayment(t *testing.T) {
	t.Parallel()
	stored := domain.Payment{
		ID:             11,
		SN:             "PSN-11",
		OrderID:        7,
		OrderSN:        "SN-7",
		Amount:         25900,
		Currency:       "INR",
		GatewayOrderID: "order_G1",
		Status:         domain.PaymentStatusUnpaid,
	}

	t.Run("验签通过且发送事件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockPaymentRepository(ctrl)
		repo.EXPECT().FindByGatewayOrderID(gomock.Any(), "order_G1").Return(stored, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "order_G1", "pay_P1",
			domain.PaymentStatusPaidSuccess, gomock.Any()).Return(int64(1), nil)
		producer := evtmocks.NewMockPaymentEventProducer(ctrl)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt event.PaymentEvent) error {
				assert.Equal(t, "SN-7", evt.OrderSN)
				assert.Equal(t, domain.PaymentStatusPaidSuccess.ToUint8(), evt.Status)
				return nil
			})

		svc := newTestService(t, ctrl, nil, repo, producer)
		pmt, err := svc.VerifyPayment(context.Background(),
			"SN-7", "order_G1", "pay_P1", sign("order_G1", "pay_P1"))
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaidSuccess, pmt.Status)
		assert.Equal(t, "pay_P1", pmt.GatewayPaymentID)
	})

	t.Run("重复回调不重复发事件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paid := stored
		paid.Status = domain.PaymentStatusPaidSuccess
		paid.GatewayPaymentID = "pay_P1"
		repo := repomocks.NewMockPaymentRepository(ctrl)
		repo.EXPECT().FindByGatewayOrderID(gomock.Any(), "order_G1").Return(paid, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "order_G1", "pay_P1",
			domain.PaymentStatusPaidSuccess, gomock.Any()).Return(int64(0), nil)

		svc := newTestService(t, ctrl, nil, repo, evtmocks.NewMockPaymentEventProducer(ctrl))
		pmt, err := svc.VerifyPayment(context.Background(),
			"SN-7", "order_G1", "pay_P1", sign("order_G1", "pay_P1"))
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaidSuccess, pmt.Status)
	})

	t.Run("签名被篡改", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := newTestService(t, ctrl,
			nil, repomocks.NewMockPaymentRepository(ctrl), evtmocks.NewMockPaymentEventProducer(ctrl))
		_, err := svc.VerifyPayment(context.Background(),
			"SN-7", "order_G1", "pay_P1", sign("order_G1", "pay_other"))
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("订单号与支付单不匹配", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockPaymentRepository(ctrl)
		repo.EXPECT().FindByGatewayOrderID(gomock.Any(), "order_G1").Return(stored, nil)
		svc := newTestService(t, ctrl, nil, repo, evtmocks.NewMockPaymentEventProducer(ctrl))
		_, err := svc.VerifyPayment(context.Background(),
			"SN-other", "order_G1", "pay_P1", sign("order_G1", "pay_P1"))
		assert.ErrorIs(t, err, ErrGatewayOrderMismatch)
	})
}
