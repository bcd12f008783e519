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

package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	razorpaymocks "github.com/shophub/shophub/internal/payment/internal/service/razorpay/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sign(secret, gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestGatewayService_VerifySignature(t *testing.T) {
	t.Parallel()
	const secret = "test_key_secret"
	svc := NewGatewayService(nil, secret)

	t.Run("签名正确", func(t *testing.T) {
		t.Parallel()
		err := svc.VerifySignature("order_abc", "pay_def",
			sign(secret, "order_abc", "pay_def"))
		require.NoError(t, err)
	})

	t.Run("交易号被篡改", func(t *testing.T) {
		t.Parallel()
		err := svc.VerifySignature("order_abc", "pay_tampered",
			sign(secret, "order_abc", "pay_def"))
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("签名被篡改", func(t *testing.T) {
		t.Parallel()
		err := svc.VerifySignature("order_abc", "pay_def", "deadbeef")
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("密钥不一致", func(t *testing.T) {
		t.Parallel()
		err := svc.VerifySignature("order_abc", "pay_def",
			sign("another_secret", "order_abc", "pay_def"))
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})
}

func TestGatewayService_CreateOrder(t *testing.T) {
	t.Parallel()

	t.Run("创建成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := razorpaymocks.NewMockGatewayOrderAPI(ctrl)
		api.EXPECT().Create(gomock.Any(), gomock.Nil()).
			DoAndReturn(func(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
				assert.Equal(t, int64(9900), data["amount"])
				assert.Equal(t, "INR", data["currency"])
				return map[string]interface{}{"id": "order_xyz"}, nil
			})
		svc := NewGatewayService(api, "secret")
		id, err := svc.CreateOrder(context.Background(), 9900, "INR", "r-1")
		require.NoError(t, err)
		assert.Equal(t, "order_xyz", id)
	})

	t.Run("网关报错", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := razorpaymocks.NewMockGatewayOrderAPI(ctrl)
		api.EXPECT().Create(gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("bad credentials"))
		svc := NewGatewayService(api, "secret")
		_, err := svc.CreateOrder(context.Background(), 9900, "INR", "r-1")
		assert.Error(t, err)
	})

	t.Run("响应缺少支付单号", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		api := razorpaymocks.NewMockGatewayOrderAPI(ctrl)
		api.EXPECT().Create(gomock.Any(), gomock.Nil()).
			Return(map[string]interface{}{"status": "created"}, nil)
		svc := NewGatewayService(api, "secret")
		_, err := svc.CreateOrder(context.Background(), 9900, "INR", "r-1")
		assert.ErrorIs(t, err, errMalformedGatewayResponse)
	})
}
