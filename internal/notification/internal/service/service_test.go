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
	"strings"
	"testing"

	"github.com/shophub/shophub/internal/email"
	emailmocks "github.com/shophub/shophub/internal/email/mocks"
	"github.com/shophub/shophub/internal/order"
	ordermocks "github.com/shophub/shophub/internal/order/mocks"
	smsclient "github.com/shophub/shophub/internal/sms/client"
	smsmocks "github.com/shophub/shophub/internal/sms/client/mocks"
	"github.com/shophub/shophub/internal/user"
	usermocks "github.com/shophub/shophub/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSMSCfg = SMSConfig{SignName: "ShopHub", StatusTemplateID: "SMS_10001"}

type testDeps struct {
	email *emailmocks.MockService
	sms   *smsmocks.MockClient
	user  *usermocks.MockUserService
	order *ordermocks.MockService
}

func newTestService(ctrl *gomock.Controller) (Service, testDeps) {
	deps := testDeps{
		email: emailmocks.NewMockService(ctrl),
		sms:   smsmocks.NewMockClient(ctrl),
		user:  usermocks.NewMockUserService(ctrl),
		order: ordermocks.NewMockService(ctrl),
	}
	svc := NewService(deps.email, deps.sms, deps.user, deps.order, "ShopHub", testSMSCfg)
	return svc, deps
}

func TestService_SendWelcome(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newTestService(ctrl)
	deps.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mail email.Mail) error {
			assert.Equal(t, "tom@example.com", mail.To)
			assert.Contains(t, string(mail.Body), "欢迎加入 ShopHub")
			return nil
		})

	require.NoError(t, svc.SendWelcome(context.Background(), "tom@example.com"))
}

func TestService_SendOrderConfirmation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, deps := newTestService(ctrl)
	deps.order.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").Return(order.Order{
		SN:      "SN-100",
		BuyerID: 2024,
		Items: []order.OrderItem{
			{Name: "手机", Price: 10000, Quantity: 2},
		},
		Pricing: order.Pricing{
			Subtotal: 20000,
			Discount: 2000,
			Shipping: 500,
			Tax:      1800,
			Total:    20300,
		},
	}, nil)
	deps.user.EXPECT().Profile(gomock.Any(), int64(2024)).
		Return(user.User{Id: 2024, Email: "tom@example.com", Nickname: "tom"}, nil)
	deps.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, mail email.Mail) error {
			assert.Equal(t, "tom@example.com", mail.To)
			assert.Equal(t, "订单 SN-100 已确认", mail.Subject)
			body := string(mail.Body)
			assert.Contains(t, body, "手机")
			assert.Contains(t, body, "100.00")
			assert.Contains(t, body, "203.00")
			return nil
		})

	require.NoError(t, svc.SendOrderConfirmation(context.Background(), "SN-100", 2024))
}

func TestService_SendOrderStatusChanged(t *testing.T) {
	t.Parallel()
	stored := order.Order{
		SN:      "SN-100",
		BuyerID: 2024,
		Pricing: order.Pricing{Total: 20300},
	}

	t.Run("已发货且有手机号时同时发短信", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.order.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").Return(stored, nil)
		deps.user.EXPECT().Profile(gomock.Any(), int64(2024)).
			Return(user.User{Id: 2024, Email: "tom@example.com", Nickname: "tom", Phone: "13800001111"}, nil)
		deps.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, mail email.Mail) error {
				assert.True(t, strings.Contains(mail.Subject, "已发货"))
				return nil
			})
		deps.sms.EXPECT().Send(gomock.Any()).
			DoAndReturn(func(req smsclient.SendReq) (smsclient.SendResp, error) {
				assert.Equal(t, []string{"13800001111"}, req.PhoneNumbers)
				assert.Equal(t, "SMS_10001", req.TemplateID)
				assert.Equal(t, "已发货", req.TemplateParam["status"])
				return smsclient.SendResp{}, nil
			})

		require.NoError(t, svc.SendOrderStatusChanged(context.Background(), "SN-100", 2024, 3))
	})

	t.Run("已确认只发邮件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.order.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").Return(stored, nil)
		deps.user.EXPECT().Profile(gomock.Any(), int64(2024)).
			Return(user.User{Id: 2024, Email: "tom@example.com", Phone: "13800001111"}, nil)
		deps.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.SendOrderStatusChanged(context.Background(), "SN-100", 2024, 2))
	})

	t.Run("没有手机号不发短信", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, deps := newTestService(ctrl)
		deps.order.EXPECT().FindOrderBySN(gomock.Any(), "SN-100").Return(stored, nil)
		deps.user.EXPECT().Profile(gomock.Any(), int64(2024)).
			Return(user.User{Id: 2024, Email: "tom@example.com"}, nil)
		deps.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.SendOrderStatusChanged(context.Background(), "SN-100", 2024, 5))
	})

	t.Run("未知状态不通知", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _ := newTestService(ctrl)

		require.NoError(t, svc.SendOrderStatusChanged(context.Background(), "SN-100", 2024, 1))
	})
}
