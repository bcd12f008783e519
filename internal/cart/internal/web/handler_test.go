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

package web

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/shophub/shophub/internal/cart/internal/domain"
	"github.com/shophub/shophub/internal/cart/internal/service"
	"github.com/shophub/shophub/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	cartmocks "github.com/shophub/shophub/internal/cart/mocks"
)

const testUid = int64(123)

func newTestServer(hdl *Handler) *gin.Engine {
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey,
			session.NewMemorySession(session.Claims{
				Uid: testUid,
			}))
	})
	hdl.PrivateRoutes(server)
	return server
}

func TestHandler_AddItem(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) service.Service
		req  AddItemReq

		wantCode int
		wantResp test.Result[Cart]
	}{
		{
			name: "加购成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := cartmocks.NewMockService(ctrl)
				svc.EXPECT().AddItem(gomock.Any(), testUid, int64(1), int64(2)).
					Return(domain.Cart{
						Uid: testUid,
						Items: []domain.CartItem{
							{ProductID: 1, Name: "机械键盘", Image: "kb.png", Price: 25900, Quantity: 2},
						},
					}, nil)
				return svc
			},
			req:      AddItemReq{ProductID: 1, Quantity: 2},
			wantCode: 200,
			wantResp: test.Result[Cart]{
				Data: Cart{
					Items: []CartItem{
						{ProductID: 1, Name: "机械键盘", Image: "kb.png", Price: 25900, Quantity: 2},
					},
					Subtotal: 51800,
				},
			},
		},
		{
			name: "商品不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := cartmocks.NewMockService(ctrl)
				svc.EXPECT().AddItem(gomock.Any(), testUid, int64(99), int64(1)).
					Return(domain.Cart{}, service.ErrProductUnavailable)
				return svc
			},
			req:      AddItemReq{ProductID: 99, Quantity: 1},
			wantCode: 200,
			wantResp: test.Result[Cart]{
				Code: 506003,
				Msg:  "商品不存在或已下架",
			},
		},
		{
			name: "数量非法",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := cartmocks.NewMockService(ctrl)
				svc.EXPECT().AddItem(gomock.Any(), testUid, int64(1), int64(0)).
					Return(domain.Cart{}, service.ErrInvalidQuantity)
				return svc
			},
			req:      AddItemReq{ProductID: 1, Quantity: 0},
			wantCode: 200,
			wantResp: test.Result[Cart]{
				Code: 506002,
				Msg:  "数量非法",
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(NewHandler(tc.mock(ctrl)))

			req, err := http.NewRequest(http.MethodPost,
				"/cart/add", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Cart]()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := cartmocks.NewMockService(ctrl)
	svc.EXPECT().GetCart(gomock.Any(), testUid).Return(domain.Cart{
		Uid: testUid,
		Items: []domain.CartItem{
			{ProductID: 7, Name: "显示器", Price: 89900, Quantity: 1},
		},
	}, nil)
	server := newTestServer(NewHandler(svc))

	req, err := http.NewRequest(http.MethodGet, "/cart/detail", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[Cart]()
	server.ServeHTTP(recorder, req)

	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, test.Result[Cart]{
		Data: Cart{
			Items: []CartItem{
				{ProductID: 7, Name: "显示器", Price: 89900, Quantity: 1},
			},
			Subtotal: 89900,
		},
	}, recorder.MustScan())
}
