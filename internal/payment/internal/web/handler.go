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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/shophub/shophub/internal/payment/internal/domain"
	"github.com/shophub/shophub/internal/payment/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/verify", ginx.BS[VerifyPaymentReq](h.Verify))
	g.POST("/detail", ginx.BS[PaymentDetailReq](h.Detail))
}

// Verify 买家在收银台支付完成后回传网关凭证, 验签通过才算支付成功
func (h *Handler) Verify(ctx *ginx.Context, req VerifyPaymentReq, _ session.Session) (ginx.Result, error) {
	pmt, err := h.svc.VerifyPayment(ctx.Request.Context(),
		req.OrderSN, req.GatewayOrderID, req.GatewayPaymentID, req.Signature)
	if err != nil {
		return toErrorResult(err), err
	}
	return ginx.Result{
		Data: VerifyPaymentResp{Payment: toPaymentVO(pmt)},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req PaymentDetailReq, _ session.Session) (ginx.Result, error) {
	pmt, err := h.svc.FindPaymentByOrderSN(ctx.Request.Context(), req.OrderSN)
	if err != nil {
		return toErrorResult(err), err
	}
	return ginx.Result{
		Data: PaymentDetailResp{Payment: toPaymentVO(pmt)},
	}, nil
}

func toErrorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrSignatureMismatch):
		return signatureMismatchResult
	case errors.Is(err, service.ErrPaymentNotFound):
		return paymentNotFoundResult
	case errors.Is(err, service.ErrGatewayOrderMismatch):
		return gatewayOrderMismatchResult
	default:
		return systemErrorResult
	}
}

func toPaymentVO(pmt domain.Payment) Payment {
	return Payment{
		SN:               pmt.SN,
		OrderSN:          pmt.OrderSN,
		Amount:           pmt.Amount,
		Currency:         pmt.Currency,
		GatewayOrderID:   pmt.GatewayOrderID,
		GatewayPaymentID: pmt.GatewayPaymentID,
		Status:           pmt.Status.ToUint8(),
		PaidAt:           pmt.PaidAt,
	}
}
