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
	"fmt"

	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrSignatureMismatch 回调签名与本地计算结果不一致,
	// 说明回调被篡改或者密钥配置错误
	ErrSignatureMismatch = errors.New("支付签名校验失败")

	errMalformedGatewayResponse = errors.New("网关响应缺少支付单号")
)

// GatewayOrderAPI 对应 razorpay-go 客户端的 Order 资源,
// 抽成接口方便在单元测试里用 mock 替换真实网关
//
//go:generate mockgen -source=./gateway.go -package=razorpaymocks -destination=./mocks/gateway.mock.go GatewayOrderAPI
type GatewayOrderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type GatewayService struct {
	api       GatewayOrderAPI
	keySecret string
	l         *elog.Component
}

func NewGatewayService(api GatewayOrderAPI, keySecret string) *GatewayService {
	return &GatewayService{
		api:       api,
		keySecret: keySecret,
		l:         elog.DefaultLogger,
	}
}

// CreateOrder 在网关侧创建支付单, 返回网关支付单号。
// razorpay-go 的客户端暂不支持 context, 这里保留参数以便未来替换
func (g *GatewayService) CreateOrder(_ context.Context, amount int64, currency, receipt string) (string, error) {
	body, err := g.api.Create(map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("网关创建支付单失败: %w", err)
	}
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", errMalformedGatewayResponse
	}
	return id, nil
}

// VerifySignature 校验回调签名。
// 签名算法: HMAC-SHA256(gatewayOrderID + "|" + gatewayPaymentID, keySecret) 的十六进制摘要
func (g *GatewayService) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	// 常数时间比较, 防止时序侧信道
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}
