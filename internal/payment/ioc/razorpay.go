package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	razorpaygo "github.com/razorpay/razorpay-go"
	"github.com/shophub/shophub/internal/payment/internal/service/razorpay"
	"github.com/shophub/shophub/internal/pkg/snowflake"
)

type GatewayConfig struct {
	KeyID     string `yaml:"keyID"`
	KeySecret string `yaml:"keySecret"`
	// NodeID 生成 receipt 的雪花节点ID, 多实例部署时各实例要错开
	NodeID int64 `yaml:"nodeID"`
}

func InitGatewayConfig() GatewayConfig {
	var cfg GatewayConfig
	err := econf.UnmarshalKey("razorpay", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitGatewayOrderAPI(cfg GatewayConfig) razorpay.GatewayOrderAPI {
	client := razorpaygo.NewClient(cfg.KeyID, cfg.KeySecret)
	return client.Order
}

func InitGatewayService(api razorpay.GatewayOrderAPI, cfg GatewayConfig) *razorpay.GatewayService {
	return razorpay.NewGatewayService(api, cfg.KeySecret)
}

func InitReceiptGenerator(cfg GatewayConfig) *snowflake.Generator {
	g, err := snowflake.NewGenerator(cfg.NodeID)
	if err != nil {
		panic(err)
	}
	return g
}
