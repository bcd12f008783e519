package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/shophub/shophub/internal/sms/client"
)

func initSMSClient() client.Client {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	aliClient, err := client.NewAliyunSMS(cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		panic(err)
	}
	return aliClient
}
