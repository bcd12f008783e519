package client

import (
	"errors"
)

const (
	OK = "Ok"
)

var (
	ErrSendFailed       = errors.New("发送短信失败")
	ErrInvalidParameter = errors.New("参数无效")
)

// Client 短信客户端接口 (抽象)
//
//go:generate mockgen -source=./types.go -destination=./mocks/sms.mock.go -package=smsmocks Client
type Client interface {
	// Send 发送短信
	Send(req SendReq) (SendResp, error)
}

// SendReq 发送短信请求参数
type SendReq struct {
	// PhoneNumbers 手机号码, 阿里云、腾讯云共用
	PhoneNumbers []string
	// SignName 签名名称
	SignName string
	// TemplateID 模板 ID
	TemplateID string
	// TemplateParam 模板参数, key-value 形式
	TemplateParam map[string]string
}

// SendResp 发送短信响应参数
type SendResp struct {
	RequestID string
	// PhoneNumbers 去掉+86后的手机号到发送状态的映射
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
