package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/shophub/shophub/internal/email"
)

var _ email.Service = (*DirectMailClient)(nil)

// DirectMailClient 阿里云邮件推送客户端
type DirectMailClient struct {
	client *dm20151123.Client
	// accountName 发信地址, 例如 noreply@mail.shophub.io
	accountName string
}

func NewDirectMailClient(accessKeyID, accessKeySecret, accountName string) (*DirectMailClient, error) {
	config := &credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}
	cred, err := credential.NewCredential(config)
	if err != nil {
		return nil, fmt.Errorf("创建凭据失败: %w", err)
	}

	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}

	return &DirectMailClient{
		client:      client,
		accountName: accountName,
	}, nil
}

func (c *DirectMailClient) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName: tea.String(c.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := c.client.SingleSendMailAdvance(request, &util.RuntimeOptions{})
	if err != nil {
		return c.handleError(err)
	}
	return nil
}

func (c *DirectMailClient) handleError(err error) error {
	sdkError, ok := err.(*tea.SDKError)
	if !ok {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	errorMsg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
	if sdkError.Data != nil {
		var errorData map[string]interface{}
		decoder := json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data)))
		if er := decoder.Decode(&errorData); er == nil {
			if recommend, exists := errorData["Recommend"]; exists {
				errorMsg += fmt.Sprintf(" | 建议: %v", recommend)
			}
			if requestId, exists := errorData["RequestId"]; exists {
				errorMsg += fmt.Sprintf(" | RequestId: %v", requestId)
			}
		}
	}
	return errors.New(errorMsg)
}
