package client

import (
	"fmt"
	"strings"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	sms "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/sms/v20210111"
)

var _ Client = (*TencentCloudSMS)(nil)

// TencentCloudSMS 腾讯云短信实现
type TencentCloudSMS struct {
	client *sms.Client
	// appID 短信控制台添加应用后生成的 SdkAppId
	appID *string
}

// NewTencentCloudSMS 创建腾讯云短信客户端
func NewTencentCloudSMS(regionID, secretID, secretKey, appID string) (*TencentCloudSMS, error) {
	client, err := sms.NewClient(common.NewCredential(secretID, secretKey), regionID, profile.NewClientProfile())
	if err != nil {
		return nil, err
	}
	return &TencentCloudSMS{client: client, appID: &appID}, nil
}

func (t *TencentCloudSMS) Send(req SendReq) (SendResp, error) {
	// https://cloud.tencent.com/document/product/382/55981
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: 手机号码不能为空", ErrInvalidParameter)
	}

	request := sms.NewSendSmsRequest()
	// 手机号采用 E.164 标准, 不带国家码的默认按中国大陆补 +86
	phoneNumPtrs := make([]*string, len(req.PhoneNumbers))
	for i := range req.PhoneNumbers {
		fullPhoneNum := req.PhoneNumbers[i]
		if !strings.HasPrefix(req.PhoneNumbers[i], "+") {
			fullPhoneNum = "+86" + req.PhoneNumbers[i]
		}
		phoneNumPtr := fullPhoneNum
		phoneNumPtrs[i] = &phoneNumPtr
	}
	request.PhoneNumberSet = phoneNumPtrs
	request.SmsSdkAppId = t.appID
	// 模板必须已审核通过
	request.TemplateId = &req.TemplateID
	request.SignName = &req.SignName

	if req.TemplateParam != nil {
		var templateParamPtrs []*string
		for _, value := range req.TemplateParam {
			valuePtr := value
			templateParamPtrs = append(templateParamPtrs, &valuePtr)
		}
		request.TemplateParamSet = templateParamPtrs
	}

	response, err := t.client.SendSms(request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	if len(response.Response.SendStatusSet) == 0 {
		return SendResp{}, fmt.Errorf("%w: 没有返回发送状态", ErrSendFailed)
	}

	result := SendResp{
		RequestID:    *response.Response.RequestId,
		PhoneNumbers: make(map[string]SendRespStatus),
	}
	for i := range response.Response.SendStatusSet {
		status := response.Response.SendStatusSet[i]
		result.PhoneNumbers[strings.TrimPrefix(*status.PhoneNumber, "+86")] = SendRespStatus{
			Code:    *status.Code,
			Message: *status.Message,
		}
	}
	return result, nil
}
