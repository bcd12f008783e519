package errs

type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError          = ErrorCode{Code: 505001, Msg: "系统错误"}
	PaymentNotFound      = ErrorCode{Code: 505002, Msg: "支付记录不存在"}
	SignatureMismatch    = ErrorCode{Code: 505003, Msg: "支付签名校验失败"}
	GatewayOrderMismatch = ErrorCode{Code: 505004, Msg: "支付单与订单不匹配"}
)
