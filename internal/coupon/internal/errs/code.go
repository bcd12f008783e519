package errs

var (
	SystemError           = ErrorCode{Code: 504001, Msg: "系统错误"}
	CouponNotFound        = ErrorCode{Code: 504002, Msg: "优惠券不存在或已失效"}
	CouponExhausted       = ErrorCode{Code: 504003, Msg: "优惠券使用次数已达上限"}
	MinimumPurchaseNotMet = ErrorCode{Code: 504004, Msg: "未达到优惠券最低消费金额"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
