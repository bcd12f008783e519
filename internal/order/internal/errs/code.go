package errs

type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError             = ErrorCode{Code: 503001, Msg: "系统错误"}
	OrderNotFound           = ErrorCode{Code: 503002, Msg: "订单不存在"}
	EmptyOrder              = ErrorCode{Code: 503003, Msg: "订单不能为空"}
	InsufficientStock       = ErrorCode{Code: 503004, Msg: "库存不足"}
	InvalidStatusTransition = ErrorCode{Code: 503005, Msg: "订单状态不允许此变更"}
	ProductUnavailable      = ErrorCode{Code: 503006, Msg: "商品不存在或已下架"}
	InvalidQuantity         = ErrorCode{Code: 503007, Msg: "购买数量非法"}
	CouponUnusable          = ErrorCode{Code: 503008, Msg: "优惠券不可用"}
)
