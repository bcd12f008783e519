package errs

var (
	SystemError        = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidQuantity    = ErrorCode{Code: 506002, Msg: "数量非法"}
	ProductUnavailable = ErrorCode{Code: 506003, Msg: "商品不存在或已下架"}
	ItemNotFound       = ErrorCode{Code: 506004, Msg: "购物车里没有这个商品"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
