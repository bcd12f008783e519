package errs

var (
	SystemError        = ErrorCode{Code: 507001, Msg: "系统错误"}
	ProductUnavailable = ErrorCode{Code: 507002, Msg: "商品不存在或已下架"}
	NotInWishlist      = ErrorCode{Code: 507003, Msg: "没有收藏过这个商品"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
