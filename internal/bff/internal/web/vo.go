package web

type DashboardReq struct {
	LowStockThreshold int64 `json:"lowStockThreshold"`
	LowStockLimit     int   `json:"lowStockLimit"`
}

type DashboardResp struct {
	// OrderCount 全部订单数, 含未支付和已取消
	OrderCount int64 `json:"orderCount"`
	// Revenue 已支付订单的营收总额, 单位为分
	Revenue   int64 `json:"revenue"`
	UserCount int64 `json:"userCount"`
	// LowStockProducts 库存低于阈值的在售商品
	LowStockProducts []LowStockProduct `json:"lowStockProducts"`
}

type LowStockProduct struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
}
