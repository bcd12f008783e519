package web

type ItemReq struct {
	ProductID int64 `json:"productId"`
}

type ListResp struct {
	Products []Product `json:"products"`
}

type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	// Price 单位为分
	Price int64 `json:"price"`
	Stock int64 `json:"stock"`
}
