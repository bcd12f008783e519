package web

type AddItemReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type UpdateQuantityReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type RemoveItemReq struct {
	ProductID int64 `json:"productId"`
}

type Cart struct {
	Items    []CartItem `json:"items"`
	Subtotal int64      `json:"subtotal"`
}

type CartItem struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	// Price 单位为分
	Price    int64 `json:"price"`
	Quantity int64 `json:"quantity"`
}
