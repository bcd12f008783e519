// Copyright 2024 shophub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

// ListProductsReq 分页查询在售商品
type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

// ProductDetailReq 查询商品详情
type ProductDetailReq struct {
	ID int64 `json:"id"`
}

type ProductDetailResp struct {
	Product Product `json:"product"`
}

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Image       string `json:"image,omitempty"`
	Status      uint8  `json:"status,omitempty"`
}

// SaveProductReq 创建或更新商品, ID为0表示创建
type SaveProductReq struct {
	Product Product `json:"product"`
}

type SaveProductResp struct {
	ID int64 `json:"id"`
}

// DeleteProductReq 删除商品
type DeleteProductReq struct {
	ID int64 `json:"id"`
}

// ListLowStockReq 低库存商品列表
type ListLowStockReq struct {
	Threshold int64 `json:"threshold"`
	Limit     int   `json:"limit,omitempty"`
}
