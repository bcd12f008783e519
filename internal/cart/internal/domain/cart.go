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

package domain

type Cart struct {
	Uid   int64
	Items []CartItem
}

// CartItem 加购时的商品快照, 价格以下单时为准
type CartItem struct {
	ProductID int64
	Name      string
	Image     string
	Price     int64
	Quantity  int64
}

// Subtotal 购物车小计, 单位为分
func (c Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Price * it.Quantity
	}
	return total
}

func (c *Cart) Upsert(item CartItem) {
	for i, it := range c.Items {
		if it.ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

func (c *Cart) SetQuantity(productID, quantity int64) bool {
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

func (c *Cart) Remove(productID int64) bool {
	for i, it := range c.Items {
		if it.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}
