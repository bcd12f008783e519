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

package service

import (
	"fmt"
	"html/template"
)

var funcs = template.FuncMap{
	// price 把分转成带两位小数的金额
	"price": func(cents int64) string {
		return fmt.Sprintf("%d.%02d", cents/100, cents%100)
	},
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<html>
<body>
<h2>欢迎加入 ShopHub</h2>
<p>你的账号已经注册成功, 现在就去挑几件喜欢的商品吧。</p>
</body>
</html>
`))

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Funcs(funcs).Parse(`
<html>
<body>
<h2>订单确认</h2>
<p>{{.Nickname}}, 你的订单 <strong>{{.OrderSN}}</strong> 已创建成功。</p>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th>商品</th><th>单价</th><th>数量</th></tr>
{{range .Items}}
<tr><td>{{.Name}}</td><td>{{price .Price}}</td><td>{{.Quantity}}</td></tr>
{{end}}
</table>
<p>商品小计: {{price .Subtotal}}</p>
{{if gt .Discount 0}}<p>优惠: -{{price .Discount}}</p>{{end}}
<p>运费: {{price .Shipping}}</p>
<p>税费: {{price .Tax}}</p>
<p><strong>应付总额: {{price .Total}}</strong></p>
</body>
</html>
`))

var orderStatusTmpl = template.Must(template.New("order_status").Funcs(funcs).Parse(`
<html>
<body>
<h2>订单状态更新</h2>
<p>{{.Nickname}}, 你的订单 <strong>{{.OrderSN}}</strong> {{.StatusText}}。</p>
<p>订单金额: {{price .Total}}</p>
</body>
</html>
`))
