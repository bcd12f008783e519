package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/shophub/shophub/internal/cart"
	"github.com/shophub/shophub/internal/coupon"
	"github.com/shophub/shophub/internal/order"
	"github.com/shophub/shophub/internal/payment"
	"github.com/shophub/shophub/internal/pkg/middleware"
	"github.com/shophub/shophub/internal/product"
	"github.com/shophub/shophub/internal/user"
	"github.com/shophub/shophub/internal/wishlist"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	productHdl *product.Handler,
	cartHdl *cart.Handler,
	wishlistHdl *wishlist.Handler,
	orderHdl *order.Handler,
	paymentHdl *payment.Handler,
	couponHdl *coupon.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "shophub.live")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	productHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	cartHdl.PrivateRoutes(res.Engine)
	wishlistHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	couponHdl.PrivateRoutes(res.Engine)
	return res
}
