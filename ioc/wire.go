//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/shophub/shophub/internal/bff"
	"github.com/shophub/shophub/internal/cart"
	"github.com/shophub/shophub/internal/coupon"
	"github.com/shophub/shophub/internal/notification"
	"github.com/shophub/shophub/internal/order"
	"github.com/shophub/shophub/internal/payment"
	"github.com/shophub/shophub/internal/product"
	"github.com/shophub/shophub/internal/user"
	"github.com/shophub/shophub/internal/wishlist"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		initEmailService,
		initSMSClient,
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl", "Svc"),
		coupon.InitModule,
		wire.FieldsOf(new(*coupon.Module), "Hdl", "AdminHdl", "Svc"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl", "Svc"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "Svc"),
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "Svc"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wishlist.InitModule,
		wire.FieldsOf(new(*wishlist.Module), "Hdl"),
		notification.InitModule,
		bff.InitModule,
		wire.FieldsOf(new(*bff.Module), "Hdl"),
		initMQConsumers,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
