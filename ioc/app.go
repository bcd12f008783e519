package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web   *egin.Component
	Admin AdminServer
	// Consumers 在应用启动时逐个 Start
	Consumers []Consumer
}

type Consumer interface {
	Start(ctx context.Context)
}
