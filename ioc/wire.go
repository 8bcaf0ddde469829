//go:build wireinject

package ioc

import (
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitUserModule,
		InitLessonModule,
		InitProgressModule,
		InitAssetModule,
		initGinxServer)
	return new(App), nil
}
