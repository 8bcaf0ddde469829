//go:build wireinject

package lesson

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/repository"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/service"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitLessonDAO,
		InitContentCache,
		repository.NewCachedLessonRepository,
		service.NewLessonService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
