//go:build wireinject

package progress

import (
	"github.com/ecodeclub/studyhub/internal/lesson"
	"github.com/ecodeclub/studyhub/internal/progress/internal/repository"
	"github.com/ecodeclub/studyhub/internal/progress/internal/service"
	"github.com/ecodeclub/studyhub/internal/progress/internal/web"
	"github.com/ecodeclub/studyhub/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	userModule *user.Module,
	lessonModule *lesson.Module,
	limit gin.HandlerFunc) (*Module, error) {
	wire.Build(
		InitSubmissionDAO,
		repository.NewSubmissionRepository,
		service.NewProgressService,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*lesson.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
