//go:build wireinject

package user

import (
	"github.com/ecodeclub/studyhub/internal/user/internal/repository"
	"github.com/ecodeclub/studyhub/internal/user/internal/service"
	"github.com/ecodeclub/studyhub/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, limit gin.HandlerFunc) (*Module, error) {
	wire.Build(
		InitUserDAO,
		repository.NewUserRepository,
		service.NewUserService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
