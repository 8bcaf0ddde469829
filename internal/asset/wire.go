//go:build wireinject

package asset

import (
	"github.com/ecodeclub/studyhub/internal/asset/internal/repository"
	"github.com/ecodeclub/studyhub/internal/asset/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, limit gin.HandlerFunc) (*Module, error) {
	wire.Build(
		InitAssetDAO,
		InitUploader,
		InitHandler,
		repository.NewAssetRepository,
		service.NewAssetService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
