package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/studyhub/internal/asset"
	"github.com/ecodeclub/studyhub/internal/lesson"
	"github.com/ecodeclub/studyhub/internal/pkg/middleware"
	"github.com/ecodeclub/studyhub/internal/progress"
	"github.com/ecodeclub/studyhub/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userModule *user.Module,
	lessonModule *lesson.Module,
	progressModule *progress.Module,
	assetModule *asset.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	allowedOrigin := econf.GetString("cors.allowOrigin")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return allowedOrigin != "" && strings.Contains(origin, allowedOrigin)
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userModule.Hdl.PublicRoutes(res.Engine)
	lessonModule.Hdl.PublicRoutes(res.Engine)
	progressModule.Hdl.PublicRoutes(res.Engine)
	assetModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userModule.Hdl.PrivateRoutes(res.Engine)
	lessonModule.AdminHdl.PrivateRoutes(res.Engine)
	return res
}
