package asset

import (
	"context"
	"sync"

	"github.com/ecodeclub/studyhub/internal/asset/internal/repository/dao"
	"github.com/ecodeclub/studyhub/internal/asset/internal/service"
	"github.com/ecodeclub/studyhub/internal/asset/internal/storage"
	"github.com/ecodeclub/studyhub/internal/asset/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
)

var daoOnce = sync.Once{}

func InitAssetDAO(db *egorm.Component) dao.AssetDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	raw, err := db.DB()
	if err != nil {
		panic(err)
	}
	return dao.NewGORMAssetDAO(db, raw)
}

// InitUploader 配了 S3 桶就走对象存储，否则落本地磁盘
func InitUploader() storage.Uploader {
	bucket := econf.GetString("upload.s3.bucket")
	if bucket != "" {
		s, err := storage.NewS3Store(context.Background(),
			econf.GetString("upload.s3.region"), bucket)
		if err != nil {
			panic(err)
		}
		return s
	}
	dir := econf.GetString("upload.dir")
	if dir == "" {
		dir = "/tmp/uploads"
	}
	return storage.NewLocalUploader(dir, "/uploads")
}

func InitHandler(svc service.AssetService, limit gin.HandlerFunc) *web.Handler {
	maxBytes := econf.GetInt64("upload.maxBytes")
	if maxBytes <= 0 {
		maxBytes = 16 << 20
	}
	return web.NewHandler(svc, maxBytes,
		econf.GetBool("server.debugRoutes"), limit)
}
