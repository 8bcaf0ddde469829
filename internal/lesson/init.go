package lesson

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/repository/cache"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/repository/dao"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var daoOnce = sync.Once{}

func InitLessonDAO(db *egorm.Component) dao.LessonDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMLessonDAO(db)
}

func InitContentCache(ec ecache.Cache) cache.ContentCache {
	ttl := econf.GetDuration("cache.contentTTL")
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return cache.NewLessonECache(ec, ttl)
}
