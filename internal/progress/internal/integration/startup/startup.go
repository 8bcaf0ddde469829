package startup

import (
	"github.com/ecodeclub/studyhub/internal/lesson"
	"github.com/ecodeclub/studyhub/internal/progress"
	testioc "github.com/ecodeclub/studyhub/internal/test/ioc"
	"github.com/ecodeclub/studyhub/internal/user"
	"github.com/gin-gonic/gin"
)

type Modules struct {
	User     *user.Module
	Lesson   *lesson.Module
	Progress *progress.Module
}

func InitModules() (*Modules, error) {
	db := testioc.InitDB()
	noLimit := func(ctx *gin.Context) {}
	userModule, err := user.InitModule(db, noLimit)
	if err != nil {
		return nil, err
	}
	lessonModule, err := lesson.InitModule(db, testioc.InitCache())
	if err != nil {
		return nil, err
	}
	progressModule, err := progress.InitModule(db, userModule, lessonModule, noLimit)
	if err != nil {
		return nil, err
	}
	return &Modules{
		User:     userModule,
		Lesson:   lessonModule,
		Progress: progressModule,
	}, nil
}
