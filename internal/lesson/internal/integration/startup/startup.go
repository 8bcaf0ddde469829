package startup

import (
	"github.com/ecodeclub/studyhub/internal/lesson"
	testioc "github.com/ecodeclub/studyhub/internal/test/ioc"
)

func InitModule() (*lesson.Module, error) {
	return lesson.InitModule(testioc.InitDB(), testioc.InitCache())
}
