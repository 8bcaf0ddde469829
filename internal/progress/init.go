package progress

import (
	"sync"

	"github.com/ecodeclub/studyhub/internal/progress/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

// InitSubmissionDAO 建表和唯一索引先于接客流量完成，
// 幂等约束不是可选项
func InitSubmissionDAO(db *egorm.Component) dao.SubmissionDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMSubmissionDAO(db)
}
