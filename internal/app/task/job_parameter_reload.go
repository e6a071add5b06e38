package task

import (
	"context"
	"log"

	parameter_service "github.com/xyhcode/gocms/pkg/service/parameter"
)

// ParameterReloadJob 定期从数据库重新加载配置参数缓存。
// 其他进程对参数表的修改以此收敛到本进程。
type ParameterReloadJob struct {
	paramSvc parameter_service.Service
}

// NewParameterReloadJob 是任务的构造函数。
func NewParameterReloadJob(paramSvc parameter_service.Service) *ParameterReloadJob {
	return &ParameterReloadJob{
		paramSvc: paramSvc,
	}
}

// Run 是 Job 接口要求实现的方法。
func (j *ParameterReloadJob) Run() {
	if err := j.paramSvc.LoadAll(context.Background()); err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名。
func (j *ParameterReloadJob) Name() string {
	return "ParameterReloadJob"
}
