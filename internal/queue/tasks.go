package queue

import (
	"encoding/json"

	"github.com/lumina-blog/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskDashboardRefresh 仪表盘统计刷新任务
	TaskDashboardRefresh = constants.TaskDashboardRefresh
)

// DashboardRefreshPayload 仪表盘刷新任务载荷
type DashboardRefreshPayload struct {
	Reason string `json:"reason"`
}

// NewDashboardRefreshTask 创建仪表盘刷新任务
func NewDashboardRefreshTask(payload DashboardRefreshPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardRefresh, body), nil
}
