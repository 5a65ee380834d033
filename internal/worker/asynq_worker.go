package worker

import (
	"context"
	"encoding/json"

	"github.com/lumina-blog/internal/logger"
	"github.com/lumina-blog/internal/provider"
	"github.com/lumina-blog/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskDashboardRefresh, c.handleDashboardRefresh)
}

func (c *Consumer) handleDashboardRefresh(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_dashboard_refresh_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.DashboardRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_dashboard_refresh_unmarshal_failed", "error", err)
		return err
	}
	if c.DashboardService == nil {
		logger.Warnw("worker_dashboard_refresh_skip_service_nil")
		return nil
	}
	if _, err := c.DashboardService.Refresh(ctx); err != nil {
		logger.Warnw("worker_dashboard_refresh_failed", "reason", payload.Reason, "error", err)
		return err
	}
	logger.Debugw("worker_dashboard_refresh_done", "reason", payload.Reason)
	return nil
}
