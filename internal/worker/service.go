package worker

import (
	"context"
	"errors"
	"time"

	"github.com/lumina-blog/internal/config"
	"github.com/lumina-blog/internal/logger"
	"github.com/lumina-blog/internal/queue"

	"github.com/hibiken/asynq"
)

const defaultDashboardRefreshInterval = 5 * time.Minute

// Service 异步队列服务
type Service struct {
	name            string
	server          *asynq.Server
	mux             *asynq.ServeMux
	consumer        *Consumer
	refreshInterval time.Duration
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	interval := defaultDashboardRefreshInterval
	if cfg.DashboardRefreshSecond > 0 {
		interval = time.Duration(cfg.DashboardRefreshSecond) * time.Second
	}
	return &Service{
		name:            "worker",
		server:          server,
		mux:             mux,
		consumer:        consumer,
		refreshInterval: interval,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.DashboardService != nil {
		go s.runDashboardRefreshLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

// runDashboardRefreshLoop 周期性刷新仪表盘统计缓存
func (s *Service) runDashboardRefreshLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.DashboardService == nil {
		return
	}
	runOnce := func() {
		if _, err := s.consumer.DashboardService.Refresh(ctx); err != nil {
			logger.Warnw("worker_dashboard_periodic_refresh_failed", "error", err)
		}
	}
	runOnce()

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
