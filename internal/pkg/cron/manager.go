package cron

import (
	"Showreel/internal/api/config"
	"Showreel/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	storageSweepJob *job.StorageSweepJob
}

func NewCronManager(storageSweepJob *job.StorageSweepJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		storageSweepJob: storageSweepJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	schedule := config.Cfg.Sweep.Schedule
	if schedule == "" {
		schedule = "@daily"
	}
	if _, err := s.engine.AddJob(schedule, s.storageSweepJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
