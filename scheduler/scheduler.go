package scheduler

import (
	"campusflow/api/realtime"
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SchedulerService manages all scheduled tasks
type SchedulerService struct {
	scheduler   *gocron.Scheduler
	DB          *gorm.DB
	broadcaster *realtime.Broadcaster
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(DB *gorm.DB, broadcaster *realtime.Broadcaster) *SchedulerService {
	ctx, cancel := context.WithCancel(context.Background())

	// Create a scheduler with UTC timezone
	s := gocron.NewScheduler(time.UTC)

	return &SchedulerService{
		scheduler:   s,
		DB:          DB,
		broadcaster: broadcaster,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins running the scheduler
func (s *SchedulerService) Start() {
	log.Info().Msg("starting scheduler service")
	s.scheduler.StartAsync()
}

// Stop halts all scheduled jobs
func (s *SchedulerService) Stop() {
	log.Info().Msg("stopping scheduler service")
	s.scheduler.Stop()
	s.cancel()
}

// RegisterTasks sets up all scheduled tasks
func (s *SchedulerService) RegisterTasks() {
	s.registerTaskGroup(ReminderTasks(s.DB, s.broadcaster))
	s.registerTaskGroup(DataMaintenanceTasks(s.DB))
}

func (s *SchedulerService) registerTaskGroup(tasks []Task) {
	for _, task := range tasks {
		if !task.Enabled {
			continue
		}

		task := task
		_, err := s.scheduler.Cron(task.Schedule).Do(func() {
			if err := task.Handler(); err != nil {
				log.Error().Err(err).Str("task", task.Name).Msg("scheduled task failed")
			}
		})
		if err != nil {
			log.Error().Err(err).Str("task", task.Name).Msg("unable to schedule task")
		}
	}
}
