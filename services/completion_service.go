package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"salon-booking-api/repository"
)

// CompletionService flips past-dated active appointments to completed on a
// cron schedule. It lives outside the booking flow: booking itself never
// mutates an appointment after the insert.
type CompletionService struct {
	appointments repository.AppointmentRepository
	logger       zerolog.Logger
	cron         *cron.Cron
}

func NewCompletionService(appointments repository.AppointmentRepository, logger zerolog.Logger) *CompletionService {
	return &CompletionService{appointments: appointments, logger: logger}
}

// StartScheduler begins running SweepOnce on the given cron expression.
func (s *CompletionService) StartScheduler(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, s.SweepOnce); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info().Str("schedule", schedule).Msg("completion sweeper started")
	return nil
}

func (s *CompletionService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SweepOnce marks every active appointment whose end time has passed as
// completed.
func (s *CompletionService) SweepOnce() {
	completed, err := s.appointments.MarkCompletedBefore(context.Background(), time.Now().UTC())
	if err != nil {
		s.logger.Error().Err(err).Msg("completion sweep failed")
		return
	}
	if completed > 0 {
		s.logger.Info().Int64("completed", completed).Msg("appointments marked completed")
	}
}
