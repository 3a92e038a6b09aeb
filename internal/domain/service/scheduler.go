package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

// scheduler is the background loop that keeps the rotation generated ahead,
// sends day-of shift reminders, and expires overdue swap requests. The core
// operations stay synchronous; this loop only triggers them on a timer.
type scheduler struct {
	dm            contract.DataManager
	schedule      *scheduleService
	swap          *swapService
	notifier      *notifier
	reminderTime  string
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
}

func newScheduler(dm contract.DataManager, schedule *scheduleService, swap *swapService, notifier *notifier, reminderTime string) *scheduler {
	if reminderTime == "" {
		reminderTime = domain.DefaultReminderTime
	}
	return &scheduler{
		dm:            dm,
		schedule:      schedule,
		swap:          swap,
		notifier:      notifier,
		reminderTime:  reminderTime,
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case s.configChanged <- struct{}{}:
	default:
		// Channel is full, scheduler will recalculate eventually
	}
}

func (s *scheduler) mainLoop() {
	for {
		nextTime, err := s.nextRun(time.Now().UTC())
		if err != nil {
			log.Printf("Invalid reminder time %q: %v, waiting 1 hour...", s.reminderTime, err)
			timer := time.NewTimer(1 * time.Hour)
			select {
			case <-timer.C:
				continue
			case <-s.configChanged:
				timer.Stop()
				continue
			case <-s.stopChan:
				timer.Stop()
				return
			}
		}

		log.Printf("Next scheduler run at %s", nextTime.Format("2006-01-02 15:04:05 UTC"))

		timer := time.NewTimer(time.Until(nextTime))

		select {
		case <-timer.C:
			s.runOnce()
			// Wait 1 minute to prevent re-processing the same time
			time.Sleep(1 * time.Minute)

		case <-s.configChanged:
			timer.Stop()
			log.Println("Configuration changed, recalculating schedule...")
			continue

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextRun returns the next occurrence of the daily reminder time.
func (s *scheduler) nextRun(now time.Time) (time.Time, error) {
	parts := strings.Split(s.reminderTime, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("expected HH:MM")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour: %w", err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid minute: %w", err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

func (s *scheduler) runOnce() {
	ctx := context.Background()

	if err := s.ensureHorizon(ctx); err != nil {
		log.Printf("Failed to generate schedule horizon: %v", err)
	}

	if expired, err := s.swap.ExpireOverdue(ctx); err != nil {
		log.Printf("Failed to expire swap requests: %v", err)
	} else if expired > 0 {
		log.Printf("Expired %d overdue swap request(s)", expired)
	}

	if err := s.sendShiftReminders(); err != nil {
		log.Printf("Failed to send shift reminders: %v", err)
	}
}

// ensureHorizon keeps the schedule generated generate_days_ahead into the
// future when the active pattern has auto-generation enabled.
func (s *scheduler) ensureHorizon(ctx context.Context) error {
	pattern, err := s.dm.Pattern().GetActive()
	if err != nil {
		return fmt.Errorf("failed to get rotation pattern: %w", err)
	}
	if pattern == nil || !pattern.AutoGenerate {
		return nil
	}

	days := pattern.GenerateDaysAhead
	if days <= 0 {
		days = domain.DefaultGenerateDaysAhead
	}

	today := domain.Today()
	created, err := s.schedule.Generate(ctx, today, today.AddDate(0, 0, days))
	if err != nil {
		return err
	}
	if created > 0 {
		log.Printf("Generated %d assignment(s) for the next %d days", created, days)
	}

	return nil
}

// sendShiftReminders notifies every analyst on duty today.
func (s *scheduler) sendShiftReminders() error {
	assignments, err := s.schedule.AssignmentsForDate(domain.Today())
	if err != nil {
		return err
	}

	for _, assignment := range assignments {
		if assignment.Status == entity.AssignmentCancelled {
			continue
		}

		analyst, err := s.dm.Analyst().GetByID(assignment.AnalystID)
		if err != nil || analyst == nil {
			log.Printf("Failed to resolve analyst %d for reminder: %v", assignment.AnalystID, err)
			continue
		}

		window := fmt.Sprintf("%s to %s",
			assignment.WindowStart.Format("2006-01-02 15:04"),
			assignment.WindowEnd.Format("2006-01-02 15:04"))

		if err := s.notifier.Notify(analyst, entity.NotifyShiftReminder,
			fmt.Sprintf("%s monitoring today", assignment.KindCode),
			fmt.Sprintf("You are on %s monitoring duty today. Window: %s.", assignment.KindCode, window),
			strconv.FormatInt(assignment.ID, 10),
		); err != nil {
			log.Printf("Failed to send reminder for assignment %d: %v", assignment.ID, err)
		}
	}

	return nil
}
