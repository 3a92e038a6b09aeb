package service

import (
	"github.com/socops/soc-schedule/internal/domain/contract"
)

// Instance wires the domain services over a shared DataManager.
type Instance struct {
	Schedule  *scheduleService
	Swap      *swapService
	Leave     *leaveService
	Scheduler *scheduler
}

// Options tunes the background scheduler.
type Options struct {
	ReminderTime string // HH:MM, UTC
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, opts Options) *Instance {
	notifier := newNotifier(dm, slackClient)

	scheduleService := newSchedule(dm, notifier)
	swapService := newSwap(dm, notifier)
	leaveService := newLeave(dm, notifier)

	return &Instance{
		Schedule:  scheduleService,
		Swap:      swapService,
		Leave:     leaveService,
		Scheduler: newScheduler(dm, scheduleService, swapService, notifier, opts.ReminderTime),
	}
}
