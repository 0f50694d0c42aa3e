// Package services holds background jobs that run alongside the HTTP
// server.
package services

import (
	"context"

	"cardoctor-backend/models"
	"cardoctor-backend/repository"

	cron "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// OrderDigest logs a daily count of orders still waiting for approval, so
// a backlog shows up in the logs without anyone polling the database.
type OrderDigest struct {
	orders repository.OrderRepository
	log    zerolog.Logger
	cron   *cron.Cron
}

func NewOrderDigest(orders repository.OrderRepository, log zerolog.Logger) *OrderDigest {
	return &OrderDigest{orders: orders, log: log}
}

// Start schedules the digest daily at 9 AM.
func (d *OrderDigest) Start() error {
	d.cron = cron.New()
	if _, err := d.cron.AddFunc("0 9 * * *", d.Run); err != nil {
		return err
	}
	d.cron.Start()
	return nil
}

// Stop halts the scheduler. A run already in flight finishes.
func (d *OrderDigest) Stop() {
	if d.cron != nil {
		d.cron.Stop()
	}
}

// Run executes one digest pass. Exported so it can be triggered outside
// the schedule.
func (d *OrderDigest) Run() {
	count, err := d.orders.CountByStatus(context.Background(), models.OrderStatusPending)
	if err != nil {
		d.log.Error().Err(err).Msg("order digest failed")
		return
	}
	d.log.Info().Int64("pending", count).Msg("daily order digest")
}
