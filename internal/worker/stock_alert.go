package worker

// stock_alert.go
// Background goroutine that periodically sweeps the catalog for products at
// or below their minimum stock and emails the configured alert address.
// A Redis SETNX key per product deduplicates alerts for 24h so refilling the
// shelf resets the alarm without spamming the inbox every tick.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"orionpos/internal/infra"
	"orionpos/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	alertTickInterval = 30 * time.Second
	alertDedupTTL     = 24 * time.Hour
	alertDedupPrefix  = "lowstock:alerted:"
)

// StockAlertConfig holds all dependencies for the sweep goroutine.
type StockAlertConfig struct {
	ProductRepo repository.ProductRepository
	Dispatcher  *Dispatcher
	CB          *infra.CircuitBreaker
	RDB         *redis.Client
	AlertEmail  string
}

// StartStockAlertCron launches the sweep. It respects the context for
// graceful shutdown and does nothing when no alert email is configured.
func StartStockAlertCron(ctx context.Context, cfg StockAlertConfig) {
	if cfg.AlertEmail == "" {
		log.Info().Msg("stock_alert: no alert email configured, sweep disabled")
		return
	}
	go func() {
		ticker := time.NewTicker(alertTickInterval)
		defer ticker.Stop()

		log.Info().Msg("stock_alert: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("stock_alert: shutting down")
				return
			case <-ticker.C:
				sweep(ctx, cfg)
			}
		}
	}()
}

func sweep(ctx context.Context, cfg StockAlertConfig) {
	// SMTP is down anyway; skip the tick instead of queueing doomed jobs.
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("stock_alert: circuit breaker is open, skipping tick")
		return
	}

	products, err := cfg.ProductRepo.FindBelowMinStock(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stock_alert: failed to query low stock")
		return
	}
	if len(products) == 0 {
		return
	}

	var lines []string
	for _, p := range products {
		key := alertDedupPrefix + p.ID.String()
		ok, err := cfg.RDB.SetNX(ctx, key, "1", alertDedupTTL).Result()
		if err != nil {
			log.Error().Err(err).Msg("stock_alert: dedup check failed")
			return
		}
		if !ok {
			continue // already alerted within the window
		}
		lines = append(lines, fmt.Sprintf("- %s: %d left (minimum %d)", p.Name, p.Quantity, p.MinStock))
	}
	if len(lines) == 0 {
		return
	}

	log.Info().Int("count", len(lines)).Msg("stock_alert: sending low stock alert")
	err = cfg.Dispatcher.EnqueueEmail(ctx, EmailJobPayload{
		ToEmail: cfg.AlertEmail,
		Subject: fmt.Sprintf("Low stock alert: %d product(s)", len(lines)),
		Body:    "The following products are at or below minimum stock:\n\n" + strings.Join(lines, "\n"),
	})
	if err != nil {
		log.Error().Err(err).Msg("stock_alert: failed to enqueue email")
	}
}
