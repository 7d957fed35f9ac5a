package backlog_gauge

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var awaitingPickup = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "packages_awaiting_pickup",
		Help: "Number of packages currently in the ARRIVED status",
	},
)

type Service interface {
	ArrivedBacklog(ctx context.Context) (int64, error)
}

type BacklogGauge struct {
	service  Service
	interval time.Duration
}

func NewBacklogGauge(service Service, interval time.Duration) *BacklogGauge {
	return &BacklogGauge{
		service:  service,
		interval: interval,
	}
}

func (b *BacklogGauge) TTL() time.Duration {
	return b.interval
}

func (b *BacklogGauge) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	backlog, err := b.service.ArrivedBacklog(ctxWithTimeout)
	if err != nil {
		return err
	}

	awaitingPickup.Set(float64(backlog))

	return nil
}

func (b *BacklogGauge) Info() string {
	return "arrived backlog gauge"
}
