package package_stats

import (
	"context"
	"fmt"
	"time"

	"fastfeet/internal/pkg/metrics"
	"fastfeet/pkg/logger"
)

type PackageStats struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewPackageStats(log taskLogger, service Service, interval time.Duration) *PackageStats {
	return &PackageStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PackageStats) TTL() time.Duration {
	return p.interval
}

func (p *PackageStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	counts, err := p.service.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count packages by status: %w", err)
	}

	fields := make([]logger.Field, 0, len(counts))
	for status, count := range counts {
		metrics.PackagesByStatus.WithLabelValues(string(status)).Set(float64(count))
		fields = append(fields, logger.NewField(string(status), count))
	}

	p.log.With(fields...).Debug("package stats")
	return nil
}

func (p *PackageStats) Info() string {
	return "package stats"
}
