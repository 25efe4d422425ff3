package availability

import (
	"context"
	"time"
)

const (
	policyOpen   = "open"
	policyClosed = "closed"
)

// Resolver определяет свободные корты площадки на интервал [start, end)
type Resolver struct {
	reader            CalendarReader
	openOnReadFailure bool
	metrics           Metrics
	logger            Logger
}

// NewResolver создает резолвер. reader может быть nil, если календарь не настроен:
// тогда каждый корт решается политикой openOnReadFailure
func NewResolver(reader CalendarReader, openOnReadFailure bool, metrics Metrics, logger Logger) *Resolver {
	return &Resolver{
		reader:            reader,
		openOnReadFailure: openOnReadFailure,
		metrics:           metrics,
		logger:            logger,
	}
}

// AvailableCourts опрашивает корты 1..totalCourts последовательно и возвращает свободные по возрастанию
func (r *Resolver) AvailableCourts(ctx context.Context, facilityID string, totalCourts int, start, end time.Time) []int {
	free := make([]int, 0, totalCourts)

	for court := 1; court <= totalCourts; court++ {
		if r.isCourtFree(ctx, facilityID, court, start, end) {
			free = append(free, court)
		}
	}

	return free
}

func (r *Resolver) isCourtFree(ctx context.Context, facilityID string, court int, start, end time.Time) bool {
	if r.reader == nil {
		r.degraded(facilityID)
		r.logger.Warn("AvailableCourts: calendar is not configured, court %d of %s treated as %s",
			court, facilityID, r.policyOutcome())
		return r.openOnReadFailure
	}

	free, err := r.reader.IsCourtFree(ctx, court, start, end, facilityID)
	if err != nil {
		r.degraded(facilityID)
		r.logger.Warn("AvailableCourts: failed to read court %d of %s, treated as %s: %v",
			court, facilityID, r.policyOutcome(), err)
		return r.openOnReadFailure
	}

	return free
}

func (r *Resolver) degraded(facilityID string) {
	if r.metrics == nil {
		return
	}
	policy := policyClosed
	if r.openOnReadFailure {
		policy = policyOpen
	}
	r.metrics.IncReadDegraded(facilityID, policy)
}

func (r *Resolver) policyOutcome() string {
	if r.openOnReadFailure {
		return "free"
	}
	return "booked"
}
