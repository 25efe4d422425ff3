package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/m04kA/SMC-VoiceBooking/internal/service/slots"
	"github.com/m04kA/SMC-VoiceBooking/pkg/ptr"
)

const tracerName = "voicebooking.usecase"

// UseCase use case проверки доступности кортов
type UseCase struct {
	facilities FacilityDirectory
	resolver   AvailabilityResolver
	location   *time.Location
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	facilities FacilityDirectory,
	resolver AvailabilityResolver,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilities: facilities,
		resolver:   resolver,
		location:   location,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет проверку доступности.
// Ошибки не возвращаются: любой сбой превращается в ответ с success=false
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "CheckAvailability")
	defer span.End()

	span.SetAttributes(
		attribute.String("facility.id", req.FacilityID),
		attribute.String("booking.date", req.Date),
		attribute.String("booking.start_time", req.StartTime),
		attribute.Int("booking.duration_minutes", req.DurationMinutes),
		attribute.Int("booking.number_of_courts", req.NumberOfCourts),
	)

	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("CheckAvailability: recovered from panic: %v", r)
			span.SetStatus(codes.Error, "panic")
			resp = uc.failure(req, &unexpectedError{cause: fmt.Sprint(r)})
			uc.observe(outcomeError)
		}
	}()

	uc.logger.Info("CheckAvailability: facility=%s, date=%s, time=%s, duration=%d, courts=%d",
		req.FacilityID, req.Date, req.StartTime, req.DurationMinutes, req.NumberOfCourts)

	resp, err := uc.execute(ctx, req)
	if err != nil {
		span.RecordError(err)
		uc.observe(outcomeOf(err))
		return uc.failure(req, err)
	}

	span.SetAttributes(
		attribute.Bool("availability.available", resp.Available),
		attribute.IntSlice("availability.free_courts", resp.FreeCourts),
	)
	if resp.Available {
		uc.observe(outcomeAvailable)
	} else {
		uc.observe(outcomeUnavailable)
	}
	return resp
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Получаем площадку
	facility, err := uc.facilities.GetByID(req.FacilityID)
	if err != nil {
		uc.logger.Warn("CheckAvailability: facility id=%s not found", req.FacilityID)
		return nil, fmt.Errorf("%w: %v", ErrFacilityNotFound, err)
	}

	// 2. Проверяем слот по правилам площадки
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if err := slots.ValidateBookingSlot(req.StartTime, req.DurationMinutes, facility.BookingRules); err != nil {
		uc.logger.Warn("CheckAvailability: slot rejected: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrSlotRejected, err)
	}

	// 3. Проверяем часы работы
	if err := slots.CheckOperatingHours(req.StartTime, req.DurationMinutes, facility); err != nil {
		if errors.Is(err, slots.ErrOpensLater) || errors.Is(err, slots.ErrClosesEarlier) {
			uc.logger.Warn("CheckAvailability: outside operating hours: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrSlotRejected, err)
		}
		return nil, err
	}

	// 4. Вычисляем интервал и спрашиваем свободные корты
	start, err := slots.Combine(req.Date, req.StartTime, uc.location)
	if err != nil {
		uc.logger.Warn("CheckAvailability: %v", err)
		return nil, err
	}
	end := slots.EndInstant(start, req.DurationMinutes)

	freeCourts := uc.resolver.AvailableCourts(ctx, facility.ID, facility.NumberOfCourts, start, end)
	if freeCourts == nil {
		freeCourts = []int{}
	}

	// 5. Свободных кортов меньше, чем нужно
	if len(freeCourts) < req.NumberOfCourts {
		uc.logger.Info("CheckAvailability: only %d court(s) free for %s, %d requested",
			len(freeCourts), facility.ID, req.NumberOfCourts)
		return &Response{
			Success:    true,
			Available:  false,
			FreeCourts: freeCourts,
			ReasonIfNotAvailable: ptr.Ptr(fmt.Sprintf("Only %d court(s) available, but %d requested",
				len(freeCourts), req.NumberOfCourts)),
			Data: map[string]interface{}{
				"available_courts": freeCourts,
				"requested_courts": req.NumberOfCourts,
			},
		}, nil
	}

	// 6. Достаточно свободных кортов
	uc.logger.Info("CheckAvailability: courts %v free for %s", freeCourts, facility.ID)
	return &Response{
		Success:    true,
		Available:  true,
		FreeCourts: freeCourts,
		Data: map[string]interface{}{
			"available_courts": freeCourts,
			"total_courts":     facility.NumberOfCourts,
			"date":             req.Date,
			"start_time":       req.StartTime,
			"duration_minutes": req.DurationMinutes,
		},
	}, nil
}

// failure переводит ошибку в ответ для звонящего
func (uc *UseCase) failure(req *Request, err error) *Response {
	resp := &Response{
		Success:    false,
		Available:  false,
		FreeCourts: []int{},
	}

	var ruleErr *slots.RuleError
	switch {
	case errors.Is(err, ErrFacilityNotFound):
		resp.Error = ptr.Ptr(fmt.Sprintf("Facility not found: %s", req.FacilityID))
	case errors.Is(err, ErrSlotRejected) && errors.As(err, &ruleErr):
		resp.ReasonIfNotAvailable = ptr.Ptr(ruleErr.Reason)
	case errors.As(err, &ruleErr):
		resp.Error = ptr.Ptr(fmt.Sprintf("Error checking availability: %s", ruleErr.Reason))
	default:
		uc.logger.Error("CheckAvailability: unexpected error: %v", err)
		resp.Error = ptr.Ptr(fmt.Sprintf("Error checking availability: %v", err))
	}

	return resp
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrFacilityNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrSlotRejected):
		return outcomeRejected
	default:
		return outcomeError
	}
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.IncAvailabilityCheck(outcome)
}
