package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/slots"
	"github.com/m04kA/SMC-VoiceBooking/pkg/ptr"
)

const tracerName = "voicebooking.usecase"

// UseCase use case для создания бронирования
type UseCase struct {
	facilities FacilityDirectory
	resolver   AvailabilityResolver
	writer     CalendarWriter
	publisher  EventPublisher
	locker     Locker
	cfg        Config
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case.
// writer равен nil, если календарь не настроен; publisher равен nil, если события выключены
func NewUseCase(
	facilities FacilityDirectory,
	resolver AvailabilityResolver,
	writer CalendarWriter,
	publisher EventPublisher,
	locker Locker,
	cfg Config,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &UseCase{
		facilities: facilities,
		resolver:   resolver,
		writer:     writer,
		publisher:  publisher,
		locker:     locker,
		cfg:        cfg,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute выполняет use case создания бронирования.
// Ошибки не возвращаются: любой сбой превращается в ответ с success=false
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "CreateBooking")
	defer span.End()

	span.SetAttributes(
		attribute.String("facility.id", req.FacilityID),
		attribute.String("booking.date", req.Date),
		attribute.String("booking.start_time", req.StartTime),
		attribute.Int("booking.duration_minutes", req.DurationMinutes),
		attribute.IntSlice("booking.court_numbers", req.CourtNumbers),
	)

	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error("CreateBooking: recovered from panic: %v", r)
			span.SetStatus(codes.Error, "panic")
			resp = uc.failure(&unexpectedError{cause: fmt.Sprint(r)}, req)
			uc.observe(outcomeError)
		}
	}()

	uc.logger.Info("CreateBooking: facility=%s, date=%s, time=%s, duration=%d, courts=%v",
		req.FacilityID, req.Date, req.StartTime, req.DurationMinutes, req.CourtNumbers)

	resp, err := uc.execute(ctx, req)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrPartialWrite) || errors.Is(err, ErrInternal) {
			span.SetStatus(codes.Error, err.Error())
		}
		uc.observe(outcomeOf(err))
		return uc.failure(err, req)
	}

	span.SetAttributes(attribute.String("booking.id", ptr.Deref(resp.BookingID, "")))
	uc.observe(outcomeBooked)
	return resp
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем, что запись в календарь настроена
	if uc.writer == nil {
		uc.logger.Error("CreateBooking: calendar writer is not configured")
		return nil, ErrCalendarNotConfigured
	}

	// 2. Получаем площадку
	facility, err := uc.facilities.GetByID(req.FacilityID)
	if err != nil {
		uc.logger.Warn("CreateBooking: facility id=%s not found", req.FacilityID)
		return nil, fmt.Errorf("%w: %v", ErrFacilityNotFound, err)
	}

	// 3. Валидация: слот, корты, часы работы, данные клиента
	if err := validateBooking(req, facility); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	start, err := slots.Combine(req.Date, req.StartTime, uc.cfg.Location)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}
	end := slots.EndInstant(start, req.DurationMinutes)

	endTime, err := slots.EndTime(req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	// Шаги 4-6 выполняются под блокировкой площадки на дату
	if uc.locker != nil {
		unlock := uc.locker.Lock(lockKey(facility.ID, req.Date))
		defer unlock()
	}

	// 4. Заново получаем свободные корты, результат прошлой проверки не используется
	freeCourts := uc.resolver.AvailableCourts(ctx, facility.ID, facility.NumberOfCourts, start, end)

	// 5. Все запрошенные корты должны быть свободны до первой записи
	if court, ok := firstUnavailable(req.CourtNumbers, freeCourts); ok {
		uc.logger.Warn("CreateBooking: court %d of %s is not available, free=%v", court, facility.ID, freeCourts)
		return nil, &CourtUnavailableError{Court: court}
	}

	// 6. Создаем по одному событию на корт
	bookingIDs, err := uc.writeEvents(ctx, facility, req, start, end)
	if err != nil {
		return nil, err
	}

	// 7. Формируем подтверждение
	bookingID := strings.Join(bookingIDs, ",")
	uc.logger.Info("CreateBooking: booked courts %v of %s, ids=%s", req.CourtNumbers, facility.ID, bookingID)

	uc.publish(ctx, facility, req, start, end, endTime, bookingID, bookingIDs)

	return &Response{
		Success:   true,
		BookingID: ptr.Ptr(bookingID),
		Message: ptr.Ptr(fmt.Sprintf("Booking confirmed for %s! Courts %s on %s at %s for %d minutes.",
			req.Name, joinCourts(req.CourtNumbers), req.Date, req.StartTime, req.DurationMinutes)),
		Data: map[string]interface{}{
			"facility":         facility.Name,
			"court_numbers":    req.CourtNumbers,
			"date":             req.Date,
			"start_time":       req.StartTime,
			"end_time":         endTime,
			"duration_minutes": req.DurationMinutes,
			"customer_name":    req.Name,
			"customer_phone":   req.PhoneNumber,
			"booking_ids":      bookingIDs,
		},
	}, nil
}

// writeEvents создает события кортов последовательно.
// При RollbackPartialWrites запись останавливается на первой ошибке и созданные события удаляются
func (uc *UseCase) writeEvents(
	ctx context.Context,
	facility *domain.Facility,
	req *Request,
	start, end time.Time,
) ([]string, error) {
	var (
		bookingIDs []string
		booked     []int
		failed     []int
		firstErr   error
		firstCourt int
	)

	for _, court := range req.CourtNumbers {
		event := &domain.CourtEvent{
			FacilityID:      facility.ID,
			FacilityName:    facility.Name,
			CourtNumber:     court,
			CustomerName:    strings.TrimSpace(req.Name),
			CustomerPhone:   strings.TrimSpace(req.PhoneNumber),
			Start:           start,
			End:             end,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
		}

		id, err := uc.writer.CreateEvent(ctx, event)
		if err == nil && id == "" {
			err = ErrNoEventsCreated
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create event for court %d of %s: %v", court, facility.ID, err)
			failed = append(failed, court)
			if firstErr == nil {
				firstErr, firstCourt = err, court
			}
			if uc.cfg.RollbackPartialWrites {
				break
			}
			continue
		}

		bookingIDs = append(bookingIDs, id)
		booked = append(booked, court)
	}

	if firstErr == nil {
		return bookingIDs, nil
	}

	// Ничего не записано
	if len(bookingIDs) == 0 {
		if errors.Is(firstErr, domain.ErrCourtTaken) {
			return nil, &CourtUnavailableError{Court: firstCourt}
		}
		return nil, fmt.Errorf("%w: %v", ErrNoEventsCreated, firstErr)
	}

	partial := &PartialWriteError{
		BookedCourts: booked,
		FailedCourts: failed,
		BookingIDs:   bookingIDs,
	}

	if uc.cfg.RollbackPartialWrites {
		// Корты после первой ошибки не записывались
		partial.FailedCourts = remainingCourts(req.CourtNumbers, booked)
		partial.RolledBack = uc.rollback(ctx, bookingIDs)
	}

	uc.logger.Error("CreateBooking: partial write for %s: booked=%v, failed=%v, rolled_back=%t",
		facility.ID, partial.BookedCourts, partial.FailedCourts, partial.RolledBack)
	return nil, partial
}

// rollback удаляет уже созданные события. Возвращает true, если удалены все
func (uc *UseCase) rollback(ctx context.Context, eventIDs []string) bool {
	ok := true
	for _, id := range eventIDs {
		if err := uc.writer.DeleteEvent(ctx, id); err != nil {
			uc.logger.Error("CreateBooking: failed to roll back event %s: %v", id, err)
			ok = false
		}
	}
	return ok
}

func (uc *UseCase) publish(
	ctx context.Context,
	facility *domain.Facility,
	req *Request,
	start, end time.Time,
	endTime, bookingID string,
	eventIDs []string,
) {
	if uc.publisher == nil {
		return
	}

	event := domain.BookingCreated{
		BookingID:       bookingID,
		FacilityID:      facility.ID,
		CourtNumbers:    req.CourtNumbers,
		EventIDs:        eventIDs,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		DurationMinutes: req.DurationMinutes,
		CustomerName:    req.Name,
		CustomerPhone:   req.PhoneNumber,
		Start:           start.Unix(),
		End:             end.Unix(),
	}

	if err := uc.publisher.PublishJSON(ctx, domain.RKBookingCreated, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish %s for booking %s: %v", domain.RKBookingCreated, bookingID, err)
	}
}

// failure переводит ошибку в ответ для звонящего
func (uc *UseCase) failure(err error, req *Request) *Response {
	resp := &Response{Success: false}

	var (
		ruleErr    *slots.RuleError
		courtErr   *CourtUnavailableError
		partialErr *PartialWriteError
	)

	switch {
	case errors.Is(err, ErrCalendarNotConfigured):
		resp.Error = ptr.Ptr("Calendar service is not initialized. Please configure Google Calendar integration.")
	case errors.Is(err, ErrFacilityNotFound):
		resp.Error = ptr.Ptr(fmt.Sprintf("Facility not found: %s", req.FacilityID))
	case errors.Is(err, ErrInvalidSlot) && errors.As(err, &ruleErr):
		resp.Error = ptr.Ptr("Invalid slot: " + ruleErr.Reason)
	case errors.Is(err, ErrInvalidCourts) && errors.As(err, &ruleErr):
		resp.Error = ptr.Ptr("Invalid court numbers: " + ruleErr.Reason)
	case errors.Is(err, ErrOutsideHours) && errors.As(err, &ruleErr):
		resp.Error = ptr.Ptr("Outside operating hours: " + ruleErr.Reason)
	case errors.Is(err, ErrInvalidInput) && errors.As(err, &ruleErr):
		resp.Error = ptr.Ptr("Invalid booking details: " + ruleErr.Reason)
	case errors.As(err, &courtErr):
		resp.Error = ptr.Ptr(courtErr.Error())
	case errors.Is(err, ErrNoEventsCreated):
		resp.Error = ptr.Ptr("Failed to create calendar events")
	case errors.As(err, &partialErr):
		resp.Error = ptr.Ptr(partialErr.Error())
		resp.Data = map[string]interface{}{
			"booked_courts": partialErr.BookedCourts,
			"failed_courts": partialErr.FailedCourts,
			"booking_ids":   partialErr.BookingIDs,
			"rolled_back":   partialErr.RolledBack,
		}
	case errors.As(err, &ruleErr):
		resp.Error = ptr.Ptr("Error creating booking: " + ruleErr.Reason)
	default:
		uc.logger.Error("CreateBooking: unexpected error: %v", err)
		resp.Error = ptr.Ptr(fmt.Sprintf("Error creating booking: %v", err))
	}

	return resp
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrCalendarNotConfigured):
		return outcomeNotConfigured
	case errors.Is(err, ErrFacilityNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrInvalidSlot), errors.Is(err, ErrInvalidCourts),
		errors.Is(err, ErrOutsideHours), errors.Is(err, ErrInvalidInput):
		return outcomeRejected
	case errors.Is(err, ErrCourtUnavailable):
		return outcomeUnavailable
	case errors.Is(err, ErrPartialWrite):
		return outcomePartial
	case errors.Is(err, ErrNoEventsCreated):
		return outcomeWriteFailed
	default:
		return outcomeError
	}
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.IncBooking(outcome)
}

// remainingCourts корты из запроса, которые не попали в booked
func remainingCourts(requested, booked []int) []int {
	done := make(map[int]struct{}, len(booked))
	for _, c := range booked {
		done[c] = struct{}{}
	}

	rest := make([]int, 0, len(requested)-len(booked))
	for _, c := range requested {
		if _, ok := done[c]; !ok {
			rest = append(rest, c)
		}
	}
	return rest
}
