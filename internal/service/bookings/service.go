package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/bookings/models"
)

// Service сервис просмотра и отмены бронирований кортов
type Service struct {
	store        EventStore
	directory    FacilityDirectory
	publisher    EventPublisher
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// store и publisher могут быть nil
func NewService(
	store EventStore,
	directory FacilityDirectory,
	publisher EventPublisher,
	location *time.Location,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		store:        store,
		directory:    directory,
		publisher:    publisher,
		location:     location,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListByFacility возвращает события площадки за календарный день в таймзоне площадок
func (s *Service) ListByFacility(ctx context.Context, facilityID, date string) (*models.FacilityBookingsResponse, error) {
	s.logger.Info("ListByFacility: fetching bookings for facility=%s, date=%s", facilityID, date)

	if s.store == nil {
		return nil, ErrNotConfigured
	}

	if _, err := s.directory.GetByID(facilityID); err != nil {
		s.logger.Warn("ListByFacility: facility=%s not found", facilityID)
		return nil, ErrFacilityNotFound
	}

	day, err := time.ParseInLocation("2006-01-02", date, s.location)
	if err != nil {
		s.logger.Warn("ListByFacility: invalid date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	events, err := s.store.ListByFacility(ctx, facilityID, day, day.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("ListByFacility: store error for facility=%s: %v", facilityID, err)
		return nil, fmt.Errorf("%w: ListByFacility - store error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByFacility: successfully fetched %d events for facility=%s", len(events), facilityID)
	return models.FromDomainEventList(facilityID, date, events, s.location), nil
}

// Cancel удаляет все события бронирования.
// bookingID это id событий через запятую, как их возвращает create_booking.
// Уже удаленные события пропускаются; если не найдено ни одного, возвращается ErrBookingNotFound.
// При сбое удаления вместе с ErrInternal возвращается частичный результат с уже удаленными событиями
func (s *Service) Cancel(ctx context.Context, bookingID string) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: cancelling booking %s", bookingID)

	if s.store == nil {
		return nil, ErrNotConfigured
	}

	eventIDs := splitBookingID(bookingID)
	if len(eventIDs) == 0 {
		return nil, fmt.Errorf("%w: empty booking id", ErrInvalidInput)
	}

	resp := &models.CancelResponse{
		BookingID:         bookingID,
		CancelledEventIDs: make([]string, 0, len(eventIDs)),
	}

	for _, id := range eventIDs {
		err := s.store.DeleteEvent(ctx, id)
		switch {
		case err == nil:
			resp.CancelledEventIDs = append(resp.CancelledEventIDs, id)
		case errors.Is(err, calendar.ErrEventNotFound):
			s.logger.Warn("Cancel: event %s of booking %s not found", id, bookingID)
			resp.MissingEventIDs = append(resp.MissingEventIDs, id)
		default:
			s.logger.Error("Cancel: failed to delete event %s of booking %s: %v (already cancelled: %v)",
				id, bookingID, err, resp.CancelledEventIDs)
			return resp, fmt.Errorf("%w: Cancel - delete event %s: %v", ErrInternal, id, err)
		}
	}

	if len(resp.CancelledEventIDs) == 0 {
		return nil, ErrBookingNotFound
	}

	s.publishCancelled(ctx, bookingID, resp.CancelledEventIDs)

	s.logger.Info("Cancel: successfully cancelled %d events of booking %s", len(resp.CancelledEventIDs), bookingID)
	return resp, nil
}

func (s *Service) publishCancelled(ctx context.Context, bookingID string, eventIDs []string) {
	if s.publisher == nil {
		return
	}

	event := domain.BookingCancelled{
		BookingID:   bookingID,
		EventIDs:    eventIDs,
		CancelledAt: s.timeProvider.Now().Unix(),
	}
	if err := s.publisher.PublishJSON(ctx, domain.RKBookingCancelled, event); err != nil {
		s.logger.Warn("Cancel: failed to publish %s for booking %s: %v", domain.RKBookingCancelled, bookingID, err)
	}
}

func splitBookingID(bookingID string) []string {
	parts := strings.Split(bookingID, ",")
	ids := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		ids = append(ids, p)
	}
	return ids
}
