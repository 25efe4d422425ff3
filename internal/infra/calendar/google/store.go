package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar"
)

const defaultTimeout = 10 * time.Second

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры подключения к Google Calendar
type Config struct {
	CalendarID      string
	CredentialsFile string
	Location        *time.Location
	Timeout         time.Duration
}

// Store хранилище событий кортов в Google Calendar.
// Корт и площадка хранятся в private extended properties события
type Store struct {
	svc        *gcal.Service
	calendarID string
	location   *time.Location
	timeout    time.Duration
	logger     Logger
}

// New создает клиент Google Calendar по файлу учетных данных сервисного аккаунта
func New(ctx context.Context, cfg Config, logger Logger, opts ...option.ClientOption) (*Store, error) {
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	opts = append(opts, option.WithScopes(gcal.CalendarEventsScope))

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", calendar.ErrInternal, err)
	}

	return NewWithService(svc, cfg, logger), nil
}

// NewWithService создает хранилище поверх готового сервиса
func NewWithService(svc *gcal.Service, cfg Config, logger Logger) *Store {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Store{
		svc:        svc,
		calendarID: cfg.CalendarID,
		location:   cfg.Location,
		timeout:    cfg.Timeout,
		logger:     logger,
	}
}

// IsCourtFree проверяет, что у корта нет событий, пересекающих [start, end)
func (s *Store) IsCourtFree(ctx context.Context, courtNumber int, start, end time.Time, facilityID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	events, err := s.svc.Events.List(s.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false).
		PrivateExtendedProperty(
			domain.MetaFacilityID+"="+facilityID,
			domain.MetaCourtNumber+"="+strconv.Itoa(courtNumber),
		).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("%w: list events for court %d of %s: %v", calendar.ErrInternal, courtNumber, facilityID, err)
	}

	for _, item := range events.Items {
		if item.Status != "cancelled" {
			return false, nil
		}
	}
	return true, nil
}

// CreateEvent создает событие корта и возвращает его id.
// Перед вставкой повторно проверяет пересечение
func (s *Store) CreateEvent(ctx context.Context, event *domain.CourtEvent) (string, error) {
	if err := calendar.Validate(event); err != nil {
		return "", err
	}

	free, err := s.IsCourtFree(ctx, event.CourtNumber, event.Start, event.End, event.FacilityID)
	if err != nil {
		return "", err
	}
	if !free {
		return "", fmt.Errorf("%w: court %d of %s", calendar.ErrCourtTaken, event.CourtNumber, event.FacilityID)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	created, err := s.svc.Events.Insert(s.calendarID, s.toGoogleEvent(event)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: insert event for court %d of %s: %v", calendar.ErrInternal, event.CourtNumber, event.FacilityID, err)
	}

	s.logger.Info("Created booking: %s (ID: %s)", created.Summary, created.Id)
	return created.Id, nil
}

// DeleteEvent удаляет событие по id
func (s *Store) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.svc.Events.Delete(s.calendarID, eventID).Context(ctx).Do(); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && (gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone) {
			return fmt.Errorf("%w: %s", calendar.ErrEventNotFound, eventID)
		}
		return fmt.Errorf("%w: delete event %s: %v", calendar.ErrInternal, eventID, err)
	}
	return nil
}

// ListByFacility возвращает события площадки, пересекающие [from, to), по возрастанию начала.
// События без корректных меток пропускаются
func (s *Store) ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.CourtEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out := make([]*domain.CourtEvent, 0)
	err := s.svc.Events.List(s.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		ShowDeleted(false).
		OrderBy("startTime").
		PrivateExtendedProperty(domain.MetaFacilityID+"="+facilityID).
		Pages(ctx, func(page *gcal.Events) error {
			for _, item := range page.Items {
				if item.Status == "cancelled" {
					continue
				}
				event, err := s.fromGoogleEvent(item)
				if err != nil {
					s.logger.Warn("ListByFacility: skipping event %s: %v", item.Id, err)
					continue
				}
				out = append(out, event)
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("%w: list events of %s: %v", calendar.ErrInternal, facilityID, err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].CourtNumber < out[j].CourtNumber
	})
	return out, nil
}

func (s *Store) fromGoogleEvent(item *gcal.Event) (*domain.CourtEvent, error) {
	if item.ExtendedProperties == nil || item.Start == nil || item.End == nil {
		return nil, fmt.Errorf("%w: event has no metadata or time range", calendar.ErrInvalidEvent)
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", calendar.ErrInvalidEvent, err)
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", calendar.ErrInvalidEvent, err)
	}

	return calendar.FromMetadata(item.Id, item.ExtendedProperties.Private, start.In(s.location), end.In(s.location))
}

func (s *Store) toGoogleEvent(e *domain.CourtEvent) *gcal.Event {
	return &gcal.Event{
		Summary:     calendar.Summary(e),
		Description: calendar.Description(e),
		Start: &gcal.EventDateTime{
			DateTime: e.Start.In(s.location).Format(time.RFC3339),
			TimeZone: s.location.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: e.End.In(s.location).Format(time.RFC3339),
			TimeZone: s.location.String(),
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: calendar.PopupReminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ExtendedProperties: &gcal.EventExtendedProperties{
			Private: calendar.Metadata(e),
		},
	}
}
