package courtevents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/infra/calendar"
	"github.com/m04kA/SMC-VoiceBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VoiceBooking/pkg/txmanager"
)

// serializationFailure код ошибки Postgres при конфликте сериализуемых транзакций
const serializationFailure = "40001"

// Repository хранилище событий кортов в Postgres
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория событий кортов
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{db: db, txManager: txManager}
}

// IsCourtFree проверяет, что у корта нет событий, пересекающих [start, end)
// Если в контексте передана активная транзакция, использует её
func (r *Repository) IsCourtFree(ctx context.Context, courtNumber int, start, end time.Time, facilityID string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := buildOverlapQuery(facilityID, courtNumber, start, end)
	if err != nil {
		return false, fmt.Errorf("%w: IsCourtFree - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: IsCourtFree - scan: %w", ErrScanRow, err)
	}

	return !exists, nil
}

// CreateEvent сохраняет событие корта.
// Проверка пересечения и вставка выполняются в одной SERIALIZABLE транзакции,
// конфликт сериализации отдается как ErrCourtTaken
func (r *Repository) CreateEvent(ctx context.Context, event *domain.CourtEvent) (string, error) {
	if err := calendar.Validate(event); err != nil {
		return "", err
	}

	id := uuid.NewString()

	err := r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Проверяем, что корт свободен
		free, err := r.IsCourtFree(txCtx, event.CourtNumber, event.Start, event.End, event.FacilityID)
		if err != nil {
			return err
		}
		if !free {
			return fmt.Errorf("%w: court %d of %s", ErrCourtTaken, event.CourtNumber, event.FacilityID)
		}

		// 2. Вставляем событие
		query, args, err := buildInsertQuery(id, event)
		if err != nil {
			return fmt.Errorf("%w: CreateEvent - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := txmanager.GetExecutor(txCtx, r.db).ExecContext(txCtx, query, args...); err != nil {
			return fmt.Errorf("%w: CreateEvent - execute insert: %w", ErrExecQuery, err)
		}
		return nil
	})
	if err != nil {
		if isSerializationFailure(err) {
			return "", fmt.Errorf("%w: court %d of %s: concurrent booking", ErrCourtTaken, event.CourtNumber, event.FacilityID)
		}
		return "", err
	}

	return id, nil
}

// DeleteEvent удаляет событие по id
func (r *Repository) DeleteEvent(ctx context.Context, eventID string) error {
	if _, err := uuid.Parse(eventID); err != nil {
		return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": eventID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteEvent - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteEvent - execute delete: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteEvent - rows affected: %v", ErrExecQuery, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	return nil
}

// ListByFacility возвращает события площадки за интервал, по возрастанию начала
func (r *Repository) ListByFacility(ctx context.Context, facilityID string, from, to time.Time) ([]*domain.CourtEvent, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"facility_id",
		"facility_name",
		"court_number",
		"customer_name",
		"customer_phone",
		"booking_date",
		"start_time",
		"duration_minutes",
		"starts_at",
		"ends_at",
	).
		From(tableName).
		Where(squirrel.Eq{"facility_id": facilityID}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		OrderBy("starts_at", "court_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.CourtEvent, 0)
	for rows.Next() {
		var e domain.CourtEvent
		if err := rows.Scan(
			&e.ID,
			&e.FacilityID,
			&e.FacilityName,
			&e.CourtNumber,
			&e.CustomerName,
			&e.CustomerPhone,
			&e.Date,
			&e.StartTime,
			&e.DurationMinutes,
			&e.Start,
			&e.End,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByFacility - scan: %v", ErrScanRow, err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - rows: %v", ErrScanRow, err)
	}

	return events, nil
}

// buildOverlapQuery строит запрос наличия события корта, пересекающего [start, end)
func buildOverlapQuery(facilityID string, courtNumber int, start, end time.Time) (string, []interface{}, error) {
	sub := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"facility_id": facilityID, "court_number": courtNumber}).
		Where(squirrel.Lt{"starts_at": end}).
		Where(squirrel.Gt{"ends_at": start})

	subSQL, args, err := sub.ToSql()
	if err != nil {
		return "", nil, err
	}

	return "SELECT EXISTS (" + subSQL + ")", args, nil
}

// buildInsertQuery строит запрос вставки события
func buildInsertQuery(id string, e *domain.CourtEvent) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"facility_id",
			"facility_name",
			"court_number",
			"customer_name",
			"customer_phone",
			"booking_date",
			"start_time",
			"duration_minutes",
			"starts_at",
			"ends_at",
		).
		Values(
			id,
			e.FacilityID,
			e.FacilityName,
			e.CourtNumber,
			e.CustomerName,
			e.CustomerPhone,
			e.Date,
			e.StartTime,
			e.DurationMinutes,
			e.Start,
			e.End,
		).
		ToSql()
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailure
}
