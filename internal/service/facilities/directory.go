package facilities

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/pkg/types"
)

// Directory справочник площадок: id -> площадка и телефон -> площадка.
// Заполняется один раз при старте и дальше только читается, поэтому блокировки не нужны
type Directory struct {
	byID    map[string]*domain.Facility
	byPhone map[string]*domain.Facility
	ordered []*domain.Facility
}

type fileConfig struct {
	Facilities []domain.Facility `toml:"facilities"`
}

// LoadFile загружает площадки из TOML-файла с секциями [[facilities]]
func LoadFile(path string, logger Logger) (*Directory, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: facilities file %s: %v", ErrLoad, path, err)
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrLoad, path, err)
	}

	return NewDirectory(cfg.Facilities, logger)
}

// NewDirectory строит справочник и проверяет конфигурацию каждой площадки
func NewDirectory(facilities []domain.Facility, logger Logger) (*Directory, error) {
	d := &Directory{
		byID:    make(map[string]*domain.Facility, len(facilities)),
		byPhone: make(map[string]*domain.Facility, len(facilities)),
		ordered: make([]*domain.Facility, 0, len(facilities)),
	}

	for i := range facilities {
		f := facilities[i]
		if err := normalize(&f); err != nil {
			return nil, err
		}

		if _, ok := d.byID[f.ID]; ok {
			return nil, fmt.Errorf("%w: facility id %q", ErrDuplicateFacility, f.ID)
		}
		if f.PhoneNumber != "" {
			if other, ok := d.byPhone[f.PhoneNumber]; ok {
				return nil, fmt.Errorf("%w: phone %s is used by %q and %q",
					ErrDuplicateFacility, f.PhoneNumber, other.ID, f.ID)
			}
			d.byPhone[f.PhoneNumber] = &f
		}

		d.byID[f.ID] = &f
		d.ordered = append(d.ordered, &f)
	}

	sort.Slice(d.ordered, func(i, j int) bool { return d.ordered[i].ID < d.ordered[j].ID })

	if logger != nil {
		logger.Info("Loaded %d facilities", len(d.ordered))
		for _, f := range d.ordered {
			logger.Info("  - %s (%s): %s", f.Name, f.ID, f.PhoneNumber)
		}
	}

	return d, nil
}

// GetByID возвращает площадку по id
func (d *Directory) GetByID(id string) (*domain.Facility, error) {
	f, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFacilityNotFound, id)
	}
	return f, nil
}

// GetByPhone возвращает площадку по номеру, на который позвонили
func (d *Directory) GetByPhone(number string) (*domain.Facility, error) {
	f, ok := d.byPhone[strings.TrimSpace(number)]
	if !ok {
		return nil, fmt.Errorf("%w: phone %s", ErrFacilityNotFound, number)
	}
	return f, nil
}

// All возвращает все площадки, отсортированные по id
func (d *Directory) All() []*domain.Facility {
	out := make([]*domain.Facility, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// IDs возвращает идентификаторы всех площадок
func (d *Directory) IDs() []string {
	ids := make([]string, 0, len(d.ordered))
	for _, f := range d.ordered {
		ids = append(ids, f.ID)
	}
	return ids
}

// Len количество площадок
func (d *Directory) Len() int {
	return len(d.ordered)
}

// IsNotFound true, если ошибка означает отсутствие площадки
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFacilityNotFound)
}

func normalize(f *domain.Facility) error {
	f.ID = strings.TrimSpace(f.ID)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)

	if f.ID == "" {
		return fmt.Errorf("%w: facility_id is required", ErrInvalidFacility)
	}

	if f.NumberOfCourts <= 0 {
		return fmt.Errorf("%w: %s: number_of_courts must be positive", ErrInvalidFacility, f.ID)
	}

	open, err := types.NewTimeStringFromString(f.OpenTime.String())
	if err != nil {
		return fmt.Errorf("%w: %s: open_time: %v", ErrInvalidFacility, f.ID, err)
	}
	closeAt, err := types.NewTimeStringFromString(f.CloseTime.String())
	if err != nil {
		return fmt.Errorf("%w: %s: close_time: %v", ErrInvalidFacility, f.ID, err)
	}
	if !open.IsBefore(closeAt) {
		return fmt.Errorf("%w: %s: open_time %s must be before close_time %s",
			ErrInvalidFacility, f.ID, open, closeAt)
	}
	f.OpenTime = open
	f.CloseTime = closeAt

	if f.BookingRules.MinimumDuration < 0 || f.BookingRules.DurationMultiples < 0 {
		return fmt.Errorf("%w: %s: booking rules must not be negative", ErrInvalidFacility, f.ID)
	}

	return nil
}
