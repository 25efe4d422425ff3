package slots

import (
	"fmt"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/pkg/types"
)

// ValidateSlotAlignment проверяет, что время начала приходится на границу часа (06:00, 14:00)
func ValidateSlotAlignment(startTime string) error {
	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return invalidTimeFormat(startTime)
	}

	if start.Minute() != 0 {
		return ruleError(ErrMisalignedStart,
			fmt.Sprintf("Start time must align with hourly boundaries (e.g., 06:00, 14:00). Got %s", startTime))
	}

	return nil
}

// ValidateDuration проверяет минимальную длительность и кратность шагу
func ValidateDuration(durationMinutes, minimumDuration, durationMultiples int) error {
	if durationMinutes < minimumDuration {
		return ruleError(ErrDurationTooShort,
			fmt.Sprintf("Duration must be at least %d minutes", minimumDuration))
	}

	if durationMultiples > 0 && durationMinutes%durationMultiples != 0 {
		return ruleError(ErrDurationNotMultiple,
			fmt.Sprintf("Duration must be a multiple of %d minutes. Got %d", durationMultiples, durationMinutes))
	}

	return nil
}

// ValidateBookingSlot проверяет слот целиком по правилам площадки.
// Выравнивание проверяется только при fixed slots, первая найденная ошибка возвращается сразу
func ValidateBookingSlot(startTime string, durationMinutes int, rules domain.BookingRules) error {
	if rules.FixedSlotsOnly() {
		if err := ValidateSlotAlignment(startTime); err != nil {
			return err
		}
	}

	return ValidateDuration(durationMinutes, rules.MinDuration(), rules.Multiple())
}

// ValidateCourtNumbers проверяет номера кортов: непустой список, диапазон 1..totalCourts, без повторов
func ValidateCourtNumbers(courtNumbers []int, totalCourts int) error {
	if len(courtNumbers) == 0 {
		return ruleError(ErrNoCourts, "At least one court must be specified")
	}

	for _, n := range courtNumbers {
		if n < 1 || n > totalCourts {
			return ruleError(ErrCourtOutOfRange,
				fmt.Sprintf("Invalid court number %d. Facility has courts 1-%d", n, totalCourts))
		}
	}

	seen := make(map[int]struct{}, len(courtNumbers))
	for _, n := range courtNumbers {
		if _, ok := seen[n]; ok {
			return ruleError(ErrDuplicateCourts, "Duplicate court numbers found in request")
		}
		seen[n] = struct{}{}
	}

	return nil
}

func invalidTimeFormat(value string) error {
	return ruleError(ErrInvalidTimeFormat, fmt.Sprintf("Invalid time format: %s. Expected HH:MM", value))
}
