package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/slots"
)

// validateRequest проверяет данные клиента
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput,
			&slots.RuleError{Kind: ErrInvalidInput, Reason: "Customer name is required"})
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput,
			&slots.RuleError{Kind: ErrInvalidInput, Reason: "Customer phone number is required"})
	}

	return nil
}

// validateBooking проверяет слот, номера кортов и часы работы, первая ошибка возвращается сразу
func validateBooking(req *Request, facility *domain.Facility) error {
	if err := slots.ValidateBookingSlot(req.StartTime, req.DurationMinutes, facility.BookingRules); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSlot, err)
	}

	if err := slots.ValidateCourtNumbers(req.CourtNumbers, facility.NumberOfCourts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCourts, err)
	}

	if err := slots.CheckOperatingHours(req.StartTime, req.DurationMinutes, facility); err != nil {
		if errors.Is(err, slots.ErrOpensLater) || errors.Is(err, slots.ErrClosesEarlier) {
			return fmt.Errorf("%w: %w", ErrOutsideHours, err)
		}
		return err
	}

	return nil
}

// firstUnavailable возвращает первый запрошенный корт, которого нет среди свободных
func firstUnavailable(requested, free []int) (int, bool) {
	freeSet := make(map[int]struct{}, len(free))
	for _, c := range free {
		freeSet[c] = struct{}{}
	}

	for _, c := range requested {
		if _, ok := freeSet[c]; !ok {
			return c, true
		}
	}
	return 0, false
}

// lockKey ключ блокировки: площадка и дата
func lockKey(facilityID, date string) string {
	return facilityID + "|" + strings.TrimSpace(date)
}
