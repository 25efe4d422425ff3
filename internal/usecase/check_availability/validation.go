package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-VoiceBooking/internal/service/slots"
)

// validateRequest проверяет поля, которые не покрывают правила площадки
func validateRequest(req *Request) error {
	if req.NumberOfCourts < 1 {
		return fmt.Errorf("%w: %w", ErrSlotRejected,
			&slots.RuleError{Kind: ErrInvalidInput, Reason: "At least one court must be requested"})
	}
	return nil
}
