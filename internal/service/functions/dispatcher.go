package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-VoiceBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-VoiceBooking/internal/usecase/create_booking"
)

// Result ответ функции, которую нельзя было выполнить
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Dispatcher вызывает use case по имени функции
type Dispatcher struct {
	checkAvailability CheckAvailabilityUseCase
	createBooking     CreateBookingUseCase
	logger            Logger
}

// NewDispatcher создает диспетчер вызовов функций
func NewDispatcher(
	checkAvailability CheckAvailabilityUseCase,
	createBooking CreateBookingUseCase,
	logger Logger,
) *Dispatcher {
	return &Dispatcher{
		checkAvailability: checkAvailability,
		createBooking:     createBooking,
		logger:            logger,
	}
}

// Call выполняет функцию name с аргументами args.
// args может быть JSON-объектом или строкой с JSON-объектом.
// Если в аргументах нет facility_id, подставляется defaultFacilityID.
// Результат всегда сериализуем в JSON, ошибки возвращаются в теле ответа
func (d *Dispatcher) Call(ctx context.Context, name string, args json.RawMessage, defaultFacilityID string) interface{} {
	d.logger.Info("Function call: %s with args: %s", name, string(args))

	switch name {
	case CheckAvailability:
		var req check_availability.Request
		if err := decodeArguments(args, checkAvailabilityRequired, defaultFacilityID, &req); err != nil {
			return d.invalid(name, err)
		}
		return d.checkAvailability.Execute(ctx, &req)

	case CreateBooking:
		var req create_booking.Request
		if err := decodeArguments(args, createBookingRequired, defaultFacilityID, &req); err != nil {
			return d.invalid(name, err)
		}
		return d.createBooking.Execute(ctx, &req)

	default:
		d.logger.Warn("Function call: unknown function %q", name)
		return &Result{Success: false, Error: fmt.Sprintf("Unknown function: %s", name)}
	}
}

func (d *Dispatcher) invalid(name string, err error) *Result {
	d.logger.Warn("Function call: %s: %v", name, err)
	return &Result{Success: false, Error: fmt.Sprintf("Error executing %s: %v", name, err)}
}

// decodeArguments разбирает аргументы и проверяет обязательные поля
func decodeArguments(raw json.RawMessage, required []string, defaultFacilityID string, dst interface{}) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}

	// Модели часто присылают аргументы строкой с JSON внутри
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		raw = []byte(inner)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: arguments must be a JSON object: %v", ErrInvalidArguments, err)
	}

	if _, ok := fields["facility_id"]; !ok && defaultFacilityID != "" {
		encoded, _ := json.Marshal(defaultFacilityID)
		fields["facility_id"] = encoded
	}

	for _, name := range required {
		value, ok := fields[name]
		if !ok || bytes.Equal(value, []byte("null")) {
			return fmt.Errorf("%w: missing required field %s", ErrInvalidArguments, name)
		}
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}

	if err := json.Unmarshal(normalized, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}
