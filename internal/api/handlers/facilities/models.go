package facilities

import (
	"fmt"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	facilitiesService "github.com/m04kA/SMC-VoiceBooking/internal/service/facilities"
)

// ListResponse HTTP response model для списка площадок
type ListResponse struct {
	Count      int               `json:"count"`
	Facilities []FacilitySummary `json:"facilities"`
}

// FacilitySummary краткое описание площадки
type FacilitySummary struct {
	FacilityID     string         `json:"facility_id"`
	FacilityName   string         `json:"facility_name"`
	PhoneNumber    string         `json:"phone_number"`
	NumberOfCourts int            `json:"number_of_courts"`
	OperatingHours string         `json:"operating_hours"`
	Pricing        domain.Pricing `json:"pricing"`
}

// FacilityResponse полное описание площадки с действующими правилами бронирования
type FacilityResponse struct {
	FacilityID     string          `json:"facility_id"`
	FacilityName   string          `json:"facility_name"`
	PhoneNumber    string          `json:"phone_number"`
	NumberOfCourts int             `json:"number_of_courts"`
	OpenTime       string          `json:"open_time"`
	CloseTime      string          `json:"close_time"`
	BookingRules   BookingRules    `json:"booking_rules"`
	Pricing        domain.Pricing  `json:"pricing"`
	Rentals        domain.Rentals  `json:"rentals"`
	Coaching       domain.Coaching `json:"coaching"`
	SystemPrompt   *string         `json:"system_prompt,omitempty"`
}

// BookingRules правила с подставленными значениями по умолчанию
type BookingRules struct {
	MinimumDuration   int  `json:"minimum_duration"`
	DurationMultiples int  `json:"duration_multiples"`
	FixedSlots        bool `json:"fixed_slots"`
}

// FromFacilities конвертирует список площадок в HTTP response
func FromFacilities(list []*domain.Facility) *ListResponse {
	summaries := make([]FacilitySummary, len(list))
	for i, f := range list {
		summaries[i] = FacilitySummary{
			FacilityID:     f.ID,
			FacilityName:   f.Name,
			PhoneNumber:    f.PhoneNumber,
			NumberOfCourts: f.NumberOfCourts,
			OperatingHours: fmt.Sprintf("%s - %s", f.OpenTime, f.CloseTime),
			Pricing:        f.Pricing,
		}
	}

	return &ListResponse{
		Count:      len(list),
		Facilities: summaries,
	}
}

// FromFacility конвертирует площадку в HTTP response
func FromFacility(f *domain.Facility, includePrompt bool) *FacilityResponse {
	resp := &FacilityResponse{
		FacilityID:     f.ID,
		FacilityName:   f.Name,
		PhoneNumber:    f.PhoneNumber,
		NumberOfCourts: f.NumberOfCourts,
		OpenTime:       f.OpenTime.String(),
		CloseTime:      f.CloseTime.String(),
		BookingRules: BookingRules{
			MinimumDuration:   f.BookingRules.MinDuration(),
			DurationMultiples: f.BookingRules.Multiple(),
			FixedSlots:        f.BookingRules.FixedSlotsOnly(),
		},
		Pricing:  f.Pricing,
		Rentals:  f.Rentals,
		Coaching: f.Coaching,
	}

	if includePrompt {
		prompt := facilitiesService.SystemPrompt(f, "")
		resp.SystemPrompt = &prompt
	}

	return resp
}
