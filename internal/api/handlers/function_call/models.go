package function_call

import "encoding/json"

// FunctionCallRequest HTTP request model
type FunctionCallRequest struct {
	FunctionName string          `json:"function_name"`
	Arguments    json.RawMessage `json:"arguments"`
	FacilityID   string          `json:"facility_id,omitempty"` // Площадка по умолчанию для аргументов
}

// FunctionCallResponse HTTP response model
type FunctionCallResponse struct {
	FunctionName string      `json:"function_name"`
	Result       interface{} `json:"result"`
}
