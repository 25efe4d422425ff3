package cancel_booking

// PartialCancelResponse ответ при сбое посреди отмены: часть событий уже удалена
type PartialCancelResponse struct {
	Code              int      `json:"code"`
	Message           string   `json:"message"`
	CancelledEventIDs []string `json:"cancelled_event_ids"`
}
