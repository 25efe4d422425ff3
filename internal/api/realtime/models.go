package realtime

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-VoiceBooking/internal/service/functions"
)

// Типы сообщений протокола
const (
	TypeSessionCreated = "session.created"
	TypeSessionUpdate  = "session.update"
	TypeSessionUpdated = "session.updated"
	TypeFunctionCall   = "function_call"
	TypeFunctionResult = "function_result"
	TypeAudio          = "audio"
	TypeAudioReceived  = "audio_received"
	TypePing           = "ping"
	TypePong           = "pong"
	TypeError          = "error"
)

// Config параметры realtime сессий
type Config struct {
	ReadTimeout     time.Duration // Сколько ждать сообщения или pong от клиента
	WriteTimeout    time.Duration
	PingInterval    time.Duration // Должен быть меньше ReadTimeout
	MaxMessageBytes int64
}

// DefaultConfig значения по умолчанию
func DefaultConfig() Config {
	return Config{
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageBytes: 1 << 20,
	}
}

// ClientMessage входящее сообщение клиента
type ClientMessage struct {
	Type         string          `json:"type"`
	FunctionName string          `json:"function_name,omitempty"`
	Arguments    json.RawMessage `json:"arguments,omitempty"`
}

// SessionCreated первое сообщение сессии
type SessionCreated struct {
	Type         string                 `json:"type"`
	SessionID    string                 `json:"session_id"`
	Facility     string                 `json:"facility"`
	SystemPrompt string                 `json:"system_prompt"`
	Functions    []functions.Definition `json:"functions"`
}

// FunctionResult результат вызова функции
type FunctionResult struct {
	Type         string      `json:"type"`
	FunctionName string      `json:"function_name"`
	Result       interface{} `json:"result"`
}

// AudioReceived подтверждение получения аудио
type AudioReceived struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// SessionUpdated подтверждение обновления сессии
type SessionUpdated struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// Pong ответ на ping
type Pong struct {
	Type string `json:"type"`
}

// ErrorMessage ошибка протокола
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// StatusResponse HTTP response model для /realtime/status
type StatusResponse struct {
	Status             string   `json:"status"`
	Endpoint           string   `json:"endpoint"`
	Protocol           string   `json:"protocol"`
	SupportedFunctions []string `json:"supported_functions"`
}
