package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/facilities"
	"github.com/m04kA/SMC-VoiceBooking/internal/service/functions"
)

// Session одна realtime сессия звонка, привязанная к площадке
type Session struct {
	id           string
	conn         *websocket.Conn
	facility     *domain.Facility
	callerNumber string
	dispatcher   FunctionDispatcher
	cfg          Config
	logger       Logger
	now          func() time.Time
}

func newSession(conn *websocket.Conn, facility *domain.Facility, callerNumber string,
	dispatcher FunctionDispatcher, cfg Config, logger Logger) *Session {
	return &Session{
		id:           fmt.Sprintf("session_%s_%s", facility.ID, uuid.NewString()),
		conn:         conn,
		facility:     facility,
		callerNumber: callerNumber,
		dispatcher:   dispatcher,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// ID идентификатор сессии
func (s *Session) ID() string {
	return s.id
}

// Run отправляет session.created и обрабатывает сообщения до закрытия соединения
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.cfg.MaxMessageBytes > 0 {
		s.conn.SetReadLimit(s.cfg.MaxMessageBytes)
	}
	if s.cfg.ReadTimeout > 0 {
		_ = s.conn.SetReadDeadline(s.now().Add(s.cfg.ReadTimeout))
		s.conn.SetPongHandler(func(string) error {
			return s.conn.SetReadDeadline(s.now().Add(s.cfg.ReadTimeout))
		})
	}

	if err := s.send(SessionCreated{
		Type:         TypeSessionCreated,
		SessionID:    s.id,
		Facility:     s.facility.Name,
		SystemPrompt: facilities.SystemPrompt(s.facility, s.callerNumber),
		Functions:    functions.Definitions(),
	}); err != nil {
		return err
	}

	if s.cfg.PingInterval > 0 {
		go s.keepAlive(ctx)
	}

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				return nil
			}
			return err
		}

		if s.cfg.ReadTimeout > 0 {
			_ = s.conn.SetReadDeadline(s.now().Add(s.cfg.ReadTimeout))
		}

		if err := s.handle(ctx, data); err != nil {
			return err
		}
	}
}

func (s *Session) handle(ctx context.Context, data []byte) error {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.logger.Error("Realtime %s: invalid JSON received: %v", s.id, err)
		return s.send(ErrorMessage{Type: TypeError, Error: "Invalid JSON format"})
	}

	switch msg.Type {
	case TypeFunctionCall:
		result := s.dispatcher.Call(ctx, msg.FunctionName, msg.Arguments, s.facility.ID)
		return s.send(FunctionResult{
			Type:         TypeFunctionResult,
			FunctionName: msg.FunctionName,
			Result:       result,
		})

	case TypeAudio:
		// Аудио не обрабатывается, только подтверждается
		return s.send(AudioReceived{
			Type:      TypeAudioReceived,
			Timestamp: s.now().UTC().Format(time.RFC3339Nano),
		})

	case TypeSessionUpdate:
		s.logger.Info("Realtime %s: session update received", s.id)
		return s.send(SessionUpdated{Type: TypeSessionUpdated, SessionID: s.id})

	case TypePing:
		return s.send(Pong{Type: TypePong})

	default:
		s.logger.Warn("Realtime %s: unknown message type: %q", s.id, msg.Type)
		return nil
	}
}

func (s *Session) send(v interface{}) error {
	if s.cfg.WriteTimeout > 0 {
		_ = s.conn.SetWriteDeadline(s.now().Add(s.cfg.WriteTimeout))
	}
	if err := s.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("realtime: write: %w", err)
	}
	return nil
}

// keepAlive шлет websocket ping, pong продлевает read deadline
func (s *Session) keepAlive(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deadline := s.now().Add(s.cfg.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				if !errors.Is(err, websocket.ErrCloseSent) {
					s.logger.Warn("Realtime %s: ping failed: %v", s.id, err)
				}
				return
			}
		}
	}
}
