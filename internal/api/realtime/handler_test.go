package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/pkg/logger"
)

type stubDirectory map[string]*domain.Facility

func (s stubDirectory) GetByID(id string) (*domain.Facility, error) {
	f, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("not found: %s", id)
	}
	return f, nil
}

type call struct {
	name            string
	args            string
	defaultFacility string
}

type stubDispatcher struct {
	mu    sync.Mutex
	calls []call
}

func (s *stubDispatcher) Call(_ context.Context, name string, args json.RawMessage, defaultFacilityID string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call{name: name, args: string(args), defaultFacility: defaultFacilityID})
	return map[string]interface{}{"success": true, "available": true, "free_courts": []int{1, 2}}
}

type stubMetrics struct {
	opened atomic.Int32
	closed atomic.Int32
}

func (m *stubMetrics) RealtimeSessionOpened() { m.opened.Add(1) }
func (m *stubMetrics) RealtimeSessionClosed() { m.closed.Add(1) }

func newServer(t *testing.T) (*httptest.Server, *stubDispatcher, *stubMetrics) {
	t.Helper()

	dir := stubDirectory{
		"PBC001": {
			ID:             "PBC001",
			Name:           "Play Badminton Center",
			NumberOfCourts: 4,
			OpenTime:       "06:00",
			CloseTime:      "22:00",
		},
	}
	dispatcher := &stubDispatcher{}
	metrics := &stubMetrics{}

	h := NewHandler(dir, dispatcher, metrics, DefaultConfig(), logger.Nop())
	mux := http.NewServeMux()
	mux.HandleFunc("/realtime", h.Handle)
	mux.HandleFunc("/realtime/status", h.HandleStatus)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, dispatcher, metrics
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/realtime?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestRealtime_SessionCreated(t *testing.T) {
	srv, _, metrics := newServer(t)
	conn := dial(t, srv, "facility_id=PBC001&caller_number=%2B919876543210")

	msg := readJSON(t, conn)
	assert.Equal(t, TypeSessionCreated, msg["type"])
	assert.Equal(t, "Play Badminton Center", msg["facility"])
	assert.True(t, strings.HasPrefix(msg["session_id"].(string), "session_PBC001_"))
	assert.Contains(t, msg["system_prompt"], "CALLER ID: +919876543210")

	fns, ok := msg["functions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, fns, 2)

	assert.Eventually(t, func() bool { return metrics.opened.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestRealtime_Protocol(t *testing.T) {
	srv, dispatcher, metrics := newServer(t)
	conn := dial(t, srv, "facility_id=PBC001")
	created := readJSON(t, conn)

	// function_call
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(
		`{"type":"function_call","function_name":"check_availability","arguments":{"date":"2025-06-01","start_time":"14:00","duration_minutes":60,"number_of_courts":2}}`)))
	msg := readJSON(t, conn)
	assert.Equal(t, TypeFunctionResult, msg["type"])
	assert.Equal(t, "check_availability", msg["function_name"])
	assert.Equal(t, map[string]interface{}{
		"success":     true,
		"available":   true,
		"free_courts": []interface{}{float64(1), float64(2)},
	}, msg["result"])

	// ping
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	assert.Equal(t, map[string]interface{}{"type": "pong"}, readJSON(t, conn))

	// session.update
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"session.update"}`)))
	assert.Equal(t, map[string]interface{}{"type": TypeSessionUpdated, "session_id": created["session_id"]}, readJSON(t, conn))

	// audio
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"audio","audio":"AAAA"}`)))
	msg = readJSON(t, conn)
	assert.Equal(t, TypeAudioReceived, msg["type"])
	_, err := time.Parse(time.RFC3339Nano, msg["timestamp"].(string))
	assert.NoError(t, err)

	// unknown type is ignored, invalid JSON is reported
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"response.create"}`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	assert.Equal(t, map[string]interface{}{"type": TypeError, "error": "Invalid JSON format"}, readJSON(t, conn))

	dispatcher.mu.Lock()
	require.Len(t, dispatcher.calls, 1)
	assert.Equal(t, "check_availability", dispatcher.calls[0].name)
	assert.Equal(t, "PBC001", dispatcher.calls[0].defaultFacility)
	assert.Contains(t, dispatcher.calls[0].args, `"number_of_courts":2`)
	dispatcher.mu.Unlock()

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	assert.Eventually(t, func() bool { return metrics.closed.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestRealtime_UnknownFacility(t *testing.T) {
	srv, _, metrics := newServer(t)
	conn := dial(t, srv, "facility_id=NOPE")

	assert.Equal(t, map[string]interface{}{"type": TypeError, "error": "Facility not found: NOPE"}, readJSON(t, conn))

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
	assert.Equal(t, int32(0), metrics.opened.Load())
}

func TestRealtime_MissingFacilityID(t *testing.T) {
	srv, _, _ := newServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/realtime"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRealtime_Status(t *testing.T) {
	srv, _, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/realtime/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got StatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, StatusResponse{
		Status:             "active",
		Endpoint:           "/realtime",
		Protocol:           "WebSocket",
		SupportedFunctions: []string{"check_availability", "create_booking"},
	}, got)
}
