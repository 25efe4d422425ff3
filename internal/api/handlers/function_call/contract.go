package function_call

import (
	"context"
	"encoding/json"
)

type FunctionDispatcher interface {
	Call(ctx context.Context, name string, args json.RawMessage, defaultFacilityID string) interface{}
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
