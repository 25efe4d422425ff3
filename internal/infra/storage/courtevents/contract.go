package courtevents

import (
	"context"

	"github.com/m04kA/SMC-VoiceBooking/pkg/txmanager"
)

// DBExecutor интерфейс выполнения запросов, реализуется *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
