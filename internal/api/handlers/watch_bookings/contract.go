package watch_bookings

import "context"

type SnapshotProvider interface {
	SnapshotJSON(ctx context.Context) ([]byte, error)
}

type Hub interface {
	Subscribe() (<-chan []byte, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
