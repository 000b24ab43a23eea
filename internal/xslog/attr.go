package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/thoura/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

// Start and End carry calendar dates of a fetch window.
func Start(date string) slog.Attr {
	const startKey = "start"
	return slog.String(startKey, date)
}

func End(date string) slog.Attr {
	const endKey = "end"
	return slog.String(endKey, date)
}

// Resource names a record collection: sleep, activity or readiness.
func Resource(name string) slog.Attr {
	const resourceKey = "resource"
	return slog.String(resourceKey, name)
}

func Sink(kind string) slog.Attr {
	const sinkKey = "sink"
	return slog.String(sinkKey, kind)
}
