package logger

import (
	"log/slog"
	"time"
)

// LogSearch logs a finished search request
func LogSearch(request string, matches int, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "search"),
		slog.String("request", request),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Search failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Search executed", append(attrs, slog.Int("matches", matches))...)
	}
}

// LogFetch logs loading a set
func LogFetch(code, location string, cards int, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "fetch"),
		slog.String("name", code),
		slog.String("location", location),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Set fetch failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Set fetched", append(attrs, slog.Int("cards", cards))...)
	}
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
