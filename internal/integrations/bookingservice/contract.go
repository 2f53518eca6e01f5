package bookingservice

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает длительность и исход каждого исходящего запроса
type Observer interface {
	ObserveOutbound(operation string, status string, duration time.Duration)
}
