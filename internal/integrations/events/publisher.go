package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

// Publisher публикует события бронирований в kafka; ключ сообщения - id бронирования
type Publisher struct {
	writer MessageWriter
	log    Logger
	now    func() time.Time
}

// NewKafkaPublisher создает publisher поверх kafka-go writer.
// writeTimeout ограничивает запись в брокер
func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration, log Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // события одного бронирования попадают в одну партицию
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: writeTimeout,
		Logger:       kafka.LoggerFunc(func(msg string, args ...interface{}) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error("kafka: "+msg, args...)
		}),
	}
	return NewPublisher(writer, log)
}

// NewPublisher создает publisher поверх произвольного writer
func NewPublisher(writer MessageWriter, log Logger) *Publisher {
	return &Publisher{
		writer: writer,
		log:    log,
		now:    time.Now,
	}
}

// BookingSubmitted публикует booking.submitted
func (p *Publisher) BookingSubmitted(ctx context.Context, booking domain.Booking) error {
	return p.publish(ctx, TypeBookingSubmitted, booking)
}

// StatusChanged публикует booking.status_changed
func (p *Publisher) StatusChanged(ctx context.Context, booking domain.Booking) error {
	return p.publish(ctx, TypeBookingStatusChanged, booking)
}

// Close сбрасывает буфер writer и закрывает соединения
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) publish(ctx context.Context, eventType string, booking domain.Booking) error {
	event := Event{
		Type:       eventType,
		BookingID:  booking.ID,
		HallID:     string(booking.HallID),
		Status:     booking.Status.String(),
		OccurredAt: p.now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(booking.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: write %s for booking id=%s: %v", ErrPublish, eventType, booking.ID, err)
	}

	p.log.Info("published %s for booking id=%s", eventType, booking.ID)
	return nil
}

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

// BookingSubmitted ничего не делает
func (NopPublisher) BookingSubmitted(context.Context, domain.Booking) error { return nil }

// StatusChanged ничего не делает
func (NopPublisher) StatusChanged(context.Context, domain.Booking) error { return nil }

// Close ничего не делает
func (NopPublisher) Close() error { return nil }
