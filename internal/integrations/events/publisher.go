package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события записей в Kafka
// Ключ сообщения - ключ студии, поэтому события одной студии идут в одну партицию по порядку
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	log    Logger
}

// NewKafkaPublisher создает publisher для указанных брокеров и топика
func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration, log Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(SplitBrokers(strings.Join(brokers, ","))...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: writeTimeout,
	}
	return newKafkaPublisher(writer, topic, log)
}

func newKafkaPublisher(writer messageWriter, topic string, log Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic, log: log}
}

// Publish отправляет событие в Kafka
func (p *KafkaPublisher) Publish(ctx context.Context, event AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.TenantKey),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: topic=%s, type=%s: %v", ErrPublish, p.topic, event.Type, err)
	}

	p.log.Info("Publish: event=%s, type=%s, tenant=%s, appointment=%s",
		event.EventID, event.Type, event.TenantKey, event.AppointmentID)
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher используется, когда публикация событий отключена
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(context.Context, AppointmentEvent) error {
	return nil
}

// Close ничего не делает
func (NoopPublisher) Close() error {
	return nil
}

// SplitBrokers разбирает список брокеров через запятую
func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
