package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment() *domain.Appointment {
	box := 2
	return &domain.Appointment{
		ID:         "a1",
		CustomerID: "c1",
		BoxID:      &box,
		Date:       "2024-06-10",
		Time:       "09:00",
		Price:      150,
		Status:     domain.StatusEmExecucao,
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	pub := newKafkaPublisher(writer, "detailing.appointments", nopLogger{})
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	event := NewStatusChangedEvent("carbon", domain.StatusConfirmado, testAppointment(), now)
	require.NoError(t, pub.Publish(context.Background(), event))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "carbon", string(msg.Key))
	assert.Equal(t, event.EventID, headerValue(msg.Headers, "event_id"))
	assert.Equal(t, "appointment.status_changed", headerValue(msg.Headers, "event_type"))

	var decoded AppointmentEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, domain.StatusEmExecucao, decoded.Status)
	require.NotNil(t, decoded.PreviousStatus)
	assert.Equal(t, domain.StatusConfirmado, *decoded.PreviousStatus)
	assert.Equal(t, domain.ModelFixed, decoded.Model)
	assert.Equal(t, 2, *decoded.BoxID)

	require.NoError(t, pub.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	pub := newKafkaPublisher(&fakeWriter{err: errors.New("broker down")}, "t", nopLogger{})

	err := pub.Publish(context.Background(), NewCreatedEvent("carbon", "public", testAppointment(), time.Now()))
	require.ErrorIs(t, err, ErrPublish)
}

func TestNewCreatedEvent(t *testing.T) {
	appt := testAppointment()
	event := NewCreatedEvent("carbon", "internal", appt, time.Now())

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, EventAppointmentCreated, event.Type)
	assert.Equal(t, "internal", event.Source)
	assert.Nil(t, event.PreviousStatus)

	// Событие не разделяет указатели с записью
	*appt.BoxID = 3
	assert.Equal(t, 2, *event.BoxID)
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, SplitBrokers(" k1:9092, ,k2:9092 "))
	assert.Nil(t, SplitBrokers(""))
}
