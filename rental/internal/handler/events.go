package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"github.com/rentacar/rental-service/pkg/kafka"
	"github.com/rentacar/rental-service/rental/internal/model"
)

// EventLog records booking outcomes after the transaction has committed.
// Best-effort: a failed publish never fails the request.
type EventLog interface {
	Booking(op string, res model.Reservation) error
}

type eventLog struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewEventLog(producer sarama.AsyncProducer, topic string) *eventLog {
	return &eventLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *eventLog) Booking(op string, res model.Reservation) error {
	ev := kafka.EventBooking{
		ID:            uuid.NewString(),
		Operation:     op,
		ClientID:      res.ClientID,
		VehiclePlate:  res.Plate,
		ReservationID: res.ID,
		At:            time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	l.producer.Input() <- &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
	return nil
}
