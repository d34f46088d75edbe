package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"rental-events"`
}

// EventBooking is published after a booking operation commits.
type EventBooking struct {
	ID            string    `json:"id"`
	Operation     string    `json:"operation"`
	ClientID      string    `json:"clientId"`
	VehiclePlate  string    `json:"vehiclePlate"`
	ReservationID int64     `json:"reservationId"`
	At            time.Time `json:"at"`
}

const (
	OpRent   = "RENT"
	OpCancel = "CANCEL"
)

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}
