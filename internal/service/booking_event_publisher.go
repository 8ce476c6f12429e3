package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"facility-booking/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Event types announced to the host application
const (
	EventBookingCreate = "booking:create"
	EventBookingStatus = "booking:status"
)

// BookingEvent is the payload published after a committed booking mutation
type BookingEvent struct {
	Type       string         `json:"type"`
	Booking    entity.Booking `json:"booking"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type BookingEventPublisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

type redisBookingEventPublisher struct {
	redisClient *redis.Client
	channel     string
	log         *logrus.Logger
}

// NewRedisBookingEventPublisher publishes events as JSON on a redis pub/sub channel.
func NewRedisBookingEventPublisher(redisClient *redis.Client, channel string, log *logrus.Logger) BookingEventPublisher {
	return &redisBookingEventPublisher{
		redisClient: redisClient,
		channel:     channel,
		log:         log,
	}
}

func (p *redisBookingEventPublisher) Publish(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode booking event: %w", err)
	}

	receivers, err := p.redisClient.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	p.log.Debugf("Published %s for booking %s to %d subscribers", event.Type, event.Booking.ID, receivers)
	return nil
}
