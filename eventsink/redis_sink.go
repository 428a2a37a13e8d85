package eventsink

import (
	"context"
	"encoding/json"
	"time"

	"code.cloudfoundry.org/auctionhouse/auctiontypes"
	"code.cloudfoundry.org/lager/v3"
	"github.com/redis/go-redis/v9"
)

const DefaultRedisChannel = "auctionhouse:events"

// RedisSink publishes every event as JSON on a house-wide channel and on a
// per-auction channel, for displays running outside the process.
type RedisSink struct {
	client  redis.UniversalClient
	channel string
	timeout time.Duration
	logger  lager.Logger
}

func NewRedisSink(client redis.UniversalClient, channel string, logger lager.Logger) *RedisSink {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisSink{
		client:  client,
		channel: channel,
		timeout: 2 * time.Second,
		logger:  logger.Session("redis-sink", lager.Data{"channel": channel}),
	}
}

func (s *RedisSink) AuctionChannel(auctionGuid string) string {
	return s.channel + ":" + auctionGuid
}

func (s *RedisSink) Emit(event auctiontypes.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed-to-marshal-event", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Publish(ctx, s.channel, payload)
		pipe.Publish(ctx, s.AuctionChannel(event.AuctionGuid), payload)
		return nil
	})
	if err != nil {
		s.logger.Error("failed-to-publish-event", err, lager.Data{"type": event.Type})
	}
}
