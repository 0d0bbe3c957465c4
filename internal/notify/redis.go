package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/suis3/catalog/common/logger"
)

// RedisNotifier publishes events on redis pub/sub channels, one channel
// per event kind: <prefix>:<kind>. Observers subscribe with a pattern
// (<prefix>:*) to see every read result.
type RedisNotifier struct {
	redis  *redis.Client
	prefix string
	log    *logger.Logger
}

func NewRedisNotifier(redisClient *redis.Client, prefix string, log *logger.Logger) *RedisNotifier {
	return &RedisNotifier{
		redis:  redisClient,
		prefix: prefix,
		log:    log,
	}
}

func (n *RedisNotifier) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.EventID, err)
	}

	channel := ChannelFor(n.prefix, event.Kind)
	if err := n.redis.Publish(ctx, channel, data).Err(); err != nil {
		n.log.Error("redis PUBLISH failed", "channel", channel, "event_id", event.EventID, "error", err)
		return fmt.Errorf("failed to publish to channel %s: %w", channel, err)
	}

	n.log.Debug("published catalog event", "channel", channel, "kind", event.Kind, "event_id", event.EventID)
	return nil
}

// ChannelFor builds the pub/sub channel name for an event kind.
func ChannelFor(prefix, kind string) string {
	return fmt.Sprintf("%s:%s", prefix, kind)
}

// ChannelPattern matches every channel under the prefix, for PSUBSCRIBE.
func ChannelPattern(prefix string) string {
	return fmt.Sprintf("%s:*", prefix)
}
