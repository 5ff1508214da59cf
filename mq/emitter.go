package mq

import (
	"context"
	"encoding/json"
	"log"

	"voyago/rdx"
)

const channel = "itinerary-events"

// Event describes a change to an itinerary aggregate.
type Event struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Method     string `json:"method"`
}

// Emit publishes an event to the Redis channel. Failures are logged and
// dropped; event delivery is best effort.
func Emit(ctx context.Context, eventName string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[mq] failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[mq] failed to publish %s event: %v", eventName, err)
	}
}

// StartEventWorker subscribes to the event channel and keeps a capped
// recent-activity list in Redis.
func StartEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[mq] event worker listening...")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[mq] failed to parse event: %v", err)
			continue
		}

		if err := rdx.Conn.LPush(ctx, "events:recent", msg.Payload).Err(); err != nil {
			log.Printf("[mq] failed to record event: %v", err)
			continue
		}
		rdx.Conn.LTrim(ctx, "events:recent", 0, 99)
	}
}
