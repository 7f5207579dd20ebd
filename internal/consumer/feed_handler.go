package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"example.com/healthpoints/internal/events"
)

// FeedHandler keeps live Prometheus gauges in sync with the points feed and
// logs notable events. It holds no state of its own; the feed is the source
// of truth.
type FeedHandler struct {
	logger *log.Logger
}

// NewFeedHandler builds a FeedHandler.
func NewFeedHandler() *FeedHandler {
	return &FeedHandler{
		logger: log.New(log.Writer(), "[feed] ", log.LstdFlags),
	}
}

// Handle dispatches a decoded feed message by event type. Unknown event types
// are skipped so newer producers do not wedge older consumers.
func (h *FeedHandler) Handle(_ context.Context, msg Message) error {
	switch msg.EventType {
	case events.TypePointsAwarded:
		var payload events.PointsAwarded
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode points.awarded: %w", err)
		}
		recordObservedTotal(payload.TotalPoints)
		h.logger.Printf("award %q %+d (total %d)", payload.Title, payload.Points, payload.TotalPoints)
	case events.TypeAchievementUnlocked:
		var payload events.AchievementUnlocked
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode achievement_unlocked: %w", err)
		}
		recordUnlockObserved()
		h.logger.Printf("achievement unlocked: %s (+%d)", payload.Title, payload.Points)
	case events.TypeActivityRecorded:
		var payload events.ActivityRecorded
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode activity_recorded: %w", err)
		}
		h.logger.Printf("activity %s recorded: %d points", payload.Kind, payload.Points)
	default:
		h.logger.Printf("skipping unknown event type %q", msg.EventType)
	}
	return nil
}
