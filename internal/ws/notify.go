package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type PipelineUpdatedEvent struct {
	Type      string `json:"type"`
	ItemID    string `json:"item_id"`
	Stage     string `json:"stage"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyPipelineUpdated tells connected dashboards to refetch after a stage
// move. No-op when no hub is installed (tests, CLI-less runs).
func NotifyPipelineUpdated(itemID uuid.UUID, stage string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := PipelineUpdatedEvent{
		Type:      "pipeline_updated",
		ItemID:    itemID.String(),
		Stage:     stage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
