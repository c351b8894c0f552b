package ws

import (
	"encoding/json"
	"time"
)

type SeedEvent struct {
	Type      string `json:"type"`
	Stage     string `json:"stage,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// SeedNotifier broadcasts reseed lifecycle events over the hub. It
// satisfies the admin usecase's notifier contract.
type SeedNotifier struct {
	hub *Hub
}

func NewSeedNotifier(hub *Hub) *SeedNotifier {
	return &SeedNotifier{hub: hub}
}

func (n *SeedNotifier) ReseedStarted() {
	n.emit(SeedEvent{Type: "reseed_started"})
}

func (n *SeedNotifier) ReseedFinished(err error) {
	evt := SeedEvent{Type: "reseed_finished"}
	if err != nil {
		evt.Type = "reseed_failed"
		evt.Error = err.Error()
	}
	n.emit(evt)
}

// SeedProgress reports one completed seeder stage.
func (n *SeedNotifier) SeedProgress(stage string) {
	n.emit(SeedEvent{Type: "seed_progress", Stage: stage})
}

func (n *SeedNotifier) emit(evt SeedEvent) {
	if n == nil || n.hub == nil {
		return
	}
	evt.Timestamp = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
