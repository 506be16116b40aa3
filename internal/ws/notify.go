package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NewMatchEvent struct {
	Type       string    `json:"type"`
	JobID      uuid.UUID `json:"job_id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	MatchScore float64   `json:"match_score"`
	Timestamp  string    `json:"timestamp"`
}

// Notifier broadcasts new high-scoring jobs to connected clients.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyNewMatch(id uuid.UUID, title, company string, score float64) {
	if n == nil || n.hub == nil {
		return
	}

	evt := NewMatchEvent{
		Type:       "new_match",
		JobID:      id,
		Title:      title,
		Company:    company,
		MatchScore: score,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
