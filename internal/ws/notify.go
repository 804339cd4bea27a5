package ws

import (
	"encoding/json"
	"time"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/resource"

	"github.com/google/uuid"
)

const (
	EventJobsUpdated      = "jobs_updated"
	EventResourcesUpdated = "resources_updated"
)

type UpdateEvent struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Timestamp string    `json:"timestamp"`
}

// Notifier turns catalogue changes into hub broadcasts.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) JobCreated(j job.Job) {
	n.publish(EventJobsUpdated, j.ID, j.Title)
}

func (n *Notifier) ResourceCreated(r resource.Resource) {
	n.publish(EventResourcesUpdated, r.ID, r.Title)
}

func (n *Notifier) publish(kind string, id uuid.UUID, title string) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(UpdateEvent{
		Type:      kind,
		ID:        id,
		Title:     title,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
