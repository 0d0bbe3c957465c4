// Package notify delivers catalog read results to out-of-band observers.
//
// Read and list operations return their result to the immediate caller and
// additionally publish the same payload as an event, so clients that watch
// the catalog (rather than call it) see identical data.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds, one per read/list operation that emits.
const (
	KindBucketList = "bucket_list"
	KindBucketTags = "bucket_tags"
	KindObjectMeta = "object_meta"
	KindObjectTags = "object_tags"
	KindObjectList = "object_list"
)

// Event is one published observation. Payload carries the operation result
// exactly as returned to the caller.
type Event struct {
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"`
	Bucket    string `json:"bucket,omitempty"`
	Object    string `json:"object,omitempty"`
	EmittedMS uint64 `json:"emitted_ms"`
	Payload   any    `json:"payload"`
}

// Notifier publishes catalog events. Implementations must treat delivery
// as best-effort: the direct return value is authoritative and a publish
// failure never fails the originating operation.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

// NewEvent stamps an event with a fresh ID and the current time.
func NewEvent(kind, bucket, object string, payload any) Event {
	return Event{
		EventID:   uuid.NewString(),
		Kind:      kind,
		Bucket:    bucket,
		Object:    object,
		EmittedMS: uint64(time.Now().UnixMilli()),
		Payload:   payload,
	}
}

// MemoryNotifier collects events in process. It backs tests and redis-less
// deployments where nothing external observes the catalog.
type MemoryNotifier struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

func (n *MemoryNotifier) Publish(ctx context.Context, event Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

// Events returns a copy of everything published so far.
func (n *MemoryNotifier) Events() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Event, len(n.events))
	copy(out, n.events)
	return out
}

// Reset drops all collected events.
func (n *MemoryNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}
