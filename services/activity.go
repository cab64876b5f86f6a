package services

import (
	"encoding/json"
	"log"
	"time"

	"course-server/cache"
	"course-server/entities"
	"course-server/ws"
)

// ActivityRecorder buffers catalog events and pushes them to websocket
// subscribers as they happen.
type ActivityRecorder struct {
	buffer *cache.ActivityBuffer
	mgr    *ws.Manager
}

func NewActivityRecorder(mgr *ws.Manager, bufferSize int) *ActivityRecorder {
	return &ActivityRecorder{
		buffer: cache.NewActivityBuffer(bufferSize),
		mgr:    mgr,
	}
}

// Record stamps the event, stores it in the buffer and broadcasts it.
func (ar *ActivityRecorder) Record(event entities.ActivityEvent) {
	event.Timestamp = time.Now().UTC()
	ar.buffer.Add(event)

	if ar.mgr == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("could not encode activity event: %v", err)
		return
	}
	ar.mgr.Broadcast(payload)
}

// Recent returns the buffered events, oldest first.
func (ar *ActivityRecorder) Recent() []entities.ActivityEvent {
	return ar.buffer.Recent()
}

// Stats returns buffer statistics.
func (ar *ActivityRecorder) Stats() map[string]interface{} {
	return ar.buffer.Stats()
}
