package entities

import "time"

type ActivityKind string

const (
	ActivityUserCreated   ActivityKind = "user_created"
	ActivityCourseCreated ActivityKind = "course_created"
	ActivityCourseUpdated ActivityKind = "course_updated"
	ActivityCourseDeleted ActivityKind = "course_deleted"
)

// ActivityEvent describes one change to the catalog. Events are kept in a
// bounded in-memory buffer and pushed to websocket subscribers; they are
// never persisted.
type ActivityEvent struct {
	Kind      ActivityKind `json:"kind"`
	UserID    uint         `json:"user_id,omitempty"`
	CourseID  uint         `json:"course_id,omitempty"`
	Title     string       `json:"title,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
