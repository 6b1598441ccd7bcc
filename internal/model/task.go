package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus enum constants
const (
	TaskNotStarted       = "Not Started"
	TaskInProgress       = "In Progress"
	TaskAwaitingFeedback = "Awaiting Client Feedback"
	TaskCompleted        = "Completed"
)

// TaskPriority enum constants
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Task is a unit of work under a Request, optionally assigned to a User.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"request_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      string     `gorm:"type:varchar(30);not null;default:'Not Started';index" json:"status"` // Not Started, In Progress, Awaiting Client Feedback, Completed
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index" json:"assignee_id"`
	Assignee    *User      `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Priority    string     `gorm:"type:varchar(10);not null" json:"priority"` // High, Medium, Low
	DueDate     *time.Time `json:"due_date"`
	Documents   []Document `gorm:"foreignKey:TaskID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// ValidTaskStatus reports whether status is a member of the task status enum
func ValidTaskStatus(status string) bool {
	switch status {
	case TaskNotStarted, TaskInProgress, TaskAwaitingFeedback, TaskCompleted:
		return true
	}
	return false
}

// ValidTaskPriority reports whether priority is a member of the priority enum
func ValidTaskPriority(priority string) bool {
	switch priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
