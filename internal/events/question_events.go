package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents different kinds of question lifecycle events
type EventType string

const (
	EventQuestionCreated EventType = "question.created"
	EventQuestionDeleted EventType = "question.deleted"
)

const eventSource = "trivia-service"

// QuestionEvent is the base event structure for question lifecycle events
type QuestionEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

// QuestionCreatedEvent is emitted after a question row is persisted
type QuestionCreatedEvent struct {
	QuestionID uint `json:"question_id"`
	CategoryID uint `json:"category_id"`
	Difficulty int  `json:"difficulty"`
}

// QuestionDeletedEvent is emitted after a question row is removed
type QuestionDeletedEvent struct {
	QuestionID uint `json:"question_id"`
}

// NewQuestionCreatedEvent builds an event envelope for a created question
func NewQuestionCreatedEvent(questionID, categoryID uint, difficulty int) *QuestionEvent {
	return newEvent(EventQuestionCreated, QuestionCreatedEvent{
		QuestionID: questionID,
		CategoryID: categoryID,
		Difficulty: difficulty,
	})
}

// NewQuestionDeletedEvent builds an event envelope for a deleted question
func NewQuestionDeletedEvent(questionID uint) *QuestionEvent {
	return newEvent(EventQuestionDeleted, QuestionDeletedEvent{
		QuestionID: questionID,
	})
}

func newEvent(eventType EventType, data interface{}) *QuestionEvent {
	return &QuestionEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   "1.0",
		Data:      data,
	}
}
