package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants, shared by the queue producer and consumer.
const (
	TypeDocumentGenerate = "document:generate"
)

// DocumentGeneratePayload carries the minimal information to generate one
// document. CV and cover letter are separate tasks: each has its own busy
// flag and its own layout pass.
type DocumentGeneratePayload struct {
	UserID        uint   `json:"user_id"`
	Kind          string `json:"kind"`
	TemplateID    string `json:"template_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewDocumentGenerateTask builds a generation task.
func NewDocumentGenerateTask(userID uint, kind, templateID, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(DocumentGeneratePayload{
		UserID:        userID,
		Kind:          kind,
		TemplateID:    templateID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDocumentGenerate, payload), nil
}
