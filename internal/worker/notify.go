package worker

// WebSocket message protocol, forwarded to the frontend via Redis Pub/Sub.
// Field names must stay in sync with the frontend's handler.
type DocumentGenerationNotifyMessage struct {
	Status        string `json:"status"`
	Kind          string `json:"kind"`
	DocumentID    uint   `json:"document_id,omitempty"`
	Title         string `json:"title,omitempty"`
	CorrelationID string `json:"correlation_id"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}
