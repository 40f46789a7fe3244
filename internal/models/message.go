package models

// MessagePriority represents the triage priority of a message
type MessagePriority string

const (
	PriorityLow    MessagePriority = "low"
	PriorityNormal MessagePriority = "normal"
	PriorityHigh   MessagePriority = "high"
	PriorityUrgent MessagePriority = "urgent"
)

// Valid reports whether the priority is within the closed set.
func (p MessagePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Message represents one entry in a conversation thread. The sender is
// linked by id with the display name carried alongside; threadId groups
// messages into a conversation.
type Message struct {
	ID          string          `json:"id"`
	SenderID    string          `json:"senderId"`
	Sender      string          `json:"sender"`
	Content     string          `json:"content"`
	Timestamp   string          `json:"timestamp"`
	IsFromUser  bool            `json:"isFromUser"`
	Attachments []string        `json:"attachments"`
	Priority    MessagePriority `json:"priority"`
	Read        bool            `json:"read"`
	ThreadID    string          `json:"threadId"`
}
