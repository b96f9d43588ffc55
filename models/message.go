package models

// Message is a single stored chat message.
// Timestamp is ISO-8601 text and is stored as given; ordering relies on its
// lexicographic sortability.
type Message struct {
	ID        int64  `db:"id" json:"id"`
	Sender    string `db:"sender" json:"sender"`
	Receiver  string `db:"receiver" json:"receiver"`
	Body      string `db:"body" json:"message"`
	Timestamp string `db:"timestamp" json:"timestamp"`
	// ReplyTo is set on acknowledgments and points at the answered message.
	ReplyTo *int64 `db:"reply_to" json:"-"`
}
