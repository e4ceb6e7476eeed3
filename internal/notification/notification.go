package notification

import "errors"

// Notification is one entry of the admin inbox. Created server-side; the
// console only reads entries and marks them read.
type Notification struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// Notification types.
const (
	TypeOrder   = "order"
	TypeProduct = "product"
	TypeReview  = "review"
	TypeSystem  = "system"
)

// ListFilter narrows the inbox listing. IsRead is a tri-state: nil means
// both read and unread.
type ListFilter struct {
	Type   string
	IsRead *bool
}

var ErrNotFound = errors.New("notification not found")
