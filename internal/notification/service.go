package notification

import "time"

// Repository defines persistence operations for the admin inbox.
type Repository interface {
	Create(n Notification) (Notification, error)
	List(f ListFilter) ([]Notification, error)
	UnreadCount() (int, error)
	MarkRead(id int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record stores an unread notification. Other domain handlers call this
// through the order.Notifier interface.
func (s *Service) Record(notifType, title, message string) error {
	_, err := s.repo.Create(Notification{
		Type:      notifType,
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return err
}

func (s *Service) List(f ListFilter) ([]Notification, error) {
	return s.repo.List(f)
}

func (s *Service) UnreadCount() (int, error) {
	return s.repo.UnreadCount()
}

func (s *Service) MarkRead(id int) error {
	return s.repo.MarkRead(id)
}
