package review

import "errors"

// Repository defines persistence operations for reviews.
type Repository interface {
	List() ([]Review, error)
	ToggleVisibility(id int) (Review, error)
	SetResponse(id int, response string) (Review, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Review, error) {
	return s.repo.List()
}

func (s *Service) ToggleVisibility(id int) (Review, error) {
	return s.repo.ToggleVisibility(id)
}

func (s *Service) Respond(id int, response string) (Review, error) {
	if response == "" {
		return Review{}, errors.New("response cannot be empty")
	}
	return s.repo.SetResponse(id, response)
}
