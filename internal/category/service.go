package category

import "errors"

// Repository defines persistence operations for categories.
type Repository interface {
	List() ([]Category, error)
	Create(cat Category) (Category, error)
	Update(id int, cat Category) (Category, error)
	Delete(id int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) Create(cat Category) (Category, error) {
	if cat.Name == "" {
		return Category{}, errors.New("name is required")
	}
	return s.repo.Create(cat)
}

func (s *Service) Update(id int, cat Category) (Category, error) {
	if cat.Name == "" {
		return Category{}, errors.New("name is required")
	}
	return s.repo.Update(id, cat)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
