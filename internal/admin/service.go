package admin

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

// ServiceInterface lets handlers in other packages depend on the admin
// service without the concrete type.
type ServiceInterface interface {
	Authenticate(email, password string) (Admin, error)
	GetByID(id int) (Admin, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (Admin, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Authenticate(email, password string) (Admin, error) {
	a, err := s.repo.GetByEmail(email)
	if err != nil {
		return Admin{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return Admin{}, ErrInvalidCredentials
	}

	return a, nil
}

// Seed creates the bootstrap admin account when the table is empty, so a
// fresh deployment can be logged into.
func (s *Service) Seed(name, email, password string) error {
	n, err := s.repo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(Admin{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return err
}
