package recipient

import (
	"context"
	"strings"

	"assistmenow/internal/domain"
	recipientrepo "assistmenow/internal/repository/recipient"
)

// Service validates and stores recipients.
type Service struct {
	repo recipientrepo.Repository
}

func New(repo recipientrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput mirrors the create payload. Address is a pointer so an omitted address can be told
// apart from an empty one.
type CreateInput struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   *domain.Address `json:"address"`
	Notes     string          `json:"notes"`
	PhotoURL  string          `json:"photoUrl"`
}

func (s *Service) Create(ctx context.Context, createdBy string, in CreateInput) (*domain.Recipient, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" || in.Address == nil {
		return nil, domain.Invalid("First name, last name, and address are required")
	}
	return s.repo.Create(ctx, domain.Recipient{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   *in.Address,
		Notes:     in.Notes,
		PhotoURL:  in.PhotoURL,
		CreatedBy: createdBy,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Recipient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Recipient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, patch domain.RecipientPatch) (*domain.Recipient, error) {
	return s.repo.Update(ctx, id, func(r *domain.Recipient) error {
		patch.Apply(r)
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
