package hamper

import (
	"context"
	"strings"

	"assistmenow/internal/domain"
	hamperrepo "assistmenow/internal/repository/hamper"
)

// Service validates and stores hampers.
type Service struct {
	repo hamperrepo.Repository
}

func New(repo hamperrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput mirrors the create payload. Contents must be present as an array; an empty array is
// accepted.
type CreateInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Contents    *[]domain.HamperItem `json:"contents"`
}

func (s *Service) Create(ctx context.Context, createdBy string, in CreateInput) (*domain.Hamper, error) {
	if strings.TrimSpace(in.Name) == "" || in.Contents == nil {
		return nil, domain.Invalid("Name and contents array are required")
	}
	if err := domain.ValidateItems(*in.Contents); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Hamper{
		Name:        in.Name,
		Description: in.Description,
		Contents:    append([]domain.HamperItem{}, (*in.Contents)...),
		CreatedBy:   createdBy,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Hamper, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Hamper, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, patch domain.HamperPatch) (*domain.Hamper, error) {
	if patch.Contents != nil {
		if err := domain.ValidateItems(*patch.Contents); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, func(h *domain.Hamper) error {
		patch.Apply(h)
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
