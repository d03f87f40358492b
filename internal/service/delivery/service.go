package delivery

import (
	"context"
	"strings"
	"time"

	"assistmenow/internal/domain"
	deliveryrepo "assistmenow/internal/repository/delivery"
)

// Service owns the delivery lifecycle.
//
// By default any status in the vocabulary may be set from any other status, so operators can
// correct mistakes by hand. With strict transitions enabled, moves outside domain.CanTransition
// fail with domain.ErrInvalidTransition.
type Service struct {
	repo   deliveryrepo.Repository
	now    func() time.Time
	strict bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for delivery dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithStrictTransitions turns transition checking on or off.
func WithStrictTransitions(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

func New(repo deliveryrepo.Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Strict reports whether transition checking is on.
func (s *Service) Strict() bool {
	return s.strict
}

type CreateInput struct {
	HamperID      string     `json:"hamperId"`
	RecipientID   string     `json:"recipientId"`
	Status        string     `json:"status"`
	AssignedTo    string     `json:"assignedTo"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	DeliveryDate  *time.Time `json:"deliveryDate"`
	Notes         string     `json:"notes"`
}

// Create stores a new delivery. The hamper and recipient ids are not checked against their
// collections.
func (s *Service) Create(ctx context.Context, createdBy string, in CreateInput) (*domain.Delivery, error) {
	if strings.TrimSpace(in.HamperID) == "" || strings.TrimSpace(in.RecipientID) == "" {
		return nil, domain.Invalid("Hamper ID and recipient ID are required")
	}
	status := domain.DeliveryPending
	if in.Status != "" {
		parsed, err := domain.ParseDeliveryStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	return s.repo.Create(ctx, domain.Delivery{
		HamperID:      in.HamperID,
		RecipientID:   in.RecipientID,
		Status:        status,
		AssignedTo:    in.AssignedTo,
		ScheduledDate: utc(in.ScheduledDate),
		DeliveryDate:  utc(in.DeliveryDate),
		Notes:         in.Notes,
		CreatedBy:     createdBy,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Delivery, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Delivery, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges a partial update. It never stamps the delivery date on its own.
func (s *Service) Update(ctx context.Context, id string, patch domain.DeliveryPatch) (*domain.Delivery, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	patch.ScheduledDate = utc(patch.ScheduledDate)
	patch.DeliveryDate = utc(patch.DeliveryDate)
	return s.repo.Update(ctx, id, func(d *domain.Delivery) error {
		if patch.Status != nil {
			if err := s.checkTransition(d.Status, *patch.Status); err != nil {
				return err
			}
		}
		patch.Apply(d)
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UpdateStatus sets the status of a delivery. Reaching DELIVERED stamps the delivery date with
// the current time, replacing any earlier value; other statuses leave it untouched.
func (s *Service) UpdateStatus(ctx context.Context, id, raw string) (*domain.Delivery, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, domain.Invalid("Status is required")
	}
	status, err := domain.ParseDeliveryStatus(raw)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, func(d *domain.Delivery) error {
		if err := s.checkTransition(d.Status, status); err != nil {
			return err
		}
		d.Status = status
		if status == domain.DeliveryDelivered {
			now := s.now()
			d.DeliveryDate = &now
		}
		return nil
	})
}

// Assign hands a delivery to a user and moves it to ASSIGNED whatever its previous status.
func (s *Service) Assign(ctx context.Context, id, userID string) (*domain.Delivery, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.Invalid("User ID is required")
	}
	return s.repo.Update(ctx, id, func(d *domain.Delivery) error {
		if err := s.checkTransition(d.Status, domain.DeliveryAssigned); err != nil {
			return err
		}
		d.AssignedTo = userID
		d.Status = domain.DeliveryAssigned
		return nil
	})
}

func (s *Service) checkTransition(from, to domain.DeliveryStatus) error {
	if !s.strict || domain.CanTransition(from, to) {
		return nil
	}
	return domain.ErrInvalidTransition
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
