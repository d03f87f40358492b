// Package report folds the live collections into dashboard summaries. Nothing is cached; every
// call rescans the repositories.
package report

import (
	"context"

	"assistmenow/internal/domain"
	"golang.org/x/sync/errgroup"
)

type deliveryLister interface {
	List(ctx context.Context) ([]domain.Delivery, error)
}

type recipientLister interface {
	List(ctx context.Context) ([]domain.Recipient, error)
}

type hamperLister interface {
	List(ctx context.Context) ([]domain.Hamper, error)
}

type Service struct {
	deliveries deliveryLister
	recipients recipientLister
	hampers    hamperLister
}

func New(deliveries deliveryLister, recipients recipientLister, hampers hamperLister) *Service {
	return &Service{deliveries: deliveries, recipients: recipients, hampers: hampers}
}

func (s *Service) Deliveries(ctx context.Context) (*domain.DeliveryReport, error) {
	items, err := s.deliveries.List(ctx)
	if err != nil {
		return nil, err
	}
	r := BuildDeliveryReport(items)
	return &r, nil
}

func (s *Service) Recipients(ctx context.Context) (*domain.RecipientReport, error) {
	items, err := s.recipients.List(ctx)
	if err != nil {
		return nil, err
	}
	r := BuildRecipientReport(items)
	return &r, nil
}

func (s *Service) Hampers(ctx context.Context) (*domain.HamperReport, error) {
	items, err := s.hampers.List(ctx)
	if err != nil {
		return nil, err
	}
	r := BuildHamperReport(items)
	return &r, nil
}

// Summary computes the three reports concurrently.
func (s *Service) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	var out domain.SummaryReport
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.Deliveries(gctx)
		if err != nil {
			return err
		}
		out.Deliveries = *r
		return nil
	})
	g.Go(func() error {
		r, err := s.Recipients(gctx)
		if err != nil {
			return err
		}
		out.Recipients = *r
		return nil
	})
	g.Go(func() error {
		r, err := s.Hampers(gctx)
		if err != nil {
			return err
		}
		out.Hampers = *r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
