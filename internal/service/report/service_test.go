package report

import (
	"context"
	"errors"
	"testing"

	"assistmenow/internal/domain"
	deliveryrepo "assistmenow/internal/repository/delivery"
	hamperrepo "assistmenow/internal/repository/hamper"
	recipientrepo "assistmenow/internal/repository/recipient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type failingRecipients struct{}

func (failingRecipients) List(context.Context) ([]domain.Recipient, error) {
	return nil, errors.New("store down")
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	deliveries := deliveryrepo.NewMemory()
	recipients := recipientrepo.NewMemory()
	hampers := hamperrepo.NewMemory()
	_, err := deliveries.Create(ctx, domain.Delivery{Status: domain.DeliveryDelivered})
	require.NoError(t, err)
	_, err = recipients.Create(ctx, domain.Recipient{Address: domain.Address{City: "Durban"}})
	require.NoError(t, err)
	_, err = hampers.Create(ctx, domain.Hamper{Contents: []domain.HamperItem{{Name: "Rice", Quantity: 1, Category: "Grains"}}})
	require.NoError(t, err)

	got, err := New(deliveries, recipients, hampers).Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Deliveries.DeliveredCount)
	assert.Equal(t, map[string]int{"Durban": 1}, got.Recipients.RecipientsByCity)
	assert.Equal(t, map[string]int{"Grains": 1}, got.Hampers.HampersByCategory)
}

func TestSummary_PropagatesErrors(t *testing.T) {
	svc := New(deliveryrepo.NewMemory(), failingRecipients{}, hamperrepo.NewMemory())

	_, err := svc.Summary(context.Background())

	assert.EqualError(t, err, "store down")
}
