package delivery

import (
	"context"
	"testing"
	"time"

	"assistmenow/internal/domain"
	deliveryrepo "assistmenow/internal/repository/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	return New(deliveryrepo.NewMemory(), opts...)
}

func TestCreate_DefaultsToPending(t *testing.T) {
	svc := newService(t)

	d, err := svc.Create(context.Background(), "system", CreateInput{HamperID: "h", RecipientID: "r"})

	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryPending, d.Status)
	assert.Equal(t, "system", d.CreatedBy)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "system", CreateInput{HamperID: "h"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Hamper ID and recipient ID are required", verr.Message)

	_, err = svc.Create(ctx, "system", CreateInput{HamperID: "h", RecipientID: "r", Status: "LOST"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdateStatus_DeliveredStampsDate(t *testing.T) {
	stamp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newService(t, WithClock(func() time.Time { return stamp }))
	ctx := context.Background()
	d, err := svc.Create(ctx, "system", CreateInput{HamperID: "h", RecipientID: "r"})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, d.ID, "DELIVERED")

	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryDelivered, got.Status)
	require.NotNil(t, got.DeliveryDate)
	assert.True(t, got.DeliveryDate.Equal(stamp))
}

func TestUpdateStatus_OtherStatusesKeepDate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	earlier := time.Date(2023, 5, 15, 11, 30, 0, 0, time.UTC)
	d, err := svc.Create(ctx, "system", CreateInput{HamperID: "h", RecipientID: "r", DeliveryDate: &earlier})
	require.NoError(t, err)

	for _, status := range []string{"ASSIGNED", "IN_TRANSIT", "FAILED", "CANCELLED", "PENDING"} {
		got, err := svc.UpdateStatus(ctx, d.ID, status)
		require.NoError(t, err, status)
		require.NotNil(t, got.DeliveryDate)
		assert.True(t, got.DeliveryDate.Equal(earlier), status)
	}

	fresh, err := svc.Create(ctx, "system", CreateInput{HamperID: "h", RecipientID: "r"})
	require.NoError(t, err)
	got, err := svc.UpdateStatus(ctx, fresh.ID, "IN_TRANSIT")
	require.NoError(t, err)
	assert.Nil(t, got.DeliveryDate)
}

func TestUpdateStatus_Errors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "missing", "DELIVERED")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UpdateStatus(ctx, "missing", "delivered")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "missing", "")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAssign_ForcesAssigned(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	d, err := svc.Create(ctx, "system", CreateInput{HamperID: "h", RecipientID: "r", Status: "FAILED"})
	require.NoError(t, err)

	got, err := svc.Assign(ctx, d.ID, "volunteer-7")

	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryAssigned, got.Status)
	assert.Equal(t, "volunteer-7", got.AssignedTo)
	assert.Nil(t, got.DeliveryDate)
}

func TestStrictTransitions(t *testing.T) {
	svc := newService(t, WithStrictTransitions(true))
	ctx := context.Background()
	require.True(t, svc.Strict())
	d, err := svc.Create(ctx, "system", CreateInput{HamperID: "h", RecipientID: "r"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, d.ID, "DELIVERED")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	unchanged, err := svc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryPending, unchanged.Status)

	for _, step := range []string{"ASSIGNED", "IN_TRANSIT", "DELIVERED"} {
		_, err = svc.UpdateStatus(ctx, d.ID, step)
		require.NoError(t, err, step)
	}

	_, err = svc.Assign(ctx, d.ID, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	status := domain.DeliveryPending
	_, err = svc.Update(ctx, d.ID, domain.DeliveryPatch{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	d, err := svc.Create(ctx, "system", CreateInput{HamperID: "h", RecipientID: "r", Notes: "ring twice"})
	require.NoError(t, err)

	assignee := "u-1"
	got, err := svc.Update(ctx, d.ID, domain.DeliveryPatch{AssignedTo: &assignee})

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.AssignedTo)
	assert.Equal(t, "ring twice", got.Notes)
	assert.Equal(t, domain.DeliveryPending, got.Status)
	assert.True(t, got.UpdatedAt.After(d.UpdatedAt))

	bad := domain.DeliveryStatus("LOST")
	_, err = svc.Update(ctx, d.ID, domain.DeliveryPatch{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
