package recipient

import (
	"context"
	"testing"

	"assistmenow/internal/domain"
	recipientrepo "assistmenow/internal/repository/recipient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_RequiresNamesAndAddress(t *testing.T) {
	svc := New(recipientrepo.NewMemory())
	ctx := context.Background()

	for _, in := range []CreateInput{
		{LastName: "Doe", Address: &domain.Address{}},
		{FirstName: "John", Address: &domain.Address{}},
		{FirstName: "John", LastName: "Doe"},
	} {
		_, err := svc.Create(ctx, "system", in)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "First name, last name, and address are required", verr.Message)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdate_MergesPresentFields(t *testing.T) {
	svc := New(recipientrepo.NewMemory())
	ctx := context.Background()
	created, err := svc.Create(ctx, "system", CreateInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Address:   &domain.Address{Street: "123 Main St", City: "Johannesburg"},
	})
	require.NoError(t, err)

	empty := ""
	phone := "+27123456789"
	got, err := svc.Update(ctx, created.ID, domain.RecipientPatch{Email: &empty, Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "", got.Email)
	assert.Equal(t, phone, got.Phone)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Johannesburg", got.Address.City)
	assert.Equal(t, created.CreatedBy, got.CreatedBy)
}

func TestUnknownRecipient(t *testing.T) {
	svc := New(recipientrepo.NewMemory())
	ctx := context.Background()

	_, err := svc.Get(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Update(ctx, "nonexistent", domain.RecipientPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "nonexistent"), domain.ErrNotFound)
}
