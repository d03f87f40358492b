package report

import (
	"testing"
	"time"

	"assistmenow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func at(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuildDeliveryReport(t *testing.T) {
	items := []domain.Delivery{
		{Status: domain.DeliveryDelivered, ScheduledDate: at("2023-05-15T10:00:00Z"), DeliveryDate: at("2023-05-16T01:30:00+02:00")},
		{Status: domain.DeliveryPending, ScheduledDate: at("2023-05-20T14:00:00Z")},
		{Status: domain.DeliveryPending},
		{Status: domain.DeliveryFailed, ScheduledDate: at("2023-05-20T08:00:00Z")},
		{Status: domain.DeliveryCancelled},
	}

	r := BuildDeliveryReport(items)

	assert.Equal(t, 5, r.TotalDeliveries)
	assert.Equal(t, 1, r.DeliveredCount)
	assert.Equal(t, 2, r.PendingCount)
	assert.Equal(t, 1, r.FailedCount)
	assert.Equal(t, map[string]int{"2023-05-15": 1, "2023-05-20": 2}, r.DeliveriesByDate)
	assert.Len(t, r.CountsByStatus, len(domain.DeliveryStatuses))
	assert.Equal(t, 0, r.CountsByStatus[domain.DeliveryInTransit])
	assert.LessOrEqual(t, r.DeliveredCount+r.PendingCount+r.FailedCount, r.TotalDeliveries)
}

func TestBuildReports_Empty(t *testing.T) {
	d := BuildDeliveryReport(nil)
	assert.Zero(t, d.TotalDeliveries)
	assert.NotNil(t, d.DeliveriesByDate)
	assert.Empty(t, d.DeliveriesByDate)

	r := BuildRecipientReport(nil)
	assert.Zero(t, r.TotalRecipients)
	assert.NotNil(t, r.RecipientsByCity)

	h := BuildHamperReport(nil)
	assert.Zero(t, h.TotalHampers)
	assert.NotNil(t, h.HampersByCategory)
}

func TestBuildRecipientReport_ExactCity(t *testing.T) {
	items := []domain.Recipient{
		{Address: domain.Address{City: "Cape Town"}},
		{Address: domain.Address{City: "Cape Town"}},
		{Address: domain.Address{City: "Durban"}},
		{Address: domain.Address{City: "cape town"}},
	}

	r := BuildRecipientReport(items)

	assert.Equal(t, 4, r.TotalRecipients)
	assert.Equal(t, map[string]int{"Cape Town": 2, "Durban": 1, "cape town": 1}, r.RecipientsByCity)
}

func TestBuildHamperReport_CountsHampersNotItems(t *testing.T) {
	items := []domain.Hamper{
		{Contents: []domain.HamperItem{
			{Name: "Rice", Quantity: 2, Category: "Grains"},
			{Name: "Maize", Quantity: 1, Category: "Grains"},
			{Name: "Beans", Quantity: 3, Category: "Protein"},
			{Name: "Spoon", Quantity: 1},
		}},
		{Contents: []domain.HamperItem{
			{Name: "Oats", Quantity: 1, Category: "Grains"},
		}},
	}

	r := BuildHamperReport(items)

	assert.Equal(t, 2, r.TotalHampers)
	assert.Equal(t, map[string]int{"Grains": 2, "Protein": 1}, r.HampersByCategory)

	sum := 0
	for _, n := range r.HampersByCategory {
		sum += n
	}
	assert.Greater(t, sum, r.TotalHampers)
}
