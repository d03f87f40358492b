package report

import "assistmenow/internal/domain"

// BuildDeliveryReport counts deliveries by status and by report date. Deliveries without a
// delivery or scheduled date are left out of DeliveriesByDate but still counted in the totals.
func BuildDeliveryReport(items []domain.Delivery) domain.DeliveryReport {
	r := domain.DeliveryReport{
		TotalDeliveries:  len(items),
		CountsByStatus:   make(map[domain.DeliveryStatus]int, len(domain.DeliveryStatuses)),
		DeliveriesByDate: map[string]int{},
	}
	for _, s := range domain.DeliveryStatuses {
		r.CountsByStatus[s] = 0
	}
	for _, d := range items {
		r.CountsByStatus[d.Status]++
		if day, ok := d.ReportDate(); ok {
			r.DeliveriesByDate[day]++
		}
	}
	r.DeliveredCount = r.CountsByStatus[domain.DeliveryDelivered]
	r.PendingCount = r.CountsByStatus[domain.DeliveryPending]
	r.FailedCount = r.CountsByStatus[domain.DeliveryFailed]
	return r
}

// BuildRecipientReport counts recipients per city, matching city names exactly.
func BuildRecipientReport(items []domain.Recipient) domain.RecipientReport {
	r := domain.RecipientReport{
		TotalRecipients:  len(items),
		RecipientsByCity: map[string]int{},
	}
	for _, rec := range items {
		r.RecipientsByCity[rec.Address.City]++
	}
	return r
}

// BuildHamperReport counts, per category, the hampers holding at least one item of it. Items with
// no category are ignored.
func BuildHamperReport(items []domain.Hamper) domain.HamperReport {
	r := domain.HamperReport{
		TotalHampers:      len(items),
		HampersByCategory: map[string]int{},
	}
	for _, h := range items {
		seen := make(map[string]struct{}, len(h.Contents))
		for _, it := range h.Contents {
			if it.Category == "" {
				continue
			}
			if _, dup := seen[it.Category]; dup {
				continue
			}
			seen[it.Category] = struct{}{}
			r.HampersByCategory[it.Category]++
		}
	}
	return r
}
