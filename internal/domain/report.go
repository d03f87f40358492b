package domain

// DeliveryReport summarises deliveries by status and by day.
type DeliveryReport struct {
	TotalDeliveries  int                    `json:"totalDeliveries"`
	DeliveredCount   int                    `json:"deliveredCount"`
	PendingCount     int                    `json:"pendingCount"`
	FailedCount      int                    `json:"failedCount"`
	CountsByStatus   map[DeliveryStatus]int `json:"countsByStatus"`
	DeliveriesByDate map[string]int         `json:"deliveriesByDate"`
}

// RecipientReport counts recipients per city.
type RecipientReport struct {
	TotalRecipients  int            `json:"totalRecipients"`
	RecipientsByCity map[string]int `json:"recipientsByCity"`
}

// HamperReport counts hampers per content category. A hamper is counted once under each
// distinct category it contains, so the category counts may add up to more than TotalHampers.
type HamperReport struct {
	TotalHampers      int            `json:"totalHampers"`
	HampersByCategory map[string]int `json:"hampersByCategory"`
}

// SummaryReport bundles the three reports for the dashboard.
type SummaryReport struct {
	Deliveries DeliveryReport  `json:"deliveries"`
	Recipients RecipientReport `json:"recipients"`
	Hampers    HamperReport    `json:"hampers"`
}
