package domain

import "time"

// DeliveryStatus is the lifecycle state of a delivery.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryFailed    DeliveryStatus = "FAILED"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
)

// DeliveryStatuses lists the vocabulary in lifecycle order.
var DeliveryStatuses = []DeliveryStatus{
	DeliveryPending,
	DeliveryAssigned,
	DeliveryInTransit,
	DeliveryDelivered,
	DeliveryFailed,
	DeliveryCancelled,
}

var transitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryPending:   {DeliveryAssigned, DeliveryCancelled},
	DeliveryAssigned:  {DeliveryInTransit, DeliveryCancelled},
	DeliveryInTransit: {DeliveryDelivered, DeliveryFailed, DeliveryCancelled},
	DeliveryDelivered: nil,
	DeliveryFailed:    nil,
	DeliveryCancelled: nil,
}

// Valid reports whether s belongs to the vocabulary.
func (s DeliveryStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition leaves s.
func (s DeliveryStatus) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether the lifecycle allows moving from one status to another.
// Staying in the same status is always allowed.
func CanTransition(from, to DeliveryStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ParseDeliveryStatus validates a raw status value.
func ParseDeliveryStatus(raw string) (DeliveryStatus, error) {
	s := DeliveryStatus(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Delivery links one hamper to one recipient.
type Delivery struct {
	ID            string         `json:"id" yaml:"id"`
	HamperID      string         `json:"hamperId" yaml:"hamperId"`
	RecipientID   string         `json:"recipientId" yaml:"recipientId"`
	Status        DeliveryStatus `json:"status" yaml:"status"`
	AssignedTo    string         `json:"assignedTo,omitempty" yaml:"assignedTo"`
	ScheduledDate *time.Time     `json:"scheduledDate,omitempty" yaml:"scheduledDate"`
	DeliveryDate  *time.Time     `json:"deliveryDate,omitempty" yaml:"deliveryDate"`
	Notes         string         `json:"notes,omitempty" yaml:"notes"`
	CreatedBy     string         `json:"createdBy" yaml:"createdBy"`
	CreatedAt     time.Time      `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" yaml:"updatedAt"`
}

// Clone returns a copy that does not share the date pointers.
func (d Delivery) Clone() Delivery {
	d.ScheduledDate = cloneTime(d.ScheduledDate)
	d.DeliveryDate = cloneTime(d.DeliveryDate)
	return d
}

// ReportDate is the day a delivery is reported under: the delivery date when set, else the
// scheduled date. ok is false when neither is set.
func (d Delivery) ReportDate() (string, bool) {
	t := d.DeliveryDate
	if t == nil {
		t = d.ScheduledDate
	}
	if t == nil {
		return "", false
	}
	return t.UTC().Format("2006-01-02"), true
}

// DeliveryPatch holds the fields of a partial delivery update.
type DeliveryPatch struct {
	HamperID      *string         `json:"hamperId"`
	RecipientID   *string         `json:"recipientId"`
	Status        *DeliveryStatus `json:"status"`
	AssignedTo    *string         `json:"assignedTo"`
	ScheduledDate *time.Time      `json:"scheduledDate"`
	DeliveryDate  *time.Time      `json:"deliveryDate"`
	Notes         *string         `json:"notes"`
}

// Validate rejects a status outside the vocabulary.
func (p DeliveryPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Apply merges the patch into d.
func (p DeliveryPatch) Apply(d *Delivery) {
	setString(&d.HamperID, p.HamperID)
	setString(&d.RecipientID, p.RecipientID)
	if p.Status != nil {
		d.Status = *p.Status
	}
	setString(&d.AssignedTo, p.AssignedTo)
	if p.ScheduledDate != nil {
		d.ScheduledDate = cloneTime(p.ScheduledDate)
	}
	if p.DeliveryDate != nil {
		d.DeliveryDate = cloneTime(p.DeliveryDate)
	}
	setString(&d.Notes, p.Notes)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
