package domain

import "time"

// Address is the postal address of a recipient.
type Address struct {
	Street     string `json:"street" yaml:"street"`
	City       string `json:"city" yaml:"city"`
	State      string `json:"state,omitempty" yaml:"state"`
	PostalCode string `json:"postalCode" yaml:"postalCode"`
	Country    string `json:"country" yaml:"country"`
}

// Recipient is a person or household receiving aid.
type Recipient struct {
	ID        string    `json:"id" yaml:"id"`
	FirstName string    `json:"firstName" yaml:"firstName"`
	LastName  string    `json:"lastName" yaml:"lastName"`
	Email     string    `json:"email,omitempty" yaml:"email"`
	Phone     string    `json:"phone,omitempty" yaml:"phone"`
	Address   Address   `json:"address" yaml:"address"`
	Notes     string    `json:"notes,omitempty" yaml:"notes"`
	PhotoURL  string    `json:"photoUrl,omitempty" yaml:"photoUrl"`
	CreatedBy string    `json:"createdBy" yaml:"createdBy"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// RecipientPatch holds the fields of a partial update. Nil fields keep the stored value.
type RecipientPatch struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	Address   *Address `json:"address"`
	Notes     *string  `json:"notes"`
	PhotoURL  *string  `json:"photoUrl"`
}

// Apply merges the patch into r.
func (p RecipientPatch) Apply(r *Recipient) {
	setString(&r.FirstName, p.FirstName)
	setString(&r.LastName, p.LastName)
	setString(&r.Email, p.Email)
	setString(&r.Phone, p.Phone)
	if p.Address != nil {
		r.Address = *p.Address
	}
	setString(&r.Notes, p.Notes)
	setString(&r.PhotoURL, p.PhotoURL)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
