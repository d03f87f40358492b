package domain

import "time"

// UserRole is the staff role of a user.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleStaff     UserRole = "STAFF"
	RoleVolunteer UserRole = "VOLUNTEER"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleVolunteer:
		return true
	}
	return false
}

// User is a staff member or volunteer of the organisation.
type User struct {
	ID            string               `json:"id"`
	Username      string               `json:"username"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone,omitempty"`
	Role          UserRole             `json:"role"`
	FirstName     string               `json:"firstName,omitempty"`
	LastName      string               `json:"lastName,omitempty"`
	PasswordHash  string               `json:"-"`
	Notifications NotificationSettings `json:"-"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// EmailNotifications are the e-mail toggles of a user.
type EmailNotifications struct {
	DeliveryUpdates  bool `json:"deliveryUpdates" yaml:"deliveryUpdates"`
	NewHampers       bool `json:"newHampers" yaml:"newHampers"`
	RecipientUpdates bool `json:"recipientUpdates" yaml:"recipientUpdates"`
}

// SMSNotifications are the SMS toggles of a user.
type SMSNotifications struct {
	DeliveryUpdates     bool `json:"deliveryUpdates" yaml:"deliveryUpdates"`
	UrgentNotifications bool `json:"urgentNotifications" yaml:"urgentNotifications"`
}

// NotificationSettings groups the per-channel toggles.
type NotificationSettings struct {
	Email EmailNotifications `json:"email" yaml:"email"`
	SMS   SMSNotifications   `json:"sms" yaml:"sms"`
}

// NotificationPatch is a partial update of notification toggles.
type NotificationPatch struct {
	Email *struct {
		DeliveryUpdates  *bool `json:"deliveryUpdates"`
		NewHampers       *bool `json:"newHampers"`
		RecipientUpdates *bool `json:"recipientUpdates"`
	} `json:"email"`
	SMS *struct {
		DeliveryUpdates     *bool `json:"deliveryUpdates"`
		UrgentNotifications *bool `json:"urgentNotifications"`
	} `json:"sms"`
}

// Apply merges the patch into s.
func (p NotificationPatch) Apply(s *NotificationSettings) {
	if p.Email != nil {
		setBool(&s.Email.DeliveryUpdates, p.Email.DeliveryUpdates)
		setBool(&s.Email.NewHampers, p.Email.NewHampers)
		setBool(&s.Email.RecipientUpdates, p.Email.RecipientUpdates)
	}
	if p.SMS != nil {
		setBool(&s.SMS.DeliveryUpdates, p.SMS.DeliveryUpdates)
		setBool(&s.SMS.UrgentNotifications, p.SMS.UrgentNotifications)
	}
}

// ProfilePatch is a partial update of the caller's own profile.
type ProfilePatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Apply merges the patch into u.
func (p ProfilePatch) Apply(u *User) {
	setString(&u.FirstName, p.FirstName)
	setString(&u.LastName, p.LastName)
	setString(&u.Email, p.Email)
	setString(&u.Phone, p.Phone)
}

// Session binds an opaque token to a user until it expires.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
