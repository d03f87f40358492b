package domain

import "time"

// HamperItem is one line of a hamper's contents.
type HamperItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Category string `json:"category,omitempty" yaml:"category"`
}

// Hamper is a named bundle of supply items.
type Hamper struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description"`
	Contents    []HamperItem `json:"contents" yaml:"contents"`
	CreatedBy   string       `json:"createdBy" yaml:"createdBy"`
	CreatedAt   time.Time    `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" yaml:"updatedAt"`
}

// Clone returns a copy that does not share the contents slice.
func (h Hamper) Clone() Hamper {
	if h.Contents != nil {
		h.Contents = append([]HamperItem(nil), h.Contents...)
	}
	return h
}

// HamperPatch holds the fields of a partial hamper update.
type HamperPatch struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Contents    *[]HamperItem `json:"contents"`
}

// Apply merges the patch into h.
func (p HamperPatch) Apply(h *Hamper) {
	setString(&h.Name, p.Name)
	setString(&h.Description, p.Description)
	if p.Contents != nil {
		h.Contents = append([]HamperItem(nil), (*p.Contents)...)
	}
}

// ValidateItems checks item quantities.
func ValidateItems(items []HamperItem) error {
	for _, it := range items {
		if it.Name == "" {
			return Invalid("Item name is required")
		}
		if it.Quantity < 1 {
			return Invalid("Item quantity must be at least 1")
		}
	}
	return nil
}
