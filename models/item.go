package models

// FoundItem is a reported found item. It is read-only input: either supplied
// inline by the caller or loaded from the item store by id.
type FoundItem struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	ReporterID  string `json:"user_id"`
}

// LostItem is an active lost report whose category matches a found item.
// ContactInfo is free-form text entered by the owner and may or may not be an
// email address.
type LostItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	OwnerID     string `json:"user_id"`
	ContactInfo string `json:"contact_info,omitempty"`
}
