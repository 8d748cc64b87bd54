package models

// User represents a stored account record. The ID is assigned by the store
// on insert and never changes afterwards.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never expose this to the client
}
