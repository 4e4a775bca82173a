package models

// Topic represents a category articles belong to
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}
