package models

// User represents a registered user
type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}
