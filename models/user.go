package models

import "time"

// User structure represents the user entity in the system
type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"` // Hash bcrypt, tidak pernah dikirim keluar
	DisplayName      *string   `json:"display_name"`
	Email            *string   `json:"email"`
	AvatarURL        *string   `json:"avatar_url"`
	Gender           *string   `json:"gender"`
	IsAdmin          bool      `json:"-"`
	IsBanned         bool      `json:"-"`
	BanReason        *string   `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	LastActive       time.Time `json:"last_active"`
	ProfileCompleted bool      `json:"profile_completed"`
}

// PublicView returns the fields of the user that are safe to expose in responses.
func (u *User) PublicView() map[string]interface{} {
	return map[string]interface{}{
		"id":                u.ID,
		"username":          u.Username,
		"display_name":      u.DisplayName,
		"email":             u.Email,
		"avatar_url":        u.AvatarURL,
		"gender":            u.Gender,
		"profile_completed": u.ProfileCompleted,
		"created_at":        u.CreatedAt,
		"last_active":       u.LastActive,
	}
}

// RegisterRequest structure for registration request
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// Credentials structure for login request
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileRequest adalah payload update profil. FullName diterima sebagai
// alias display_name untuk kompatibilitas frontend lama.
type ProfileRequest struct {
	FullName    string `json:"fullName"`
	DisplayName string `json:"display_name"`
	Gender      string `json:"gender"`
	AvatarURL   string `json:"avatar_url"`
}

// ResolvedDisplayName memilih antara fullName dan display_name.
func (r *ProfileRequest) ResolvedDisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.DisplayName
}
