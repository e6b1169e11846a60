package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"ser-backend/models"
)

// Kunci session. Semua nilai disimpan sebagai string di cookie store.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUsername = "username"

	sessionKeyPartnerID     = "chat_partner_id"
	sessionKeyPartnerName   = "chat_partner_display_name"
	sessionKeyPartnerGender = "chat_partner_gender"
)

// ContextUserID is the gin context key holding the authenticated user's id.
const ContextUserID = "userID"

// SessionAuth menolak request tanpa session login dan menaruh user_id di context.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		userID, ok := session.Get(SessionKeyUserID).(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not logged in"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// SetLogin menandai session sebagai milik user yang baru register/login.
func SetLogin(c *gin.Context, userID, username string) error {
	session := sessions.Default(c)
	session.Set(SessionKeyUserID, userID)
	session.Set(SessionKeyUsername, username)
	return session.Save()
}

// ClearSession menghapus seluruh isi session. Idempoten.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// SetPartner menyimpan partner chat simulasi ke dalam session.
func SetPartner(c *gin.Context, p models.Partner) error {
	session := sessions.Default(c)
	session.Set(sessionKeyPartnerID, p.ID)
	session.Set(sessionKeyPartnerName, p.DisplayName)
	session.Set(sessionKeyPartnerGender, p.Gender)
	return session.Save()
}

// GetPartner membaca partner dari session kalau ada.
func GetPartner(c *gin.Context) (models.Partner, bool) {
	session := sessions.Default(c)

	id, ok := session.Get(sessionKeyPartnerID).(string)
	if !ok || id == "" {
		return models.Partner{}, false
	}

	name, _ := session.Get(sessionKeyPartnerName).(string)
	gender, _ := session.Get(sessionKeyPartnerGender).(string)

	return models.Partner{ID: id, DisplayName: name, Gender: gender}, true
}

// ClearPartner menghapus kunci chat_partner_* dari session kalau ada.
func ClearPartner(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionKeyPartnerID)
	session.Delete(sessionKeyPartnerName)
	session.Delete(sessionKeyPartnerGender)
	return session.Save()
}
