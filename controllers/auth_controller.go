package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ser-backend/middleware"
	"ser-backend/models"
	"ser-backend/services"
)

// AuthController handles registration, login and profile endpoints.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles new user registration and establishes a session
func (ctl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := ctl.auth.Register(req.Username, req.Password, req.DisplayName)
	if errors.Is(err, services.ErrUsernameTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	// Langsung set session untuk user baru
	if err := middleware.SetLogin(c, user.ID, user.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "User registered successfully",
		"user":     user.PublicView(),
		"redirect": "/complete-profile",
	})
}

// Login handles user authentication and establishes a session
func (ctl *AuthController) Login(c *gin.Context) {
	var credentials models.Credentials
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := ctl.auth.Authenticate(credentials.Username, credentials.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	// Catat aktivitas terakhir
	now, err := ctl.auth.TouchLastActive(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	user.LastActive = now

	if err := middleware.SetLogin(c, user.ID, user.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	// User yang belum melengkapi profil diarahkan ke halaman profil dulu
	redirect := "/dashboard"
	if !user.ProfileCompleted {
		redirect = "/complete-profile"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"user":     user.PublicView(),
		"redirect": redirect,
	})
}

// CompleteProfile applies a partial profile update and marks the profile completed
func (ctl *AuthController) CompleteProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	user, err := ctl.auth.UpdateProfile(userID, &req, true)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Profile completed successfully",
		"user":     user.PublicView(),
		"redirect": "/dashboard",
	})
}

// UpdateProfile applies a partial profile update without touching profile_completed
func (ctl *AuthController) UpdateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	user, err := ctl.auth.UpdateProfile(userID, &req, false)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user.PublicView(),
	})
}

// Logout clears the session unconditionally; calling it twice is harmless
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetCurrentUser returns the currently logged-in user's info from the session
func (ctl *AuthController) GetCurrentUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := ctl.auth.GetByID(userID)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.PublicView()})
}

// GetMetUsers placeholder: pelacakan relasi belum diimplementasikan
func (ctl *AuthController) GetMetUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"met_users": []interface{}{}})
}

// GetReconnectRequests placeholder: pelacakan relasi belum diimplementasikan
func (ctl *AuthController) GetReconnectRequests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reconnect_requests": []interface{}{}})
}
