package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ser-backend/middleware"
	"ser-backend/services"
)

// UploadController handles avatar uploads.
type UploadController struct {
	auth   *services.AuthService
	upload *services.UploadService
}

// NewUploadController creates a new UploadController.
func NewUploadController(auth *services.AuthService, upload *services.UploadService) *UploadController {
	return &UploadController{auth: auth, upload: upload}
}

// UploadAvatar menerima file avatar multipart, memvalidasi ekstensinya,
// menyimpannya dengan nama unik dan mengembalikan URL publiknya.
func (ctl *UploadController) UploadAvatar(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	// Cek user di session masih ada di database
	if _, err := ctl.auth.GetByID(userID); errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No avatar file part"})
		return
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	defer src.Close()

	avatarURL, err := ctl.upload.StoreAvatar(userID, file.Filename, src, requestBaseURL(c))
	if errors.Is(err, services.ErrFileTypeNotAllowed) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": avatarURL})
}

// requestBaseURL menyusun origin (skema + host) dari request yang masuk.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
