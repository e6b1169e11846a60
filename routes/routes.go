package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ser-backend/controllers"
	"ser-backend/middleware"
)

// SetupRoutes mengatur semua rute utama aplikasi
func SetupRoutes(r *gin.Engine, auth *controllers.AuthController, upload *controllers.UploadController, chat *controllers.ChatController, uploadDir string) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the new backend API!"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Backend is running"})
	})

	// File avatar yang tersimpan lokal dilayani langsung dari folder upload
	r.Static("/uploads", uploadDir)

	// Rute untuk autentikasi dan manajemen profil
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", auth.Logout) // Logout tanpa syarat, idempoten

		authGroup.POST("/complete-profile", middleware.SessionAuth(), auth.CompleteProfile)
		authGroup.PUT("/update-profile", middleware.SessionAuth(), auth.UpdateProfile)
		authGroup.GET("/me", middleware.SessionAuth(), auth.GetCurrentUser)
		authGroup.GET("/met-users", middleware.SessionAuth(), auth.GetMetUsers)
		authGroup.GET("/reconnect-requests", middleware.SessionAuth(), auth.GetReconnectRequests)
	}

	// Rute untuk upload avatar
	uploadGroup := r.Group("/upload")
	uploadGroup.Use(middleware.SessionAuth())
	{
		uploadGroup.POST("/upload-avatar", upload.UploadAvatar)
	}

	// Rute untuk layanan chat anonim (masih simulasi)
	chatGroup := r.Group("/chat")
	chatGroup.Use(middleware.SessionAuth())
	{
		chatGroup.POST("/start-session", chat.StartSession)
		chatGroup.POST("/end-session", chat.EndSession)
		chatGroup.GET("/session-status", chat.GetSessionStatus)
		chatGroup.POST("/report", chat.Report)
		chatGroup.GET("/stats", chat.GetStats)
	}
}
