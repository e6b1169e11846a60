package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"ser-backend/config"
	"ser-backend/controllers"
	"ser-backend/routes"
	"ser-backend/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Gagal memuat konfigurasi:", err)
	}

	logger := config.NewLogger(cfg)

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Gagal menginisialisasi database:", err)
	}

	// Pilih backend penyimpanan avatar
	var storage services.AvatarStorage
	switch cfg.StorageBackend {
	case "s3":
		awsCfg, err := config.LoadAWSConfig(cfg)
		if err != nil {
			log.Fatal("Gagal menginisialisasi AWS:", err)
		}
		storage = services.NewS3AvatarStorage(awsCfg, cfg.AWSBucketName, cfg.AWSRegion)
	default:
		storage = &services.LocalAvatarStorage{Dir: cfg.UploadDir}
	}

	authService := services.NewAuthService(db, logger)
	uploadService := services.NewUploadService(storage, logger)
	chatService := services.NewChatService()

	authController := controllers.NewAuthController(authService)
	uploadController := controllers.NewUploadController(authService, uploadService)
	chatController := controllers.NewChatController(authService, chatService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())

	// Panic apa pun tetap dibalas sebagai JSON, bukan halaman error
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic saat menangani request: ", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	trustedProxies := []string{"127.0.0.1", "::1"}
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		log.Fatal("Gagal menetapkan proxy tepercaya:", err)
	}

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders:    []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	// Middleware untuk menangani semua preflight OPTIONS request
	r.Use(func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	sessionKey := []byte(cfg.SessionSecret)
	if len(sessionKey) == 0 {
		log.Fatal("Session secret key belum dikonfigurasi")
	}
	store := cookie.NewStore(sessionKey)
	store.Options(sessions.Options{Path: "/", MaxAge: 86400, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("session", store))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")

		if err := db.Close(); err != nil {
			log.Printf("Database shutdown error: %v", err)
		}

		os.Exit(0)
	}()

	routes.SetupRoutes(r, authController, uploadController, chatController, cfg.UploadDir)

	serverAddr := ":" + cfg.Port
	log.Printf("Server starting on %s", serverAddr)
	if err := r.Run(serverAddr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
