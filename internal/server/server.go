package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelbook/internal/config"
	"travelbook/internal/domain/admin"
	"travelbook/internal/domain/auth"
	"travelbook/internal/domain/booking"
	"travelbook/internal/domain/catalog"
	"travelbook/internal/domain/chat"
	"travelbook/internal/domain/favorite"
	"travelbook/internal/domain/notification"
	"travelbook/internal/domain/upload"
	"travelbook/internal/middleware"
	"travelbook/internal/pkg/jwt"
	"travelbook/internal/pkg/response"
)

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	models := append(catalog.Models(),
		&auth.User{},
		&booking.Booking{},
		&chat.Inquiry{},
		&chat.Message{},
		&favorite.Favorite{},
		&notification.Notification{},
		&upload.Upload{},
	)
	return db.AutoMigrate(models...)
}

// Server holds the HTTP engine together with the long-lived pieces that need
// an explicit shutdown.
type Server struct {
	Engine *gin.Engine
	Hub    *chat.Hub
	Chat   *chat.Service
}

// New wires repositories, services and handlers into a gin engine.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	notificationService := notification.NewService(notification.NewRepository(db))
	catalogService := catalog.NewService(db, log.Named("catalog"))
	authService := auth.NewService(auth.NewUserRepository(db), jwtService)
	bookingService := booking.NewService(booking.NewBookingRepository(db), catalogService).
		WithNotifier(notificationService)
	uploadService := upload.NewService(upload.NewRepository(db), upload.Config{
		Dir:      cfg.UploadDir,
		URLBase:  cfg.UploadURLBase,
		MaxBytes: cfg.UploadMaxBytes,
	})
	adminService := admin.NewService(admin.NewStatsRepository(db), catalogService)

	chatService := chat.NewService(chat.NewRepository(db), nil).WithNotifier(notificationService)
	hub := chat.NewHub(chatService, log.Named("chat"))
	chatService.SetPublisher(hub)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger(log))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", health(db))
	r.Static(cfg.UploadURLBase, cfg.UploadDir)
	r.GET("/ws/chat", chat.NewWSHandler(hub, jwtService, log.Named("ws"), cfg.CORSAllowedOrigins).HandleWebSocket)

	v1 := r.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.JWTAuth(jwtService), middleware.AdminOnly())

	limiter := middleware.NewRateLimiter(cfg.InquiryRatePerMin, cfg.InquiryBurst)

	auth.NewHandler(authService).RegisterRoutes(v1, protected)
	catalog.NewHandler(catalogService).RegisterRoutes(v1, adminGroup)
	booking.NewHandler(bookingService).RegisterRoutes(protected, adminGroup)
	chat.NewHandler(chatService).RegisterRoutes(v1, protected, adminGroup,
		limiter.PerClientIP(), middleware.OptionalJWTAuth(jwtService))
	favorite.NewHandler(favorite.NewService(favorite.NewRepository(db), catalogService)).RegisterRoutes(protected)
	notification.NewHandler(notificationService).RegisterRoutes(protected)
	upload.NewHandler(uploadService).RegisterRoutes(adminGroup)
	admin.NewHandler(adminService).RegisterRoutes(adminGroup)

	return &Server{Engine: r, Hub: hub, Chat: chatService}
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is not reachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
