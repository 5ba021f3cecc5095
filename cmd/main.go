package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"complainthub/backend/internal/api/handler"
	"complainthub/backend/internal/blob"
	"complainthub/backend/internal/complaint"
	"complainthub/backend/internal/eventhub"
	"complainthub/backend/internal/gamification"
	"complainthub/backend/internal/models"
	"complainthub/backend/internal/notify"
	"complainthub/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newLogger() *zap.SugaredLogger {
	var cfg zap.Config
	switch os.Getenv("APP_ENV") {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

// setupDatabase connects PostgreSQL and runs migrations. A missing or
// unreachable database is not fatal: submission degrades to generated
// references and reads report the store as unavailable.
func setupDatabase(log *zap.SugaredLogger) *gorm.DB {
	if os.Getenv("DB_HOST") == "" {
		log.Warn("DB_HOST not set, running without a database")
		return nil
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Warnw("database unreachable, continuing degraded", "error", err)
		return nil
	}

	err = db.AutoMigrate(
		&models.Complaint{},
		&models.ActivityLogEntry{},
		&models.Comment{},
		&models.ChatMessage{},
		&models.UserProfile{},
		&models.Badge{},
		&models.UserBadge{},
		&models.ResponseTemplate{},
	)
	if err != nil {
		log.Fatalw("migrations failed", "error", err)
	}

	log.Info("database connected, migrations complete")
	return db
}

// setupRedis connects the event relay. Optional: without it real-time
// events stay in-process.
func setupRedis(log *zap.SugaredLogger) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Warn("REDIS_ADDR not set, real-time events stay in-process")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Warnw("redis unreachable, real-time events stay in-process", "error", err)
		return nil
	}
	return rdb
}

func setupUploader(log *zap.SugaredLogger) complaint.Uploader {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Warn("MINIO_ENDPOINT not set, attachments disabled")
		return nil
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "complaint-images"
	}

	uploader, err := blob.NewMinioUploader(blob.Config{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    bucket,
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}, log)
	if err != nil {
		log.Warnw("object storage unavailable, attachments disabled", "error", err)
		return nil
	}
	return uploader
}

func setupNotifier(log *zap.SugaredLogger) complaint.Notifier {
	var channels notify.Multi

	if url := os.Getenv("WEBHOOK_URL"); url != "" {
		channels = append(channels, notify.NewWebhookNotifier(url, log))
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_ADMIN_CHAT_ID"), 10, 64)
		if err != nil {
			log.Warnw("invalid TELEGRAM_ADMIN_CHAT_ID, telegram alerts disabled", "error", err)
		} else if tn, err := notify.NewTelegramNotifier(token, chatID, log); err != nil {
			log.Warnw("telegram bot unavailable, telegram alerts disabled", "error", err)
		} else {
			channels = append(channels, tn)
		}
	}

	if len(channels) == 0 {
		return nil
	}
	return channels
}

func main() {
	// .env is optional; containers get their environment preset.
	_ = godotenv.Load()

	log := newLogger()
	defer log.Sync()
	log.Info("starting complainthub backend")

	db := setupDatabase(log)
	rdb := setupRedis(log)
	store := storage.NewStorageService(db, rdb)

	hub := eventhub.NewManager(store, log)
	go hub.Run()

	awards := gamification.NewService(store, hub, log)

	lifecycle := complaint.NewService(store, hub, log)
	lifecycle.Uploader = setupUploader(log)
	lifecycle.Notifier = setupNotifier(log)
	lifecycle.Awarder = awards

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		jwtSecret = []byte("dev-only-secret")
		log.Warn("JWT_SECRET not set, using development secret")
	}

	h := handler.NewHandler(lifecycle, store, hub, log, jwtSecret, os.Getenv("PUBLIC_BASE_URL"))

	r := gin.Default()

	r.POST("/login", h.Login)
	r.POST("/submit", h.Submit)
	r.GET("/get_complaint/:id", h.GetComplaint)
	r.GET("/complaints", h.ListComplaints)
	adminOnly := h.RequireRole("admin")
	r.POST("/assign_complaint", adminOnly, h.AssignComplaint)
	r.POST("/update_status", adminOnly, h.UpdateStatus)
	r.POST("/rate_complaint", h.RateComplaint)
	r.POST("/upvote_complaint", h.UpvoteComplaint)
	r.GET("/comments/:id", h.Comments)
	r.POST("/comments/:id", h.Comments)
	r.GET("/chat_history/:id", h.ChatHistory)
	r.GET("/analytics", h.Analytics)
	r.GET("/leaderboard", h.Leaderboard)
	r.GET("/user_profile/:email", h.UserProfile)
	r.GET("/activity_log/:id", h.ActivityLog)
	r.GET("/templates", h.Templates)
	r.GET("/qr/:id", h.TrackingQR)
	r.GET("/export/excel", h.ExportExcel)
	r.GET("/export/pdf", h.ExportPDF)
	r.GET("/ws", h.ServeWebSocket)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Infow("listening", "addr", server.Addr)
	log.Fatal(server.ListenAndServe())
}
