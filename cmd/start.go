package cmd

import (
	"context"
	"log"
	"time"

	"storage-gateway/core/audit"
	"storage-gateway/core/config"
	"storage-gateway/core/database"
	"storage-gateway/core/loader"
	"storage-gateway/core/logger"
	"storage-gateway/core/middleware/auth"
	"storage-gateway/core/middleware/errorhandler"
	"storage-gateway/core/middleware/rayid"
	"storage-gateway/core/middleware/reqctx"
	"storage-gateway/core/server"
	"storage-gateway/core/storage"

	"storage-gateway/feature/activity"
	"storage-gateway/feature/bucket"
	"storage-gateway/feature/file"
	"storage-gateway/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "storage-gateway/docs/swagger"
)

// shutdownTimeout bounds in-flight requests on shutdown.
const shutdownTimeout = 10 * time.Second

// @title Storage Gateway API
// @version 1.0
// @description Bucket and object operations over an S3-compatible backend.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the storage gateway server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional, backs the audit trail)
		var db *gorm.DB
		if cfg.Database.Enabled() {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, audit trail disabled", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to audit database", zap.String("driver", cfg.Database.Driver))
			}
		}
		recorder := audit.NewRecorder(db, logg)

		// 4. Initialize Storage
		store, err := newStorageClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := server.NewApp(cfg.Server, errorhandler.New(errorhandler.Config{
			Development: cfg.Server.IsDevelopment(),
			Logger:      logg,
		}))

		// Canceled once shutdown has drained or given up on in-flight requests.
		baseCtx, cancelRequests := context.WithCancel(context.Background())
		defer cancelRequests()

		// RayID first so everything below is traceable.
		app.Use(rayid.New())
		app.Use(reqctx.New(baseCtx))
		app.Use(requestLogger(logg))

		// 6. Public routes
		public := loader.NewManager(logg)
		public.Register(health.NewFeature(store, db, logg))
		if err := public.LoadAll(app); err != nil {
			logg.Fatal("Failed to load public features", zap.Error(err))
		}
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 7. Protected API
		api := app.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		if cfg.Server.ApiKey == "" {
			logg.Warn("No API key configured, the API is open")
		}

		buckets := bucket.NewFeature(store, recorder, logg)
		mgr := loader.NewManager(logg)
		mgr.Register(buckets)
		mgr.Register(file.NewFeature(store, buckets.Service(), recorder, logg))
		mgr.Register(activity.NewFeature(recorder, db != nil))
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("environment", cfg.Server.Environment),
				zap.String("storage", storageHost(store)))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		<-cmd.Context().Done()
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logg.Warn("Shutdown did not complete cleanly", zap.Error(err))
		}
		cancelRequests()
	},
}

// requestLogger logs every request with its ray id. Failed requests are
// logged by the error handler instead.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			return err
		}
		logger.WithRayID(logg, c).Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return nil
	}
}

func storageHost(store storage.Client) string {
	if u := store.EndpointURL(); u != nil {
		return u.String()
	}
	return ""
}

func init() {
	RootCmd.AddCommand(startCmd)
}
