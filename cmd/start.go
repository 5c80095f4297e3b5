package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"game-launcher/core/loader"
	"game-launcher/core/logger"
	"game-launcher/core/middleware/auth"
	"game-launcher/core/middleware/rayid"
	"game-launcher/feature/catalog"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the launcher API server",
	Long:  `Starts the HTTP server exposing the unified game catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := newRuntime()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()

		if !rt.cfg.Server.Enabled {
			logg.Warn("Server is disabled by configuration (SERVER_ENABLED=false)")
			return
		}

		// Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		// Initialize Feature Loader
		mgr := loader.NewManager()

		svc := catalog.NewService(rt.lib, rt.reconciler, rt.store,
			rt.sources(), rt.steamAPI, rt.epicAPI,
			rt.steamStore.Paths().DetectSteamID(), logg)
		mgr.Register(catalog.NewFeature(svc))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		// Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Warm the catalog before serving.
		if games, err := rt.lib.RefreshAll(); err == nil {
			logg.Info("Initial scan complete", zap.Int("games", len(games)))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
