package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"order-items/core/loader"
	"order-items/core/logger"
	"order-items/core/middleware/auth"
	"order-items/core/middleware/rayid"
	"order-items/feature/integrity"
	"order-items/feature/lineitems"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "order-items/docs/swagger"
)

// @title Order Items API
// @version 1.0
// @description Line-item reconciliation for order documents.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and registers all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := newApp(rt)

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp builds the fiber app with middleware and features.
func newApp(rt *runtime) *fiber.App {
	logg := rt.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             rt.cfg.Server.BodyLimit(),
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

	mgr := loader.NewManager(logg)
	mgr.Register(lineitems.NewFeature(rt.service, rt.cfg.Items.Enabled))
	mgr.Register(integrity.NewFeature(rt.db, rt.cfg.Database.TablePrefix, rt.client, rt.cfg.Storage.Bucket, logg))

	if err := mgr.LoadAll(app); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
