package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"zoo-manager/core/database"
	"zoo-manager/core/loader"
	"zoo-manager/core/logger"
	"zoo-manager/core/middleware/auth"
	"zoo-manager/core/middleware/rayid"
	"zoo-manager/core/sequence"
	"zoo-manager/feature/animals"
	"zoo-manager/feature/employees"
	"zoo-manager/feature/events"
	"zoo-manager/feature/integrity"
	"zoo-manager/feature/landing"
	"zoo-manager/feature/snapshot"
	"zoo-manager/feature/souvenirs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "zoo-manager/docs/swagger"
)

// @title Zoo Manager API
// @version 1.0
// @description Record management for animals, employees, events and souvenirs.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the zoo manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if rt.cfg.Database.AutoMigrate {
			if err := database.Migrate(rt.db, schemaModels()...); err != nil {
				logg.Fatal("Failed to migrate database", zap.Error(err))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		alloc := sequence.NewAllocator(rt.db)
		bucket := rt.cfg.Storage.Bucket

		mgr := loader.NewManager(logg)
		mgr.Register(animals.NewFeature(rt.db, alloc, logg))
		mgr.Register(employees.NewFeature(rt.db, alloc, logg))
		mgr.Register(events.NewFeature(rt.db, alloc, logg))
		mgr.Register(souvenirs.NewFeature(rt.db, alloc, logg))
		mgr.Register(integrity.NewFeature(rt.db, schemaModels(), rt.store, bucket, logg))
		mgr.Register(snapshot.NewFeature(rt.db, rt.store, bucket, logg))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())
		app.Use(recover.New())
		app.Use(logger.Middleware(logg))
		app.Use(cors.New(cors.Config{AllowOrigins: rt.cfg.Server.AllowOrigins}))

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		if err := landing.NewFeature(rt.cfg.Server.PublicDir, rt.store, bucket, logg).Load(app); err != nil {
			return err
		}

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port), zap.Bool("auth", rt.cfg.Server.AuthEnabled()))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
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

func init() {
	RootCmd.AddCommand(startCmd)
}
