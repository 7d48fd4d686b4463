// server.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/config"
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata/masterapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logx.Info("🚀 Starting TalentDesk API Server...")
	logx.Infof("Environment: %s", cfg.Environment)

	container, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Cleanup()

	app := newApp(container)
	printRouteSummary()
	return startServer(app, cfg)
}

// newApp builds the Fiber app with every route mounted
func newApp(container *Container) *fiber.App {
	cfg := container.Config

	bodyLimit := cfg.Server.BodyLimit
	if limit := cfg.Storage.RequestLimit(); limit > bodyLimit {
		bodyLimit = limit
	}

	app := fiber.New(fiber.Config{
		AppName:               "TalentDesk API",
		DisableStartupMessage: true,
		ErrorHandler:          httpx.ErrorHandler(cfg.IsDevelopment()),
		BodyLimit:             bodyLimit,
		IdleTimeout:           120 * time.Second,
	})

	setupMiddleware(app, cfg)

	app.Get("/health", healthCheckHandler(container))
	app.Get("/", infoHandler(cfg))
	app.Get("/api/v1/docs", apiDocsHandler(cfg))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	registerRoutes(app, container)

	app.Use(httpx.NotFound)
	return app
}

// ============================================================================
// Setup Functions
// ============================================================================

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return "req-" + uuid.NewString()
		},
	}))

	corsOrigins := "*"
	if len(cfg.Server.CORSOrigins) > 0 {
		corsOrigins = strings.Join(cfg.Server.CORSOrigins, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  corsOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:  "GET, POST, PUT, DELETE, PATCH, HEAD, OPTIONS",
		ExposeHeaders: "X-Request-ID, Content-Disposition",
	}))

	logFormat := "${time} | ${status} | ${latency} | ${method} ${path}"
	if cfg.IsDevelopment() {
		logFormat += " | ${ip} | ${reqHeader:X-Request-ID}\n"
	} else {
		logFormat += "\n"
	}
	app.Use(logger.New(logger.Config{
		Format:     logFormat,
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))
}

func registerRoutes(app *fiber.App, container *Container) {
	logx.Info("📝 Registering routes...")

	api := app.Group("/api/v1")
	mw := container.AuthMiddleware

	// Dashboard first: /jobs/:id/summary sits beside the job routes
	container.DashboardHandlers.RegisterRoutes(api, mw)
	logx.Info("✓ Dashboard routes registered")

	container.JobHandlers.RegisterRoutes(api, mw)
	container.ResumeHandlers.RegisterRoutes(api, mw)
	container.CandidateHandlers.RegisterRoutes(api, mw)
	container.InterviewHandlers.RegisterRoutes(api, mw)
	logx.Info("✓ Recruiting routes registered")

	masterapi.RegisterRoutes(api, mw, container.MasterData, container.Views)
	logx.Info("✓ Admin routes registered")

	container.ViewHandlers.RegisterRoutes(api, mw)
	logx.Info("✓ Saved view routes registered")

	logx.Info("✅ All routes registered")
}

// ============================================================================
// Handler Functions
// ============================================================================

func healthCheckHandler(container *Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := fiber.Map{
			"status":      "healthy",
			"service":     "talentdesk-api",
			"environment": container.Config.Environment,
			"timestamp":   time.Now().Unix(),
			"db":          "disabled",
			"redis":       "disabled",
		}

		if container.DB != nil {
			if err := container.DB.PingContext(c.Context()); err != nil {
				health["db"] = "unhealthy"
				health["db_error"] = err.Error()
				health["status"] = "degraded"
			} else {
				health["db"] = "healthy"
			}
		}

		if container.Redis != nil {
			if _, err := container.Redis.Ping(c.Context()).Result(); err != nil {
				health["redis"] = "unhealthy"
				health["redis_error"] = err.Error()
				health["status"] = "degraded"
			} else {
				health["redis"] = "healthy"
			}
		}

		if c.QueryBool("check_storage", false) {
			if exists, err := container.FileSystem.Exists(c.Context(), ".health-check"); err != nil {
				health["storage"] = "unhealthy"
				health["storage_error"] = err.Error()
			} else {
				health["storage"] = "healthy"
				health["storage_accessible"] = exists
			}
		}

		status := fiber.StatusOK
		if health["status"] == "degraded" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(health)
	}
}

func infoHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":     "TalentDesk API",
			"version":     "1.0.0",
			"description": "Recruiting dashboard: resumes, job postings, candidates and interviews",
			"environment": cfg.Environment,
			"features": []string{
				"Composable filters and search on every screen",
				"Saved views",
				"Excel export",
				"AI job description extraction",
				"Interview recordings and transcripts",
			},
			"endpoints": fiber.Map{
				"docs":    "/api/v1/docs",
				"health":  "/health",
				"metrics": "/metrics",
			},
			"authentication": fiber.Map{
				"enabled": cfg.Auth.Enabled,
			},
		})
	}
}

func apiDocsHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list := func(entity string) fiber.Map {
			base := "/api/v1/" + entity
			return fiber.Map{
				"list":    "GET " + base,
				"search":  "POST " + base + "/search",
				"filters": "GET " + base + "/filters",
				"suggest": "GET " + base + "/suggest?field=...&q=...",
				"export":  "GET " + base + "/export",
				"get":     "GET " + base + "/:id",
				"create":  "POST " + base,
				"update":  "PUT " + base + "/:id",
				"delete":  "DELETE " + base + "/:id",
			}
		}

		return c.JSON(fiber.Map{
			"api_version": "v1",
			"base_url":    cfg.Server.BaseURL,
			"endpoints": fiber.Map{
				"dashboard": fiber.Map{
					"overview":    "GET /api/v1/dashboard",
					"job_summary": "GET /api/v1/jobs/:id/summary",
				},
				"jobs": fiber.Map{
					"records":   list("jobs"),
					"board":     "GET /api/v1/jobs/board",
					"by_code":   "GET /api/v1/jobs/code/:code",
					"phases":    "GET /api/v1/jobs/phases",
					"extract":   "POST /api/v1/jobs/extract",
					"status":    "PATCH /api/v1/jobs/:id/status",
					"workflow":  "POST /api/v1/jobs/:id/workflow",
					"add_phase": "POST /api/v1/jobs/:id/phases",
				},
				"resumes": fiber.Map{
					"records": list("resumes"),
					"upload":  "POST /api/v1/resumes/upload",
					"file":    "GET /api/v1/resumes/:id/file",
					"status":  "PATCH /api/v1/resumes/:id/status",
				},
				"candidates": fiber.Map{
					"records": list("candidates"),
					"apply":   "POST /api/v1/candidates/apply",
					"profile": "GET /api/v1/candidates/:id/profile",
					"for_job": "GET /api/v1/jobs/:id/candidates",
					"status":  "PATCH /api/v1/candidates/:id/status",
					"comment": "POST /api/v1/candidates/:id/comments",
					"rescore": "POST /api/v1/candidates/:id/score",
				},
				"interviews": fiber.Map{
					"records":    list("interviews"),
					"for_job":    "GET /api/v1/jobs/:id/interviews",
					"assessment": "GET /api/v1/jobs/:id/assessment",
					"schedule":   "POST /api/v1/interviews/:id/schedule",
					"complete":   "POST /api/v1/interviews/:id/complete",
					"cancel":     "POST /api/v1/interviews/:id/cancel",
					"recording":  "POST|GET /api/v1/interviews/:id/recording",
					"transcribe": "POST /api/v1/interviews/:id/transcribe",
				},
				"admin": fiber.Map{
					"organizations":  list("organizations"),
					"locations":      list("locations"),
					"business_units": list("business-units"),
					"divisions":      list("divisions"),
					"departments":    list("departments"),
					"roles":          list("roles"),
					"employees":      list("employees"),
				},
				"views": fiber.Map{
					"list":   "GET /api/v1/views/:screen",
					"save":   "POST /api/v1/views/:screen",
					"get":    "GET /api/v1/views/:screen/:id",
					"delete": "DELETE /api/v1/views/:screen/:id",
				},
			},
			"filters": fiber.Map{
				"query":  "?q=<search>&<field>=a,b&<numericField>=0-2,5-10&<boolField>=true&view=<id>",
				"search": "POST body: {\"criteria\": [{\"kind\": \"set-membership\", \"field\": \"status\", \"allowed\": [\"NEW\"]}]}",
				"kinds":  []string{"text-contains", "text-contains-any", "set-membership", "numeric-range", "boolean-equals"},
			},
			"authentication": fiber.Map{
				"enabled": cfg.Auth.Enabled,
				"headers": fiber.Map{
					"jwt":    "Authorization: Bearer <jwt_token>",
					"cookie": fmt.Sprintf("Cookie: %s=<jwt_token>", cfg.Auth.Cookie.AccessTokenName),
				},
				"access_token_ttl": cfg.Auth.JWT.AccessTokenTTL.String(),
			},
		})
	}
}

// ============================================================================
// Utility Functions
// ============================================================================

func printRouteSummary() {
	logx.Info("📋 Route Summary:")
	logx.Info("   ├─ Health: /health")
	logx.Info("   ├─ Metrics: /metrics")
	logx.Info("   ├─ Docs: /api/v1/docs")
	logx.Info("   ├─ Dashboard: /api/v1/dashboard")
	logx.Info("   ├─ Recruiting: /api/v1/{jobs,resumes,candidates,interviews}/*")
	logx.Info("   ├─ Admin: /api/v1/{organizations,locations,business-units,divisions,departments,roles,employees}/*")
	logx.Info("   └─ Views: /api/v1/views/*")
}

// startServer listens until SIGINT/SIGTERM and then shuts down gracefully
func startServer(app *fiber.App, cfg *config.Config) error {
	port := fmt.Sprintf("%d", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		logx.Info(strings.Repeat("=", 71))
		logx.Infof("🚀 Server listening on port %s", port)
		logx.Infof("📚 API Docs: http://localhost:%s/api/v1/docs", port)
		logx.Infof("💚 Health Check: http://localhost:%s/health", port)
		logx.Infof("🔒 Auth enabled: %t", cfg.Auth.Enabled)
		logx.Info(strings.Repeat("=", 71))

		errCh <- app.Listen(":" + port)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logx.Infof("🛑 Received signal: %v", sig)
	}

	logx.Info("Shutting down gracefully...")
	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}
	logx.Info("✅ Server exited successfully")
	return nil
}
