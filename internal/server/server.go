package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
	"alfredoptarigan/resume-analyzer/internal/web"
)

// New wires handlers and middleware into a Fiber app. It does not listen.
func New(cfg *config.Config, extractor services.ExtractorService, analyzer services.AnalyzerService) (*fiber.App, error) {
	engine, err := web.NewEngine()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:           handlers.AppTitle,
		ReadTimeout:       30 * time.Second,
		BodyLimit:         int(cfg.Upload.MaxFileSize) + 1<<20,
		ErrorHandler:      customErrorHandler,
		Views:             engine,
		EnablePrintRoutes: cfg.IsDevelopment(),
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(requestMetrics)

	uploadHandler := handlers.NewUploadHandler(extractor, cfg.Upload.MaxFileSize)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer)

	// Browser form
	app.Get("/", handlers.HandleIndex)
	app.Post("/upload", uploadHandler.HandleUpload)
	app.Post("/analyze", analyzeHandler.HandleAnalyze)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	api.Post("/extract", uploadHandler.HandleExtract)
	api.Post("/analyze", analyzeHandler.HandleAnalyzeAPI)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app, nil
}

func requestMetrics(c *fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	metrics.HttpRequestsTotal.WithLabelValues(c.Route().Path, strconv.Itoa(status)).Inc()

	return err
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
