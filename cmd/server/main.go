package main

import (
	"fmt"
	"log"

	"gstbook/internal/config"
	"gstbook/internal/email/noop"
	"gstbook/internal/email/ses"
	"gstbook/internal/filing/local"
	"gstbook/internal/handler"
	"gstbook/internal/port"
	"gstbook/internal/repository/postgres"
	"gstbook/internal/router"
	"gstbook/internal/service"
	s3storage "gstbook/internal/storage/s3"
	"gstbook/internal/validator"
)

// @title GSTBook API
// @version 1.0
// @description GSTR-3B return preparation and filing service.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	returnRepo := postgres.NewReturnRepo(db)

	// Initialize filing gateway
	gateway := local.NewGateway(returnRepo, cfg.Filing.MaxRetries)

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize submission archive
	var archiver port.ReturnArchiver
	if cfg.S3.Bucket != "" {
		archiver, err = s3storage.NewArchiver(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 archiver: %w", err)
		}
	}

	// Initialize services
	returnSvc := service.NewReturnService(returnRepo, gateway, validator.NewDefaultEngine(), emailSender, archiver)

	// Initialize handlers
	returnH := handler.NewReturnHandler(returnSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, returnH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
