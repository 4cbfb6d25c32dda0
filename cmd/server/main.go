package main

import (
	"context"
	"fmt"

	"github.com/learngate/learngate/internal/config"
	myHTTP "github.com/learngate/learngate/internal/handler/http"
	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/mail"
	"github.com/learngate/learngate/internal/server"
	"github.com/learngate/learngate/internal/service"
	"github.com/learngate/learngate/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("learngate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	var sender mail.Sender
	if cfg.Mail.SMTPAddress != "" {
		sender = mail.NewSMTPSender(cfg.Mail, log)
	} else {
		log.Warn().Msg("no SMTP address configured, reset codes are logged instead of mailed")
		sender = mail.NewLogSender(log)
	}

	services := service.NewServices(*repos, sender, *cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
