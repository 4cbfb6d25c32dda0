package service

import (
	"github.com/learngate/learngate/internal/config"
	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/mail"
	"github.com/learngate/learngate/internal/store"
)

type Services struct {
	AuthService  Auth
	GuardService Guard
	ResetService Reset
}

func NewServices(repos store.Repositories, sender mail.Sender, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repos.PrincipalRepository, cfg.Auth, logger),
		GuardService: NewGuardService(repos.PrincipalRepository, cfg.Auth, logger),
		ResetService: NewResetService(repos.PrincipalRepository, repos.ResetCodeRepository, sender, cfg.Auth, logger),
	}
}
