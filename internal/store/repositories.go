package store

import (
	"github.com/learngate/learngate/internal/logger"
)

// Repositories bundles the credential store adapters handed to the service
// layer.
type Repositories struct {
	PrincipalRepository PrincipalRepository
	ResetCodeRepository ResetCodeRepository
}

// NewRepositories wires all repositories to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		PrincipalRepository: NewPrincipalRepository(db, logger),
		ResetCodeRepository: NewResetCodeRepository(db, logger),
	}
}
