package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/learngate/learngate/internal/config"
	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/store"
	"github.com/learngate/learngate/internal/utils"
	"github.com/learngate/learngate/models"
)

// guardService implements Guard. It is the single chokepoint for bearer-token
// authentication and role checks on guarded operations.
type guardService struct {
	principals   store.PrincipalRepository
	tokenSignKey string
	tokenIssuer  string
	logger       *logger.Logger
}

func NewGuardService(principals store.PrincipalRepository, cfg config.Auth, logger *logger.Logger) Guard {
	return &guardService{
		principals:   principals,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// Authenticate turns a bearer token into a live account.
//
// A valid signature is not enough: the account is re-read from the store on
// every call, so a deleted account yields ErrPrincipalGone and a blocked one
// ErrAccountBlocked immediately, without waiting for the token to expire.
// Claims other than the subject id are treated as a hint only; the stored
// record is authoritative.
//
// On success the account's last-activity timestamp is touched best-effort: a
// failure there is logged and swallowed, it never fails the request.
func (g *guardService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.User{}, ErrNoTokenProvided
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, g.tokenSignKey, g.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	principal, err := g.principals.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Int64("id", token.UserID).Msg("valid token for a deleted account")
			return models.User{}, ErrPrincipalGone
		}
		log.Err(err).Int64("id", token.UserID).Msg("principal lookup failed")
		return models.User{}, fmt.Errorf("principal lookup failed: %w", err)
	}

	if principal.Blocked {
		return models.User{}, ErrAccountBlocked
	}

	if err := g.principals.TouchActivity(ctx, principal.UserID, time.Now()); err != nil {
		log.Warn().Err(err).Int64("id", principal.UserID).Msg("touching last activity failed")
	}

	return principal, nil
}

// Authorize checks the principal's role against the allowed set. Matching is
// exact: there is no role hierarchy, an admin is not implicitly an
// instructor. An empty allowed set means any authenticated account passes.
func (g *guardService) Authorize(principal models.User, allowed ...models.Role) error {
	if len(allowed) == 0 {
		return nil
	}

	for _, role := range allowed {
		if principal.Role == role {
			return nil
		}
	}

	g.logger.Warn().
		Int64("id", principal.UserID).
		Str("role", string(principal.Role)).
		Msg("role not in allowed set")
	return ErrForbidden
}
