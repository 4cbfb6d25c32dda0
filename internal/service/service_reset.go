package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/learngate/learngate/internal/config"
	"github.com/learngate/learngate/internal/logger"
	"github.com/learngate/learngate/internal/mail"
	"github.com/learngate/learngate/internal/store"
	"github.com/learngate/learngate/internal/utils"
	"github.com/learngate/learngate/models"
)

const resetMailSubject = "Your password reset code"

// resetService implements Reset: issuing six-digit one-time codes, mailing
// them out and consuming them against a password change.
type resetService struct {
	principals store.PrincipalRepository
	codes      store.ResetCodeRepository
	sender     mail.Sender

	// otpTTL is how long an issued code stays redeemable.
	otpTTL time.Duration

	// bcryptCost is the work factor used when hashing the replacement password.
	bcryptCost int

	logger *logger.Logger

	// now is stubbed in tests.
	now func() time.Time
}

func NewResetService(principals store.PrincipalRepository, codes store.ResetCodeRepository, sender mail.Sender, cfg config.Auth, logger *logger.Logger) Reset {
	return &resetService{
		principals: principals,
		codes:      codes,
		sender:     sender,
		otpTTL:     cfg.OTPTTL,
		bcryptCost: cfg.BcryptCost,
		logger:     logger,
		now:        time.Now,
	}
}

// RequestPasswordReset issues a fresh code for the account behind email and
// sends it out.
//
// For an unknown email it returns nil without doing anything, so the endpoint
// cannot be used to probe which addresses are registered. Requesting again
// while a code is live replaces it atomically: the store upserts on the
// account id, so at most one code per account can ever be redeemed.
//
// If mail delivery fails the freshly stored code is left in place and
// ErrMailDeliveryFailed is returned; the caller may simply request again.
func (r *resetService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}
	email = utils.NormalizeEmail(email)
	if !utils.ValidEmail(email) {
		return ErrInvalidEmailFormat
	}

	account, err := r.principals.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Msg("password reset requested for unknown email")
			return nil
		}
		log.Err(err).Msg("account search by email failed")
		return fmt.Errorf("account search by email failed: %w", err)
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		log.Err(err).Msg("reset code generation failed")
		return fmt.Errorf("reset code generation failed: %w", err)
	}

	issued, err := r.codes.UpsertResetCode(ctx, models.ResetCode{
		ID:        uuid.NewString(),
		UserID:    account.UserID,
		Email:     account.Email,
		Code:      code,
		ExpiresAt: r.now().Add(r.otpTTL),
		CreatedAt: r.now(),
	})
	if err != nil {
		log.Err(err).Int64("id", account.UserID).Msg("storing reset code failed")
		return fmt.Errorf("storing reset code failed: %w", err)
	}

	minutes := int(r.otpTTL.Minutes())
	if err := r.sender.Send(ctx, account.Email, resetMailSubject,
		resetMailHTML(account.Name, issued.Code, minutes), resetMailText(account.Name, issued.Code, minutes)); err != nil {
		log.Err(err).Int64("id", account.UserID).Msg("sending reset code failed")
		return fmt.Errorf("%w: %w", ErrMailDeliveryFailed, err)
	}

	log.Info().Int64("id", account.UserID).Time("expiresAt", issued.ExpiresAt).Msg("reset code issued")
	return nil
}

// VerifyResetCode reports whether email+code identify a live reset code. The
// code is NOT consumed: the client typically verifies first and submits the
// new password in a second request carrying the same code.
func (r *resetService) VerifyResetCode(ctx context.Context, email string, code string) error {
	_, err := r.findLiveCode(ctx, email, code)
	return err
}

// ResetPassword redeems a live code against a password change. The code is
// re-checked here even if VerifyResetCode already passed, and deleted only
// after the new password hash is persisted.
func (r *resetService) ResetPassword(ctx context.Context, email string, code string, newPassword string) error {
	log := logger.FromContext(ctx)

	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	live, err := r.findLiveCode(ctx, email, code)
	if err != nil {
		return err
	}

	account, err := r.principals.FindUserByID(ctx, live.UserID)
	if err != nil {
		log.Err(err).Int64("id", live.UserID).Msg("account lookup for reset failed")
		return fmt.Errorf("account lookup for reset failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(newPassword, r.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	account.PasswordHash = passwordHash
	if _, err := r.principals.SaveUser(ctx, account); err != nil {
		log.Err(err).Int64("id", account.UserID).Msg("saving new password failed")
		return fmt.Errorf("saving new password failed: %w", err)
	}

	// Consume last: if deletion fails the password is already changed and the
	// stale code will age out on its own.
	if err := r.codes.DeleteResetCode(ctx, live.ID); err != nil {
		log.Warn().Err(err).Str("codeID", live.ID).Msg("consuming reset code failed")
	}

	log.Info().Int64("id", account.UserID).Msg("password reset completed")
	return nil
}

// findLiveCode validates inputs and looks up a non-expired code matching
// email+code. Wrong code, expired code and unknown email all collapse into
// ErrResetCodeInvalid.
func (r *resetService) findLiveCode(ctx context.Context, email string, code string) (models.ResetCode, error) {
	log := logger.FromContext(ctx)

	if email == "" || code == "" {
		return models.ResetCode{}, ErrInvalidDataProvided
	}
	if !utils.ValidOTPFormat(code) {
		return models.ResetCode{}, ErrInvalidOTPFormat
	}

	live, err := r.codes.FindLiveResetCode(ctx, utils.NormalizeEmail(email), code, r.now())
	if err != nil {
		if errors.Is(err, store.ErrResetCodeNotFound) {
			return models.ResetCode{}, ErrResetCodeInvalid
		}
		log.Err(err).Msg("reset code lookup failed")
		return models.ResetCode{}, fmt.Errorf("reset code lookup failed: %w", err)
	}

	return live, nil
}

func resetMailText(name string, code string, minutes int) string {
	return fmt.Sprintf("Hi %s,\n\nYour password reset code is: %s\n\nIt expires in %d minutes. If you did not request a reset, you can ignore this message.\n", name, code, minutes)
}

func resetMailHTML(name string, code string, minutes int) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>Your password reset code is: <strong>%s</strong></p><p>It expires in %d minutes. If you did not request a reset, you can ignore this message.</p>`, name, code, minutes)
}
