package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/sky-take-out/internal/config"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/internal/utils"
	"github.com/MKhiriev/sky-take-out/models"
)

// authService is the concrete implementation of AuthService.
// It signs tokens carrying the employee ID and checks them on protected
// requests.
type authService struct {
	// codec signs and verifies the compact tokens.
	codec *utils.TokenCodec

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg. All state is read-only after construction.
func NewAuthService(codec *utils.TokenCodec, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		codec:         codec,
		tokenSignKey:  cfg.TokenSignKey,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a token whose "empId" claim is the employee's ID.
func (a *authService) CreateToken(ctx context.Context, employee models.Employee) (string, error) {
	token, err := a.codec.Issue(a.tokenSignKey, a.tokenDuration, utils.Claims{
		utils.EmployeeIDClaim: employee.ID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*authService.CreateToken").
			Int64("employee_id", employee.ID).
			Msg("error issuing token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies tokenString and returns the employee ID it carries.
//
// The returned error wraps [utils.ErrTokenExpired] or [utils.ErrTokenInvalid],
// so callers can tell the two apart with errors.Is.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (int64, error) {
	claims, err := a.codec.Verify(a.tokenSignKey, tokenString)
	if err != nil {
		return 0, err
	}

	id, err := utils.EmployeeID(claims)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", utils.ErrTokenInvalid, err)
	}

	return id, nil
}
