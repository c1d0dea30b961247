package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

// tokenService signs tokens with an HMAC key. Each purpose has its own
// lifetime.
type tokenService struct {
	signKey   string
	issuer    string
	durations map[models.TokenPurpose]time.Duration
}

// NewTokenService constructs a [TokenService] from the app configuration.
func NewTokenService(cfg config.App) TokenService {
	return &tokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		durations: map[models.TokenPurpose]time.Duration{
			models.PurposeAuth:          cfg.AuthTokenDuration,
			models.PurposePasswordReset: cfg.ResetTokenDuration,
		},
	}
}

func (s *tokenService) Issue(user models.User, purpose models.TokenPurpose) (models.Token, error) {
	duration, ok := s.durations[purpose]
	if !ok {
		return models.Token{}, fmt.Errorf("%w: unknown purpose %q", ErrTokenCreationFailed, purpose)
	}

	token, err := utils.GenerateJWTToken(s.issuer, user.ID, user.Identifier(), purpose, duration, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Verify(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Token{}, ErrExpiredToken
	case err != nil:
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

func (s *tokenService) VerifyPurpose(tokenString string, purpose models.TokenPurpose) (models.Token, error) {
	token, err := s.Verify(tokenString)
	if err != nil {
		return models.Token{}, err
	}

	if token.Purpose != purpose {
		return models.Token{}, ErrWrongTokenPurpose
	}

	return token, nil
}
