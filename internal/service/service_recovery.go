package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-around/internal/config"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/store"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/internal/validators"
	"github.com/MKhiriev/eat-around/models"
)

// Prompts shown to a caller recovering an account.
const (
	FavouriteBookPrompt = "What is your favourite book?"
	BestSubjectPrompt   = "What is your best subject?"
)

// Messages attached to a [models.RecoveryStatus] without questions.
const (
	MessageRecoveryUnavailable = "If the account exists and has security questions, they will be shown"
	MessageQuestionsNotSet     = "Security questions are not set for this account"
)

type recoveryService struct {
	userRepository store.UserRepository
	tokens         TokenService
	validator      validators.Validator
	bcryptCost     int
	logger         *logger.Logger
}

// NewRecoveryService constructs the password recovery flow: question
// lookup, answer verification and token-based password reset.
func NewRecoveryService(userRepository store.UserRepository, tokens TokenService, validator validators.Validator, cfg config.App, logger *logger.Logger) RecoveryService {
	return &recoveryService{
		userRepository: userRepository,
		tokens:         tokens,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Questions reports whether the account can be recovered. Unknown accounts
// are reported like accounts without answers.
func (s *recoveryService) Questions(ctx context.Context, req models.QuestionsRequest) (models.RecoveryStatus, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.RecoveryStatus{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	user, err := s.userRepository.FindUser(ctx, req.Lookup())
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.RecoveryStatus{Message: MessageRecoveryUnavailable}, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Msg("user lookup for recovery questions failed")
		return models.RecoveryStatus{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if !user.SecurityQuestionsSet() {
		return models.RecoveryStatus{Message: MessageQuestionsNotSet}, nil
	}

	return models.RecoveryStatus{
		HasSecurityQuestions: true,
		Questions: &models.RecoveryQuestions{
			FavouriteBook: FavouriteBookPrompt,
			BestSubject:   BestSubjectPrompt,
		},
	}, nil
}

// VerifyAnswers checks both answers and issues a password-reset token.
// Comparison trims and ignores case. An answer that is not set on the
// account never matches.
func (s *recoveryService) VerifyAnswers(ctx context.Context, req models.VerifyAnswersRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	user, err := s.userRepository.FindUser(ctx, req.Lookup())
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Token{}, err
	case err != nil:
		log.Err(err).Msg("user lookup for answer verification failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	stored := user.RecoveryAnswers()
	if !answerMatches(stored.FavouriteBook, req.FavouriteBook) || !answerMatches(stored.BestSubject, req.BestSubject) {
		log.Info().Str("user_id", user.ID).Msg("security answers do not match")
		return models.Token{}, ErrAnswersMismatch
	}

	token, err := s.tokens.Issue(user, models.PurposePasswordReset)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("reset token creation failed")
		return models.Token{}, err
	}

	return token, nil
}

func answerMatches(stored, given string) bool {
	stored = normalizeAnswer(stored)
	return stored != "" && stored == normalizeAnswer(given)
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// ResetPassword sets a new password for the subject of a password-reset
// token.
func (s *recoveryService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	token, err := s.tokens.VerifyPurpose(strings.TrimSpace(req.Token), models.PurposePasswordReset)
	if err != nil {
		log.Debug().Err(err).Msg("reset token rejected")
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	err = s.userRepository.UpdatePassword(ctx, token.UserID, hash)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return err
	case err != nil:
		log.Err(err).Str("user_id", token.UserID).Msg("password update failed")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	log.Info().Str("user_id", token.UserID).Msg("password reset")
	return nil
}

// SetRecoveryAnswers overwrites both answers of the caller's account.
func (s *recoveryService) SetRecoveryAnswers(ctx context.Context, userID string, req models.SecurityAnswersRequest) error {
	err := s.userRepository.UpdateRecoveryAnswers(ctx, userID, models.SecurityQuestions{
		FavouriteBook: req.FavouriteBook,
		BestSubject:   req.BestSubject,
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		return err
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("recovery answers update failed")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return nil
}
