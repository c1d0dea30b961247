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

// authService is the concrete implementation of AuthService.
// It handles registration, credential checks and session token issuance.
// Both the current and the legacy routes go through the same register and
// login code.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokens issues auth tokens after successful register and login.
	tokens TokenService

	validator validators.Validator

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// rehashLegacy turns on upgrading plaintext legacy passwords to bcrypt
	// after a successful login.
	rehashLegacy bool

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		rehashLegacy:   cfg.RehashLegacyPasswords,
		logger:         logger,
	}
}

// Register creates a new account and issues an auth token for it.
//
// The username falls back to name; name falls back to the username. An
// account matching the username (as username or name) or the email fails
// with [store.ErrAlreadyExists]. The bcrypt hash is written to both the
// current and the legacy password field and the answers to both the
// structured and the flat fields.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	handle := strings.TrimSpace(req.Handle())
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = handle
	}

	user := models.User{
		Username: handle,
		Name:     name,
		Email:    strings.TrimSpace(req.Email),
	}
	user.SetRecoveryAnswers(models.SecurityQuestions{
		FavouriteBook: req.FavouriteBook,
		BestSubject:   req.BestSubject,
	})

	created, err := a.createUser(ctx, user, req.Password)
	if err != nil {
		return models.Session{}, err
	}

	token, err := a.tokens.Issue(created, models.PurposeAuth)
	if err != nil {
		log.Err(err).Str("user_id", created.ID).Msg("auth token creation failed")
		return models.Session{}, err
	}

	log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return models.Session{Token: token, User: created}, nil
}

// LegacyRegister serves the old {name, password, book, subject} form. The
// name becomes both username and name.
func (a *authService) LegacyRegister(ctx context.Context, req models.LegacyRegisterRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	name := strings.TrimSpace(req.Name)
	user := models.User{Username: name, Name: name}
	user.SetRecoveryAnswers(models.SecurityQuestions{
		FavouriteBook: req.Book,
		BestSubject:   req.Subject,
	})

	return a.createUser(ctx, user, req.Password)
}

func (a *authService) createUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUser(ctx, models.NewUserLookup(user.Username, user.Email))
	switch {
	case err == nil:
		return models.User{}, store.ErrAlreadyExists
	case !errors.Is(err, store.ErrNotFound):
		log.Err(err).Str("username", user.Username).Msg("user existence check failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = hash
	user.Password = hash

	created, err := a.userRepository.CreateUser(ctx, user)
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return models.User{}, err
	case err != nil:
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return created, nil
}

// Login authenticates by username or name and issues an auth token.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	user, err := a.authenticate(ctx, strings.TrimSpace(req.Handle()), req.Password)
	if err != nil {
		return models.Session{}, err
	}

	token, err := a.tokens.Issue(user, models.PurposeAuth)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("auth token creation failed")
		return models.Session{}, err
	}

	return models.Session{Token: token, User: user}, nil
}

// LegacyLogin authenticates the old {name, password} form. No token is
// issued.
func (a *authService) LegacyLogin(ctx context.Context, req models.LegacyLoginRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	return a.authenticate(ctx, strings.TrimSpace(req.Name), req.Password)
}

// authenticate looks the account up by handle and checks the password.
// Stored bcrypt hashes are compared with bcrypt; any other stored value is
// a legacy plaintext credential.
func (a *authService) authenticate(ctx context.Context, handle, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUser(ctx, models.NewUserLookup(handle, ""))
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Debug().Str("handle", handle).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	case err != nil:
		log.Err(err).Str("handle", handle).Msg("user search by handle failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	ok, legacy, err := utils.CheckPassword(user.StoredPassword(), password)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("password check failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if !ok {
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if legacy {
		log.Warn().Str("user_id", user.ID).Msg("login matched a plaintext legacy password")
		if a.rehashLegacy {
			a.upgradeLegacyPassword(ctx, user, password)
		}
	}

	return user, nil
}

// upgradeLegacyPassword replaces a plaintext credential with its bcrypt
// hash. Failures are logged; the login itself already succeeded.
func (a *authService) upgradeLegacyPassword(ctx context.Context, user models.User, password string) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("legacy password rehash failed")
		return
	}

	if err = a.userRepository.UpdatePassword(ctx, user.ID, hash); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("legacy password rehash failed")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("legacy password rehashed")
}

// Me returns the profile of the authenticated caller.
func (a *authService) Me(ctx context.Context, userID string) (models.Profile, error) {
	user, err := a.userRepository.GetUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Profile{}, err
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user lookup failed")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return user.Profile(), nil
}
