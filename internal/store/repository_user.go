package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

// userRepository is the SQL implementation of [UserRepository] backed by the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

// NewUserRepository constructs a SQL [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var name, email sql.NullString

	err := row.Scan(
		&user.ID, &user.Username, &name, &email,
		&user.PasswordHash, &user.Password,
		&user.Book, &user.Subject,
		&user.SecurityQuestions.FavouriteBook, &user.SecurityQuestions.BestSubject,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Name = name.String
	user.Email = email.String
	return user, nil
}

// CreateUser persists a new user record and returns it with the generated
// ID and timestamps.
//
// Error handling:
//   - unique violation on username or email → [ErrAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	user.ID = r.ids.Generate()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.writeError(err)
	}

	return user, nil
}

// FindUser returns the oldest user whose username or name equals one of the
// lookup handles, or whose email equals the lookup email.
func (r *userRepository) FindUser(ctx context.Context, lookup models.UserLookup) (models.User, error) {
	if lookup.Empty() {
		return models.User{}, ErrNotFound
	}

	query, args, err := buildFindUserQuery(r.db.builder, lookup)
	if err != nil {
		return models.User{}, err
	}

	return r.queryUser(ctx, "*userRepository.FindUser", query, args)
}

// GetUserByID returns the user with the given id.
func (r *userRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	query, args, err := buildGetUserByIDQuery(r.db.builder, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.GetUserByID", query, args)
}

func (r *userRepository) queryUser(ctx context.Context, fn, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdatePassword overwrites password_hash and the legacy password column.
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query, args, err := buildUpdatePasswordQuery(r.db.builder, id, passwordHash, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*userRepository.UpdatePassword", query, args)
}

// UpdateRecoveryAnswers overwrites the structured and legacy answers.
func (r *userRepository) UpdateRecoveryAnswers(ctx context.Context, id string, answers models.SecurityQuestions) error {
	query, args, err := buildUpdateRecoveryAnswersQuery(r.db.builder, id, answers, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*userRepository.UpdateRecoveryAnswers", query, args)
}

func (r *userRepository) execUpdate(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error updating user")
		return r.db.writeError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
