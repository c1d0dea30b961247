package service

import (
	"context"

	"github.com/MKhiriev/eat-around/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies signed, purpose-scoped tokens.
type TokenService interface {
	// Issue signs a token for user with the lifetime configured for purpose.
	Issue(user models.User, purpose models.TokenPurpose) (models.Token, error)
	// Verify checks signature, issuer and expiry. It returns
	// [ErrExpiredToken] or [ErrInvalidToken].
	Verify(tokenString string) (models.Token, error)
	// VerifyPurpose is Verify plus a purpose check that fails with
	// [ErrWrongTokenPurpose].
	VerifyPurpose(tokenString string, purpose models.TokenPurpose) (models.Token, error)
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)
	Me(ctx context.Context, userID string) (models.Profile, error)

	LegacyRegister(ctx context.Context, req models.LegacyRegisterRequest) (models.User, error)
	LegacyLogin(ctx context.Context, req models.LegacyLoginRequest) (models.User, error)
}

type RecoveryService interface {
	Questions(ctx context.Context, req models.QuestionsRequest) (models.RecoveryStatus, error)
	VerifyAnswers(ctx context.Context, req models.VerifyAnswersRequest) (models.Token, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	SetRecoveryAnswers(ctx context.Context, userID string, req models.SecurityAnswersRequest) error
}

type OrderService interface {
	Create(ctx context.Context, userID string, req models.CreateOrderRequest) (models.CreatedOrder, error)
	Get(ctx context.Context, idOrCode string) (models.OrderView, error)
	Summary(ctx context.Context) (models.OrderSummaryList, error)
	List(ctx context.Context, filter models.OrderFilter) (models.OrderList, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type MenuService interface {
	List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error)
	Import(ctx context.Context, foods []models.Food) (int, error)
}
