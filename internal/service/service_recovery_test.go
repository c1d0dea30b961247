package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/eat-around/internal/store"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

func TestRecoveryService_Questions(t *testing.T) {
	svc, users, _ := newTestRecoverySvc(t)
	ctx := context.Background()

	withAnswers := models.User{ID: "u-1", SecurityQuestions: models.SecurityQuestions{FavouriteBook: "Dune", BestSubject: "Math"}}
	users.EXPECT().FindUser(ctx, models.NewUserLookup("", "a@b.c")).Return(withAnswers, nil)

	status, err := svc.Questions(ctx, models.QuestionsRequest{Email: "a@b.c"})
	require.NoError(t, err)
	assert.True(t, status.HasSecurityQuestions)
	require.NotNil(t, status.Questions)
	assert.Equal(t, FavouriteBookPrompt, status.Questions.FavouriteBook)
}

func TestRecoveryService_Questions_NotSetAndUnknown(t *testing.T) {
	svc, users, _ := newTestRecoverySvc(t)
	ctx := context.Background()

	users.EXPECT().FindUser(ctx, models.NewUserLookup("alice", "")).
		Return(models.User{ID: "u-1", SecurityQuestions: models.SecurityQuestions{FavouriteBook: "Dune"}}, nil)
	users.EXPECT().FindUser(ctx, models.NewUserLookup("ghost", "")).
		Return(models.User{}, store.ErrNotFound)

	status, err := svc.Questions(ctx, models.QuestionsRequest{Username: "alice"})
	require.NoError(t, err)
	assert.False(t, status.HasSecurityQuestions)
	assert.Equal(t, MessageQuestionsNotSet, status.Message)

	status, err = svc.Questions(ctx, models.QuestionsRequest{Name: "ghost"})
	require.NoError(t, err)
	assert.False(t, status.HasSecurityQuestions)
	assert.Nil(t, status.Questions)
	assert.Equal(t, MessageRecoveryUnavailable, status.Message)

	_, err = svc.Questions(ctx, models.QuestionsRequest{})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRecoveryService_VerifyAnswers_IssuesResetToken(t *testing.T) {
	svc, users, tokens := newTestRecoverySvc(t)
	ctx := context.Background()

	user := models.User{ID: "u-1", Username: "alice", SecurityQuestions: models.SecurityQuestions{FavouriteBook: "Dune", BestSubject: "Math"}}
	users.EXPECT().FindUser(ctx, models.NewUserLookup("alice", "")).Return(user, nil)

	token, err := svc.VerifyAnswers(ctx, models.VerifyAnswersRequest{
		Username: "alice", FavouriteBook: "  dune ", BestSubject: "MATH",
	})
	require.NoError(t, err)

	parsed, err := tokens.VerifyPurpose(token.SignedString, models.PurposePasswordReset)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
}

func TestRecoveryService_VerifyAnswers_LegacyFlatFields(t *testing.T) {
	svc, users, _ := newTestRecoverySvc(t)
	ctx := context.Background()

	users.EXPECT().FindUser(ctx, gomock.Any()).
		Return(models.User{ID: "u-2", Name: "olduser", Book: "Emma", Subject: "Art"}, nil)

	_, err := svc.VerifyAnswers(ctx, models.VerifyAnswersRequest{Name: "olduser", FavouriteBook: "emma", BestSubject: "art"})
	require.NoError(t, err)
}

func TestRecoveryService_VerifyAnswers_Mismatch(t *testing.T) {
	svc, users, _ := newTestRecoverySvc(t)
	ctx := context.Background()

	users.EXPECT().FindUser(ctx, gomock.Any()).
		Return(models.User{ID: "u-1", SecurityQuestions: models.SecurityQuestions{FavouriteBook: "Dune", BestSubject: "Math"}}, nil)

	_, err := svc.VerifyAnswers(ctx, models.VerifyAnswersRequest{Username: "alice", FavouriteBook: "Dune", BestSubject: "Art"})
	assert.ErrorIs(t, err, ErrAnswersMismatch)
}

func TestRecoveryService_VerifyAnswers_UnsetAnswersNeverMatch(t *testing.T) {
	svc, users, _ := newTestRecoverySvc(t)
	ctx := context.Background()

	users.EXPECT().FindUser(ctx, gomock.Any()).Return(models.User{ID: "u-1", Username: "alice"}, nil)

	_, err := svc.VerifyAnswers(ctx, models.VerifyAnswersRequest{Username: "alice"})
	assert.ErrorIs(t, err, ErrAnswersMismatch)
}

func TestRecoveryService_VerifyAnswers_NotFoundAndMissing(t *testing.T) {
	svc, users, _ := newTestRecoverySvc(t)
	ctx := context.Background()

	users.EXPECT().FindUser(ctx, gomock.Any()).Return(models.User{}, store.ErrNotFound)

	_, err := svc.VerifyAnswers(ctx, models.VerifyAnswersRequest{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.VerifyAnswers(ctx, models.VerifyAnswersRequest{FavouriteBook: "Dune"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRecoveryService_ResetPassword(t *testing.T) {
	svc, users, tokens := newTestRecoverySvc(t)
	ctx := context.Background()

	reset, err := tokens.Issue(models.User{ID: "u-1"}, models.PurposePasswordReset)
	require.NoError(t, err)

	users.EXPECT().UpdatePassword(ctx, "u-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, hash string) error {
			ok, _, err := utils.CheckPassword(hash, "newpass")
			assert.NoError(t, err)
			assert.True(t, ok)
			return nil
		},
	)

	err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Token: reset.SignedString, NewPassword: "newpass"})
	require.NoError(t, err)
}

func TestRecoveryService_ResetPassword_TokenErrors(t *testing.T) {
	svc, _, tokens := newTestRecoverySvc(t)
	ctx := context.Background()

	auth, err := tokens.Issue(models.User{ID: "u-1"}, models.PurposeAuth)
	require.NoError(t, err)
	err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Token: auth.SignedString, NewPassword: "x"})
	assert.ErrorIs(t, err, ErrWrongTokenPurpose)

	err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Token: "garbage", NewPassword: "x"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	expiredCfg := testAppConfig()
	expiredCfg.ResetTokenDuration = -time.Second
	expired, err := NewTokenService(expiredCfg).Issue(models.User{ID: "u-1"}, models.PurposePasswordReset)
	require.NoError(t, err)
	err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Token: expired.SignedString, NewPassword: "x"})
	assert.ErrorIs(t, err, ErrExpiredToken)

	err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Token: auth.SignedString})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRecoveryService_ResetPassword_UserGone(t *testing.T) {
	svc, users, tokens := newTestRecoverySvc(t)
	ctx := context.Background()

	reset, err := tokens.Issue(models.User{ID: "u-404"}, models.PurposePasswordReset)
	require.NoError(t, err)
	users.EXPECT().UpdatePassword(ctx, "u-404", gomock.Any()).Return(store.ErrNotFound)

	err = svc.ResetPassword(ctx, models.ResetPasswordRequest{Token: reset.SignedString, NewPassword: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecoveryService_SetRecoveryAnswers(t *testing.T) {
	svc, users, _ := newTestRecoverySvc(t)
	ctx := context.Background()

	answers := models.SecurityQuestions{FavouriteBook: "Dune", BestSubject: "Math"}
	users.EXPECT().UpdateRecoveryAnswers(ctx, "u-1", answers).Return(nil).Times(2)

	req := models.SecurityAnswersRequest{FavouriteBook: "Dune", BestSubject: "Math"}
	require.NoError(t, svc.SetRecoveryAnswers(ctx, "u-1", req))
	require.NoError(t, svc.SetRecoveryAnswers(ctx, "u-1", req), "setting the same answers twice is idempotent")
}

func TestRecoveryService_SetRecoveryAnswers_Errors(t *testing.T) {
	svc, users, _ := newTestRecoverySvc(t)
	ctx := context.Background()

	users.EXPECT().UpdateRecoveryAnswers(ctx, "gone", gomock.Any()).Return(store.ErrNotFound)
	users.EXPECT().UpdateRecoveryAnswers(ctx, "u-1", gomock.Any()).Return(store.ErrExecutingStatement)

	assert.ErrorIs(t, svc.SetRecoveryAnswers(ctx, "gone", models.SecurityAnswersRequest{}), store.ErrNotFound)
	assert.ErrorIs(t, svc.SetRecoveryAnswers(ctx, "u-1", models.SecurityAnswersRequest{}), ErrPersistence)
}
