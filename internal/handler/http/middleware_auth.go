package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/eat-around/internal/app"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/service"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

// requireAuth is the bearer token gate. It accepts only unexpired tokens
// with the auth purpose and stores the subject in the request context
// (see [utils.GetUserIDFromContext]).
//
// Rejections are 401 with one of three messages: "Authentication required"
// when the header is absent or not a bearer header, "Invalid token purpose"
// for a valid token issued for something else, and "Invalid or expired
// token" otherwise.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without bearer token")
			writeErrorMessage(w, app.MsgAuthRequired, http.StatusUnauthorized)
			return
		}

		token, err := h.services.TokenService.VerifyPurpose(tokenString, models.PurposeAuth)
		switch {
		case errors.Is(err, service.ErrWrongTokenPurpose):
			log.Debug().Err(err).Msg("token with wrong purpose")
			writeErrorMessage(w, app.MsgInvalidTokenPurpose, http.StatusUnauthorized)
			return
		case err != nil:
			log.Debug().Err(err).Msg("token rejected")
			writeErrorMessage(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), token.UserID)))
	})
}

// optionalAuth attaches the subject of a valid auth token when one is sent
// and lets every request through.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.TokenService.VerifyPurpose(tokenString, models.PurposeAuth)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring unusable token on open route")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), token.UserID)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	return utils.ParseBearerToken(header)
}
