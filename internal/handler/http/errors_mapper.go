package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/eat-around/internal/app"
	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/service"
	"github.com/MKhiriev/eat-around/internal/store"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

// errorCase maps one error to a status and client-facing message.
type errorCase struct {
	target  error
	status  int
	message string
}

// routeErrors describes how a route reports failures. Cases are matched in
// order with errors.Is; anything unmatched becomes a 500 with fallback.
type routeErrors struct {
	fallback string
	cases    []errorCase
}

func (e routeErrors) resolve(err error) (int, string) {
	for _, c := range e.cases {
		if errors.Is(err, c.target) {
			return c.status, c.message
		}
	}
	return http.StatusInternalServerError, e.fallback
}

var invalidJSONCase = errorCase{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON}

var (
	registerErrors = routeErrors{
		fallback: app.MsgRegisterFailed,
		cases: []errorCase{
			invalidJSONCase,
			{service.ErrMissingFields, http.StatusBadRequest, app.MsgCredentialsRequired},
			{store.ErrAlreadyExists, http.StatusConflict, app.MsgUserExists},
		},
	}

	loginErrors = routeErrors{
		fallback: app.MsgLoginFailed,
		cases: []errorCase{
			invalidJSONCase,
			{service.ErrMissingFields, http.StatusBadRequest, app.MsgCredentialsRequired},
			{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLogin},
		},
	}

	legacyLoginErrors = routeErrors{
		fallback: app.MsgServerError,
		cases: []errorCase{
			invalidJSONCase,
			{service.ErrMissingFields, http.StatusBadRequest, "name and password are required"},
			{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
		},
	}

	legacyRegisterErrors = routeErrors{
		fallback: app.MsgServerError,
		cases: []errorCase{
			invalidJSONCase,
			{service.ErrMissingFields, http.StatusBadRequest, "name and password are required"},
			{store.ErrAlreadyExists, http.StatusConflict, app.MsgUserExists},
		},
	}

	meErrors = routeErrors{
		fallback: app.MsgProfileFailed,
		cases: []errorCase{
			{store.ErrNotFound, http.StatusNotFound, app.MsgUserNotFound},
		},
	}

	questionsErrors = routeErrors{
		fallback: app.MsgQuestionsFailed,
		cases: []errorCase{
			invalidJSONCase,
			{service.ErrMissingFields, http.StatusBadRequest, app.MsgIdentifierRequired},
		},
	}

	verifyErrors = routeErrors{
		fallback: app.MsgVerifyFailed,
		cases: []errorCase{
			invalidJSONCase,
			{service.ErrMissingFields, http.StatusBadRequest, app.MsgIdentifierRequired},
			{store.ErrNotFound, http.StatusNotFound, app.MsgUserNotFound},
			{service.ErrAnswersMismatch, http.StatusBadRequest, app.MsgAnswersMismatch},
		},
	}

	// token failures on the reset route are client errors, not 401s
	resetErrors = routeErrors{
		fallback: app.MsgResetFailed,
		cases: []errorCase{
			invalidJSONCase,
			{service.ErrMissingFields, http.StatusBadRequest, app.MsgResetFieldsRequired},
			{service.ErrWrongTokenPurpose, http.StatusBadRequest, app.MsgWrongTokenType},
			{service.ErrInvalidToken, http.StatusBadRequest, app.MsgInvalidResetToken},
			{service.ErrExpiredToken, http.StatusBadRequest, app.MsgInvalidResetToken},
			{store.ErrNotFound, http.StatusNotFound, app.MsgUserNotFound},
		},
	}

	securityErrors = routeErrors{
		fallback: app.MsgSecurityUpdateFailed,
		cases: []errorCase{
			invalidJSONCase,
			{store.ErrNotFound, http.StatusNotFound, app.MsgUserNotFound},
		},
	}

	foodsErrors = routeErrors{fallback: app.MsgFoodsFailed}

	createOrderErrors = routeErrors{
		fallback: app.MsgCreateOrderFailed,
		cases: []errorCase{
			invalidJSONCase,
			{service.ErrItemsMissingNames, http.StatusBadRequest, app.MsgItemsMissingNames},
			{service.ErrEmptyCart, http.StatusBadRequest, app.MsgEmptyCart},
			{service.ErrOrderTotalOutOfRange, http.StatusBadRequest, app.MsgOrderTotalOutOfRange},
		},
	}

	getOrderErrors = routeErrors{
		fallback: app.MsgOrderFailed,
		cases: []errorCase{
			{store.ErrNotFound, http.StatusNotFound, app.MsgOrderNotFound},
		},
	}

	summaryErrors      = routeErrors{fallback: app.MsgSummaryFailed}
	myOrdersErrors     = routeErrors{fallback: app.MsgMyOrdersFailed}
	deleteOrdersErrors = routeErrors{fallback: app.MsgDeleteOrdersFailed}
)

// writeError logs err and writes the route's JSON error envelope. Server
// side failures are logged as errors, client mistakes at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error, route routeErrors) {
	status, message := route.resolve(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	writeErrorMessage(w, message, status)
}

func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
