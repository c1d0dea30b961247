package models

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges an operation without payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// ProfileResponse is returned by GET /api/auth/me.
type ProfileResponse struct {
	Success bool    `json:"success"`
	User    Profile `json:"user"`
}

// LegacyUser is the user view of the legacy login route.
type LegacyUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LegacyLoginResponse is returned by POST /login.
type LegacyLoginResponse struct {
	Success bool       `json:"success"`
	User    LegacyUser `json:"user"`
}

// LegacyRegisteredUser is the user view of the legacy register route.
type LegacyRegisteredUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Book    string `json:"book"`
	Subject string `json:"subject"`
}

// LegacyRegisterResponse is returned by POST /register.
type LegacyRegisterResponse struct {
	Success bool                 `json:"success"`
	User    LegacyRegisteredUser `json:"user"`
}

// ResetTokenResponse is returned by POST /api/recovery/verify.
type ResetTokenResponse struct {
	Success    bool   `json:"success"`
	ResetToken string `json:"resetToken"`
}

// RecoveryQuestions carries the question prompts, never the answers.
type RecoveryQuestions struct {
	FavouriteBook string `json:"favouriteBook"`
	BestSubject   string `json:"bestSubject"`
}

// QuestionsResponse is returned by POST /api/recovery/questions.
type QuestionsResponse struct {
	Success              bool               `json:"success"`
	HasSecurityQuestions bool               `json:"hasSecurityQuestions"`
	Questions            *RecoveryQuestions `json:"questions,omitempty"`
	Message              string             `json:"message,omitempty"`
}

// FoodsResponse is returned by GET /api/foods.
type FoodsResponse struct {
	Success bool   `json:"success"`
	Foods   []Food `json:"foods"`
}

// CreateOrderResponse is returned by POST /api/orders.
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Code    string `json:"code"`
}

// OrderResponse is returned by GET /api/orders/{id}.
type OrderResponse struct {
	Success bool      `json:"success"`
	Order   OrderView `json:"order"`
}

// OrdersResponse is returned by GET /api/orders/mine.
type OrdersResponse struct {
	Success  bool        `json:"success"`
	Orders   []OrderView `json:"orders"`
	TotalSum float64     `json:"totalSum"`
}

// OrderSummaryResponse is returned by GET /api/orders/summary.
type OrderSummaryResponse struct {
	Success  bool           `json:"success"`
	Orders   []OrderSummary `json:"orders"`
	TotalSum float64        `json:"totalSum"`
}

// DeletedResponse is returned by DELETE /api/orders.
type DeletedResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}
