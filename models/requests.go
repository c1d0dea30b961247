package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username      string `json:"username"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	FavouriteBook string `json:"favouriteBook"`
	BestSubject   string `json:"bestSubject"`
}

// Handle returns username, falling back to the legacy name alias.
func (r RegisterRequest) Handle() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Name
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Handle returns username, falling back to the legacy name alias.
func (r LoginRequest) Handle() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Name
}

// LegacyRegisterRequest is the body of POST /register.
type LegacyRegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Book     string `json:"book"`
	Subject  string `json:"subject"`
}

// LegacyLoginRequest is the body of POST /login.
type LegacyLoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// VerifyAnswersRequest is the body of POST /api/recovery/verify.
type VerifyAnswersRequest struct {
	Username      string `json:"username"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	FavouriteBook string `json:"favouriteBook"`
	BestSubject   string `json:"bestSubject"`
}

// Lookup builds the user lookup from the identifying fields.
func (r VerifyAnswersRequest) Lookup() UserLookup {
	handle := r.Username
	if handle == "" {
		handle = r.Name
	}
	return NewUserLookup(handle, r.Email)
}

// QuestionsRequest is the body of POST /api/recovery/questions.
type QuestionsRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Lookup builds the user lookup from the identifying fields.
func (r QuestionsRequest) Lookup() UserLookup {
	handle := r.Username
	if handle == "" {
		handle = r.Name
	}
	return NewUserLookup(handle, r.Email)
}

// ResetPasswordRequest is the body of PUT /api/recovery/reset.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// SecurityAnswersRequest is the body of POST /api/recovery/security.
type SecurityAnswersRequest struct {
	FavouriteBook string `json:"favouriteBook"`
	BestSubject   string `json:"bestSubject"`
}

// CreateOrderRequest is the body of POST /api/orders. Items are accepted in
// loosely typed form and sanitized by the order service.
type CreateOrderRequest struct {
	Items         []RawOrderItem `json:"items"`
	ShopLocation  string         `json:"shopLocation"`
	CustomerNotes string         `json:"customerNotes"`
}

// RawOrderItem is an order line as submitted by a client.
type RawOrderItem struct {
	Name     FlexString `json:"name"`
	Quantity FlexNumber `json:"quantity"`
	Price    FlexNumber `json:"price"`
}
