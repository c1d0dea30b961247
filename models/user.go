package models

import (
	"strings"
	"time"
)

// SecurityQuestions holds the two password-recovery answers.
type SecurityQuestions struct {
	// FavouriteBook is the answer to "What is your favourite book?".
	FavouriteBook string `json:"favouriteBook"`
	// BestSubject is the answer to "What is your best subject?".
	BestSubject string `json:"bestSubject"`
}

// Complete reports whether both answers are non-empty.
func (q SecurityQuestions) Complete() bool {
	return q.FavouriteBook != "" && q.BestSubject != ""
}

// User is an account record as it is kept in the credential store.
//
// Several fields exist only for compatibility with records written by older
// versions of the application: Name (alias of Username), Password (may hold
// plaintext or a hash) and the flat Book / Subject answers. New writes keep
// them mirrored with their current counterparts.
type User struct {
	// ID is the store-assigned identifier (Mongo ObjectID hex or UUID).
	ID string `json:"id"`

	// Username is the unique login handle.
	Username string `json:"username"`

	// Name is the legacy login handle.
	Name string `json:"name,omitempty"`

	// Email is optional. An empty value is never persisted so that the
	// uniqueness constraint only covers real addresses.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the current password.
	PasswordHash string `json:"-"`

	// Password is the legacy password field. Older records may hold the
	// plaintext value here.
	Password string `json:"-"`

	// Book and Subject are legacy flat recovery answers.
	Book    string `json:"-"`
	Subject string `json:"-"`

	// SecurityQuestions holds the structured recovery answers.
	SecurityQuestions SecurityQuestions `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identifier returns the handle used in tokens and responses, falling back
// to the legacy name for records that predate usernames.
func (u User) Identifier() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Name
}

// StoredPassword returns the credential to check a login attempt against.
func (u User) StoredPassword() string {
	if u.PasswordHash != "" {
		return u.PasswordHash
	}
	return u.Password
}

// RecoveryAnswers resolves each answer from the structured field, falling
// back to the legacy flat field when the structured one is empty.
func (u User) RecoveryAnswers() SecurityQuestions {
	answers := u.SecurityQuestions
	if answers.FavouriteBook == "" {
		answers.FavouriteBook = u.Book
	}
	if answers.BestSubject == "" {
		answers.BestSubject = u.Subject
	}
	return answers
}

// SecurityQuestionsSet reports whether both recovery answers are available.
func (u User) SecurityQuestionsSet() bool {
	return u.RecoveryAnswers().Complete()
}

// SetRecoveryAnswers writes answers to the structured and legacy fields.
func (u *User) SetRecoveryAnswers(answers SecurityQuestions) {
	u.SecurityQuestions = answers
	u.Book = answers.FavouriteBook
	u.Subject = answers.BestSubject
}

// Public returns the view of u that is safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Identifier(),
		Email:    u.Email,
	}
}

// Profile returns the public view extended with the recovery flag.
func (u User) Profile() Profile {
	return Profile{
		PublicUser:           u.Public(),
		SecurityQuestionsSet: u.SecurityQuestionsSet(),
	}
}

// PublicUser is the client-facing user view. It never carries credentials.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Profile is returned by the "me" endpoint.
type Profile struct {
	PublicUser
	SecurityQuestionsSet bool `json:"securityQuestionsSet"`
}

// UserLookup selects a user whose username or name equals one of Handles,
// or whose email equals Email. Empty values never take part in matching.
type UserLookup struct {
	Handles []string
	Email   string
}

// NewUserLookup builds a lookup from the given handle and email, dropping
// blank values.
func NewUserLookup(handle, email string) UserLookup {
	var lookup UserLookup
	if h := strings.TrimSpace(handle); h != "" {
		lookup.Handles = []string{h}
	}
	lookup.Email = strings.TrimSpace(email)
	return lookup
}

// Empty reports whether the lookup has nothing to match on.
func (l UserLookup) Empty() bool {
	return len(l.Handles) == 0 && l.Email == ""
}

// RecoveryStatus tells a caller whether an account can be recovered with
// security answers. It never carries the answers themselves.
type RecoveryStatus struct {
	HasSecurityQuestions bool
	Questions            *RecoveryQuestions
	Message              string
}
