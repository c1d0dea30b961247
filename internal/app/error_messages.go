// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the eat-around API writes into
// error response bodies.
//
// Every failed request is answered with {"error":"<message>"}, where the
// message is one of the Msg* constants below. Keeping them in one place
// keeps the wording consistent between routes and lets the API client and
// tests refer to them by name.
package app

// Request validation.
const (
	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON body"

	// MsgInvalidGzip is returned when a gzip-encoded body cannot be inflated.
	MsgInvalidGzip = "Invalid gzip body"

	MsgCredentialsRequired = "Username/name and password are required"
	MsgIdentifierRequired  = "Username/name or email is required"
	MsgResetFieldsRequired = "Token and new password are required"

	// MsgItemsMissingNames is returned when a cart has items but none of
	// them carries a usable name.
	MsgItemsMissingNames = "Items missing names"

	// MsgEmptyCart is returned when a cart has no items at all.
	MsgEmptyCart = "At least one item is required"

	MsgOrderTotalOutOfRange = "Order total is out of range"
)

// Authentication.
const (
	MsgAuthRequired       = "Authentication required"
	MsgInvalidTokenPurpose = "Invalid token purpose"
	MsgInvalidToken       = "Invalid or expired token"

	// MsgInvalidLogin is returned by POST /api/auth/login on a bad
	// username/password pair.
	MsgInvalidLogin = "Invalid username or password"

	// MsgInvalidCredentials is the legacy POST /login wording of
	// MsgInvalidLogin.
	MsgInvalidCredentials = "Invalid credentials"

	MsgWrongTokenType    = "Wrong token type"
	MsgInvalidResetToken = "Reset token is invalid or expired"
	MsgAnswersMismatch   = "Security answers do not match"
)

// Lookups and conflicts.
const (
	MsgNotFound      = "Not found"
	MsgUserNotFound  = "User not found"
	MsgOrderNotFound = "Order not found"
	MsgUserExists    = "User already exists"
)

// Fallbacks for unexpected failures. They never carry internal details.
const (
	MsgServerError          = "Server error"
	MsgRegisterFailed       = "Unable to register right now"
	MsgLoginFailed          = "Unable to login right now"
	MsgProfileFailed        = "Unable to load profile"
	MsgQuestionsFailed      = "Unable to load security questions"
	MsgVerifyFailed         = "Unable to verify answers right now"
	MsgResetFailed          = "Unable to reset password right now"
	MsgSecurityUpdateFailed = "Unable to update security questions"
	MsgFoodsFailed          = "Unable to load foods"
	MsgCreateOrderFailed    = "Unable to create order"
	MsgOrderFailed          = "Unable to load order"
	MsgSummaryFailed        = "Unable to load order summary"
	MsgMyOrdersFailed       = "Unable to load your orders"
	MsgDeleteOrdersFailed   = "Unable to delete orders"
)
