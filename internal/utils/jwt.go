// Package utils provides general-purpose helper utilities used across
// different parts of the client: id generation and session-token inspection.
package utils

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSubject is returned when a session token carries no usable subject
// claim.
var ErrNoSubject = errors.New("token has no subject claim")

// UserIDFromToken extracts the numeric user id from the subject claim of a
// bearer token without verifying its signature. The client only needs the id
// to address profile updates; signature verification is the server's job.
func UserIDFromToken(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrNoSubject
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrNoSubject
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("subject %q is not a user id: %w", sub, err)
	}
	return id, nil
}
