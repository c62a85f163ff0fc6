package util

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrNoAuthorizationHeader  = errors.New("no authorization header specified")
	ErrBadAuthorizationHeader = errors.New("wrong authorization header format")
	ErrNotBearerToken         = errors.New("invalid token type; expected 'Bearer'")
)

// Reads "Authorization: Bearer <token>" and returns the token
func ReadBearerToken(ctx *gin.Context) (string, error) {
	header := strings.TrimSpace(ctx.GetHeader("Authorization"))
	if header == "" {
		return "", ErrNoAuthorizationHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", ErrBadAuthorizationHeader
	}

	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNotBearerToken
	}

	return token, nil
}
