package middleware

import (
	"net/http"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/gin-gonic/gin"
)

// Verifies the bearer token and stores who is calling, and from where, for the services.
func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	claims, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if claims.User.ID == "" {
		m.app.Logger.Debugf("Token has no user id")
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid token", nil, nil)
		return
	}

	auth.SetRequestContext(ctx, auth.NewRequestContext(claims, ctx.ClientIP(), ctx.Request.UserAgent()))
	ctx.Next()
}
