package auth

import (
	"github.com/gin-gonic/gin"
)

const requestContextKey = "requestContext"

// RequestContext identifies who performs an operation and from where.
// It is passed explicitly into every service call.
type RequestContext struct {
	ActorID   string
	IPAddress string
	UserAgent string
}

func (rc *RequestContext) Authenticated() bool {
	return rc != nil && rc.ActorID != ""
}

func NewRequestContext(claims *JWTClaims, ip, userAgent string) *RequestContext {
	rc := &RequestContext{IPAddress: ip, UserAgent: userAgent}
	if claims != nil {
		rc.ActorID = claims.User.ID
	}
	return rc
}

func SetRequestContext(ctx *gin.Context, rc *RequestContext) {
	ctx.Set(requestContextKey, rc)
}

// Returns nil when the auth middleware did not run or the caller has no session
func GetRequestContext(ctx *gin.Context) *RequestContext {
	v, ok := ctx.Get(requestContextKey)
	if !ok {
		return nil
	}
	rc, _ := v.(*RequestContext)
	return rc
}
