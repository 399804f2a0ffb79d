package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/esprit/eventsproject/internal/api/handler/v1/response"
	"github.com/esprit/eventsproject/internal/pkg/jwthelper"
)

const ContextKeySubject = "subject"

var errMissingBearer = errors.New("missing bearer token")

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token. With no signing
// key configured every request passes.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if len(a.signingKey) == 0 {
			ctx.Next()
			return
		}

		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingBearer))
			ctx.Abort()
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			ctx.Abort()
			return
		}

		ctx.Set(ContextKeySubject, claims.Subject)
		ctx.Next()
	}
}
