// Package jwt wraps the hertz JWT middleware: bearer token issuance on
// register/login and identity extraction for protected and optional-auth
// routes.
package jwt

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	hertzjwt "github.com/hertz-contrib/jwt"

	"streamzone/pkg/errno"
)

const IdentityKey = "user_id"

type Auth struct {
	mw *hertzjwt.HertzJWTMiddleware
}

func New(secret string, expire time.Duration) (*Auth, error) {
	mw, err := hertzjwt.New(&hertzjwt.HertzJWTMiddleware{
		Realm:         "streamzone",
		Key:           []byte(secret),
		Timeout:       expire,
		MaxRefresh:    expire,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		PayloadFunc: func(data interface{}) hertzjwt.MapClaims {
			if uid, ok := data.(int64); ok {
				return hertzjwt.MapClaims{IdentityKey: uid}
			}
			return hertzjwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hertzjwt.ExtractClaims(ctx, c)
			if v, ok := claims[IdentityKey].(float64); ok {
				return int64(v)
			}
			return int64(0)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.AuthorizationErrCode,
				"message": message,
			})
		},
	})
	if err != nil {
		return nil, err
	}
	return &Auth{mw: mw}, nil
}

// GenerateToken issues a signed token for the user id.
func (a *Auth) GenerateToken(userID int64) (string, time.Time, error) {
	return a.mw.TokenGenerator(userID)
}

// MiddlewareFunc rejects requests without a valid bearer token.
func (a *Auth) MiddlewareFunc() app.HandlerFunc {
	return a.mw.MiddlewareFunc()
}

// OptionalMiddlewareFunc resolves the viewer when a valid token is present
// and lets anonymous requests through untouched.
func (a *Auth) OptionalMiddlewareFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		claims, err := a.mw.GetClaimsFromJWT(ctx, c)
		if err == nil {
			if exp, ok := claims["exp"].(float64); ok && int64(exp) >= time.Now().Unix() {
				if v, ok := claims[IdentityKey].(float64); ok {
					c.Set(IdentityKey, int64(v))
				}
			}
		}
		c.Next(ctx)
	}
}

// UserID returns the authenticated user id, or 0 for anonymous requests.
func UserID(c *app.RequestContext) int64 {
	if v, exists := c.Get(IdentityKey); exists {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
