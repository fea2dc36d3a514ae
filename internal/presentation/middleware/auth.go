package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/CSCI4830-UNO/PetChart/internal/domain/repository/cache"
	"github.com/CSCI4830-UNO/PetChart/internal/presentation"
)

// SessionMiddleware authenticates requests with a session JWT issued by the
// identity provider, carried as a bearer token or session cookie. The
// token's signature and expiry are checked locally; the session id must
// still be live in the session store, so logout takes effect immediately.
func SessionMiddleware(secret []byte, sessions cache.Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, err := extractToken(ctx)
			if err != nil {
				ctx.Response().Header().Set(presentation.ReasonTag, err.Error())

				return ctx.NoContent(http.StatusUnauthorized)
			}

			claims, err := parseSessionToken(token, secret)
			if err != nil {
				ctx.Response().Header().Set(presentation.ReasonTag, err.Error())

				return ctx.NoContent(http.StatusUnauthorized)
			}

			live, err := sessions.Exists(ctx.Request().Context(), claims.ID)
			if err != nil {
				ctx.Response().Header().Set(presentation.ReasonTag, "session lookup failed")

				return ctx.NoContent(http.StatusInternalServerError)
			}
			if !live {
				ctx.Response().Header().Set(presentation.ReasonTag, cache.ErrSessionNotFound.Error())

				return ctx.NoContent(http.StatusUnauthorized)
			}

			ctx.Set(presentation.OwnerKey, claims.Subject)

			return next(ctx)
		}
	}
}

func extractToken(ctx echo.Context) (string, error) {
	authHeader := ctx.Request().Header.Get(presentation.AuthKey)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	cookie, err := ctx.Cookie(presentation.SessionKey)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.New("missing session token")
}

func parseSessionToken(token string, secret []byte) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid session token")
	}
	if claims.Subject == "" {
		return nil, errors.New("session token carries no subject")
	}
	if claims.ID == "" {
		return nil, errors.New("session token carries no session id")
	}

	return claims, nil
}
