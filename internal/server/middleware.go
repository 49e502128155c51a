package server

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/abhisek/skilleval/internal/logger"
)

const (
	ctxUserID = "user_id"
	ctxRoles  = "user_roles"
)

// claims are the identity claims issued by the platform.
type claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Auth validates an HS256 bearer token and stores the subject and roles
// in the request context.
func Auth(secret, issuer string) gin.HandlerFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)
	key := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			respondError(c, http.StatusUnauthorized, "unauthorized", "bearer token required")
			return
		}

		var cl claims
		_, err := parser.ParseWithClaims(token, &cl, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			respondError(c, http.StatusUnauthorized, "unauthorized", msg)
			return
		}
		if cl.Subject == "" {
			respondError(c, http.StatusUnauthorized, "unauthorized", "token has no subject")
			return
		}

		c.Set(ctxUserID, cl.Subject)
		c.Set(ctxRoles, cl.Roles)
		c.Next()
	}
}

// RequireRole rejects callers without role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, _ := c.Get(ctxRoles)
		have, _ := roles.([]string)
		if !slices.Contains(have, role) {
			respondError(c, http.StatusForbidden, "forbidden", "insufficient permissions")
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per request, leveled by status class.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if uid := c.GetString(ctxUserID); uid != "" {
			fields = append(fields, "user_id", uid)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("http request", fields...)
		case status >= 400:
			log.Warn("http request", fields...)
		default:
			log.Info("http request", fields...)
		}
	}
}

func userID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
