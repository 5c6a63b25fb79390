package v1

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/rescue_coordination_system/internal/config"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

const actorKey = "actor"

// Claims carries the caller's role. The subject holds the actor ID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Kind: "Unauthorized", Message: message})
}

// APIKeyAuthMiddleware authenticates field terminals by a shared API key.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			apiKey = bearerToken(c)
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			unauthorized(c, "API key required")
			return
		}

		if !slices.Contains(cfg.APIKeys, apiKey) {
			log.WithField("client_ip", c.ClientIP()).Warn("Invalid API key provided")
			unauthorized(c, "Invalid API key")
			return
		}

		c.Next()
	}
}

// JWTAuthMiddleware resolves the calling actor from an HS256 token passed
// as a bearer header or, for websocket upgrades, a token query parameter.
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			log.Warn("Token missing from request")
			unauthorized(c, "Authorization token required")
			return
		}

		actor, err := parseActor(tokenString, secret)
		if err != nil {
			log.WithError(err).Warn("Invalid token provided")
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

func parseActor(tokenString string, secret []byte) (models.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Actor{}, err
	}
	if !token.Valid {
		return models.Actor{}, jwt.ErrTokenInvalidClaims
	}

	role := models.Role(claims.Role)
	if claims.Subject == "" || !role.IsValid() {
		return models.Actor{}, jwt.ErrTokenInvalidClaims
	}
	return models.Actor{ID: claims.Subject, Role: role}, nil
}

// actorFrom returns the actor set by JWTAuthMiddleware.
func actorFrom(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}
