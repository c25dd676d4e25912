package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
	"github.com/growthpilot/backend/internal/requestdata"
)

type AuthMiddleware struct {
	log    *logger.Logger
	secret []byte
}

func NewAuthMiddleware(log *logger.Logger, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		log:    log.With("middleware", "AuthMiddleware"),
		secret: []byte(secret),
	}
}

type accessClaims struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Tier     string `json:"tier"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// RequireAuth verifies the bearer token and attaches identity + tier to
// the request context. Everything behind it can assume an authenticated
// user; the rate limiter relies on that.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		claims := &accessClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return am.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil || userID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		tenantID, _ := uuid.Parse(claims.TenantID)

		tier := topics.Tier(claims.Tier)
		if tier != topics.TierBasic && tier != topics.TierPremium {
			tier = topics.TierBasic
		}

		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
			UserID:   userID,
			TenantID: tenantID,
			Tier:     tier,
			IsAdmin:  claims.Admin,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin gates the administrative surface.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil || !rd.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return c.Query("token")
}
