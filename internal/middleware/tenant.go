package middleware

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/pallet-service/internal/domain/dto"
)

const (
	// TenantHeader carries the tenant id when tokens are not in use.
	TenantHeader = "X-Tenant-ID"
	// TenantIDKey is the context key for the resolved tenant.
	TenantIDKey ContextKey = "tenant_id"
)

var (
	tenantPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)

	errTenantClaimMissing = errors.New("token has no tenant_id claim")
)

// TenantClaims are the claims of a tenant token.
type TenantClaims struct {
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

// TenantConfig configures tenant resolution.
type TenantConfig struct {
	// JWTSecret enables HS256 bearer tokens. When set, tokens are required
	// and the X-Tenant-ID header is ignored.
	JWTSecret string
}

// Tenant returns a middleware that resolves the caller's tenant and stores it
// in the gin context. Requests without a valid tenant are rejected with 401.
func Tenant(cfg TenantConfig) gin.HandlerFunc {
	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		var tenantID string
		if len(secret) > 0 {
			claims, err := parseTenantToken(c.GetHeader("Authorization"), secret)
			if err != nil {
				abortUnauthorized(c, dto.MsgKeyInvalidTenantToken)
				return
			}
			tenantID = claims.TenantID
		} else {
			tenantID = strings.TrimSpace(c.GetHeader(TenantHeader))
		}

		if !tenantPattern.MatchString(tenantID) {
			abortUnauthorized(c, dto.MsgKeyTenantRequired)
			return
		}

		c.Set(string(TenantIDKey), tenantID)
		c.Next()
	}
}

// GetTenantID retrieves the tenant id from the gin context.
func GetTenantID(c *gin.Context) string {
	if id, exists := c.Get(string(TenantIDKey)); exists {
		if tenantID, ok := id.(string); ok {
			return tenantID
		}
	}
	return ""
}

// NewTenantToken signs a tenant token. Used by tooling and tests.
func NewTenantToken(tenantID string, secret []byte, claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TenantClaims{
		TenantID:         tenantID,
		RegisteredClaims: claims,
	})
	return token.SignedString(secret)
}

func parseTenantToken(header string, secret []byte) (*TenantClaims, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, jwt.ErrTokenMalformed
	}

	claims := &TenantClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims.TenantID == "" {
		return nil, errTenantClaimMissing
	}
	return claims, nil
}

func abortUnauthorized(c *gin.Context, key string) {
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, dto.Message(key)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
