package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const IdentityContextKey = "IdentityContextKey"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrNotAuthorized = errors.New("not authorized")
)

// Identity is the caller as asserted by the identity provider's token. The zero
// value is an anonymous caller.
type Identity struct {
	UserName string
	Sysadmin bool
}

type AuthMiddleware interface {
	ExtractIdentity() gin.HandlerFunc
	RequireAuthorizedUser() gin.HandlerFunc
	RequireSysadmin() gin.HandlerFunc
}

type authMiddleware struct {
	secretKey       []byte
	authorizedUsers []string
}

// ExtractIdentity reads an optional bearer token. Requests without an
// Authorization header continue as anonymous.
func (a *authMiddleware) ExtractIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) == 0 {
			c.Set(IdentityContextKey, Identity{})
			c.Next()
			return
		}
		header := strings.Fields(authHeader)
		if len(header) != 2 || header[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is invalid"})
			return
		}
		identity, err := a.verifyToken(header[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid access token"})
			return
		}
		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// RequireAuthorizedUser lets through sysadmins and the users named in the
// configured allow-list, i.e. the link checkers.
func (a *authMiddleware) RequireAuthorizedUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if identity.Sysadmin {
			c.Next()
			return
		}
		if identity.UserName == "" || !slices.Contains(a.authorizedUsers, identity.UserName) {
			deny(c, identity)
			return
		}
		c.Next()
	}
}

func (a *authMiddleware) RequireSysadmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if !identity.Sysadmin {
			deny(c, identity)
			return
		}
		c.Next()
	}
}

// deny aborts with 403 and records ErrNotAuthorized on the context so request
// loggers can tell refusals from failures.
func deny(c *gin.Context, identity Identity) {
	_ = c.Error(fmt.Errorf("user %q: %w", identity.UserName, ErrNotAuthorized))
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
}

func (a *authMiddleware) verifyToken(tokenString string) (Identity, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secretKey, nil
	})
	if err != nil || !parsedToken.Valid {
		return Identity{}, fmt.Errorf("authMiddleware.verifyToken: %w", ErrInvalidToken)
	}
	userName, _ := claims["sub"].(string)
	if userName == "" {
		return Identity{}, fmt.Errorf("authMiddleware.verifyToken: %w", ErrInvalidToken)
	}
	sysadmin, _ := claims["sysadmin"].(bool)
	return Identity{UserName: userName, Sysadmin: sysadmin}, nil
}

func IdentityFromContext(c *gin.Context) Identity {
	if v, ok := c.Get(IdentityContextKey); ok {
		if identity, ok := v.(Identity); ok {
			return identity
		}
	}
	return Identity{}
}

func NewAuthMiddleware(secretKey string, authorizedUsers []string) AuthMiddleware {
	return &authMiddleware{
		secretKey:       []byte(secretKey),
		authorizedUsers: authorizedUsers,
	}
}
