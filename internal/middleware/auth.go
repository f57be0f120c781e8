package middleware

import (
	"errors"
	"net/http"
	"strings"

	"compras/internal/model"
	"compras/internal/service"
	"compras/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("authorization is missing")
	ErrBadFormat    = errors.New("invalid authorization format, expected 'Bearer <token>'")
)

// Identity is what a valid token says about its bearer
type Identity struct {
	UserID      string
	Nome        string
	NivelAcesso model.NivelAcesso
}

// ParseToken validates an HS256 token and extracts the identity claims
func ParseToken(tokenString string, secret []byte) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, jwt.ErrTokenInvalidSubject
	}
	nome, _ := claims["nome"].(string)
	nivel, _ := claims["nivel_acesso"].(string)

	return Identity{UserID: sub, Nome: nome, NivelAcesso: model.NivelAcesso(nivel)}, nil
}

func bearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrBadFormat
	}
	return parts[1], nil
}

// Authenticate parses the Bearer token when one is sent and exposes the
// caller through the gin context and the request context. With required
// set, requests without a valid token are rejected with 401.
func Authenticate(secret []byte, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c)
		if err != nil {
			if required || !errors.Is(err, ErrMissingToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Não autenticado", err.Error()))
				return
			}
			c.Next()
			return
		}

		id, err := ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Token inválido", err.Error()))
			return
		}

		c.Set("userID", id.UserID)
		c.Set("userName", id.Nome)
		c.Set("nivelAcesso", string(id.NivelAcesso))
		c.Request = c.Request.WithContext(service.WithActor(c.Request.Context(), service.Actor{
			UserID:      id.UserID,
			Nome:        id.Nome,
			NivelAcesso: id.NivelAcesso,
		}))

		c.Next()
	}
}

// RequireAccess rejects callers whose tier is not in allowed. It must run
// after Authenticate.
func RequireAccess(allowed ...model.NivelAcesso) gin.HandlerFunc {
	return func(c *gin.Context) {
		nivel := model.NivelAcesso(c.GetString("nivelAcesso"))
		if nivel == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error("Não autenticado", ErrMissingToken.Error()))
			return
		}
		for _, a := range allowed {
			if a == nivel {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.Error("Acesso negado", "nível de acesso insuficiente"))
	}
}

// RequireSelfOrAccess lets callers act on the account named by the :param
// path segment when it is their own, and otherwise behaves like RequireAccess.
func RequireSelfOrAccess(param string, allowed ...model.NivelAcesso) gin.HandlerFunc {
	byTier := RequireAccess(allowed...)
	return func(c *gin.Context) {
		if uid := c.GetString("userID"); uid != "" && uid == c.Param(param) {
			c.Next()
			return
		}
		byTier(c)
	}
}
