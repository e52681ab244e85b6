package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edublog/blog-service/internal/auth"
	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/repositories"
)

const (
	contextUserKey   = "user"
	contextUserIDKey = "user_id"
)

// JWTAuthMiddleware authenticates requests with bearer tokens issued by
// the token service and loads the acting user.
type JWTAuthMiddleware struct {
	tokens   *auth.TokenService
	userRepo repositories.UserRepository
}

func NewJWTAuthMiddleware(tokens *auth.TokenService, userRepo repositories.UserRepository) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// AuthMiddleware verifies the Authorization header and attaches the
// authenticated user to the request context.
func (m *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, newError("Token de autenticação ausente."))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, newError("Formato do token inválido (Esperado: Bearer <token>)."))
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, newError("Token expirado."))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, newError("Token inválido."))
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, newError("Falha interna na autenticação."))
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, newError("Usuário associado ao token não encontrado."))
			return
		}

		c.Set(contextUserKey, user)
		c.Set(contextUserIDKey, user.ID)
		c.Next()
	}
}

// RequireUserType restricts a route to the given user types. Assumes
// AuthMiddleware has already run.
func (m *JWTAuthMiddleware) RequireUserType(allowed ...models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, newError("Acesso negado. Você não tem permissão para esta ação."))
			return
		}

		for _, t := range allowed {
			if user.UserType == t {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, newError("Acesso negado. Você não tem permissão para esta ação."))
	}
}

// GetUserFromContext extracts the authenticated user from the Gin context.
func GetUserFromContext(c *gin.Context) (*models.User, error) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, fmt.Errorf("user not found in context")
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}
	return user, nil
}
