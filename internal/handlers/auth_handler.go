package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edublog/blog-service/internal/services"
	"github.com/edublog/blog-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService, logger utils.Logger, development bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger, development),
		authService: authService,
	}
}

// Login authenticates email+password and returns a bearer token.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newError("Email e senha são obrigatórios."))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
