package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edublog/blog-service/internal/services"
	"github.com/edublog/blog-service/internal/utils"
	"github.com/edublog/blog-service/internal/validator"
)

// ErrorResponse is the wire shape of every failure.
type ErrorResponse struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

func newError(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}

// BaseHandler carries the pieces every handler needs: logging and the
// central error mapper.
type BaseHandler struct {
	logger      utils.Logger
	development bool
}

func NewBaseHandler(logger utils.Logger, development bool) BaseHandler {
	return BaseHandler{logger: logger, development: development}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	utils.FromContext(c, h.logger).Error(msg, append(args, "error", err)...)
}

// parseIDParam parses a numeric path parameter strictly. On failure it
// writes the 400 response and returns (0, false).
func (h *BaseHandler) parseIDParam(c *gin.Context, param, invalidMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, newError(invalidMsg))
		return 0, false
	}
	return uint(id), true
}

// handleServiceError is the single place a service failure becomes an
// HTTP status and body. Client-range failures pass their message (and
// validation details) through; anything unrecognized is logged and masked
// as a 500 outside development.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  "error",
			Message: "Dados de entrada inválidos.",
			Errors:  validationErrors,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, newError("Email e senha são obrigatórios."))
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, newError("Credenciais inválidas."))
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, newError("O email fornecido já está em uso."))
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, newError("Usuário não encontrado."))
	case errors.Is(err, services.ErrPostNotFound):
		c.JSON(http.StatusNotFound, newError("Post não encontrado."))
	case errors.Is(err, services.ErrNoUpdateData):
		c.JSON(http.StatusBadRequest, newError("Nenhum dado válido fornecido para atualização."))
	case errors.Is(err, services.ErrMissingSearchTerm):
		c.JSON(http.StatusBadRequest, newError(`O parâmetro de busca "termo" é obrigatório.`))
	default:
		h.LogError(c, err, "unexpected error")
		message := "Erro interno do servidor."
		if h.development {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, newError(message))
	}
}
