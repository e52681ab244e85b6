package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/services"
	"github.com/edublog/blog-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	userService   services.UserService
	reportService services.ReportService
}

func NewUserHandler(userService services.UserService, reportService services.ReportService, logger utils.Logger, development bool) *UserHandler {
	return &UserHandler{
		BaseHandler:   NewBaseHandler(logger, development),
		userService:   userService,
		reportService: reportService,
	}
}

// Register creates a new user account.
// POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newError("Dados de entrada inválidos."))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.MessageUserResponse{
		Message: "Usuário registrado com sucesso!",
		User:    user.Public(),
	})
}

// ListUsers returns every user, sanitized.
// GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns one user by id.
// GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id", "ID de usuário inválido.")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// UpdateUser applies a partial update to a user.
// PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id", "ID de usuário inválido.")
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newError("Dados de entrada inválidos."))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, newError("Usuário não encontrado para atualização."))
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageUserResponse{
		Message: "Usuário atualizado com sucesso.",
		User:    user.Public(),
	})
}

// DeleteUser removes a user.
// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id", "ID de usuário inválido.")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, newError("Usuário não encontrado para exclusão."))
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportUsers streams an XLSX export of all users.
// GET /users/export
func (h *UserHandler) ExportUsers(c *gin.Context) {
	h.LogRequest(c, "exporting users workbook")

	data, err := h.reportService.UsersWorkbook(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="usuarios.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
