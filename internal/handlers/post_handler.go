package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edublog/blog-service/internal/models"
	"github.com/edublog/blog-service/internal/services"
	"github.com/edublog/blog-service/internal/utils"
)

type PostHandler struct {
	BaseHandler
	postService   services.PostService
	reportService services.ReportService
}

func NewPostHandler(postService services.PostService, reportService services.ReportService, logger utils.Logger, development bool) *PostHandler {
	return &PostHandler{
		BaseHandler:   NewBaseHandler(logger, development),
		postService:   postService,
		reportService: reportService,
	}
}

// CreatePost persists a post authored by the authenticated PROFESSOR.
// The author id always comes from the verified identity, never the body.
// POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	actor, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, newError("Token de autenticação ausente."))
		return
	}

	var req services.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newError("Dados de entrada inválidos."))
		return
	}

	post, err := h.postService.Create(c.Request.Context(), &req, actor.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.MessagePostResponse{
		Message: "Post criado com sucesso!",
		Post:    post,
	})
}

// ListPosts returns every post, newest first, with author identity.
// GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// SearchPosts matches a term against title or content.
// GET /posts/search?termo=
func (h *PostHandler) SearchPosts(c *gin.Context) {
	posts, err := h.postService.Search(c.Request.Context(), c.Query("termo"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost returns one post by id.
// GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id", "ID de post inválido.")
	if !ok {
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost applies a partial update and records the editor.
// PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id", "ID de post inválido.")
	if !ok {
		return
	}

	actor, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, newError("Token de autenticação ausente."))
		return
	}

	var req services.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newError("Dados de entrada inválidos."))
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, &req, actor.ID)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, newError("Post não encontrado para atualização."))
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessagePostResponse{
		Message: "Post atualizado com sucesso.",
		Post:    post,
	})
}

// DeletePost removes a post.
// DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id", "ID de post inválido.")
	if !ok {
		return
	}

	actor, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, newError("Token de autenticação ausente."))
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id, actor.ID); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, newError("Post não encontrado para exclusão."))
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportPosts streams an XLSX export of all posts.
// GET /posts/export
func (h *PostHandler) ExportPosts(c *gin.Context) {
	h.LogRequest(c, "exporting posts workbook")

	data, err := h.reportService.PostsWorkbook(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="posts.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
