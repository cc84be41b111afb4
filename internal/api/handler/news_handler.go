package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/brightlane/site-api/internal/api/metrics"
	"github.com/brightlane/site-api/internal/core/domain"
	"github.com/brightlane/site-api/internal/core/ports"
)

type NewsHandler struct {
	service ports.NewsService
}

func NewNewsHandler(service ports.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// List handles the public news feed.
//
// @Summary      List news articles
// @Tags         news
// @Produce      json
// @Success      200  {array}  articleResponse
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	articles, err := h.service.ListArticles(c.Request().Context())
	if err != nil {
		return err
	}

	base := requestBaseURL(c)
	out := make([]articleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, toArticleResponse(&articles[i], base))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles the admin-only article creation. The request is
// multipart/form-data so an optional PDF can ride alongside the form fields.
//
// @Summary      Create a news article
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title      formData  string  true   "Article title"
// @Param        excerpt    formData  string  false  "Short excerpt"
// @Param        content    formData  string  false  "Body text"
// @Param        category   formData  string  false  "Category label"
// @Param        read_time  formData  int     false  "Read time in minutes (computed when absent)"
// @Param        pdf        formData  file    false  "PDF attachment"
// @Success      201  {object}  createArticleResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/news/admin [post]
func (h *NewsHandler) Create(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	input := ports.CreateArticleInput{
		Title:    c.FormValue("title"),
		Excerpt:  c.FormValue("excerpt"),
		Content:  c.FormValue("content"),
		Category: c.FormValue("category"),
	}
	if rt := c.FormValue("read_time"); rt != "" {
		if minutes, err := strconv.Atoi(rt); err == nil && minutes > 0 {
			input.ReadTime = minutes
		}
	}

	fh, err := c.FormFile("pdf")
	if err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return err
		}
		defer f.Close()
		input.Attachment = &ports.AttachmentInput{Filename: fh.Filename, Reader: f}
	}

	article, err := h.service.CreateArticle(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingTitle):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrEmptyFilename):
			metrics.UploadsRejectedTotal.WithLabelValues("empty_filename").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrFileTypeNotAllowed):
			metrics.UploadsRejectedTotal.WithLabelValues("bad_extension").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.ArticlesCreatedTotal.WithLabelValues(strconv.FormatBool(article.HasAttachment())).Inc()
	return c.JSON(http.StatusCreated, createArticleResponse{
		Msg:     "article created",
		Article: toArticleResponse(article, requestBaseURL(c)),
	})
}

// Delete handles the admin-only article removal.
//
// @Summary      Delete a news article
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Article id"
// @Success      200  {object}  deleteArticleResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/news/admin/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "article not found"})
	}

	if err := h.service.DeleteArticle(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "article not found"})
		}
		return err
	}

	metrics.ArticlesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deleteArticleResponse{Msg: "deleted"})
}
