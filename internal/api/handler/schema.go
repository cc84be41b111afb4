package handler

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brightlane/site-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Contact types ---

// createContactRequest tolerates both snake_case and camelCase name fields
// plus the legacy single name; normalization into ports.CreateContactInput
// happens before validation.
type createContactRequest struct {
	FirstName      string `json:"first_name"`
	FirstNameCamel string `json:"firstName"`
	LastName       string `json:"last_name"`
	LastNameCamel  string `json:"lastName"`
	Name           string `json:"name"`
	Email          string `json:"email" validate:"required"`
	Message        string `json:"message" validate:"required"`
}

type createContactResponse struct {
	Msg string `json:"msg"`
	ID  uint   `json:"id"`
}

type contactResponse struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	CreatedAt   string `json:"created_at"`
}

func toContactResponse(m *domain.ContactMessage) contactResponse {
	return contactResponse{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Name:        m.Name,
		DisplayName: m.DisplayName(),
		Email:       m.Email,
		Message:     m.Message,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// --- News types ---

// articleResponse is the JSON shape shared by the public listing and the
// create response. Field names follow what the frontend consumes
// (date/readTime/isPdf/pdfUrl).
type articleResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Excerpt  string  `json:"excerpt"`
	Content  string  `json:"content"`
	Date     string  `json:"date"`
	ReadTime string  `json:"readTime"`
	Category string  `json:"category"`
	IsPdf    bool    `json:"isPdf"`
	PdfURL   *string `json:"pdfUrl"`
	Slug     string  `json:"slug"`
}

type createArticleResponse struct {
	Msg     string          `json:"msg"`
	Article articleResponse `json:"article"`
}

type deleteArticleResponse struct {
	Msg string `json:"msg"`
}

// toArticleResponse renders an article for the wire. baseURL is the
// scheme://host of the current request so pdfUrl comes out fully qualified.
func toArticleResponse(a *domain.NewsArticle, baseURL string) articleResponse {
	resp := articleResponse{
		ID:       a.ID,
		Title:    a.Title,
		Excerpt:  a.Excerpt,
		Content:  a.Content,
		Date:     a.CreatedAt.UTC().Format(time.RFC3339),
		ReadTime: fmt.Sprintf("%d min read", a.ReadTime),
		Category: a.Category,
		Slug:     a.Slug,
	}
	if a.HasAttachment() {
		url := baseURL + "/uploads/" + a.PDFFilename
		resp.IsPdf = true
		resp.PdfURL = &url
	}
	return resp
}

// requestBaseURL reconstructs the externally visible scheme://host of the
// incoming request (honouring X-Forwarded-Proto via Echo's Scheme).
func requestBaseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}
