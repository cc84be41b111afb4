package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brightlane/site-api/internal/core/domain"
	"github.com/brightlane/site-api/internal/core/ports"
)

type stubNewsService struct {
	listFn   func(ctx context.Context) ([]domain.NewsArticle, error)
	createFn func(ctx context.Context, input ports.CreateArticleInput) (*domain.NewsArticle, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubNewsService) ListArticles(ctx context.Context) ([]domain.NewsArticle, error) {
	return s.listFn(ctx)
}

func (s *stubNewsService) CreateArticle(ctx context.Context, input ports.CreateArticleInput) (*domain.NewsArticle, error) {
	return s.createFn(ctx, input)
}

func (s *stubNewsService) DeleteArticle(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func adminContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(1))
	c.Set("username", "admin")
	return c
}

func TestNewsHandler_List_Public(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	stub := &stubNewsService{
		listFn: func(ctx context.Context) ([]domain.NewsArticle, error) {
			return []domain.NewsArticle{
				{ID: 2, Title: "With PDF", ReadTime: 3, CreatedAt: created, Slug: "slug-b", PDFFilename: "20260102030405_report.pdf"},
				{ID: 1, Title: "Plain", ReadTime: 1, CreatedAt: created, Slug: "slug-a"},
			}, nil
		},
	}
	handler := NewNewsHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Host = "news.example.com"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(resp))
	}

	withPDF := resp[0]
	if withPDF["isPdf"] != true {
		t.Fatalf("expected isPdf true: %+v", withPDF)
	}
	if withPDF["pdfUrl"] != "http://news.example.com/uploads/20260102030405_report.pdf" {
		t.Fatalf("unexpected pdfUrl: %v", withPDF["pdfUrl"])
	}
	if withPDF["readTime"] != "3 min read" {
		t.Fatalf("unexpected readTime: %v", withPDF["readTime"])
	}
	if withPDF["date"] != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected date: %v", withPDF["date"])
	}

	plain := resp[1]
	if plain["isPdf"] != false || plain["pdfUrl"] != nil {
		t.Fatalf("expected no pdf: %+v", plain)
	}
}

func TestNewsHandler_Create_TitleOnly(t *testing.T) {
	stub := &stubNewsService{
		createFn: func(ctx context.Context, input ports.CreateArticleInput) (*domain.NewsArticle, error) {
			if input.Title != "Update" || input.Attachment != nil {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.NewsArticle{ID: 5, Title: input.Title, ReadTime: 1, Slug: "slug-x", CreatedAt: time.Now().UTC()}, nil
		},
	}
	handler := NewNewsHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"title": "Update"}, "", "", nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/news/admin", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["msg"] != "article created" {
		t.Fatalf("unexpected msg: %v", resp["msg"])
	}
	article, ok := resp["article"].(map[string]any)
	if !ok {
		t.Fatalf("expected article in response")
	}
	if article["readTime"] != "1 min read" || article["isPdf"] != false || article["pdfUrl"] != nil {
		t.Fatalf("unexpected article payload: %+v", article)
	}
}

func TestNewsHandler_Create_WithPDF(t *testing.T) {
	stub := &stubNewsService{
		createFn: func(ctx context.Context, input ports.CreateArticleInput) (*domain.NewsArticle, error) {
			if input.Attachment == nil || input.Attachment.Filename != "report.pdf" {
				t.Fatalf("attachment not forwarded: %+v", input.Attachment)
			}
			return &domain.NewsArticle{
				ID: 6, Title: input.Title, ReadTime: 1, Slug: "slug-y",
				PDFFilename: "20260102030405_report.pdf", CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	handler := NewNewsHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"title": "Update"}, "pdf", "report.pdf", []byte("%PDF-1.4"))
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/news/admin", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Host = "news.example.com"
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	article := resp["article"].(map[string]any)
	if article["isPdf"] != true {
		t.Fatalf("expected isPdf true: %+v", article)
	}
	if article["pdfUrl"] != "http://news.example.com/uploads/20260102030405_report.pdf" {
		t.Fatalf("unexpected pdfUrl: %v", article["pdfUrl"])
	}
}

func TestNewsHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubNewsService{
		createFn: func(ctx context.Context, input ports.CreateArticleInput) (*domain.NewsArticle, error) {
			return nil, domain.ErrMissingTitle
		},
	}
	handler := NewNewsHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"content": "text"}, "", "", nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/news/admin", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNewsHandler_Create_BadFileType(t *testing.T) {
	stub := &stubNewsService{
		createFn: func(ctx context.Context, input ports.CreateArticleInput) (*domain.NewsArticle, error) {
			return nil, domain.ErrFileTypeNotAllowed
		},
	}
	handler := NewNewsHandler(stub)

	body, contentType := multipartBody(t, map[string]string{"title": "Update"}, "pdf", "evil.exe", []byte("MZ"))
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/news/admin", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "file type not allowed, only pdf" {
		t.Fatalf("unexpected error message: %v", resp["error"])
	}
}

func TestNewsHandler_Create_NoClaims(t *testing.T) {
	handler := NewNewsHandler(&stubNewsService{})

	body, contentType := multipartBody(t, map[string]string{"title": "Update"}, "", "", nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/news/admin", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestNewsHandler_Delete_Success(t *testing.T) {
	var deleted uint
	stub := &stubNewsService{
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	handler := NewNewsHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/news/admin/9", nil)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != 9 {
		t.Fatalf("expected delete of id 9, got %d", deleted)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["msg"] != "deleted" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestNewsHandler_Delete_NotFound(t *testing.T) {
	stub := &stubNewsService{
		deleteFn: func(ctx context.Context, id uint) error {
			return domain.ErrArticleNotFound
		},
	}
	handler := NewNewsHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/news/admin/42", nil)
	rec := httptest.NewRecorder()
	c := adminContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	_ = handler.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
