package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/btxcapital/site/internal/common"
	"github.com/btxcapital/site/internal/server/models"
	"github.com/btxcapital/site/internal/server/services"
)

// maxUploadSize caps multipart article submissions, PDF included.
const maxUploadSize = 32 << 20

// pdfFieldName is the multipart field carrying the attached document.
const pdfFieldName = "pdf"

// NewsHandler serves the public article list and the admin management
// endpoints.
type NewsHandler struct {
	news *services.NewsService
}

func NewNewsHandler(news *services.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

type articleResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	PDFURL    string `json:"pdf_url"`
	ReadTime  int    `json:"read_time"`
	CreatedAt string `json:"created_at"`
}

func toArticleResponse(a models.NewsArticle) articleResponse {
	return articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		Category:  a.Category,
		PDFURL:    a.PDFURL,
		ReadTime:  a.ReadTime,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

// List handles GET /api/news (public).
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.news.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleResponse(a))
	}

	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/news/admin (bearer-protected, multipart). Text
// fields: title, excerpt, content, category. The PDF arrives in the "pdf"
// file field and is optional.
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	article := &models.NewsArticle{
		Title:    r.FormValue("title"),
		Excerpt:  r.FormValue("excerpt"),
		Content:  r.FormValue("content"),
		Category: r.FormValue("category"),
	}

	var upload *services.Upload
	file, header, err := r.FormFile(pdfFieldName)
	switch {
	case err == nil:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable upload")
			return
		}
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/pdf"
		}
		upload = &services.Upload{Name: header.Filename, ContentType: contentType, Data: data}
	case errors.Is(err, http.ErrMissingFile):
		// no attachment
	default:
		writeError(w, http.StatusBadRequest, "invalid upload")
		return
	}

	created, err := h.news.Create(r.Context(), article, upload)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(*created))
}

// Delete handles DELETE /api/news/admin/{id} (bearer-protected).
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := h.news.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "deleted"})
}
