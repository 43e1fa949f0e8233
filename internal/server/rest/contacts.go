package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/btxcapital/site/internal/server/models"
	"github.com/btxcapital/site/internal/server/services"
)

// ContactHandler serves the public contact form and the admin message list.
type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type contactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

type contactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func toContactResponse(m models.ContactMessage) contactResponse {
	return contactResponse{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

// Submit handles POST /api/contacts.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	msg, err := h.contacts.Submit(r.Context(), &models.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) || errors.Is(err, services.ErrMessageRequired) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toContactResponse(*msg))
}

// AdminList handles GET /api/contacts/admin/ (bearer-protected).
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.contacts.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]contactResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toContactResponse(m))
	}

	writeJSON(w, http.StatusOK, out)
}
