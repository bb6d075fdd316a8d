package assist

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yojana-mitra/backend/internal/ai"
)

const maxRequestBody = 1 << 20

type Handler struct {
	svc      Service
	provider ai.Provider
	log      *logrus.Entry
}

func NewHandler(svc Service, provider ai.Provider, log *logrus.Entry) *Handler {
	return &Handler{svc: svc, provider: provider, log: log}
}

type askResponse struct {
	Response string `json:"response"`
	Fallback bool   `json:"fallback,omitempty"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type debugResponse struct {
	OK            bool    `json:"ok"`
	Provider      string  `json:"provider"`
	Model         string  `json:"model"`
	APIKeyLoaded  bool    `json:"apiKeyLoaded"`
	APIKeyPreview *string `json:"apiKeyPreview"`
}

// HandleRoot is the liveness greeting, naming the active provider.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Yojana Mitra backend is running. Active provider: %s\n", h.provider.ID)
}

// HandleDebug reports the resolved provider without leaking the key.
func (h *Handler) HandleDebug(w http.ResponseWriter, r *http.Request) {
	resp := debugResponse{
		OK:           true,
		Provider:     h.provider.ID,
		Model:        h.provider.Model,
		APIKeyLoaded: h.provider.Key != "",
	}
	if h.provider.Key != "" {
		preview := keyPreview(h.provider.Key)
		resp.APIKeyPreview = &preview
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleAsk serves the main question endpoint.
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var payload struct {
		Query   string        `json:"query"`
		Lang    string        `json:"lang"`
		History []ChatMessage `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}
	if payload.Lang == "" {
		payload.Lang = "en"
	}

	ans, err := h.svc.Ask(r.Context(), AskRequest{
		Query:   payload.Query,
		Lang:    payload.Lang,
		History: payload.History,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, askResponse{Response: ans.Response, Fallback: ans.Fallback})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrEmptyQuery) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Empty query"})
		return
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: ue.Message, Detail: ue.Detail})
		return
	}
	h.log.WithError(err).Error("unclassified error")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func keyPreview(key string) string {
	return key[:min(8, len(key))] + "..."
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
