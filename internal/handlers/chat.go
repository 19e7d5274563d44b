package handlers

//go:generate mockgen -source=chat.go -destination=chat_mock.go -package=handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/pregnancy-care/internal/models"
	"github.com/sbilibin2017/pregnancy-care/internal/services"
)

// Responder answers chat messages.
type Responder interface {
	Respond(message string) (string, bool)
}

// ChatRequest represents a chat message
// swagger:model ChatRequest
type ChatRequest struct {
	// Message typed by the user
	// required: true
	// default: hello
	Message string `json:"message"`
}

// ChatResponse represents the helper's answer
// swagger:model ChatResponse
type ChatResponse struct {
	// Reply text
	Reply string `json:"reply"`

	// Whether the message matched a known topic
	Matched bool `json:"matched"`
}

// NewChatHandler returns an HTTP handler for the tips chat.
// @Summary Ask the tips chat
// @Description Whole-message keyword lookup, case-insensitive. Unknown messages get a generic reply.
// @Tags chat
// @Accept json
// @Produce json
// @Param chatRequest body handlers.ChatRequest true "Message"
// @Success 200 {object} handlers.ChatResponse
// @Failure 400 {object} models.FlashResponse "Invalid request body"
// @Router /chat [post]
func NewChatHandler(svc Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFlash(w, http.StatusBadRequest, "Invalid request body", models.SeverityDanger, "")
			return
		}

		reply, ok := svc.Respond(req.Message)
		if !ok {
			reply = services.ChatFallback
		}

		writeJSON(w, http.StatusOK, ChatResponse{Reply: reply, Matched: ok})
	}
}
