package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"imagevault/internal/interfaces"
)

// ChatHandler is the HTTP surface of the chat front-end.
type ChatHandler struct {
	chatbot interfaces.ChatbotService
}

func NewChatHandler(chatbot interfaces.ChatbotService) *ChatHandler {
	return &ChatHandler{chatbot: chatbot}
}

// ChatRequest is one user turn. Credential is accepted as an alias of APIKey.
type ChatRequest struct {
	Message    string `json:"message" example:"show all images"`
	APIKey     string `json:"api_key,omitempty"`
	Credential string `json:"credential,omitempty"`
}

func (c ChatRequest) key() string {
	if c.APIKey != "" {
		return strings.TrimSpace(c.APIKey)
	}
	return strings.TrimSpace(c.Credential)
}

// VerifyKeyRequest is the body of POST /verify-api-key.
type VerifyKeyRequest struct {
	APIKey string `json:"api_key"`
}

// VerifyKeyResponse reports whether the Content Service accepted the key.
type VerifyKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// HandleChat godoc
// @Summary      Send a chat message
// @Description  Classifies the message, queries the Content Service with the caller's key and returns a reply.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      ChatRequest  true  "Message and API key"
// @Success      200      {object}  model.Reply
// @Failure      400      {object}  ChatErrorResponse
// @Failure      401      {object}  ChatErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	// An unreadable body is treated like an empty one and fails the checks below.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Could not decode chat request", "error", err)
	}

	// The credential is checked before the message.
	apiKey := req.key()
	if apiKey == "" {
		respondWithChatError(w, http.StatusUnauthorized, "API key required")
		return
	}
	// Only the emptiness check sees the trimmed text. Fallback searches use the
	// message exactly as sent.
	if strings.TrimSpace(req.Message) == "" {
		respondWithChatError(w, http.StatusBadRequest, "No message provided")
		return
	}

	respondWithJSON(w, http.StatusOK, h.chatbot.HandleMessage(r.Context(), apiKey, req.Message))
}

// HandleVerifyKey godoc
// @Summary      Verify an API key
// @Description  Checks the key against the Content Service.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyKeyRequest  true  "API key"
// @Success      200      {object}  VerifyKeyResponse
// @Failure      400      {object}  VerifyKeyResponse
// @Failure      401      {object}  VerifyKeyResponse
// @Failure      500      {object}  VerifyKeyResponse
// @Router       /verify-api-key [post]
func (h *ChatHandler) HandleVerifyKey(w http.ResponseWriter, r *http.Request) {
	var req VerifyKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Could not decode verify request", "error", err)
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		respondWithJSON(w, http.StatusBadRequest, VerifyKeyResponse{Valid: false, Message: "API key is required"})
		return
	}

	valid, err := h.chatbot.VerifyKey(r.Context(), apiKey)
	switch {
	case err != nil:
		slog.Error("Failed to verify API key", "error", err)
		respondWithJSON(w, http.StatusInternalServerError, VerifyKeyResponse{Valid: false, Message: "Error verifying API key"})
	case !valid:
		respondWithJSON(w, http.StatusUnauthorized, VerifyKeyResponse{Valid: false, Message: "Invalid API key"})
	default:
		respondWithJSON(w, http.StatusOK, VerifyKeyResponse{Valid: true, Message: "API key is valid"})
	}
}
