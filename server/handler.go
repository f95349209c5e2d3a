package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Pkra99/persona-ai/internal/chat"
	"github.com/Pkra99/persona-ai/internal/prompt"
)

type chatResponse struct {
	OK    bool   `json:"ok"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleChat runs the pipeline for one request: validate, compose the
// persona instruction, assemble the context window, call the provider.
// Validation failures map to 400, provider failures to 502.
func (s *Server) handleChat(c echo.Context) error {
	req := new(chat.Request)
	if err := c.Bind(req); err != nil {
		s.log.Warn("malformed chat request", "error", err)
		return c.JSON(http.StatusBadRequest, chatResponse{OK: false, Error: "malformed request body"})
	}
	if err := req.Validate(); err != nil {
		s.log.Warn("invalid chat request", "error", err)
		return c.JSON(http.StatusBadRequest, chatResponse{OK: false, Error: err.Error()})
	}

	systemInstruction := prompt.SystemPromptFor(s.personas, req.PersonaID, req.PersonaName)
	messages := prompt.BuildMessages(systemInstruction, req.Context, req.UserMessage)

	text, err := s.provider.Complete(c.Request().Context(), messages)
	if err != nil {
		s.log.Error("completion failed", "persona", req.PersonaID, "error", err)
		message := err.Error()
		if message == "" {
			message = "Something went wrong"
		}
		return c.JSON(http.StatusBadGateway, chatResponse{OK: false, Error: message})
	}

	return c.JSON(http.StatusOK, chatResponse{OK: true, Text: text})
}
