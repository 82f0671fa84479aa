package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jithinvs/krishi-mitra/internal/ai"
	"github.com/jithinvs/krishi-mitra/internal/model"
)

// ChatHandler serves the farmer chat endpoints. Each posted message is
// appended to the farmer's conversation, relayed synchronously to the AI
// service, and the reply appended as a second message.
type ChatHandler struct {
	Chats ChatStore
	AI    ai.Client
}

func NewChatHandler(chats ChatStore, client ai.Client) *ChatHandler {
	return &ChatHandler{Chats: chats, AI: client}
}

type chatReq struct {
	Message string `json:"message"`
}

// append bounds each store write with its own timeout; the relay call in
// between can outlive a single DB deadline.
func (h *ChatHandler) append(ctx context.Context, farmerID uint64, sender, text string) (model.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.Chats.Append(ctx, farmerID, sender, text)
}

// PostMessage records the farmer's message, asks the AI relay for a reply
// and records that too. If the relay fails the farmer's message stays
// recorded and the turn degrades to a 400; there is no compensation and no
// retry.
func (h *ChatHandler) PostMessage(c echo.Context) error {
	farmer, ok := c.Get("account").(model.Farmer)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Message is required"})
	}

	newMessage, err := h.append(c.Request().Context(), farmer.ID, model.SenderUser, req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	// The relay call rides the request context; its only deadline is the
	// AI client's own transport timeout.
	reply, err := h.AI.Complete(c.Request().Context(), req.Message)
	if err != nil || reply == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "AI Server Failed"})
	}

	newRes, err := h.append(c.Request().Context(), farmer.ID, model.SenderAI, reply)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Message Sent",
		"newMessage": newMessage,
		"newRes":     newRes,
	})
}

// GetChats resolves the farmer's reference list in conversation order. A
// farmer who has never chatted gets an empty list.
func (h *ChatHandler) GetChats(c echo.Context) error {
	farmer, ok := c.Get("account").(model.Farmer)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chats, err := h.Chats.ListByFarmer(ctx, farmer.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"chats": chats})
}
