package controller

import (
	"strings"

	"beauty-assistant-be/internal/dto"
	"beauty-assistant-be/internal/pkg/serverutils"
	"beauty-assistant-be/internal/service"
	"beauty-assistant-be/pkg/reply"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

// Chat is the single conversational endpoint. Whatever happens downstream,
// the response is a 200 carrying {"reply": string}.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		// Unreadable body means no usable input was received.
		return ctx.JSON(dto.ChatReply{Reply: reply.NoInputMessage})
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.JSON(dto.ChatReply{Reply: reply.ProcessingErrorMessage})
	}

	if strings.TrimSpace(req.UserInput) == "" {
		return ctx.JSON(dto.ChatReply{Reply: reply.NoInputMessage})
	}

	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = "default"
	}

	answer := c.chatService.HandleUtterance(ctx.Context(), sessionId, req.UserInput)

	return ctx.JSON(dto.ChatReply{Reply: answer})
}
