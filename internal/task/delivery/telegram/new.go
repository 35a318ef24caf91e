package telegram

import (
	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/task"
	pkgLog "smart-task-assistant/pkg/log"
	pkgTelegram "smart-task-assistant/pkg/telegram"
)

// Handler is the public interface for the Telegram delivery layer.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
