package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-assistant/internal/task"
	pkgLog "smart-task-assistant/pkg/log"
	pkgResponse "smart-task-assistant/pkg/response"
	pkgTelegram "smart-task-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook
// updates. It responds with HTTP 200 immediately and processes the
// message in a background goroutine so Telegram's webhook timeout is
// never hit while the extractor runs.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled
		// right after the response below is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, "Something went wrong while ranking your tasks. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage ranks the task lines of a single Telegram message and
// replies with the ordered list.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID,
			"👋 Welcome to *Smart Task Assistant*!\n\nSend me your task list (one task per line) and I will rank it by priority — deadlines, importance, and quick wins all considered.\n\n_Example: \"Finish slides for meeting next Tue, ~2h, high importance\"_",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID,
			"*How to use:*\n\nType tasks in natural language, one per line:\n`Call John ASAP about the budget`\n`Buy groceries tomorrow`\n`Write blog post sometime next month`\n\nI reply with the list ordered by priority score.",
			"Markdown",
		)
	}

	output, err := h.uc.RankText(ctx, task.RankTextInput{RawText: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: RankText failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, fmt.Sprintf("Could not process your tasks: %v", err))
	}

	if output.TaskCount == 0 {
		return h.bot.SendMessage(ctx, msg.Chat.ID, "⚠️ No tasks found in your message. Try one task per line.")
	}

	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, formatRankedReply(output), "Markdown")
}

// formatRankedReply renders the ranked batch as a Markdown list.
func formatRankedReply(out task.RankOutput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ranked *%d task(s)* by priority:\n\n", out.TaskCount))

	for i, t := range out.Tasks {
		title := t.Title
		if title == "" {
			title = "(empty task)"
		}
		sb.WriteString(fmt.Sprintf("%d. *%s* — %.3f\n", i+1, title, t.Score))
		if t.Due != nil {
			sb.WriteString(fmt.Sprintf("   📅 due %s\n", t.Due.Format("Mon, 02 Jan 15:04")))
		}
		if t.EstMinutes != nil {
			sb.WriteString(fmt.Sprintf("   ⏱ ~%.0f min\n", *t.EstMinutes))
		}
	}
	return sb.String()
}
