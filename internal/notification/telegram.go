package notification

import (
	"context"
	"fmt"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes operational messages to a single ops chat:
// new reservations and mirror failures that need manual attention.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation, p *domain.Property) {
	text := fmt.Sprintf(
		"*Nueva reserva %s*\n\n"+"Propiedad: %s (%s)\n"+"Huésped: %s\n"+"Fechas: %s al %s\n"+"Total: %s",
		r.ID,
		p.Title, p.City,
		r.GuestName,
		r.Checkin.Format(domain.DateLayout), r.Checkout.Format(domain.DateLayout),
		domain.FormatPrice(r.TotalPrice),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyMirrorFailed(ctx context.Context, r *domain.Reservation, err error) {
	text := fmt.Sprintf(
		"*No se pudo copiar la reserva %s a la hoja de cálculo*\n\n"+"Propiedad: %s\n"+"Error: %s\n"+"La reserva queda en cola y se reintentará automáticamente.",
		r.ID, r.PropertyID, err.Error(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
