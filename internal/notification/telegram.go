package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	zone   *time.Location
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, zone *time.Location, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, staff notifications disabled")
		return &TelegramNotifier{chatID: chatID, zone: zone, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, zone: zone, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, c *domain.Customer, court *domain.Court, amount float64) {
	text := fmt.Sprintf(
		"*Nueva reserva confirmada*\n\n"+"Cancha: %s\n"+"Horario: %s\n"+"Cliente: %s (%s)\n"+"Total: $%.2f MXN",
		escape(court.Name), n.period(b), escape(c.FullName), c.PhoneE164, amount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingPaid(ctx context.Context, b *domain.Booking) {
	var amount float64
	if b.PaidAmount != nil {
		amount = *b.PaidAmount
	}
	method := "-"
	if b.PaymentMethod != nil {
		method = string(*b.PaymentMethod)
	}
	text := fmt.Sprintf(
		"*Pago registrado*\n\n"+"Reserva: `%s`\n"+"Horario: %s\n"+"Monto: $%.2f MXN (%s)",
		b.ID, n.period(b), amount, method,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Reserva cancelada*\n\n"+"Reserva: `%s`\n"+"Horario: %s",
		b.ID, n.period(b),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) period(b *domain.Booking) string {
	return fmt.Sprintf("%s %s-%s",
		b.StartAt.In(n.zone).Format("02/01/2006"),
		b.StartAt.In(n.zone).Format("15:04"),
		b.EndAt.In(n.zone).Format("15:04"),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no reception chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escape убирает разметку Markdown из пользовательского текста.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}
