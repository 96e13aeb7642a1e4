// Package notify pushes low-stock alerts to a Telegram chat. The on-page
// banner is the primary notice; this is an opt-in side channel for when the
// page is not open.
package notify

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/svaldez/stockwise/internal/domain/materials"
	"github.com/svaldez/stockwise/internal/i18n"
)

type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	bundle *i18n.Bundle
	log    *slog.Logger
}

var _ materials.Notifier = (*Telegram)(nil)

// NewTelegram returns nil when token or chat id are unset; the service
// treats a nil notifier as "alerts disabled".
func NewTelegram(token string, chatID int64, bundle *i18n.Bundle, log *slog.Logger) (*Telegram, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Telegram{api: api, chatID: chatID, bundle: bundle, log: log}, nil
}

// LowStock sends one message listing the items that just crossed their
// threshold. Delivery failures are logged and dropped; stock mutations must
// never hinge on Telegram being up.
func (t *Telegram) LowStock(_ context.Context, items []materials.Material) {
	if len(items) == 0 {
		return
	}
	lines := make([]string, 0, len(items))
	for _, m := range items {
		lines = append(lines, t.bundle.T("notify.item", m.Name, m.Quantity, m.LowStockThreshold))
	}
	text := t.bundle.T("notify.lowstock", strings.Join(lines, "\n"))

	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		t.log.Error("low stock alert failed", "err", err)
	}
}
