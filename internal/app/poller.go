package app

import (
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/infra/config"
	"gopkg.in/telebot.v4"
)

// newPoller создаёт Poller в зависимости от режима: webhook или longpoll.
func newPoller(cfg *config.Config) telebot.Poller {
	if cfg.TelegramBot.Mode == config.ModeWebhook {
		return &telebot.Webhook{
			Listen: cfg.TelegramBot.ListenAddr,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramBot.WebhookURL,
			},
		}
	}
	return &telebot.LongPoller{Timeout: cfg.TelegramBot.PollInterval}
}
