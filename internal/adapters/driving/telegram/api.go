package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the subset of the Bot API client the bot uses.
// *tgbotapi.BotAPI satisfies it.
type BotAPI interface {
	// Send delivers a message or file and returns the sent message.
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)

	// Request performs a call whose result is not a message, such as
	// answering a callback query.
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)

	// GetFileDirectURL resolves a file ID to a download URL.
	GetFileDirectURL(fileID string) (string, error)

	// GetUpdatesChan starts long polling.
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel

	// StopReceivingUpdates ends long polling.
	StopReceivingUpdates()
}

// Ensure the real client implements the interface.
var _ BotAPI = (*tgbotapi.BotAPI)(nil)

// NewAPI connects to the Bot API with the given token.
func NewAPI(token string) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}
