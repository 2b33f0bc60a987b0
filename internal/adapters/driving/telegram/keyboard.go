package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// menuRowWidth is the number of main menu buttons per row.
const menuRowWidth = 2

// mainMenu builds the category, search and upload keyboard.
func mainMenu() tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(domain.Categories())+2)
	for _, c := range domain.Categories() {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			c.Label(), EncodeCallback(ActionCategory, c.String())))
	}
	buttons = append(buttons,
		tgbotapi.NewInlineKeyboardButtonData(labelSearch, EncodeCallback(ActionSearch, "")),
		tgbotapi.NewInlineKeyboardButtonData(labelUpload, EncodeCallback(ActionUpload, "")),
	)

	var rows [][]tgbotapi.InlineKeyboardButton
	for start := 0; start < len(buttons); start += menuRowWidth {
		end := min(start+menuRowWidth, len(buttons))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons[start:end]...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// resultsKeyboard has one button per result, each on its own row.
func resultsKeyboard(results []domain.SearchResult) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(results))
	for _, r := range results {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(labelFile+r.Name, EncodeCallback(ActionFile, r.Fingerprint)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
