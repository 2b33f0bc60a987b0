package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/logger"
)

const commandStart = "start"

// senderID returns the user behind a message, or 0 for anonymous senders
// (channel posts), which no allow-list contains.
func senderID(user *tgbotapi.User) int64 {
	if user == nil {
		return 0
	}
	return user.ID
}

// allowed checks access and logs denials.
func (b *Bot) allowed(ctx context.Context, userID int64) bool {
	if err := b.ports.Access.Check(ctx, userID); err != nil {
		logger.Warn("Rejected update: %v", err)
		return false
	}
	return true
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if !b.allowed(ctx, senderID(msg.From)) {
		text := msgAccessDenied
		if msg.IsCommand() && msg.Command() == commandStart {
			text = msgAccessDeniedStart
		}
		b.reply(chatID, msg.MessageID, text, nil)
		return
	}

	switch {
	case msg.Document != nil:
		b.handleUpload(ctx, msg)
	case msg.IsCommand() && msg.Command() == commandStart:
		b.reply(chatID, msg.MessageID, msgWelcome, mainMenu())
	case msg.Text != "":
		logger.Debug("Search from chat %d: %q", chatID, msg.Text)
		results, err := b.ports.Search.Search(ctx, msg.Text)
		b.sendResults(chatID, msg.MessageID, results, err)
	default:
		logger.Debug("Ignoring non-text message %d in chat %d", msg.MessageID, chatID)
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	chatID := senderID(query.From)
	replyTo := 0
	if query.Message != nil {
		chatID = query.Message.Chat.ID
		replyTo = query.Message.MessageID
	}

	if !b.allowed(ctx, senderID(query.From)) {
		b.reply(chatID, 0, msgAccessDenied, nil)
		return
	}

	// Ack failures are logged and handling continues.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		logger.Warn("%v: %v", domain.ErrTransportAck, err)
	}

	cb, err := ParseCallback(query.Data)
	if err != nil {
		logger.Warn("Callback from chat %d: %v", chatID, err)
		b.reply(chatID, replyTo, msgUnknownAction, mainMenu())
		return
	}

	switch cb.Action {
	case ActionCategory:
		results, err := b.ports.Search.SearchByCategory(ctx, domain.Category(cb.Arg))
		b.sendResults(chatID, replyTo, results, err)
	case ActionSearch:
		b.reply(chatID, 0, msgSearchPrompt, nil)
	case ActionUpload:
		b.reply(chatID, 0, msgUploadPrompt, nil)
	case ActionFile:
		b.sendFile(ctx, chatID, replyTo, cb.Arg)
	}
}

// sendResults renders a result list: one button per document, then the menu.
func (b *Bot) sendResults(chatID int64, replyTo int, results []domain.SearchResult, err error) {
	if err != nil {
		logger.Error("Search failed: %v", err)
		b.reply(chatID, replyTo, msgSearchFailed, mainMenu())
		return
	}

	if len(results) == 0 {
		b.reply(chatID, replyTo, msgNothingFound, mainMenu())
		return
	}

	for start := 0; start < len(results); start += resultsPerMessage {
		end := min(start+resultsPerMessage, len(results))
		b.reply(chatID, replyTo, msgFound, resultsKeyboard(results[start:end]))
	}
	b.reply(chatID, 0, msgChooseAction, mainMenu())
}

// sendFile sends an indexed document with its name as caption.
func (b *Bot) sendFile(ctx context.Context, chatID int64, replyTo int, fingerprint string) {
	file, err := b.ports.Index.Retrieve(ctx, fingerprint)
	if errors.Is(err, domain.ErrNotFound) {
		b.reply(chatID, replyTo, msgFileNotFound, mainMenu())
		return
	}
	if err != nil {
		logger.Error("Retrieve %s failed: %v", fingerprint, err)
		b.reply(chatID, replyTo, msgFileUnavailable, mainMenu())
		return
	}
	defer file.Body.Close()

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileReader{Name: file.Name, Reader: file.Body})
	doc.Caption = file.Name
	doc.ReplyMarkup = mainMenu()
	if _, err := b.api.Send(doc); err != nil {
		logger.Error("Sending %s to chat %d failed: %v", file.Name, chatID, err)
	}
}

// handleUpload downloads an attached file and stores it in the index.
func (b *Bot) handleUpload(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	attachment := msg.Document

	if int64(attachment.FileSize) > b.maxUploadBytes {
		b.reply(chatID, msg.MessageID, fmt.Sprintf(msgUploadTooLarge, b.maxUploadBytes>>20), nil)
		return
	}

	data, err := b.download(ctx, attachment.FileID)
	if errors.Is(err, errTooLarge) {
		b.reply(chatID, msg.MessageID, fmt.Sprintf(msgUploadTooLarge, b.maxUploadBytes>>20), nil)
		return
	}
	if err != nil {
		logger.Error("Download of upload %q failed: %s", attachment.FileName, redactError(err))
		b.reply(chatID, msg.MessageID, msgUploadFailed, nil)
		return
	}

	doc, err := b.ports.Index.Upload(ctx, attachment.FileName, data)
	if errors.Is(err, domain.ErrInvalidInput) {
		b.reply(chatID, msg.MessageID, msgUploadNoName, nil)
		return
	}
	if err != nil {
		logger.Error("Saving upload %q failed: %v", attachment.FileName, err)
		b.reply(chatID, msg.MessageID, msgUploadFailed, nil)
		return
	}

	b.reply(chatID, msg.MessageID, fmt.Sprintf(msgUploadSaved, doc.Name), mainMenu())
}

var errTooLarge = errors.New("upload exceeds size limit")

// download fetches an uploaded file by its Bot API file ID.
func (b *Bot) download(ctx context.Context, fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file: %w", err)
	}

	body, err := b.ports.Files.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, b.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if int64(len(data)) > b.maxUploadBytes {
		return nil, errTooLarge
	}
	return data, nil
}

// reply sends a text message, optionally as a reply and with a keyboard.
// Send failures are logged only.
func (b *Bot) reply(chatID int64, replyTo int, text string, markup any) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		logger.Warn("Send to chat %d failed: %v", chatID, err)
	}
}
