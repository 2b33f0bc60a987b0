package telegram

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// Bot API file URLs carry the bot token in their path (/file/bot<token>/...).
var tokenPattern = regexp.MustCompile(`bot\d+:[A-Za-z0-9_-]+`)

const (
	redactedURL   = "<file url>"
	redactedToken = "bot<redacted>"
)

// redactError renders err for logs without request URLs or bot tokens.
func redactError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.URL != "" {
		msg = strings.ReplaceAll(msg, urlErr.URL, redactedURL)
	}
	return tokenPattern.ReplaceAllString(msg, redactedToken)
}
