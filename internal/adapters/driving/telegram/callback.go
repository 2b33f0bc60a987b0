package telegram

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// Action is the verb of a callback payload.
type Action string

// Callback actions issued by the bot's keyboards.
const (
	ActionCategory Action = "category"
	ActionSearch   Action = "search"
	ActionUpload   Action = "upload"
	ActionFile     Action = "file"
)

// callbackSeparator splits action from argument.
const callbackSeparator = ":"

// maxCallbackData is the Bot API limit on callback payloads, in bytes.
const maxCallbackData = 64

// Callback is a decoded inline button payload.
type Callback struct {
	Action Action
	Arg    string
}

// EncodeCallback renders a payload as "action" or "action:arg".
func EncodeCallback(action Action, arg string) string {
	if arg == "" {
		return string(action)
	}
	return string(action) + callbackSeparator + arg
}

// ParseCallback decodes a payload and checks that its argument fits the action.
func ParseCallback(data string) (Callback, error) {
	if data == "" || len(data) > maxCallbackData {
		return Callback{}, fmt.Errorf("%w: %q", ErrInvalidCallback, data)
	}

	action, arg, _ := strings.Cut(data, callbackSeparator)
	cb := Callback{Action: Action(action), Arg: arg}

	switch cb.Action {
	case ActionSearch, ActionUpload:
		if arg != "" {
			return Callback{}, fmt.Errorf("%w: %q takes no argument", ErrInvalidCallback, action)
		}
	case ActionCategory:
		// Unknown names are left to the search service, which matches nothing.
		if arg == "" {
			return Callback{}, fmt.Errorf("%w: category name missing", ErrInvalidCallback)
		}
	case ActionFile:
		if !domain.IsFingerprint(arg) {
			return Callback{}, fmt.Errorf("%w: bad fingerprint %q", ErrInvalidCallback, arg)
		}
	default:
		return Callback{}, fmt.Errorf("%w: unknown action %q", ErrInvalidCallback, action)
	}

	return cb, nil
}
