package core

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type NotificationKind string

const (
	NotifSuccess NotificationKind = "success"
	NotifError   NotificationKind = "error"
	NotifInfo    NotificationKind = "info"
)

// Notification is the single user-facing message a view coordinator holds.
// Coordinators replace it on every event; it is never queued.
type Notification struct {
	Kind    NotificationKind
	Message string
}

func NewSuccessNotification(msg string) *Notification {
	return &Notification{Kind: NotifSuccess, Message: msg}
}

func NewInfoNotification(msg string) *Notification {
	return &Notification{Kind: NotifInfo, Message: msg}
}

// NewErrorNotification converts any error from the taxonomy (validation,
// timeout, transport, application) into a dismissible error notification.
func NewErrorNotification(err error) *Notification {
	var msg string

	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		msgs := make([]string, 0, len(origErr))
		for _, vErr := range origErr {
			msgs = append(msgs, fmt.Sprintf("%s: %s", vErr.Field(), vErr.Translate(Translator)))
		}
		msg = strings.Join(msgs, "; ")
	case *ValidationError:
		if len(origErr.Fields) > 0 {
			msgs := make([]string, 0, len(origErr.Fields))
			for _, fErr := range origErr.Fields {
				msgs = append(msgs, fmt.Sprintf("%s: %s", fErr.Field, fErr.Error))
			}
			msg = strings.Join(msgs, "; ")
		} else {
			msg = origErr.Error()
		}
	default:
		msg = err.Error()
	}

	return &Notification{Kind: NotifError, Message: msg}
}

// DeleteIntent is the first half of the two-step delete protocol: the
// coordinator emits the intent, the caller confirms it out-of-band and
// only then invokes the coordinator's delete operation.
type DeleteIntent struct {
	ID      ID
	Message string
}
