package bot

import (
	"encoding/json"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessageKind classifies an inbound message's text payload.
type MessageKind int

const (
	// KindCommand is a bot command such as /start
	KindCommand MessageKind = iota
	// KindLink is a message carrying a Pinterest link
	KindLink
	// KindOther is any other text
	KindOther
)

// sourceDomains are the substrings that mark a message as a pin link.
var sourceDomains = []string{"pinterest.com", "pin.it"}

// WebhookParser provides utilities for parsing Telegram webhook updates
type WebhookParser struct{}

// NewWebhookParser creates a new WebhookParser instance
func NewWebhookParser() *WebhookParser {
	return &WebhookParser{}
}

// ParseUpdate unmarshals webhook data into a Telegram Update struct
func (p *WebhookParser) ParseUpdate(updateData []byte) (*tgbotapi.Update, error) {
	if len(updateData) == 0 {
		return nil, fmt.Errorf("%w: empty update data", ErrMalformedUpdate)
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(updateData, &update); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedUpdate, err)
	}

	return &update, nil
}

// Classify determines how the handler should treat a message text.
func (p *WebhookParser) Classify(text string) MessageKind {
	if strings.HasPrefix(text, "/") {
		return KindCommand
	}

	lower := strings.ToLower(text)
	for _, domain := range sourceDomains {
		if strings.Contains(lower, domain) {
			return KindLink
		}
	}

	return KindOther
}
