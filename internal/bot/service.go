package bot

import (
	"context"
	"errors"
	"strings"

	"pinsaver-api/internal/common"
	"pinsaver-api/internal/download"
	"pinsaver-api/internal/events"
	"pinsaver-api/internal/extractor"

	"go.uber.org/zap"
)

// Service processes inbound Telegram webhook updates: it identifies the
// sender, classifies the message, runs extraction for pin links and records
// successful downloads.
type Service interface {
	HandleWebhook(webhookData []byte) error
}

type botService struct {
	provider  TelegramProvider
	extractor extractor.Extractor
	repo      download.Repository
	parser    *WebhookParser
	eventBus  events.EventBus
	clock     common.Clock
	logger    *zap.Logger
}

// NewService creates a new bot Service instance
func NewService(
	provider TelegramProvider,
	ext extractor.Extractor,
	repo download.Repository,
	eventBus events.EventBus,
	clock common.Clock,
	logger *zap.Logger,
) Service {
	return &botService{
		provider:  provider,
		extractor: ext,
		repo:      repo,
		parser:    NewWebhookParser(),
		eventBus:  eventBus,
		clock:     clock,
		logger:    logger,
	}
}

// HandleWebhook drives one update through the classify → extract → persist →
// notify pipeline. Updates without a text message are acknowledged as no-ops;
// extraction failure is answered with a friendly message and writes nothing.
func (s *botService) HandleWebhook(webhookData []byte) error {
	update, err := s.parser.ParseUpdate(webhookData)
	if err != nil {
		return err
	}

	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		s.logger.Debug("Update carries no message, ignoring",
			zap.Int("update_id", update.UpdateID))
		return nil
	}

	msg := update.Message
	chatID := msg.Chat.ID
	from := msg.From

	user, err := s.repo.UpsertUser(from.ID, from.UserName, from.FirstName)
	if err != nil {
		return err
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		s.logger.Debug("Message carries no text, ignoring",
			zap.Int64("telegram_id", from.ID))
		return nil
	}

	switch s.parser.Classify(text) {
	case KindCommand:
		return s.sendText(chatID, welcomeMessage)
	case KindLink:
		return s.handleLink(user, chatID, text)
	default:
		return s.sendText(chatID, usageHintMessage)
	}
}

func (s *botService) handleLink(user *download.User, chatID int64, sourceURL string) error {
	if err := s.sendText(chatID, downloadingMessage); err != nil {
		return err
	}

	result, err := s.extractor.Extract(context.Background(), sourceURL)
	if err != nil {
		if errors.Is(err, extractor.ErrNotFound) {
			s.publish(events.TopicExtractionFailed, events.ExtractionFailed{
				TelegramID: user.TelegramID,
				SourceURL:  sourceURL,
				Timestamp:  s.clock.Now(),
			})
			return s.sendText(chatID, downloadFailedMessage)
		}
		return err
	}

	now := s.clock.Now()
	title := result.Title
	record := &download.Download{
		UserID:       user.ID,
		SourceURL:    sourceURL,
		MediaURL:     result.MediaURL,
		ThumbnailURL: result.ThumbnailURL,
		Title:        &title,
		DownloadedAt: now,
	}

	// The row and its daily counter move together or not at all.
	err = s.repo.WithTransaction(func(tx download.Repository) error {
		if _, err := tx.InsertDownload(record); err != nil {
			return err
		}
		return tx.BumpDailyStat(now)
	})
	if err != nil {
		return err
	}

	s.publish(events.TopicDownloadRecorded, events.DownloadRecorded{
		DownloadID: record.ID,
		UserID:     user.ID,
		TelegramID: user.TelegramID,
		SourceURL:  sourceURL,
		MediaURL:   result.MediaURL,
		Title:      result.Title,
		Timestamp:  now,
	})

	return s.sendVideo(chatID, result.MediaURL, result.Title)
}

func (s *botService) sendText(chatID int64, text string) error {
	if err := s.provider.SendMessage(chatID, text); err != nil {
		return NotifyError{Operation: "sendMessage", ChatID: chatID, Cause: err}
	}
	return nil
}

func (s *botService) sendVideo(chatID int64, videoURL, caption string) error {
	if err := s.provider.SendVideo(chatID, videoURL, caption); err != nil {
		return NotifyError{Operation: "sendVideo", ChatID: chatID, Cause: err}
	}
	return nil
}

func (s *botService) publish(topic string, data interface{}) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(topic, data); err != nil {
		s.logger.Warn("Failed to publish event", zap.String("topic", topic), zap.Error(err))
	}
}
