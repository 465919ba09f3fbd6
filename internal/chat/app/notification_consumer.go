package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"guidelight/internal/chat/domain"
	"guidelight/internal/chat/repository"
	"guidelight/pkg/logger"
	"guidelight/pkg/mailer"

	"github.com/segmentio/kafka-go"
)

const offlineMailSubject = "New message on Guide Light"

// EventReader is the consumer side of the notification topic.
type EventReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// NotificationConsumer drains the notification topic and mails
// members who were offline when the message arrived. Online members
// get the live websocket push instead, the mail covers everyone else.
type NotificationConsumer struct {
	reader    EventReader
	groupRepo repository.GroupRepository
	dirRepo   repository.DirectoryRepository
	mail      mailer.Sender
}

// NewNotificationConsumer init notification consumer
func NewNotificationConsumer(
	reader EventReader,
	groupRepo repository.GroupRepository,
	dirRepo repository.DirectoryRepository,
	mail mailer.Sender,
) *NotificationConsumer {
	return &NotificationConsumer{
		reader:    reader,
		groupRepo: groupRepo,
		dirRepo:   dirRepo,
		mail:      mail,
	}
}

// Run consumes until ctx is cancelled or the reader fails terminally.
// Per-event failures are logged and skipped, the topic is consumed
// at-least-once.
func (c *NotificationConsumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		c.handle(ctx, m.Value)
	}
}

func (c *NotificationConsumer) handle(ctx context.Context, payload []byte) {
	var event domain.NotificationEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		// writer connection probes land here too, skip them
		logger.Log.Errorf("notification event decode failed: ", err)
		return
	}
	if event.SenderID == "" {
		return
	}

	for _, uid := range c.recipients(ctx, event) {
		c.deliver(ctx, uid, event)
	}
}

func (c *NotificationConsumer) recipients(ctx context.Context, event domain.NotificationEvent) []string {
	if event.Scope.Kind == domain.ScopeGroup {
		group, err := c.groupRepo.FindByID(ctx, event.Scope.ID)
		if err != nil {
			logger.Log.Errorf("notification group lookup failed: ", err)
			return nil
		}
		out := make([]string, 0, len(group.Members))
		for _, uid := range group.Members {
			if uid != event.SenderID {
				out = append(out, uid)
			}
		}
		return out
	}

	// direct ids are "<uidA>_<uidB>", neither side contains an underscore
	var out []string
	for _, uid := range strings.Split(event.Scope.ID, "_") {
		if uid != "" && uid != event.SenderID {
			out = append(out, uid)
		}
	}
	return out
}

func (c *NotificationConsumer) deliver(ctx context.Context, uid string, event domain.NotificationEvent) {
	profile, err := c.dirRepo.FindByID(ctx, uid)
	if err != nil {
		logger.Log.Errorf("notification profile lookup failed: ", err)
		return
	}
	if profile.Online || profile.Email == "" {
		return
	}

	body := fmt.Sprintf(
		"<p>%s sent you a message while you were away:</p><blockquote>%s</blockquote>",
		event.SenderName, event.Preview,
	)
	if err := c.mail.Send(profile.Email, offlineMailSubject, body); err != nil {
		logger.Log.Errorf("offline notification mail failed: ", err)
	}
}
