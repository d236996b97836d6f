package notification

import (
	"context"
	"fmt"

	"katwate/models"
	"katwate/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService pushes staff alerts to the devices subscribed to the
// staff topic.
type NotificationService interface {
	NotifyReservation(ctx context.Context, event models.EnquiryEvent, roomName string) error
	NotifyEventEnquiry(ctx context.Context, event models.EnquiryEvent) error
	SendGuestReminder(ctx context.Context, p models.ReminderPayload) error
}

// Sender is satisfied by *messaging.Client.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	sender Sender
	topic  string
}

// NewDefaultNotificationService returns a service that sends through sender.
// A nil sender disables pushes.
func NewDefaultNotificationService(sender Sender, topic string) *DefaultNotificationService {
	return &DefaultNotificationService{sender: sender, topic: topic}
}

func (s *DefaultNotificationService) NotifyReservation(ctx context.Context, event models.EnquiryEvent, roomName string) error {
	body := fmt.Sprintf("%s, %s on %s for %d adult%s",
		roomName, event.Package.Label(), event.CheckIn, event.Adults, plural(event.Adults))
	return s.sendTopic(ctx, "New reservation request", body, map[string]string{
		"type":      "reservation",
		"enquiryId": event.ID,
		"roomId":    event.RoomID,
	})
}

func (s *DefaultNotificationService) NotifyEventEnquiry(ctx context.Context, event models.EnquiryEvent) error {
	body := fmt.Sprintf("%s starting %s for %d adult%s",
		event.EventType, event.CheckIn, event.Adults, plural(event.Adults))
	return s.sendTopic(ctx, "New event enquiry", body, map[string]string{
		"type":      "event",
		"enquiryId": event.ID,
	})
}

func (s *DefaultNotificationService) SendGuestReminder(ctx context.Context, p models.ReminderPayload) error {
	body := fmt.Sprintf("%s checks in on %s", p.Name, p.CheckIn)
	return s.sendTopic(ctx, "Guest arrival reminder", body, map[string]string{
		"type":    "reminder",
		"guestId": p.GuestID,
	})
}

func (s *DefaultNotificationService) sendTopic(ctx context.Context, title, body string, data map[string]string) error {
	if s.sender == nil {
		utils.GetLogger().Debug("Push disabled, dropping notification", zap.String("title", title))
		return nil
	}

	msg := &messaging.Message{
		Topic: s.topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("send %q to topic %s: %w", title, s.topic, err)
	}
	utils.GetLogger().Debug("Push sent", zap.String("topic", s.topic), zap.String("messageId", id))
	return nil
}

// plural returns "s" if n is not 1, otherwise returns an empty string.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
