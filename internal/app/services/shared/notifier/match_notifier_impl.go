package notifier

import (
	"context"
	"handicare-service/internal/app/contracts"
	"handicare-service/internal/app/models"
	"handicare-service/internal/pkg/constvars"
	"handicare-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	matchNotifierInstance contracts.MatchNotifier
	onceMatchNotifier     sync.Once
)

type matchNotifier struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

// NewMatchNotifier declares a durable queue and publishes one persistent JSON
// message per confirmed match.
func NewMatchNotifier(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MatchNotifier, error) {
	var initErr error
	onceMatchNotifier.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			initErr = err
			return
		}
		matchNotifierInstance = &matchNotifier{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	return matchNotifierInstance, initErr
}

func (s *matchNotifier) NotifyMatched(ctx context.Context, match models.MeetingMatch) error {
	body, err := json.Marshal(match)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("matchNotifier.NotifyMatched error publishing message",
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrMessagingPublish(err)
	}

	s.Log.Info("matchNotifier.NotifyMatched published match event",
		zap.String(constvars.LoggingQueueKey, s.Queue),
		zap.String(constvars.LoggingActorIDKey, match.EmployeeID),
		zap.Int(constvars.LoggingSeniorIDKey, match.SeniorID),
	)
	return nil
}
