package queue

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/ecoba/careers/mail-svc/internal/interfaces"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	log "github.com/sirupsen/logrus"
)

type KafkaConsumer struct {
	Reader      *kafka.Reader
	Handler     interfaces.ConsumerHandler
	ServiceName string
}

func NewKafkaConsumer(broker, topic, groupID, username, password string, handler interfaces.ConsumerHandler) *KafkaConsumer {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}
	// managed brokers need SASL over TLS; a local broker runs without both
	if username != "" {
		dialer.TLS = &tls.Config{}
		dialer.SASLMechanism = plain.Mechanism{
			Username: username,
			Password: password,
		}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
		Dialer:   dialer,
	})

	return &KafkaConsumer{
		Reader:      reader,
		Handler:     handler,
		ServiceName: "mail-svc",
	}
}

// Listen reads until ctx is cancelled. Handler errors are logged and the
// message is not retried.
func (kc *KafkaConsumer) Listen(ctx context.Context) {
	logger := log.WithField("service", kc.ServiceName)
	for {
		msg, err := kc.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			logger.WithError(err).Error("read error")
			time.Sleep(time.Second)
			continue
		}

		logger.WithFields(log.Fields{
			"key":       string(msg.Key),
			"partition": msg.Partition,
			"offset":    msg.Offset,
		}).Debug("received")

		if err := kc.Handler.HandleMessage(ctx, msg.Key, msg.Value); err != nil {
			logger.WithError(err).WithField("key", string(msg.Key)).Error("handler error")
		}
	}
}

func (kc *KafkaConsumer) Close() error {
	return kc.Reader.Close()
}
