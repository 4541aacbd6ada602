package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/cabdispatch/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Dispatch adapts a MessageHandler to nats.MsgHandler. Handler errors and panics are
// logged and swallowed so a poison message cannot stop the subscription.
func Dispatch(subject string, handler MessageHandler) nats.MsgHandler {
	return func(msg *nats.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic while handling NATS message",
					logger.String("subject", subject),
					logger.String("panic", fmt.Sprintf("%v", r)))
			}
		}()

		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	}
}
