package interfaces

import "context"

type ConsumerHandler interface {
	HandleMessage(ctx context.Context, key, value []byte) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
