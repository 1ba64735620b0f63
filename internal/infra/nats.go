package infra

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"platinalab.dev/backend/internal/app/appconfig"
)

// NATS connects to the event broker carrying accepted-result events.
// An empty NatsURL disables publishing; dependents must tolerate a nil conn.
func NATS(conf *appconfig.Config) (*nats.Conn, error) {
	if conf.NatsURL == "" {
		log.Warn().Msg("infra: nats: no url configured; result events will not be published")
		return nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		l := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			l = l.Str("sub.subject", sub.Subject)
		}
		l.Msg("nats error")
	}

	nc, err := nats.Connect(conf.NatsURL, nats.PingInterval(time.Second*20), nats.ErrorHandler(errorHandler))
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, err
	}

	return nc, nil
}
