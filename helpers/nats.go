package helpers

import (
	"encoding/json"
	"os"

	"github.com/campusgram/campusgram/model"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

var Nats *nats.Conn

// InitNATS connects the engagement notification stream; without
// a NATS_URL publishing is disabled.
func InitNATS() {
	url := os.Getenv("NATS_URL")
	if url == "" {
		return
	}

	connection, err := nats.Connect(url)
	if err != nil {
		log.Warn().Err(err).Msgf("cannot connect to %v", url)
		return
	}

	Nats = connection
}

// PublishEvent pushes an engagement notification, best effort:
// a failed publish never fails the request that caused it.
func PublishEvent(message model.Message) {
	if Nats == nil {
		return
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return
	}

	if err := Nats.Publish("campusgram.engagement."+message.Type, payload); err != nil {
		log.Warn().Err(err).Msgf("failed to publish %v event", message.Type)
	}
}
