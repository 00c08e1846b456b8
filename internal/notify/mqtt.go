package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	"github.com/Solara-Media-LLC/helios/internal/schedule"
)

// DefaultTopic is where displays listen for engine events.
const DefaultTopic = "helios/screens/events"

// MQTTSink pushes engine events to connected displays over the broker.
// Publishing is fire-and-forget at QoS 1; a failed publish is logged and
// dropped, the next transition re-announces state anyway.
type MQTTSink struct {
	client mqtt.Client
	topic  string
	logger zerolog.Logger
}

func NewMQTTSink(brokerURL, clientID, topic string, logger zerolog.Logger) (*MQTTSink, error) {
	if topic == "" {
		topic = DefaultTopic
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		logger.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Warn().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", brokerURL, token.Error())
	}

	return &MQTTSink{client: client, topic: topic, logger: logger}, nil
}

func (s *MQTTSink) Publish(event schedule.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to marshal event")
		return
	}

	token := s.client.Publish(s.topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		s.logger.Error().Err(token.Error()).Str("topic", s.topic).Msg("failed to publish event")
		return
	}
	s.logger.Debug().Str("type", string(event.Type)).Str("topic", s.topic).Msg("event published")
}

func (s *MQTTSink) Close() {
	s.client.Disconnect(250)
}
