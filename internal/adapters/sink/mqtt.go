package sink

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/ldurand/CardioFlow/internal/domain"
	"github.com/ldurand/CardioFlow/internal/ports"
)

// MQTTSink publishes each sample as a JSON message, feeding downstream
// consumers that expect a live telemetry topic.
type MQTTSink struct {
	client mqtt.Client
	topic  string
	qos    byte
}

func NewMQTTSink(client mqtt.Client, topic string, qos byte) *MQTTSink {
	return &MQTTSink{client: client, topic: topic, qos: qos}
}

// ConnectMQTT dials the broker and blocks until the session is up.
func ConnectMQTT(brokerURL, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", brokerURL, token.Error())
	}
	return client, nil
}

func (m *MQTTSink) Name() string { return "mqtt" }

func (m *MQTTSink) WriteBatch(samples []domain.HeartData) error {
	for _, s := range samples {
		payload, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal sample: %w", err)
		}
		token := m.client.Publish(m.topic, m.qos, false, payload)
		if token.Wait() && token.Error() != nil {
			return fmt.Errorf("mqtt publish to %s: %w", m.topic, token.Error())
		}
	}
	return nil
}

var _ ports.Sink = (*MQTTSink)(nil)
