package event

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"

	"github.com/IBM/sarama"
	"github.com/iamasit07/connect4-analyzer/internal/domain"
)

// Producer publishes analysis records to Kafka for offline analytics.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// SASLConfig carries optional SASL/PLAIN credentials for hosted brokers;
// they are only sent over TLS.
type SASLConfig struct {
	User     string
	Password string
}

func NewProducer(brokers []string, topic string, sasl SASLConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	if sasl.User != "" {
		config.Net.SASL.Enable = true
		config.Net.SASL.User = sasl.User
		config.Net.SASL.Password = sasl.Password
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		config.Net.TLS.Enable = true
		config.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	p, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return NewProducerFrom(p, topic), nil
}

// NewProducerFrom wraps an existing sarama producer.
func NewProducerFrom(p sarama.SyncProducer, topic string) *Producer {
	return &Producer{producer: p, topic: topic}
}

// PublishAnalysis sends the analysis keyed by its id.
func (p *Producer) PublishAnalysis(ctx context.Context, a *domain.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	val, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode analysis event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(a.ID),
		Value: sarama.ByteEncoder(val),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("kafka send: %w", err)
	}
	log.Printf("[KAFKA] %s analysis %s sent (partition %d, offset %d)", a.Kind, a.ID, partition, offset)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
