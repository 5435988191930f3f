package kafka

import (
	"context"
	"encoding/hex"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
)

// KafkaAsyncProducerI is what publishers depend on, so tests can swap in KafkaAsyncProducerMock.
type KafkaAsyncProducerI interface {
	Start(ctx context.Context, ch chan *Message)
	Stop() error
	BrokersURL() []string
	Publish(msg *Message) bool
}

type KafkaAsyncProducer struct {
	Config            KafkaProducerConfig
	Producer          sarama.AsyncProducer
	publishChannel    chan *Message
	lastMessageStatus MessageStatus
	mu                sync.RWMutex
	done              chan struct{}
	stopOnce          sync.Once
	started           bool
	wg                sync.WaitGroup
}

// NewKafkaAsyncProducer connects to the brokers, creating the topic first when configured to.
func NewKafkaAsyncProducer(logger ulogger.Logger, cfg KafkaProducerConfig) (*KafkaAsyncProducer, error) {
	logger.Infof("[kafka] starting async producer for topic %s on %v", cfg.Topic, cfg.BrokersURL)

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.Flush.Bytes = cfg.FlushBytes
	config.Producer.Flush.Messages = cfg.FlushMessages
	config.Producer.Flush.Frequency = cfg.FlushFrequency

	if cfg.CreateTopic {
		if err := createTopic(cfg, config); err != nil {
			return nil, err
		}
	}

	producer, err := sarama.NewAsyncProducer(cfg.BrokersURL, config)
	if err != nil {
		return nil, errors.NewServiceError("failed to create kafka producer for %v", cfg.BrokersURL, err)
	}

	return NewKafkaAsyncProducerWithProducer(cfg, producer), nil
}

// NewKafkaAsyncProducerWithProducer wraps an existing sarama producer.
func NewKafkaAsyncProducerWithProducer(cfg KafkaProducerConfig, producer sarama.AsyncProducer) *KafkaAsyncProducer {
	return &KafkaAsyncProducer{
		Config:   cfg,
		Producer: producer,
		done:     make(chan struct{}),
	}
}

func createTopic(cfg KafkaProducerConfig, config *sarama.Config) error {
	clusterAdmin, err := sarama.NewClusterAdmin(cfg.BrokersURL, config)
	if err != nil {
		return errors.NewServiceError("error while creating kafka cluster admin", err)
	}

	defer func() {
		_ = clusterAdmin.Close()
	}()

	retention := cfg.RetentionPeriodMillis

	err = clusterAdmin.CreateTopic(cfg.Topic, &sarama.TopicDetail{
		NumPartitions:     cfg.Partitions,
		ReplicationFactor: cfg.ReplicationFactor,
		ConfigEntries: map[string]*string{
			"retention.ms": &retention,
		},
	}, false)
	if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
		return errors.NewProcessingError("unable to create kafka topic %s", cfg.Topic, err)
	}

	return nil
}

// Start forwards messages from ch to Kafka until ctx is done or Stop is called. Messages still queued
// in ch at that point are flushed before the producer is closed.
func (c *KafkaAsyncProducer) Start(ctx context.Context, ch chan *Message) {
	if c == nil || c.Producer == nil {
		return
	}

	c.publishChannel = ch
	c.started = true

	c.wg.Add(3)

	go func() {
		defer c.wg.Done()

		for range c.Producer.Successes() {
			c.setStatus(MessageStatus{Success: true, Time: time.Now()})
		}
	}()

	go func() {
		defer c.wg.Done()

		for err := range c.Producer.Errors() {
			c.Config.Logger.Errorf("[kafka] failed to deliver message to %s: %v", c.Config.Topic, err)
			c.setStatus(MessageStatus{Success: false, Error: err, Time: time.Now()})
		}
	}()

	go func() {
		defer c.wg.Done()

		// the producer is only ever closed here, after the last send on Input()
		defer c.Producer.AsyncClose()

		for {
			select {
			case <-ctx.Done():
				c.Config.Logger.Infof("[kafka] context done, shutting down producer for %s", c.Config.Topic)
				c.flush(ch)

				return
			case <-c.done:
				c.Config.Logger.Infof("[kafka] stopping producer for %s", c.Config.Topic)
				c.flush(ch)

				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				c.send(msg)
			}
		}
	}()
}

func (c *KafkaAsyncProducer) send(msg *Message) {
	c.Config.Logger.Debugf("[kafka] publishing message with key %s to %s", decodeKeyOrValue(sarama.ByteEncoder(msg.Key)), c.Config.Topic)

	c.Producer.Input() <- &sarama.ProducerMessage{
		Topic: c.Config.Topic,
		Key:   sarama.ByteEncoder(msg.Key),
		Value: sarama.ByteEncoder(msg.Value),
	}
}

func (c *KafkaAsyncProducer) flush(ch chan *Message) {
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}

			c.send(msg)
		default:
			return
		}
	}
}

// Publish queues msg without blocking. It reports false when the message was dropped.
func (c *KafkaAsyncProducer) Publish(msg *Message) bool {
	if c == nil || c.publishChannel == nil {
		return false
	}

	select {
	case c.publishChannel <- msg:
		return true
	default:
		c.Config.Logger.Warnf("[kafka] publish channel for %s is full, dropping message", c.Config.Topic)
		return false
	}
}

func (c *KafkaAsyncProducer) Stop() error {
	if c == nil || c.Producer == nil {
		return nil
	}

	c.stopOnce.Do(func() {
		close(c.done)

		if !c.started {
			c.Producer.AsyncClose()
		}
	})

	c.wg.Wait()

	return nil
}

func (c *KafkaAsyncProducer) BrokersURL() []string {
	if c == nil {
		return nil
	}

	return c.Config.BrokersURL
}

func (c *KafkaAsyncProducer) LastMessageStatus() MessageStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastMessageStatus
}

func (c *KafkaAsyncProducer) setStatus(s MessageStatus) {
	c.mu.Lock()
	c.lastMessageStatus = s
	c.mu.Unlock()
}

// decodeKeyOrValue renders at most the first 32 bytes of e as hex for logging.
func decodeKeyOrValue(e sarama.Encoder) string {
	if e == nil {
		return ""
	}

	b, err := e.Encode()
	if err != nil {
		return ""
	}

	if len(b) > 32 {
		return hex.EncodeToString(b[:32]) + "..."
	}

	return hex.EncodeToString(b)
}
