package kafka

import (
	"context"
)

var _ KafkaAsyncProducerI = (*KafkaAsyncProducerMock)(nil)

// KafkaAsyncProducerMock collects published messages on a buffered channel.
type KafkaAsyncProducerMock struct {
	publishChannel chan *Message
}

func NewKafkaAsyncProducerMock() *KafkaAsyncProducerMock {
	return &KafkaAsyncProducerMock{
		publishChannel: make(chan *Message, 100),
	}
}

func (c *KafkaAsyncProducerMock) Start(_ context.Context, _ chan *Message) {}

func (c *KafkaAsyncProducerMock) Stop() error {
	return nil
}

func (c *KafkaAsyncProducerMock) BrokersURL() []string {
	return nil
}

// PublishChannel returns the channel published messages end up on.
func (c *KafkaAsyncProducerMock) PublishChannel() chan *Message {
	return c.publishChannel
}

func (c *KafkaAsyncProducerMock) Publish(msg *Message) bool {
	select {
	case c.publishChannel <- msg:
		return true
	default:
		return false
	}
}
