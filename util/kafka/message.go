// Package kafka publishes validator events to Kafka topics.
package kafka

import "time"

// Message is a single record to publish.
type Message struct {
	Key   []byte
	Value []byte
}

// MessageStatus records the outcome of the most recent delivery.
type MessageStatus struct {
	Success bool
	Error   error
	Time    time.Time
}
