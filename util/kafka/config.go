package kafka

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
)

// KafkaProducerConfig is built from a kafka://broker1,broker2/topic?param=value url.
type KafkaProducerConfig struct {
	Logger                ulogger.Logger
	URL                   *url.URL
	BrokersURL            []string
	Topic                 string
	Partitions            int32
	ReplicationFactor     int16
	RetentionPeriodMillis string
	FlushBytes            int
	FlushMessages         int
	FlushFrequency        time.Duration
	BufferSize            int
	CreateTopic           bool
}

func NewKafkaProducerConfigFromURL(logger ulogger.Logger, kafkaURL *url.URL) (KafkaProducerConfig, error) {
	if kafkaURL == nil {
		return KafkaProducerConfig{}, errors.NewConfigurationError("kafka url is not set")
	}

	topic := strings.TrimPrefix(kafkaURL.Path, "/")
	if topic == "" {
		return KafkaProducerConfig{}, errors.NewConfigurationError("kafka url %s has no topic", kafkaURL.Redacted())
	}

	partitions, err := getQueryParamInt(kafkaURL, "partitions", 1)
	if err != nil {
		return KafkaProducerConfig{}, err
	}

	replication, err := getQueryParamInt(kafkaURL, "replication", 1)
	if err != nil {
		return KafkaProducerConfig{}, err
	}

	if partitions < 1 || partitions > math.MaxInt32 {
		return KafkaProducerConfig{}, errors.NewConfigurationError("kafka partitions %d out of range", partitions)
	}

	if replication < 1 || replication > math.MaxInt16 {
		return KafkaProducerConfig{}, errors.NewConfigurationError("kafka replication %d out of range", replication)
	}

	flushBytes, err := getQueryParamInt(kafkaURL, "flush_bytes", 1024*1024)
	if err != nil {
		return KafkaProducerConfig{}, err
	}

	flushMessages, err := getQueryParamInt(kafkaURL, "flush_messages", 1)
	if err != nil {
		return KafkaProducerConfig{}, err
	}

	bufferSize, err := getQueryParamInt(kafkaURL, "buffer_size", 256)
	if err != nil {
		return KafkaProducerConfig{}, err
	}

	flushFrequency, err := time.ParseDuration(getQueryParam(kafkaURL, "flush_frequency", "1s"))
	if err != nil {
		return KafkaProducerConfig{}, errors.NewConfigurationError("invalid kafka flush_frequency", err)
	}

	return KafkaProducerConfig{
		Logger:                logger,
		URL:                   kafkaURL,
		BrokersURL:            strings.Split(kafkaURL.Host, ","),
		Topic:                 topic,
		Partitions:            int32(partitions),
		ReplicationFactor:     int16(replication),
		RetentionPeriodMillis: getQueryParam(kafkaURL, "retention", "604800000"), // 7 days
		FlushBytes:            flushBytes,
		FlushMessages:         flushMessages,
		FlushFrequency:        flushFrequency,
		BufferSize:            bufferSize,
		CreateTopic:           getQueryParam(kafkaURL, "create_topic", "true") == "true",
	}, nil
}

func getQueryParam(u *url.URL, key, defaultValue string) string {
	if v := u.Query().Get(key); v != "" {
		return v
	}

	return defaultValue
}

func getQueryParamInt(u *url.URL, key string, defaultValue int) (int, error) {
	v := u.Query().Get(key)
	if v == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.NewConfigurationError("invalid kafka url parameter %s=%q", key, v, err)
	}

	return n, nil
}
