package daemon

import (
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	"github.com/dymensionxyz/kaspa-validator/util/kafka"
)

// getKafkaRejectedWithdrawalsProducer returns nil when no kafka_rejectedWithdrawalsURL is configured.
func getKafkaRejectedWithdrawalsProducer(logger ulogger.Logger, tSettings *settings.Settings) (kafka.KafkaAsyncProducerI, error) {
	kafkaURL := tSettings.Kafka.RejectedWithdrawalsURL
	if kafkaURL == nil {
		logger.Infof("[Daemon] no rejected withdrawals topic configured, rejections are only logged")
		return nil, nil
	}

	cfg, err := kafka.NewKafkaProducerConfigFromURL(logger, kafkaURL)
	if err != nil {
		return nil, err
	}

	producer, err := kafka.NewKafkaAsyncProducer(logger, cfg)
	if err != nil {
		return nil, err
	}

	return producer, nil
}
