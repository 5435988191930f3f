package settings

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/dymensionxyz/kaspa-validator/chaincfg"
	"github.com/dymensionxyz/kaspa-validator/errors"
)

// Version and Commit are set at build time with -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func NewSettings() *Settings {
	params, err := chaincfg.GetChainParams(getString("network", "mainnet"))
	if err != nil {
		panic(err)
	}

	return &Settings{
		ClientName:     getString("clientName", "kasvalidator"),
		LogLevel:       getString("logLevel", "INFO"),
		LoggerType:     getString("logger_type", "pretty"),
		Version:        Version,
		Commit:         Commit,
		ChainCfgParams: params,
		Validator: ValidatorSettings{
			HTTPListenAddress:   getString("validator_httpListenAddress", ":8080"),
			WithdrawalEnabled:   getBool("validator_withdrawalEnabled", true),
			HubDomain:           getUint32("validator_hubDomain", 0),
			HubTokenID:          getString("validator_hubTokenID", ""),
			KasDomain:           getUint32("validator_kasDomain", 0),
			KasTokenPlaceholder: getString("validator_kasTokenPlaceholder", ""),
			HubMailboxID:        getString("validator_hubMailboxID", ""),
			EscrowRedeemScript:  getString("validator_escrowRedeemScript", ""),
			EscrowPubKeys:       getMultiString("validator_escrowPubKeys", ""),
			EscrowThreshold:     getInt("validator_escrowThreshold", 0),
			KeySource:           getString("validator_keySource", "direct"),
			EscrowKeyHex:        getString("validator_escrowKeyHex", ""),
			EscrowKeyS3URL:      getURL("validator_escrowKeyS3URL", ""),
			HubQueryConcurrency: getInt("validator_hubQueryConcurrency", 16),
			RequestTimeout:      getDurationMillis("validator_requestTimeoutMs", 30*time.Second),
			MaxBodyBytes:        getInt("validator_maxBodyBytes", 10*1024*1024), // 10MB
			SighashTypes:        getMultiString("validator_sighashTypes", "1,129"),
		},
		Hub: HubSettings{
			RESTURL:           getURL("hub_restURL", "http://localhost:1317"),
			Timeout:           getDurationMillis("hub_timeoutMs", 10*time.Second),
			RetryCount:        getInt("hub_retryCount", 3),
			RetryBackoff:      getDurationMillis("hub_retryBackoffMs", 500*time.Millisecond),
			DeliveredCacheTTL: time.Duration(getInt("hub_deliveredCacheTTLSeconds", 600)) * time.Second,
			QueriesPerSecond:  getInt("hub_queriesPerSecond", 0),
			QueryBurst:        getInt("hub_queryBurst", 16),
		},
		Kafka: KafkaSettings{
			RejectedWithdrawalsURL: getURL("kafka_rejectedWithdrawalsURL", ""),
		},
	}
}

// Validate checks the settings the validator cannot run without.
func (s *Settings) Validate() error {
	v := s.Validator

	if v.HubMailboxID == "" {
		return errors.NewConfigurationError("validator_hubMailboxID is required")
	}

	for key, value := range map[string]string{
		"validator_hubTokenID":          v.HubTokenID,
		"validator_kasTokenPlaceholder": v.KasTokenPlaceholder,
	} {
		b, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
		if err != nil || len(b) != 32 {
			return errors.NewConfigurationError("%s must be a 32 byte hex value, got %q", key, value)
		}
	}

	if v.EscrowRedeemScript == "" && len(v.EscrowPubKeys) == 0 {
		return errors.NewConfigurationError("either validator_escrowRedeemScript or validator_escrowPubKeys is required")
	}

	if len(v.EscrowPubKeys) > 0 && (v.EscrowThreshold <= 0 || v.EscrowThreshold > len(v.EscrowPubKeys)) {
		return errors.NewConfigurationError("validator_escrowThreshold %d is out of range for %d keys", v.EscrowThreshold, len(v.EscrowPubKeys))
	}

	switch v.KeySource {
	case "direct":
		if v.EscrowKeyHex == "" {
			return errors.NewConfigurationError("validator_escrowKeyHex is required for the direct key source")
		}
	case "s3":
		if v.EscrowKeyS3URL == nil || v.EscrowKeyS3URL.Scheme != "s3" {
			return errors.NewConfigurationError("validator_escrowKeyS3URL must be an s3:// url")
		}
	default:
		return errors.NewConfigurationError("unknown validator_keySource %q", v.KeySource)
	}

	if v.HubQueryConcurrency <= 0 {
		return errors.NewConfigurationError("validator_hubQueryConcurrency must be positive")
	}

	if s.Hub.RESTURL == nil {
		return errors.NewConfigurationError("hub_restURL is required")
	}

	if s.Hub.QueriesPerSecond < 0 {
		return errors.NewConfigurationError("hub_queriesPerSecond must not be negative")
	}

	switch s.LoggerType {
	case "", "pretty", "json":
	default:
		return errors.NewConfigurationError("unknown logger_type %q, expected pretty or json", s.LoggerType)
	}

	return nil
}
