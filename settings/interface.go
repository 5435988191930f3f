package settings

import (
	"net/url"
	"time"

	"github.com/dymensionxyz/kaspa-validator/chaincfg"
)

type Settings struct {
	ClientName     string
	LogLevel       string
	LoggerType     string
	Version        string
	Commit         string
	ChainCfgParams *chaincfg.Params
	Validator      ValidatorSettings
	Hub            HubSettings
	Kafka          KafkaSettings
}

type ValidatorSettings struct {
	HTTPListenAddress   string
	WithdrawalEnabled   bool
	HubDomain           uint32
	HubTokenID          string
	KasDomain           uint32
	KasTokenPlaceholder string
	HubMailboxID        string
	EscrowRedeemScript  string
	EscrowPubKeys       []string
	EscrowThreshold     int
	KeySource           string
	EscrowKeyHex        string
	EscrowKeyS3URL      *url.URL
	HubQueryConcurrency int
	RequestTimeout      time.Duration
	MaxBodyBytes        int
	SighashTypes        []string
}

type HubSettings struct {
	RESTURL           *url.URL
	Timeout           time.Duration
	RetryCount        int
	RetryBackoff      time.Duration
	DeliveredCacheTTL time.Duration
	// QueriesPerSecond caps outbound hub queries; zero disables the limit.
	QueriesPerSecond int
	QueryBurst       int
}

type KafkaSettings struct {
	RejectedWithdrawalsURL *url.URL
}
