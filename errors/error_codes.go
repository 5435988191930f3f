package errors

import (
	"strconv"
)

// ERR is the closed set of error codes used throughout the validator.
type ERR int32

const (
	ERR_UNKNOWN                    ERR = 0
	ERR_INVALID_ARGUMENT           ERR = 1
	ERR_THRESHOLD_EXCEEDED         ERR = 2
	ERR_NOT_FOUND                  ERR = 3
	ERR_PROCESSING                 ERR = 4
	ERR_CONFIGURATION              ERR = 5
	ERR_CONTEXT                    ERR = 6
	ERR_CONTEXT_CANCELED           ERR = 7
	ERR_ERROR                      ERR = 9
	ERR_SIGNING                    ERR = 10
	ERR_SERVICE_UNAVAILABLE        ERR = 20
	ERR_SERVICE_NOT_STARTED        ERR = 21
	ERR_SERVICE_ERROR              ERR = 22
	ERR_NETWORK_ERROR              ERR = 30
	ERR_NETWORK_TIMEOUT            ERR = 31
	ERR_NETWORK_CONNECTION_REFUSED ERR = 32
	ERR_NETWORK_INVALID_RESPONSE   ERR = 33
	ERR_SYSTEM                     ERR = 40

	// withdrawal batch policy failures
	ERR_DOUBLE_SPENDING                ERR = 100
	ERR_FAILED_GENERAL_VERIFICATION    ERR = 101
	ERR_MESSAGE_NOT_DISPATCHED         ERR = 102
	ERR_MESSAGES_NOT_UNPROCESSED       ERR = 103
	ERR_MESSAGE_CACHE_LENGTH_MISMATCH  ERR = 104
	ERR_SIGHASH_TYPE                   ERR = 105
	ERR_NO_MESSAGES                    ERR = 106
	ERR_ANCHOR_NOT_FOUND               ERR = 107
	ERR_PAYLOAD_MISMATCH               ERR = 108
	ERR_ESCROW_WITHDRAWAL_NOT_ALLOWED  ERR = 109
	ERR_MULTIPLE_ANCHORS               ERR = 110
	ERR_MISSING_OUTPUTS                ERR = 111
	ERR_ESCROW_AMOUNT_MISMATCH         ERR = 112
	ERR_NEXT_ANCHOR_NOT_FOUND          ERR = 113
)

var ERR_name = map[int32]string{
	0:   "UNKNOWN",
	1:   "INVALID_ARGUMENT",
	2:   "THRESHOLD_EXCEEDED",
	3:   "NOT_FOUND",
	4:   "PROCESSING",
	5:   "CONFIGURATION",
	6:   "CONTEXT",
	7:   "CONTEXT_CANCELED",
	9:   "ERROR",
	10:  "SIGNING",
	20:  "SERVICE_UNAVAILABLE",
	21:  "SERVICE_NOT_STARTED",
	22:  "SERVICE_ERROR",
	30:  "NETWORK_ERROR",
	31:  "NETWORK_TIMEOUT",
	32:  "NETWORK_CONNECTION_REFUSED",
	33:  "NETWORK_INVALID_RESPONSE",
	40:  "SYSTEM",
	100: "DOUBLE_SPENDING",
	101: "FAILED_GENERAL_VERIFICATION",
	102: "MESSAGE_NOT_DISPATCHED",
	103: "MESSAGES_NOT_UNPROCESSED",
	104: "MESSAGE_CACHE_LENGTH_MISMATCH",
	105: "SIGHASH_TYPE",
	106: "NO_MESSAGES",
	107: "ANCHOR_NOT_FOUND",
	108: "PAYLOAD_MISMATCH",
	109: "ESCROW_WITHDRAWAL_NOT_ALLOWED",
	110: "MULTIPLE_ANCHORS",
	111: "MISSING_OUTPUTS",
	112: "ESCROW_AMOUNT_MISMATCH",
	113: "NEXT_ANCHOR_NOT_FOUND",
}

var ERR_value = func() map[string]int32 {
	m := make(map[string]int32, len(ERR_name))
	for k, v := range ERR_name {
		m[v] = k
	}

	return m
}()

func (x ERR) String() string {
	if name, ok := ERR_name[int32(x)]; ok {
		return name
	}

	return strconv.Itoa(int(x))
}
