package model

import (
	"time"

	"github.com/dymensionxyz/kaspa-validator/errors"
	jsoniter "github.com/json-iterator/go"
)

type NotificationType string

const (
	NotificationTypeWithdrawalRejected NotificationType = "withdrawal_rejected"
)

// RejectedWithdrawalNotification is published when a withdrawal batch fails a policy check.
type RejectedWithdrawalNotification struct {
	Type       NotificationType `json:"type"`
	RequestID  string           `json:"requestId"`
	MessageIDs []string         `json:"messageIds"`
	Code       string           `json:"code"`
	Reason     string           `json:"reason"`
	Time       time.Time        `json:"time"`
}

func NewRejectedWithdrawalNotification(requestID string, fxg *WithdrawFXG, err error) *RejectedWithdrawalNotification {
	n := &RejectedWithdrawalNotification{
		Type:      NotificationTypeWithdrawalRejected,
		RequestID: requestID,
		Code:      errors.CodeOf(err).String(),
		Time:      time.Now().UTC(),
	}

	if err != nil {
		n.Reason = err.Error()

		var tErr *errors.Error
		if errors.As(err, &tErr) {
			n.Reason = tErr.Message()
		}
	}

	if fxg != nil {
		n.MessageIDs = MessageIDs(MessageIDsOf(FlattenMessages(fxg.Messages))).Strings()
	}

	return n
}

func (n *RejectedWithdrawalNotification) Bytes() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(n)
}
