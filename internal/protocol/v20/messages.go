package v20

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuthorizeRequest struct {
	IdToken             IdToken
	EvseID              []int
	CertificateHashData []OCSPRequestData
}

type AuthorizeResponse struct {
	IdTokenInfo       IdTokenInfo
	CertificateStatus *CertificateStatus
	EvseID            []int
}

type BootNotificationRequest struct {
	Reason          BootReason
	ChargingStation ChargingStation
}

type BootNotificationResponse struct {
	CurrentTime time.Time
	Interval    int
	Status      RegistrationStatus
}

type ChangeAvailabilityRequest struct {
	EvseID            int
	OperationalStatus OperationalStatus
}

type ChangeAvailabilityResponse struct {
	Status ChangeAvailabilityStatus
}

type ClearCacheRequest struct{}

type ClearCacheResponse struct {
	Status ClearCacheStatus
}

type GetVariablesRequest struct {
	GetVariableData []GetVariableData
}

type GetVariablesResponse struct {
	GetVariableResult []GetVariableResult
}

type HeartbeatRequest struct{}

type HeartbeatResponse struct {
	CurrentTime time.Time
}

type MeterValuesRequest struct {
	EvseID     int
	MeterValue []MeterValue
}

type MeterValuesResponse struct{}

type RequestStopTransactionRequest struct {
	TransactionID string
}

type RequestStopTransactionResponse struct {
	Status RequestStartStopStatus
}

type ResetRequest struct {
	Type   ResetKind
	EvseID *int
}

type ResetResponse struct {
	Status ResetStatus
}

type SetVariablesRequest struct {
	SetVariableData []SetVariableData
}

type SetVariablesResponse struct {
	SetVariableResult []SetVariableResult
}

type StatusNotificationRequest struct {
	Timestamp       time.Time
	ConnectorStatus ConnectorStatus
	EvseID          int
	ConnectorID     int
}

type StatusNotificationResponse struct{}

type TransactionEventRequest struct {
	EventType          TransactionEventKind
	Timestamp          time.Time
	TriggerReason      TriggerReason
	SeqNo              int
	TransactionData    Transaction
	Offline            *bool
	NumberOfPhasesUsed *int
	CableMaxCurrent    *decimal.Decimal
	ReservationID      *int
	IdToken            *IdToken
	EVSE               *EVSE
	MeterValue         []MeterValue
}

type TransactionEventResponse struct{}

type UnlockConnectorRequest struct {
	EvseID      int
	ConnectorID int
}

type UnlockConnectorResponse struct {
	Status UnlockStatus
}
