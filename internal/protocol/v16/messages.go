package v16

import "time"

type AuthorizeRequest struct {
	IdTag string
}

type AuthorizeResponse struct {
	IdTagInfo IdTagInfo
}

type BootNotificationRequest struct {
	ChargePointModel        string
	ChargePointVendor       string
	ChargeBoxSerialNumber   *string
	ChargePointSerialNumber *string
	FirmwareVersion         *string
	Iccid                   *string
	Imsi                    *string
	MeterSerialNumber       *string
	MeterType               *string
}

type BootNotificationResponse struct {
	CurrentTime time.Time
	Interval    int
	Status      RegistrationStatus
}

type CancelReservationRequest struct {
	ReservationID int
}

type CancelReservationResponse struct {
	Status CancelReservationStatus
}

type ChangeAvailabilityRequest struct {
	ConnectorID int
	Type        AvailabilityType
}

type ChangeAvailabilityResponse struct {
	Status AvailabilityStatus
}

type ChangeConfigurationRequest struct {
	Key   string
	Value string
}

type ChangeConfigurationResponse struct {
	Status ConfigurationStatus
}

type ClearCacheRequest struct{}

type ClearCacheResponse struct {
	Status ClearCacheStatus
}

type ClearChargingProfileRequest struct {
	ID                     *int
	ConnectorID            *int
	ChargingProfilePurpose *ChargingProfilePurposeType
	StackLevel             *int
}

type ClearChargingProfileResponse struct {
	Status ClearChargingProfileStatus
}

type DataTransferRequest struct {
	VendorID  string
	MessageID *string
	Data      *string
}

type DataTransferResponse struct {
	Status DataTransferStatus
	Data   *string
}

type DiagnosticsStatusNotificationRequest struct {
	Status DiagnosticsStatus
}

type DiagnosticsStatusNotificationResponse struct{}

type FirmwareStatusNotificationRequest struct {
	Status FirmwareStatus
}

type FirmwareStatusNotificationResponse struct{}

type GetCompositeScheduleRequest struct {
	ConnectorID      int
	Duration         int
	ChargingRateUnit *ChargingRateUnitType
}

type GetCompositeScheduleResponse struct {
	Status           GetCompositeScheduleStatus
	ConnectorID      *int
	ScheduleStart    *time.Time
	ChargingSchedule *ChargingSchedule
}

type GetConfigurationRequest struct {
	Key []string
}

type GetConfigurationResponse struct {
	ConfigurationKey []KeyValue
	UnknownKey       []string
}

type GetDiagnosticsRequest struct {
	Location      string
	Retries       *int
	RetryInterval *int
	StartTime     *time.Time
	StopTime      *time.Time
}

type GetDiagnosticsResponse struct {
	FileName *string
}

type GetLocalListVersionRequest struct{}

type GetLocalListVersionResponse struct {
	ListVersion int
}

type HeartbeatRequest struct{}

type HeartbeatResponse struct {
	CurrentTime time.Time
}

type MeterValuesRequest struct {
	ConnectorID   int
	MeterValue    []MeterValue
	TransactionID *int
}

type MeterValuesResponse struct{}

type RemoteStartTransactionRequest struct {
	IdTag           string
	ConnectorID     *int
	ChargingProfile *ChargingProfile
}

type RemoteStartTransactionResponse struct {
	Status RemoteStartStopStatus
}

type RemoteStopTransactionRequest struct {
	TransactionID int
}

type RemoteStopTransactionResponse struct {
	Status RemoteStartStopStatus
}

type ReserveNowRequest struct {
	ConnectorID   int
	ExpiryDate    time.Time
	IdTag         string
	ReservationID int
	ParentIdTag   *string
}

type ReserveNowResponse struct {
	Status ReservationStatus
}

type ResetRequest struct {
	Type ResetType
}

type ResetResponse struct {
	Status ResetStatus
}

type SendLocalListRequest struct {
	ListVersion            int
	UpdateType             UpdateType
	LocalAuthorizationList []AuthorizationData
}

type SendLocalListResponse struct {
	Status UpdateStatus
}

type SetChargingProfileRequest struct {
	ConnectorID        int
	CsChargingProfiles ChargingProfile
}

type SetChargingProfileResponse struct {
	Status ChargingProfileStatus
}

type StartTransactionRequest struct {
	ConnectorID   int
	IdTag         string
	MeterStart    int
	Timestamp     time.Time
	ReservationID *int
}

type StartTransactionResponse struct {
	IdTagInfo     IdTagInfo
	TransactionID int
}

type StatusNotificationRequest struct {
	ConnectorID     int
	ErrorCode       ChargePointErrorCode
	Status          ChargePointStatus
	Info            *string
	Timestamp       *time.Time
	VendorID        *string
	VendorErrorCode *string
}

type StatusNotificationResponse struct{}

type StopTransactionRequest struct {
	MeterStop       int
	Timestamp       time.Time
	TransactionID   int
	IdTag           *string
	Reason          *Reason
	TransactionData []MeterValue
}

type StopTransactionResponse struct {
	IdTagInfo *IdTagInfo
}

type TriggerMessageRequest struct {
	RequestedMessage MessageTrigger
	ConnectorID      *int
}

type TriggerMessageResponse struct {
	Status TriggerMessageStatus
}

type UnlockConnectorRequest struct {
	ConnectorID int
}

type UnlockConnectorResponse struct {
	Status UnlockStatus
}

type UpdateFirmwareRequest struct {
	Location      string
	RetrieveDate  time.Time
	Retries       *int
	RetryInterval *int
}

type UpdateFirmwareResponse struct{}
