package v16

import (
	"github.com/danmuck/ocppcodec/internal/protocol"
	s "github.com/danmuck/ocppcodec/internal/protocol/schema"
)

// CiString lengths, OCPP 1.6 section 7.
const (
	ciString20  = 20
	ciString25  = 25
	ciString50  = 50
	ciString255 = 255
	ciString500 = 500
)

// 1.6 decimals carry at most one fractional digit.
var decimal1 = s.DecimalPlaces(1)

var (
	idTagInfoType = s.Define[IdTagInfo]("IdTagInfo",
		s.Required("Status", "status", s.EnumOf(authorizationStatusEnum)),
		s.Optional("ExpiryDate", "expiryDate", s.Timestamp()),
		s.Optional("ParentIdTag", "parentIdTag", s.String()).MaxLen(ciString20),
	)
	authorizationDataType = s.Define[AuthorizationData]("AuthorizationData",
		s.Required("IdTag", "idTag", s.String()).MaxLen(ciString20),
		s.Optional("IdTagInfo", "idTagInfo", s.ComplexOf(idTagInfoType)),
	)
	chargingSchedulePeriodType = s.Define[ChargingSchedulePeriod]("ChargingSchedulePeriod",
		s.Required("StartPeriod", "startPeriod", s.Integer()),
		s.Required("Limit", "limit", decimal1).MaxPlaces(1),
		s.Optional("NumberPhases", "numberPhases", s.Integer()),
	)
	chargingScheduleType = s.Define[ChargingSchedule]("ChargingSchedule",
		s.Required("ChargingRateUnit", "chargingRateUnit", s.EnumOf(chargingRateUnitEnum)),
		s.Required("ChargingSchedulePeriod", "chargingSchedulePeriod", s.ListOf(s.ComplexOf(chargingSchedulePeriodType))),
		s.Optional("Duration", "duration", s.Integer()),
		s.Optional("StartSchedule", "startSchedule", s.Timestamp()),
		s.Optional("MinChargingRate", "minChargingRate", decimal1).MaxPlaces(1),
	)
	chargingProfileType = s.Define[ChargingProfile]("ChargingProfile",
		s.Required("ChargingProfileID", "chargingProfileId", s.Integer()),
		s.Required("StackLevel", "stackLevel", s.Integer()).NonNegative(),
		s.Required("ChargingProfilePurpose", "chargingProfilePurpose", s.EnumOf(chargingProfilePurposeEnum)),
		s.Required("ChargingProfileKind", "chargingProfileKind", s.EnumOf(chargingProfileKindEnum)),
		s.Required("ChargingSchedule", "chargingSchedule", s.ComplexOf(chargingScheduleType)),
		s.Optional("TransactionID", "transactionId", s.Integer()),
		s.Optional("RecurrencyKind", "recurrencyKind", s.EnumOf(recurrencyKindEnum)),
		s.Optional("ValidFrom", "validFrom", s.Timestamp()),
		s.Optional("ValidTo", "validTo", s.Timestamp()),
	)
	keyValueType = s.Define[KeyValue]("KeyValue",
		s.Required("Key", "key", s.String()).MaxLen(ciString50),
		s.Required("Readonly", "readonly", s.Boolean()),
		s.Optional("Value", "value", s.String()).MaxLen(ciString500),
	)
	sampledValueType = s.Define[SampledValue]("SampledValue",
		s.Required("Value", "value", s.String()),
		s.Optional("Context", "context", s.EnumOf(readingContextEnum)),
		s.Optional("Format", "format", s.EnumOf(valueFormatEnum)),
		s.Optional("Measurand", "measurand", s.EnumOf(measurandEnum)),
		s.Optional("Phase", "phase", s.EnumOf(phaseEnum)),
		s.Optional("Location", "location", s.EnumOf(locationEnum)),
		s.Optional("Unit", "unit", s.EnumOf(unitOfMeasureEnum)),
	)
	meterValueType = s.Define[MeterValue]("MeterValue",
		s.Required("Timestamp", "timestamp", s.Timestamp()),
		s.Required("SampledValue", "sampledValue", s.ListOf(s.ComplexOf(sampledValueType))),
	)
)

// Catalog is the OCPP 1.6 schema model.
var Catalog = s.NewCatalog(protocol.V16,
	s.NewAction("Authorize",
		s.Define[AuthorizeRequest]("AuthorizeRequest",
			s.Required("IdTag", "idTag", s.String()).MaxLen(ciString20),
		),
		s.Define[AuthorizeResponse]("AuthorizeResponse",
			s.Required("IdTagInfo", "idTagInfo", s.ComplexOf(idTagInfoType)),
		),
	),
	s.NewAction("BootNotification",
		s.Define[BootNotificationRequest]("BootNotificationRequest",
			s.Required("ChargePointModel", "chargePointModel", s.String()).MaxLen(ciString20),
			s.Required("ChargePointVendor", "chargePointVendor", s.String()).MaxLen(ciString20),
			s.Optional("ChargeBoxSerialNumber", "chargeBoxSerialNumber", s.String()).MaxLen(ciString25),
			s.Optional("ChargePointSerialNumber", "chargePointSerialNumber", s.String()).MaxLen(ciString25),
			s.Optional("FirmwareVersion", "firmwareVersion", s.String()).MaxLen(ciString50),
			s.Optional("Iccid", "iccid", s.String()).MaxLen(ciString20),
			s.Optional("Imsi", "imsi", s.String()).MaxLen(ciString20),
			s.Optional("MeterSerialNumber", "meterSerialNumber", s.String()).MaxLen(ciString25),
			s.Optional("MeterType", "meterType", s.String()).MaxLen(ciString25),
		),
		s.Define[BootNotificationResponse]("BootNotificationResponse",
			s.Required("CurrentTime", "currentTime", s.Timestamp()),
			s.Required("Interval", "interval", s.Integer()),
			s.Required("Status", "status", s.EnumOf(registrationStatusEnum)),
		),
	),
	s.NewAction("CancelReservation",
		s.Define[CancelReservationRequest]("CancelReservationRequest",
			s.Required("ReservationID", "reservationId", s.Integer()),
		),
		s.Define[CancelReservationResponse]("CancelReservationResponse",
			s.Required("Status", "status", s.EnumOf(cancelReservationStatusEnum)),
		),
	),
	s.NewAction("ChangeAvailability",
		s.Define[ChangeAvailabilityRequest]("ChangeAvailabilityRequest",
			s.Required("ConnectorID", "connectorId", s.Integer()).NonNegative(),
			s.Required("Type", "type", s.EnumOf(availabilityTypeEnum)),
		),
		s.Define[ChangeAvailabilityResponse]("ChangeAvailabilityResponse",
			s.Required("Status", "status", s.EnumOf(availabilityStatusEnum)),
		),
	),
	s.NewAction("ChangeConfiguration",
		s.Define[ChangeConfigurationRequest]("ChangeConfigurationRequest",
			s.Required("Key", "key", s.String()).MaxLen(ciString50),
			s.Required("Value", "value", s.String()).MaxLen(ciString500),
		),
		s.Define[ChangeConfigurationResponse]("ChangeConfigurationResponse",
			s.Required("Status", "status", s.EnumOf(configurationStatusEnum)),
		),
	),
	s.NewAction("ClearCache",
		s.Define[ClearCacheRequest]("ClearCacheRequest"),
		s.Define[ClearCacheResponse]("ClearCacheResponse",
			s.Required("Status", "status", s.EnumOf(clearCacheStatusEnum)),
		),
	),
	s.NewAction("ClearChargingProfile",
		s.Define[ClearChargingProfileRequest]("ClearChargingProfileRequest",
			s.Optional("ID", "id", s.Integer()),
			s.Optional("ConnectorID", "connectorId", s.Integer()),
			s.Optional("ChargingProfilePurpose", "chargingProfilePurpose", s.EnumOf(chargingProfilePurposeEnum)),
			s.Optional("StackLevel", "stackLevel", s.Integer()),
		),
		s.Define[ClearChargingProfileResponse]("ClearChargingProfileResponse",
			s.Required("Status", "status", s.EnumOf(clearChargingProfileStatusEnum)),
		),
	),
	s.NewAction("DataTransfer",
		s.Define[DataTransferRequest]("DataTransferRequest",
			s.Required("VendorID", "vendorId", s.String()).MaxLen(ciString255),
			s.Optional("MessageID", "messageId", s.String()).MaxLen(ciString50),
			s.Optional("Data", "data", s.String()),
		),
		s.Define[DataTransferResponse]("DataTransferResponse",
			s.Required("Status", "status", s.EnumOf(dataTransferStatusEnum)),
			s.Optional("Data", "data", s.String()),
		),
	),
	s.NewAction("DiagnosticsStatusNotification",
		s.Define[DiagnosticsStatusNotificationRequest]("DiagnosticsStatusNotificationRequest",
			s.Required("Status", "status", s.EnumOf(diagnosticsStatusEnum)),
		),
		s.Define[DiagnosticsStatusNotificationResponse]("DiagnosticsStatusNotificationResponse"),
	),
	s.NewAction("FirmwareStatusNotification",
		s.Define[FirmwareStatusNotificationRequest]("FirmwareStatusNotificationRequest",
			s.Required("Status", "status", s.EnumOf(firmwareStatusEnum)),
		),
		s.Define[FirmwareStatusNotificationResponse]("FirmwareStatusNotificationResponse"),
	),
	s.NewAction("GetCompositeSchedule",
		s.Define[GetCompositeScheduleRequest]("GetCompositeScheduleRequest",
			s.Required("ConnectorID", "connectorId", s.Integer()),
			s.Required("Duration", "duration", s.Integer()),
			s.Optional("ChargingRateUnit", "chargingRateUnit", s.EnumOf(chargingRateUnitEnum)),
		),
		s.Define[GetCompositeScheduleResponse]("GetCompositeScheduleResponse",
			s.Required("Status", "status", s.EnumOf(getCompositeScheduleStatusEnum)),
			s.Optional("ConnectorID", "connectorId", s.Integer()),
			s.Optional("ScheduleStart", "scheduleStart", s.Timestamp()),
			s.Optional("ChargingSchedule", "chargingSchedule", s.ComplexOf(chargingScheduleType)),
		),
	),
	s.NewAction("GetConfiguration",
		s.Define[GetConfigurationRequest]("GetConfigurationRequest",
			s.Optional("Key", "key", s.ListOf(s.String())).MaxLen(ciString50),
		),
		s.Define[GetConfigurationResponse]("GetConfigurationResponse",
			s.Optional("ConfigurationKey", "configurationKey", s.ListOf(s.ComplexOf(keyValueType))),
			s.Optional("UnknownKey", "unknownKey", s.ListOf(s.String())).MaxLen(ciString50),
		),
	),
	s.NewAction("GetDiagnostics",
		s.Define[GetDiagnosticsRequest]("GetDiagnosticsRequest",
			s.Required("Location", "location", s.String()),
			s.Optional("Retries", "retries", s.Integer()),
			s.Optional("RetryInterval", "retryInterval", s.Integer()),
			s.Optional("StartTime", "startTime", s.Timestamp()),
			s.Optional("StopTime", "stopTime", s.Timestamp()),
		),
		s.Define[GetDiagnosticsResponse]("GetDiagnosticsResponse",
			s.Optional("FileName", "fileName", s.String()).MaxLen(ciString255),
		),
	),
	s.NewAction("GetLocalListVersion",
		s.Define[GetLocalListVersionRequest]("GetLocalListVersionRequest"),
		s.Define[GetLocalListVersionResponse]("GetLocalListVersionResponse",
			s.Required("ListVersion", "listVersion", s.Integer()),
		),
	),
	s.NewAction("Heartbeat",
		s.Define[HeartbeatRequest]("HeartbeatRequest"),
		s.Define[HeartbeatResponse]("HeartbeatResponse",
			s.Required("CurrentTime", "currentTime", s.Timestamp()),
		),
	),
	s.NewAction("MeterValues",
		s.Define[MeterValuesRequest]("MeterValuesRequest",
			s.Required("ConnectorID", "connectorId", s.Integer()).NonNegative(),
			s.Required("MeterValue", "meterValue", s.ListOf(s.ComplexOf(meterValueType))),
			s.Optional("TransactionID", "transactionId", s.Integer()),
		),
		s.Define[MeterValuesResponse]("MeterValuesResponse"),
	),
	s.NewAction("RemoteStartTransaction",
		s.Define[RemoteStartTransactionRequest]("RemoteStartTransactionRequest",
			s.Required("IdTag", "idTag", s.String()).MaxLen(ciString20),
			s.Optional("ConnectorID", "connectorId", s.Integer()).Positive(),
			s.Optional("ChargingProfile", "chargingProfile", s.ComplexOf(chargingProfileType)),
		),
		s.Define[RemoteStartTransactionResponse]("RemoteStartTransactionResponse",
			s.Required("Status", "status", s.EnumOf(remoteStartStopStatusEnum)),
		),
	),
	s.NewAction("RemoteStopTransaction",
		s.Define[RemoteStopTransactionRequest]("RemoteStopTransactionRequest",
			s.Required("TransactionID", "transactionId", s.Integer()),
		),
		s.Define[RemoteStopTransactionResponse]("RemoteStopTransactionResponse",
			s.Required("Status", "status", s.EnumOf(remoteStartStopStatusEnum)),
		),
	),
	s.NewAction("ReserveNow",
		s.Define[ReserveNowRequest]("ReserveNowRequest",
			s.Required("ConnectorID", "connectorId", s.Integer()).NonNegative(),
			s.Required("ExpiryDate", "expiryDate", s.Timestamp()),
			s.Required("IdTag", "idTag", s.String()).MaxLen(ciString20),
			s.Required("ReservationID", "reservationId", s.Integer()),
			s.Optional("ParentIdTag", "parentIdTag", s.String()).MaxLen(ciString20),
		),
		s.Define[ReserveNowResponse]("ReserveNowResponse",
			s.Required("Status", "status", s.EnumOf(reservationStatusEnum)),
		),
	),
	s.NewAction("Reset",
		s.Define[ResetRequest]("ResetRequest",
			s.Required("Type", "type", s.EnumOf(resetTypeEnum)),
		),
		s.Define[ResetResponse]("ResetResponse",
			s.Required("Status", "status", s.EnumOf(resetStatusEnum)),
		),
	),
	s.NewAction("SendLocalList",
		s.Define[SendLocalListRequest]("SendLocalListRequest",
			s.Required("ListVersion", "listVersion", s.Integer()).NonNegative(),
			s.Required("UpdateType", "updateType", s.EnumOf(updateTypeEnum)),
			s.Optional("LocalAuthorizationList", "localAuthorizationList", s.ListOf(s.ComplexOf(authorizationDataType))),
		),
		s.Define[SendLocalListResponse]("SendLocalListResponse",
			s.Required("Status", "status", s.EnumOf(updateStatusEnum)),
		),
	),
	s.NewAction("SetChargingProfile",
		s.Define[SetChargingProfileRequest]("SetChargingProfileRequest",
			s.Required("ConnectorID", "connectorId", s.Integer()),
			s.Required("CsChargingProfiles", "csChargingProfiles", s.ComplexOf(chargingProfileType)),
		),
		s.Define[SetChargingProfileResponse]("SetChargingProfileResponse",
			s.Required("Status", "status", s.EnumOf(chargingProfileStatusEnum)),
		),
	),
	s.NewAction("StartTransaction",
		s.Define[StartTransactionRequest]("StartTransactionRequest",
			s.Required("ConnectorID", "connectorId", s.Integer()).Positive(),
			s.Required("IdTag", "idTag", s.String()).MaxLen(ciString20),
			s.Required("MeterStart", "meterStart", s.Integer()),
			s.Required("Timestamp", "timestamp", s.Timestamp()),
			s.Optional("ReservationID", "reservationId", s.Integer()),
		),
		s.Define[StartTransactionResponse]("StartTransactionResponse",
			s.Required("IdTagInfo", "idTagInfo", s.ComplexOf(idTagInfoType)),
			s.Required("TransactionID", "transactionId", s.Integer()),
		),
	),
	s.NewAction("StatusNotification",
		s.Define[StatusNotificationRequest]("StatusNotificationRequest",
			s.Required("ConnectorID", "connectorId", s.Integer()).NonNegative(),
			s.Required("ErrorCode", "errorCode", s.EnumOf(chargePointErrorCodeEnum)),
			s.Required("Status", "status", s.EnumOf(chargePointStatusEnum)),
			s.Optional("Info", "info", s.String()).MaxLen(ciString50),
			s.Optional("Timestamp", "timestamp", s.Timestamp()),
			s.Optional("VendorID", "vendorId", s.String()).MaxLen(ciString255),
			s.Optional("VendorErrorCode", "vendorErrorCode", s.String()).MaxLen(ciString50),
		),
		s.Define[StatusNotificationResponse]("StatusNotificationResponse"),
	),
	s.NewAction("StopTransaction",
		s.Define[StopTransactionRequest]("StopTransactionRequest",
			s.Required("MeterStop", "meterStop", s.Integer()),
			s.Required("Timestamp", "timestamp", s.Timestamp()),
			s.Required("TransactionID", "transactionId", s.Integer()),
			s.Optional("IdTag", "idTag", s.String()).MaxLen(ciString20),
			s.Optional("Reason", "reason", s.EnumOf(reasonEnum)),
			s.Optional("TransactionData", "transactionData", s.ListOf(s.ComplexOf(meterValueType))),
		),
		s.Define[StopTransactionResponse]("StopTransactionResponse",
			s.Optional("IdTagInfo", "idTagInfo", s.ComplexOf(idTagInfoType)),
		),
	),
	s.NewAction("TriggerMessage",
		s.Define[TriggerMessageRequest]("TriggerMessageRequest",
			s.Required("RequestedMessage", "requestedMessage", s.EnumOf(messageTriggerEnum)),
			s.Optional("ConnectorID", "connectorId", s.Integer()).Positive(),
		),
		s.Define[TriggerMessageResponse]("TriggerMessageResponse",
			s.Required("Status", "status", s.EnumOf(triggerMessageStatusEnum)),
		),
	),
	s.NewAction("UnlockConnector",
		s.Define[UnlockConnectorRequest]("UnlockConnectorRequest",
			s.Required("ConnectorID", "connectorId", s.Integer()).Positive(),
		),
		s.Define[UnlockConnectorResponse]("UnlockConnectorResponse",
			s.Required("Status", "status", s.EnumOf(unlockStatusEnum)),
		),
	),
	s.NewAction("UpdateFirmware",
		s.Define[UpdateFirmwareRequest]("UpdateFirmwareRequest",
			s.Required("Location", "location", s.String()),
			s.Required("RetrieveDate", "retrieveDate", s.Timestamp()),
			s.Optional("Retries", "retries", s.Integer()),
			s.Optional("RetryInterval", "retryInterval", s.Integer()),
		),
		s.Define[UpdateFirmwareResponse]("UpdateFirmwareResponse"),
	),
)
