package v20

import (
	"github.com/danmuck/ocppcodec/internal/protocol"
	s "github.com/danmuck/ocppcodec/internal/protocol/schema"
)

// identifier returns a string field limited to the identifierString
// character set and n characters.
func identifier(f s.Field, n int) s.Field {
	return f.MaxLen(n).Identifier()
}

var (
	modemType = s.Define[Modem]("ModemType",
		identifier(s.Optional("Iccid", "iccid", s.String()), 20),
		identifier(s.Optional("Imsi", "imsi", s.String()), 20),
	)
	chargingStationType = s.Define[ChargingStation]("ChargingStationType",
		s.Required("Model", "model", s.String()).MaxLen(20),
		s.Required("VendorName", "vendorName", s.String()).MaxLen(50),
		s.Optional("SerialNumber", "serialNumber", s.String()).MaxLen(20),
		s.Optional("FirmwareVersion", "firmwareVersion", s.String()).MaxLen(50),
		s.Optional("Modem", "modem", s.ComplexOf(modemType)),
	)
	additionalInfoType = s.Define[AdditionalInfo]("AdditionalInfoType",
		identifier(s.Required("AdditionalIdToken", "additionalIdToken", s.String()), 36),
		s.Required("Type", "type", s.String()).MaxLen(50),
	)
	idTokenType = s.Define[IdToken]("IdTokenType",
		identifier(s.Required("IdToken", "idToken", s.String()), 36),
		s.Required("Type", "type", s.EnumOf(idTokenEnum)),
		s.Optional("AdditionalInfo", "additionalInfo", s.ListOf(s.ComplexOf(additionalInfoType))),
	)
	groupIdTokenType = s.Define[GroupIdToken]("GroupIdTokenType",
		identifier(s.Required("IdToken", "idToken", s.String()), 36),
		s.Required("Type", "type", s.EnumOf(idTokenEnum)),
	)
	messageContentType = s.Define[MessageContent]("MessageContentType",
		s.Required("Format", "format", s.EnumOf(messageFormatEnum)),
		s.Required("Content", "content", s.String()).MaxLen(512),
		s.Optional("Language", "language", s.String()).MaxLen(8),
	)
	idTokenInfoType = s.Define[IdTokenInfo]("IdTokenInfoType",
		s.Required("Status", "status", s.EnumOf(authorizationStatusEnum)),
		s.Optional("CacheExpiryDateTime", "cacheExpiryDateTime", s.Timestamp()),
		s.Optional("ChargingPriority", "chargingPriority", s.Integer()),
		s.Optional("Language1", "language1", s.String()).MaxLen(8),
		s.Optional("Language2", "language2", s.String()).MaxLen(8),
		s.Optional("GroupIdToken", "groupIdToken", s.ComplexOf(groupIdTokenType)),
		s.Optional("PersonalMessage", "personalMessage", s.ComplexOf(messageContentType)),
	)
	ocspRequestDataType = s.Define[OCSPRequestData]("OCSPRequestDataType",
		s.Required("HashAlgorithm", "hashAlgorithm", s.EnumOf(hashAlgorithmEnum)),
		identifier(s.Required("IssuerNameHash", "issuerNameHash", s.String()), 128),
		s.Required("IssuerKeyHash", "issuerKeyHash", s.String()).MaxLen(128),
		s.Required("SerialNumber", "serialNumber", s.String()).MaxLen(20),
		s.Optional("ResponderURL", "responderUrl", s.String()).MaxLen(512),
	)
	evseType = s.Define[EVSE]("EVSEType",
		s.Required("ID", "id", s.Integer()),
		s.Optional("ConnectorID", "connectorId", s.Integer()),
	)
	componentType = s.Define[Component]("ComponentType",
		s.Required("Name", "name", s.String()).MaxLen(50),
		s.Optional("Instance", "instance", s.String()).MaxLen(50),
		s.Optional("EVSE", "evse", s.ComplexOf(evseType)),
	)
	variableType = s.Define[Variable]("VariableType",
		s.Required("Name", "name", s.String()).MaxLen(50),
		s.Optional("Instance", "instance", s.String()).MaxLen(50),
	)
	getVariableDataType = s.Define[GetVariableData]("GetVariableDataType",
		s.Required("Component", "component", s.ComplexOf(componentType)),
		s.Required("Variable", "variable", s.ComplexOf(variableType)),
		s.Optional("AttributeType", "attributeType", s.EnumOf(attributeEnum)),
	)
	getVariableResultType = s.Define[GetVariableResult]("GetVariableResultType",
		s.Required("AttributeStatus", "attributeStatus", s.EnumOf(getVariableStatusEnum)),
		s.Required("Component", "component", s.ComplexOf(componentType)),
		s.Required("Variable", "variable", s.ComplexOf(variableType)),
		s.Optional("AttributeType", "attributeType", s.EnumOf(attributeEnum)),
		s.Optional("AttributeValue", "attributeValue", s.String()).MaxLen(1000),
	)
	setVariableDataType = s.Define[SetVariableData]("SetVariableDataType",
		s.Required("AttributeValue", "attributeValue", s.String()).MaxLen(1000),
		s.Required("Component", "component", s.ComplexOf(componentType)),
		s.Required("Variable", "variable", s.ComplexOf(variableType)),
		s.Optional("AttributeType", "attributeType", s.EnumOf(attributeEnum)),
	)
	setVariableResultType = s.Define[SetVariableResult]("SetVariableResultType",
		s.Required("AttributeStatus", "attributeStatus", s.EnumOf(setVariableStatusEnum)),
		s.Required("Component", "component", s.ComplexOf(componentType)),
		s.Required("Variable", "variable", s.ComplexOf(variableType)),
		s.Optional("AttributeType", "attributeType", s.EnumOf(attributeEnum)),
	)
	signedMeterValueType = s.Define[SignedMeterValue]("SignedMeterValueType",
		s.Required("MeterValueSignature", "meterValueSignature", s.String()).MaxLen(2500),
		s.Required("SignatureMethod", "signatureMethod", s.EnumOf(signatureMethodEnum)),
		s.Required("EncodingMethod", "encodingMethod", s.EnumOf(encodingMethodEnum)),
		s.Required("EncodedMeterValue", "encodedMeterValue", s.String()).MaxLen(512),
	)
	sampledValueType = s.Define[SampledValue]("SampledValueType",
		s.Required("Value", "value", s.Decimal()),
		s.Optional("Context", "context", s.EnumOf(readingContextEnum)),
		s.Optional("Measurand", "measurand", s.EnumOf(measurandEnum)),
		s.Optional("Phase", "phase", s.EnumOf(phaseEnum)),
		s.Optional("Location", "location", s.EnumOf(locationEnum)),
		s.Optional("SignedMeterValue", "signedMeterValue", s.ComplexOf(signedMeterValueType)),
		s.Optional("UnitOfMeasure", "unitOfMeasure", s.String()).MaxLen(20),
	)
	meterValueType = s.Define[MeterValue]("MeterValueType",
		s.Required("Timestamp", "timestamp", s.Timestamp()),
		s.Required("SampledValue", "sampledValue", s.ListOf(s.ComplexOf(sampledValueType))),
	)
	transactionType = s.Define[Transaction]("TransactionType",
		identifier(s.Required("ID", "id", s.String()), 36),
		s.Optional("ChargingState", "chargingState", s.EnumOf(chargingStateEnum)),
		s.Optional("TimeSpentCharging", "timeSpentCharging", s.Integer()),
		s.Optional("StoppedReason", "stoppedReason", s.EnumOf(reasonEnum)),
		s.Optional("RemoteStartID", "remoteStartId", s.Integer()),
	)
)

// Catalog is the OCPP 2.0 schema model.
var Catalog = s.NewCatalog(protocol.V20,
	s.NewAction("Authorize",
		s.Define[AuthorizeRequest]("AuthorizeRequest",
			s.Required("IdToken", "idToken", s.ComplexOf(idTokenType)),
			s.Optional("EvseID", "evseId", s.ListOf(s.Integer())),
			s.Optional("CertificateHashData", "certificateHashData", s.ListOf(s.ComplexOf(ocspRequestDataType))).MaxItems(4),
		),
		s.Define[AuthorizeResponse]("AuthorizeResponse",
			s.Required("IdTokenInfo", "idTokenInfo", s.ComplexOf(idTokenInfoType)),
			s.Optional("CertificateStatus", "certificateStatus", s.EnumOf(certificateStatusEnum)),
			s.Optional("EvseID", "evseId", s.ListOf(s.Integer())),
		),
	),
	s.NewAction("BootNotification",
		s.Define[BootNotificationRequest]("BootNotificationRequest",
			s.Required("Reason", "reason", s.EnumOf(bootReasonEnum)),
			s.Required("ChargingStation", "chargingStation", s.ComplexOf(chargingStationType)),
		),
		s.Define[BootNotificationResponse]("BootNotificationResponse",
			s.Required("CurrentTime", "currentTime", s.Timestamp()),
			s.Required("Interval", "interval", s.Integer()),
			s.Required("Status", "status", s.EnumOf(registrationStatusEnum)),
		),
	),
	s.NewAction("ChangeAvailability",
		s.Define[ChangeAvailabilityRequest]("ChangeAvailabilityRequest",
			s.Required("EvseID", "evseId", s.Integer()),
			s.Required("OperationalStatus", "operationalStatus", s.EnumOf(operationalStatusEnum)),
		),
		s.Define[ChangeAvailabilityResponse]("ChangeAvailabilityResponse",
			s.Required("Status", "status", s.EnumOf(changeAvailabilityStatusEnum)),
		),
	),
	s.NewAction("ClearCache",
		s.Define[ClearCacheRequest]("ClearCacheRequest"),
		s.Define[ClearCacheResponse]("ClearCacheResponse",
			s.Required("Status", "status", s.EnumOf(clearCacheStatusEnum)),
		),
	),
	s.NewAction("GetVariables",
		s.Define[GetVariablesRequest]("GetVariablesRequest",
			s.Required("GetVariableData", "getVariableData", s.ListOf(s.ComplexOf(getVariableDataType))),
		),
		s.Define[GetVariablesResponse]("GetVariablesResponse",
			s.Required("GetVariableResult", "getVariableResult", s.ListOf(s.ComplexOf(getVariableResultType))),
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
			s.Required("EvseID", "evseId", s.Integer()),
			s.Required("MeterValue", "meterValue", s.ListOf(s.ComplexOf(meterValueType))),
		),
		s.Define[MeterValuesResponse]("MeterValuesResponse"),
	),
	s.NewAction("RequestStopTransaction",
		s.Define[RequestStopTransactionRequest]("RequestStopTransactionRequest",
			identifier(s.Required("TransactionID", "transactionId", s.String()), 36),
		),
		s.Define[RequestStopTransactionResponse]("RequestStopTransactionResponse",
			s.Required("Status", "status", s.EnumOf(requestStartStopStatusEnum)),
		),
	),
	s.NewAction("Reset",
		s.Define[ResetRequest]("ResetRequest",
			s.Required("Type", "type", s.EnumOf(resetEnum)),
			s.Optional("EvseID", "evseId", s.Integer()),
		),
		s.Define[ResetResponse]("ResetResponse",
			s.Required("Status", "status", s.EnumOf(resetStatusEnum)),
		),
	),
	s.NewAction("SetVariables",
		s.Define[SetVariablesRequest]("SetVariablesRequest",
			s.Required("SetVariableData", "setVariableData", s.ListOf(s.ComplexOf(setVariableDataType))),
		),
		s.Define[SetVariablesResponse]("SetVariablesResponse",
			s.Required("SetVariableResult", "setVariableResult", s.ListOf(s.ComplexOf(setVariableResultType))),
		),
	),
	s.NewAction("StatusNotification",
		s.Define[StatusNotificationRequest]("StatusNotificationRequest",
			s.Required("Timestamp", "timestamp", s.Timestamp()),
			s.Required("ConnectorStatus", "connectorStatus", s.EnumOf(connectorStatusEnum)),
			s.Required("EvseID", "evseId", s.Integer()),
			s.Required("ConnectorID", "connectorId", s.Integer()),
		),
		s.Define[StatusNotificationResponse]("StatusNotificationResponse"),
	),
	s.NewAction("TransactionEvent",
		s.Define[TransactionEventRequest]("TransactionEventRequest",
			s.Required("EventType", "eventType", s.EnumOf(transactionEventEnum)),
			s.Required("Timestamp", "timestamp", s.Timestamp()),
			s.Required("TriggerReason", "triggerReason", s.EnumOf(triggerReasonEnum)),
			s.Required("SeqNo", "seqNo", s.Integer()),
			s.Required("TransactionData", "transactionData", s.ComplexOf(transactionType)),
			s.Optional("Offline", "offline", s.Boolean()),
			s.Optional("NumberOfPhasesUsed", "numberOfPhasesUsed", s.Integer()),
			s.Optional("CableMaxCurrent", "cableMaxCurrent", s.Decimal()),
			s.Optional("ReservationID", "reservationId", s.Integer()),
			s.Optional("IdToken", "idToken", s.ComplexOf(idTokenType)),
			s.Optional("EVSE", "evse", s.ComplexOf(evseType)),
			s.Optional("MeterValue", "meterValue", s.ListOf(s.ComplexOf(meterValueType))),
		),
		s.Define[TransactionEventResponse]("TransactionEventResponse"),
	),
	s.NewAction("UnlockConnector",
		s.Define[UnlockConnectorRequest]("UnlockConnectorRequest",
			s.Required("EvseID", "evseId", s.Integer()),
			s.Required("ConnectorID", "connectorId", s.Integer()),
		),
		s.Define[UnlockConnectorResponse]("UnlockConnectorResponse",
			s.Required("Status", "status", s.EnumOf(unlockStatusEnum)),
		),
	),
)
