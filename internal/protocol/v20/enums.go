package v20

import "github.com/danmuck/ocppcodec/internal/protocol/schema"

type AuthorizationStatus string

const (
	AuthorizationStatusAccepted           AuthorizationStatus = "Accepted"
	AuthorizationStatusBlocked            AuthorizationStatus = "Blocked"
	AuthorizationStatusConcurrentTx       AuthorizationStatus = "ConcurrentTx"
	AuthorizationStatusExpired            AuthorizationStatus = "Expired"
	AuthorizationStatusInvalid            AuthorizationStatus = "Invalid"
	AuthorizationStatusNoCredit           AuthorizationStatus = "NoCredit"
	AuthorizationStatusNotAllowedTypeEVSE AuthorizationStatus = "NotAllowedTypeEVSE"
	AuthorizationStatusNotAtThisLocation  AuthorizationStatus = "NotAtThisLocation"
	AuthorizationStatusNotAtThisTime      AuthorizationStatus = "NotAtThisTime"
	AuthorizationStatusUnknown            AuthorizationStatus = "Unknown"
)

type Attribute string

const (
	AttributeActual Attribute = "Actual"
	AttributeTarget Attribute = "Target"
	AttributeMinSet Attribute = "MinSet"
	AttributeMaxSet Attribute = "MaxSet"
)

type BootReason string

const (
	BootReasonApplicationReset BootReason = "ApplicationReset"
	BootReasonFirmwareUpdate   BootReason = "FirmwareUpdate"
	BootReasonLocalReset       BootReason = "LocalReset"
	BootReasonPowerUp          BootReason = "PowerUp"
	BootReasonRemoteReset      BootReason = "RemoteReset"
	BootReasonScheduledReset   BootReason = "ScheduledReset"
	BootReasonTriggered        BootReason = "Triggered"
	BootReasonUnknown          BootReason = "Unknown"
	BootReasonWatchdog         BootReason = "Watchdog"
)

type CertificateStatus string

const (
	CertificateStatusAccepted               CertificateStatus = "Accepted"
	CertificateStatusSignatureError         CertificateStatus = "SignatureError"
	CertificateStatusCertificateExpired     CertificateStatus = "CertificateExpired"
	CertificateStatusCertificateRevoked     CertificateStatus = "CertificateRevoked"
	CertificateStatusNoCertificateAvailable CertificateStatus = "NoCertificateAvailable"
	CertificateStatusCertChainError         CertificateStatus = "CertChainError"
	CertificateStatusContractCancelled      CertificateStatus = "ContractCancelled"
)

type ChangeAvailabilityStatus string

const (
	ChangeAvailabilityStatusAccepted  ChangeAvailabilityStatus = "Accepted"
	ChangeAvailabilityStatusRejected  ChangeAvailabilityStatus = "Rejected"
	ChangeAvailabilityStatusScheduled ChangeAvailabilityStatus = "Scheduled"
)

type ChargingState string

const (
	ChargingStateCharging      ChargingState = "Charging"
	ChargingStateEVDetected    ChargingState = "EVDetected"
	ChargingStateSuspendedEV   ChargingState = "SuspendedEV"
	ChargingStateSuspendedEVSE ChargingState = "SuspendedEVSE"
)

type ClearCacheStatus string

const (
	ClearCacheStatusAccepted ClearCacheStatus = "Accepted"
	ClearCacheStatusRejected ClearCacheStatus = "Rejected"
)

type ConnectorStatus string

const (
	ConnectorStatusAvailable   ConnectorStatus = "Available"
	ConnectorStatusOccupied    ConnectorStatus = "Occupied"
	ConnectorStatusReserved    ConnectorStatus = "Reserved"
	ConnectorStatusUnavailable ConnectorStatus = "Unavailable"
	ConnectorStatusFaulted     ConnectorStatus = "Faulted"
)

type EncodingMethod string

const (
	EncodingMethodOther              EncodingMethod = "Other"
	EncodingMethodDLMSMessage        EncodingMethod = "DLMS Message"
	EncodingMethodCOSEMProtectedData EncodingMethod = "COSEM Protected Data"
	EncodingMethodEDL                EncodingMethod = "EDL"
)

type GetVariableStatus string

const (
	GetVariableStatusAccepted                  GetVariableStatus = "Accepted"
	GetVariableStatusRejected                  GetVariableStatus = "Rejected"
	GetVariableStatusUnknownComponent          GetVariableStatus = "UnknownComponent"
	GetVariableStatusUnknownVariable           GetVariableStatus = "UnknownVariable"
	GetVariableStatusNotSupportedAttributeType GetVariableStatus = "NotSupportedAttributeType"
)

type HashAlgorithm string

const (
	HashAlgorithmSHA256 HashAlgorithm = "SHA256"
	HashAlgorithmSHA384 HashAlgorithm = "SHA384"
	HashAlgorithmSHA512 HashAlgorithm = "SHA512"
)

type IdTokenKind string

const (
	IdTokenCentral         IdTokenKind = "Central"
	IdTokenEMAID           IdTokenKind = "eMAID"
	IdTokenISO14443        IdTokenKind = "ISO14443"
	IdTokenKeyCode         IdTokenKind = "KeyCode"
	IdTokenLocal           IdTokenKind = "Local"
	IdTokenNoAuthorization IdTokenKind = "NoAuthorization"
	IdTokenISO15693        IdTokenKind = "ISO15693"
)

type Location string

const (
	LocationBody   Location = "Body"
	LocationCable  Location = "Cable"
	LocationEV     Location = "EV"
	LocationInlet  Location = "Inlet"
	LocationOutlet Location = "Outlet"
)

type Measurand string

const (
	MeasurandCurrentExport                Measurand = "Current.Export"
	MeasurandCurrentImport                Measurand = "Current.Import"
	MeasurandCurrentOffered               Measurand = "Current.Offered"
	MeasurandEnergyActiveExportRegister   Measurand = "Energy.Active.Export.Register"
	MeasurandEnergyActiveImportRegister   Measurand = "Energy.Active.Import.Register"
	MeasurandEnergyReactiveExportRegister Measurand = "Energy.Reactive.Export.Register"
	MeasurandEnergyReactiveImportRegister Measurand = "Energy.Reactive.Import.Register"
	MeasurandEnergyActiveExportInterval   Measurand = "Energy.Active.Export.Interval"
	MeasurandEnergyActiveImportInterval   Measurand = "Energy.Active.Import.Interval"
	MeasurandEnergyActiveNet              Measurand = "Energy.Active.Net"
	MeasurandEnergyReactiveExportInterval Measurand = "Energy.Reactive.Export.Interval"
	MeasurandEnergyReactiveImportInterval Measurand = "Energy.Reactive.Import.Interval"
	MeasurandEnergyReactiveNet            Measurand = "Energy.Reactive.Net"
	MeasurandEnergyApparentNet            Measurand = "Energy.Apparent.Net"
	MeasurandEnergyApparentImport         Measurand = "Energy.Apparent.Import"
	MeasurandEnergyApparentExport         Measurand = "Energy.Apparent.Export"
	MeasurandFrequency                    Measurand = "Frequency"
	MeasurandPowerActiveExport            Measurand = "Power.Active.Export"
	MeasurandPowerActiveImport            Measurand = "Power.Active.Import"
	MeasurandPowerFactor                  Measurand = "Power.Factor"
	MeasurandPowerOffered                 Measurand = "Power.Offered"
	MeasurandPowerReactiveExport          Measurand = "Power.Reactive.Export"
	MeasurandPowerReactiveImport          Measurand = "Power.Reactive.Import"
	MeasurandSoC                          Measurand = "SoC"
	MeasurandVoltage                      Measurand = "Voltage"
)

type MessageFormat string

const (
	MessageFormatASCII MessageFormat = "ASCII"
	MessageFormatHTML  MessageFormat = "HTML"
	MessageFormatURI   MessageFormat = "URI"
	MessageFormatUTF8  MessageFormat = "UTF8"
)

type OperationalStatus string

const (
	OperationalStatusInoperative OperationalStatus = "Inoperative"
	OperationalStatusOperative   OperationalStatus = "Operative"
)

type Phase string

const (
	PhaseL1   Phase = "L1"
	PhaseL2   Phase = "L2"
	PhaseL3   Phase = "L3"
	PhaseN    Phase = "N"
	PhaseL1N  Phase = "L1-N"
	PhaseL2N  Phase = "L2-N"
	PhaseL3N  Phase = "L3-N"
	PhaseL1L2 Phase = "L1-L2"
	PhaseL2L3 Phase = "L2-L3"
	PhaseL3L1 Phase = "L3-L1"
)

type ReadingContext string

const (
	ReadingContextInterruptionBegin ReadingContext = "Interruption.Begin"
	ReadingContextInterruptionEnd   ReadingContext = "Interruption.End"
	ReadingContextOther             ReadingContext = "Other"
	ReadingContextSampleClock       ReadingContext = "Sample.Clock"
	ReadingContextSamplePeriodic    ReadingContext = "Sample.Periodic"
	ReadingContextTransactionBegin  ReadingContext = "Transaction.Begin"
	ReadingContextTransactionEnd    ReadingContext = "Transaction.End"
	ReadingContextTrigger           ReadingContext = "Trigger"
)

type Reason string

const (
	ReasonDeAuthorized       Reason = "DeAuthorized"
	ReasonEmergencyStop      Reason = "EmergencyStop"
	ReasonEnergyLimitReached Reason = "EnergyLimitReached"
	ReasonEVDisconnected     Reason = "EVDisconnected"
	ReasonGroundFault        Reason = "GroundFault"
	ReasonImmediateReset     Reason = "ImmediateReset"
	ReasonLocal              Reason = "Local"
	ReasonLocalOutOfCredit   Reason = "LocalOutOfCredit"
	ReasonMasterPass         Reason = "MasterPass"
	ReasonOther              Reason = "Other"
	ReasonOvercurrentFault   Reason = "OvercurrentFault"
	ReasonPowerLoss          Reason = "PowerLoss"
	ReasonPowerQuality       Reason = "PowerQuality"
	ReasonReboot             Reason = "Reboot"
	ReasonRemote             Reason = "Remote"
	ReasonSOCLimitReached    Reason = "SOCLimitReached"
	ReasonStoppedByEV        Reason = "StoppedByEV"
	ReasonTimeLimitReached   Reason = "TimeLimitReached"
	ReasonTimeout            Reason = "Timeout"
	ReasonUnlockCommand      Reason = "UnlockCommand"
)

type RegistrationStatus string

const (
	RegistrationStatusAccepted RegistrationStatus = "Accepted"
	RegistrationStatusPending  RegistrationStatus = "Pending"
	RegistrationStatusRejected RegistrationStatus = "Rejected"
)

type RequestStartStopStatus string

const (
	RequestStartStopStatusAccepted RequestStartStopStatus = "Accepted"
	RequestStartStopStatusRejected RequestStartStopStatus = "Rejected"
)

type ResetKind string

const (
	ResetImmediate ResetKind = "Immediate"
	ResetOnIdle    ResetKind = "OnIdle"
)

type ResetStatus string

const (
	ResetStatusAccepted  ResetStatus = "Accepted"
	ResetStatusRejected  ResetStatus = "Rejected"
	ResetStatusScheduled ResetStatus = "Scheduled"
)

type SetVariableStatus string

const (
	SetVariableStatusAccepted                  SetVariableStatus = "Accepted"
	SetVariableStatusRejected                  SetVariableStatus = "Rejected"
	SetVariableStatusInvalidValue              SetVariableStatus = "InvalidValue"
	SetVariableStatusUnknownComponent          SetVariableStatus = "UnknownComponent"
	SetVariableStatusUnknownVariable           SetVariableStatus = "UnknownVariable"
	SetVariableStatusNotSupportedAttributeType SetVariableStatus = "NotSupportedAttributeType"
	SetVariableStatusOutOfRange                SetVariableStatus = "OutOfRange"
	SetVariableStatusRebootRequired            SetVariableStatus = "RebootRequired"
)

type SignatureMethod string

const (
	SignatureMethodECDSAP256SHA256 SignatureMethod = "ECDSAP256SHA256"
	SignatureMethodECDSAP384SHA384 SignatureMethod = "ECDSAP384SHA384"
	SignatureMethodECDSA192SHA256  SignatureMethod = "ECDSA192SHA256"
)

type TransactionEventKind string

const (
	TransactionEventEnded   TransactionEventKind = "Ended"
	TransactionEventStarted TransactionEventKind = "Started"
	TransactionEventUpdated TransactionEventKind = "Updated"
)

type TriggerReason string

const (
	TriggerReasonAuthorized           TriggerReason = "Authorized"
	TriggerReasonCablePluggedIn       TriggerReason = "CablePluggedIn"
	TriggerReasonChargingRateChanged  TriggerReason = "ChargingRateChanged"
	TriggerReasonChargingStateChanged TriggerReason = "ChargingStateChanged"
	TriggerReasonDeauthorized         TriggerReason = "Deauthorized"
	TriggerReasonEnergyLimitReached   TriggerReason = "EnergyLimitReached"
	TriggerReasonEVCommunicationLost  TriggerReason = "EVCommunicationLost"
	TriggerReasonEVConnectTimeout     TriggerReason = "EVConnectTimeout"
	TriggerReasonMeterValueClock      TriggerReason = "MeterValueClock"
	TriggerReasonMeterValuePeriodic   TriggerReason = "MeterValuePeriodic"
	TriggerReasonTimeLimitReached     TriggerReason = "TimeLimitReached"
	TriggerReasonTrigger              TriggerReason = "Trigger"
	TriggerReasonUnlockCommand        TriggerReason = "UnlockCommand"
	TriggerReasonStopAuthorized       TriggerReason = "StopAuthorized"
	TriggerReasonEVDeparted           TriggerReason = "EVDeparted"
	TriggerReasonEVDetected           TriggerReason = "EVDetected"
	TriggerReasonRemoteStop           TriggerReason = "RemoteStop"
	TriggerReasonRemoteStart          TriggerReason = "RemoteStart"
)

type UnlockStatus string

const (
	UnlockStatusUnlocked                     UnlockStatus = "Unlocked"
	UnlockStatusUnlockFailed                 UnlockStatus = "UnlockFailed"
	UnlockStatusOngoingAuthorizedTransaction UnlockStatus = "OngoingAuthorizedTransaction"
	UnlockStatusUnknownConnector             UnlockStatus = "UnknownConnector"
)

var (
	authorizationStatusEnum = schema.NewEnumOf("AuthorizationStatusEnumType",
		AuthorizationStatusAccepted, AuthorizationStatusBlocked, AuthorizationStatusConcurrentTx,
		AuthorizationStatusExpired, AuthorizationStatusInvalid, AuthorizationStatusNoCredit,
		AuthorizationStatusNotAllowedTypeEVSE, AuthorizationStatusNotAtThisLocation,
		AuthorizationStatusNotAtThisTime, AuthorizationStatusUnknown)
	attributeEnum = schema.NewEnumOf("AttributeEnumType",
		AttributeActual, AttributeTarget, AttributeMinSet, AttributeMaxSet)
	bootReasonEnum = schema.NewEnumOf("BootReasonEnumType",
		BootReasonApplicationReset, BootReasonFirmwareUpdate, BootReasonLocalReset, BootReasonPowerUp,
		BootReasonRemoteReset, BootReasonScheduledReset, BootReasonTriggered, BootReasonUnknown,
		BootReasonWatchdog)
	certificateStatusEnum = schema.NewEnumOf("CertificateStatusEnumType",
		CertificateStatusAccepted, CertificateStatusSignatureError, CertificateStatusCertificateExpired,
		CertificateStatusCertificateRevoked, CertificateStatusNoCertificateAvailable,
		CertificateStatusCertChainError, CertificateStatusContractCancelled)
	changeAvailabilityStatusEnum = schema.NewEnumOf("ChangeAvailabilityStatusEnumType",
		ChangeAvailabilityStatusAccepted, ChangeAvailabilityStatusRejected, ChangeAvailabilityStatusScheduled)
	chargingStateEnum = schema.NewEnumOf("ChargingStateEnumType",
		ChargingStateCharging, ChargingStateEVDetected, ChargingStateSuspendedEV, ChargingStateSuspendedEVSE)
	clearCacheStatusEnum = schema.NewEnumOf("ClearCacheStatusEnumType",
		ClearCacheStatusAccepted, ClearCacheStatusRejected)
	connectorStatusEnum = schema.NewEnumOf("ConnectorStatusEnumType",
		ConnectorStatusAvailable, ConnectorStatusOccupied, ConnectorStatusReserved,
		ConnectorStatusUnavailable, ConnectorStatusFaulted)
	encodingMethodEnum = schema.NewEnumOf("EncodingMethodEnumType",
		EncodingMethodOther, EncodingMethodDLMSMessage, EncodingMethodCOSEMProtectedData, EncodingMethodEDL)
	getVariableStatusEnum = schema.NewEnumOf("GetVariableStatusEnumType",
		GetVariableStatusAccepted, GetVariableStatusRejected, GetVariableStatusUnknownComponent,
		GetVariableStatusUnknownVariable, GetVariableStatusNotSupportedAttributeType)
	hashAlgorithmEnum = schema.NewEnumOf("HashAlgorithmEnumType",
		HashAlgorithmSHA256, HashAlgorithmSHA384, HashAlgorithmSHA512)
	idTokenEnum = schema.NewEnumOf("IdTokenEnumType",
		IdTokenCentral, IdTokenEMAID, IdTokenISO14443, IdTokenKeyCode, IdTokenLocal,
		IdTokenNoAuthorization, IdTokenISO15693)
	locationEnum = schema.NewEnumOf("LocationEnumType",
		LocationBody, LocationCable, LocationEV, LocationInlet, LocationOutlet)
	measurandEnum = schema.NewEnumOf("MeasurandEnumType",
		MeasurandCurrentExport, MeasurandCurrentImport, MeasurandCurrentOffered,
		MeasurandEnergyActiveExportRegister, MeasurandEnergyActiveImportRegister,
		MeasurandEnergyReactiveExportRegister, MeasurandEnergyReactiveImportRegister,
		MeasurandEnergyActiveExportInterval, MeasurandEnergyActiveImportInterval,
		MeasurandEnergyActiveNet, MeasurandEnergyReactiveExportInterval,
		MeasurandEnergyReactiveImportInterval, MeasurandEnergyReactiveNet,
		MeasurandEnergyApparentNet, MeasurandEnergyApparentImport, MeasurandEnergyApparentExport,
		MeasurandFrequency, MeasurandPowerActiveExport, MeasurandPowerActiveImport,
		MeasurandPowerFactor, MeasurandPowerOffered, MeasurandPowerReactiveExport,
		MeasurandPowerReactiveImport, MeasurandSoC, MeasurandVoltage)
	messageFormatEnum = schema.NewEnumOf("MessageFormatEnumType",
		MessageFormatASCII, MessageFormatHTML, MessageFormatURI, MessageFormatUTF8)
	operationalStatusEnum = schema.NewEnumOf("OperationalStatusEnumType",
		OperationalStatusInoperative, OperationalStatusOperative)
	phaseEnum = schema.NewEnumOf("PhaseEnumType",
		PhaseL1, PhaseL2, PhaseL3, PhaseN, PhaseL1N, PhaseL2N, PhaseL3N, PhaseL1L2, PhaseL2L3, PhaseL3L1)
	readingContextEnum = schema.NewEnumOf("ReadingContextEnumType",
		ReadingContextInterruptionBegin, ReadingContextInterruptionEnd, ReadingContextOther,
		ReadingContextSampleClock, ReadingContextSamplePeriodic, ReadingContextTransactionBegin,
		ReadingContextTransactionEnd, ReadingContextTrigger)
	reasonEnum = schema.NewEnumOf("ReasonEnumType",
		ReasonDeAuthorized, ReasonEmergencyStop, ReasonEnergyLimitReached, ReasonEVDisconnected,
		ReasonGroundFault, ReasonImmediateReset, ReasonLocal, ReasonLocalOutOfCredit, ReasonMasterPass,
		ReasonOther, ReasonOvercurrentFault, ReasonPowerLoss, ReasonPowerQuality, ReasonReboot,
		ReasonRemote, ReasonSOCLimitReached, ReasonStoppedByEV, ReasonTimeLimitReached, ReasonTimeout,
		ReasonUnlockCommand)
	registrationStatusEnum = schema.NewEnumOf("RegistrationStatusEnumType",
		RegistrationStatusAccepted, RegistrationStatusPending, RegistrationStatusRejected)
	requestStartStopStatusEnum = schema.NewEnumOf("RequestStartStopStatusEnumType",
		RequestStartStopStatusAccepted, RequestStartStopStatusRejected)
	resetEnum = schema.NewEnumOf("ResetEnumType", ResetImmediate, ResetOnIdle)
	resetStatusEnum = schema.NewEnumOf("ResetStatusEnumType",
		ResetStatusAccepted, ResetStatusRejected, ResetStatusScheduled)
	setVariableStatusEnum = schema.NewEnumOf("SetVariableStatusEnumType",
		SetVariableStatusAccepted, SetVariableStatusRejected, SetVariableStatusInvalidValue,
		SetVariableStatusUnknownComponent, SetVariableStatusUnknownVariable,
		SetVariableStatusNotSupportedAttributeType, SetVariableStatusOutOfRange,
		SetVariableStatusRebootRequired)
	signatureMethodEnum = schema.NewEnumOf("SignatureMethodEnumType",
		SignatureMethodECDSAP256SHA256, SignatureMethodECDSAP384SHA384, SignatureMethodECDSA192SHA256)
	transactionEventEnum = schema.NewEnumOf("TransactionEventEnumType",
		TransactionEventEnded, TransactionEventStarted, TransactionEventUpdated)
	triggerReasonEnum = schema.NewEnumOf("TriggerReasonEnumType",
		TriggerReasonAuthorized, TriggerReasonCablePluggedIn, TriggerReasonChargingRateChanged,
		TriggerReasonChargingStateChanged, TriggerReasonDeauthorized, TriggerReasonEnergyLimitReached,
		TriggerReasonEVCommunicationLost, TriggerReasonEVConnectTimeout, TriggerReasonMeterValueClock,
		TriggerReasonMeterValuePeriodic, TriggerReasonTimeLimitReached, TriggerReasonTrigger,
		TriggerReasonUnlockCommand, TriggerReasonStopAuthorized, TriggerReasonEVDeparted,
		TriggerReasonEVDetected, TriggerReasonRemoteStop, TriggerReasonRemoteStart)
	unlockStatusEnum = schema.NewEnumOf("UnlockStatusEnumType",
		UnlockStatusUnlocked, UnlockStatusUnlockFailed, UnlockStatusOngoingAuthorizedTransaction,
		UnlockStatusUnknownConnector)
)
