package v16

import "github.com/danmuck/ocppcodec/internal/protocol/schema"

type AuthorizationStatus string

const (
	AuthorizationStatusAccepted     AuthorizationStatus = "Accepted"
	AuthorizationStatusBlocked      AuthorizationStatus = "Blocked"
	AuthorizationStatusExpired      AuthorizationStatus = "Expired"
	AuthorizationStatusInvalid      AuthorizationStatus = "Invalid"
	AuthorizationStatusConcurrentTx AuthorizationStatus = "ConcurrentTx"
)

type AvailabilityStatus string

const (
	AvailabilityStatusAccepted  AvailabilityStatus = "Accepted"
	AvailabilityStatusRejected  AvailabilityStatus = "Rejected"
	AvailabilityStatusScheduled AvailabilityStatus = "Scheduled"
)

type AvailabilityType string

const (
	AvailabilityTypeInoperative AvailabilityType = "Inoperative"
	AvailabilityTypeOperative   AvailabilityType = "Operative"
)

type CancelReservationStatus string

const (
	CancelReservationStatusAccepted CancelReservationStatus = "Accepted"
	CancelReservationStatusRejected CancelReservationStatus = "Rejected"
)

type ChargePointErrorCode string

const (
	ChargePointErrorCodeConnectorLockFailure ChargePointErrorCode = "ConnectorLockFailure"
	ChargePointErrorCodeEVCommunicationError ChargePointErrorCode = "EVCommunicationError"
	ChargePointErrorCodeGroundFailure        ChargePointErrorCode = "GroundFailure"
	ChargePointErrorCodeHighTemperature      ChargePointErrorCode = "HighTemperature"
	ChargePointErrorCodeInternalError        ChargePointErrorCode = "InternalError"
	ChargePointErrorCodeLocalListConflict    ChargePointErrorCode = "LocalListConflict"
	ChargePointErrorCodeNoError              ChargePointErrorCode = "NoError"
	ChargePointErrorCodeOtherError           ChargePointErrorCode = "OtherError"
	ChargePointErrorCodeOverCurrentFailure   ChargePointErrorCode = "OverCurrentFailure"
	ChargePointErrorCodeOverVoltage          ChargePointErrorCode = "OverVoltage"
	ChargePointErrorCodePowerMeterFailure    ChargePointErrorCode = "PowerMeterFailure"
	ChargePointErrorCodePowerSwitchFailure   ChargePointErrorCode = "PowerSwitchFailure"
	ChargePointErrorCodeReaderFailure        ChargePointErrorCode = "ReaderFailure"
	ChargePointErrorCodeResetFailure         ChargePointErrorCode = "ResetFailure"
	ChargePointErrorCodeUnderVoltage         ChargePointErrorCode = "UnderVoltage"
	ChargePointErrorCodeWeakSignal           ChargePointErrorCode = "WeakSignal"
)

type ChargePointStatus string

const (
	ChargePointStatusAvailable     ChargePointStatus = "Available"
	ChargePointStatusPreparing     ChargePointStatus = "Preparing"
	ChargePointStatusCharging      ChargePointStatus = "Charging"
	ChargePointStatusSuspendedEVSE ChargePointStatus = "SuspendedEVSE"
	ChargePointStatusSuspendedEV   ChargePointStatus = "SuspendedEV"
	ChargePointStatusFinishing     ChargePointStatus = "Finishing"
	ChargePointStatusReserved      ChargePointStatus = "Reserved"
	ChargePointStatusUnavailable   ChargePointStatus = "Unavailable"
	ChargePointStatusFaulted       ChargePointStatus = "Faulted"
)

type ChargingProfileKindType string

const (
	ChargingProfileKindAbsolute  ChargingProfileKindType = "Absolute"
	ChargingProfileKindRecurring ChargingProfileKindType = "Recurring"
	ChargingProfileKindRelative  ChargingProfileKindType = "Relative"
)

type ChargingProfilePurposeType string

const (
	ChargingProfilePurposeChargePointMaxProfile ChargingProfilePurposeType = "ChargePointMaxProfile"
	ChargingProfilePurposeTxDefaultProfile      ChargingProfilePurposeType = "TxDefaultProfile"
	ChargingProfilePurposeTxProfile             ChargingProfilePurposeType = "TxProfile"
)

type ChargingProfileStatus string

const (
	ChargingProfileStatusAccepted     ChargingProfileStatus = "Accepted"
	ChargingProfileStatusRejected     ChargingProfileStatus = "Rejected"
	ChargingProfileStatusNotSupported ChargingProfileStatus = "NotSupported"
)

type ChargingRateUnitType string

const (
	ChargingRateUnitW ChargingRateUnitType = "W"
	ChargingRateUnitA ChargingRateUnitType = "A"
)

type ClearCacheStatus string

const (
	ClearCacheStatusAccepted ClearCacheStatus = "Accepted"
	ClearCacheStatusRejected ClearCacheStatus = "Rejected"
)

type ClearChargingProfileStatus string

const (
	ClearChargingProfileStatusAccepted ClearChargingProfileStatus = "Accepted"
	ClearChargingProfileStatusUnknown  ClearChargingProfileStatus = "Unknown"
)

type ConfigurationStatus string

const (
	ConfigurationStatusAccepted       ConfigurationStatus = "Accepted"
	ConfigurationStatusRejected       ConfigurationStatus = "Rejected"
	ConfigurationStatusRebootRequired ConfigurationStatus = "RebootRequired"
	ConfigurationStatusNotSupported   ConfigurationStatus = "NotSupported"
)

type DataTransferStatus string

const (
	DataTransferStatusAccepted         DataTransferStatus = "Accepted"
	DataTransferStatusRejected         DataTransferStatus = "Rejected"
	DataTransferStatusUnknownMessageID DataTransferStatus = "UnknownMessageId"
	DataTransferStatusUnknownVendorID  DataTransferStatus = "UnknownVendorId"
)

type DiagnosticsStatus string

const (
	DiagnosticsStatusIdle         DiagnosticsStatus = "Idle"
	DiagnosticsStatusUploaded     DiagnosticsStatus = "Uploaded"
	DiagnosticsStatusUploadFailed DiagnosticsStatus = "UploadFailed"
	DiagnosticsStatusUploading    DiagnosticsStatus = "Uploading"
)

type FirmwareStatus string

const (
	FirmwareStatusDownloaded         FirmwareStatus = "Downloaded"
	FirmwareStatusDownloadFailed     FirmwareStatus = "DownloadFailed"
	FirmwareStatusDownloading        FirmwareStatus = "Downloading"
	FirmwareStatusIdle               FirmwareStatus = "Idle"
	FirmwareStatusInstallationFailed FirmwareStatus = "InstallationFailed"
	FirmwareStatusInstalling         FirmwareStatus = "Installing"
	FirmwareStatusInstalled          FirmwareStatus = "Installed"
)

type GetCompositeScheduleStatus string

const (
	GetCompositeScheduleStatusAccepted GetCompositeScheduleStatus = "Accepted"
	GetCompositeScheduleStatusRejected GetCompositeScheduleStatus = "Rejected"
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
	MeasurandEnergyReactiveExportInterval Measurand = "Energy.Reactive.Export.Interval"
	MeasurandEnergyReactiveImportInterval Measurand = "Energy.Reactive.Import.Interval"
	MeasurandPowerActiveExport            Measurand = "Power.Active.Export"
	MeasurandPowerActiveImport            Measurand = "Power.Active.Import"
	MeasurandPowerFactor                  Measurand = "Power.Factor"
	MeasurandPowerOffered                 Measurand = "Power.Offered"
	MeasurandPowerReactiveExport          Measurand = "Power.Reactive.Export"
	MeasurandPowerReactiveImport          Measurand = "Power.Reactive.Import"
	MeasurandRPM                          Measurand = "RPM"
	MeasurandSoC                          Measurand = "SoC"
	MeasurandTemperature                  Measurand = "Temperature"
	MeasurandVoltage                      Measurand = "Voltage"
)

type MessageTrigger string

const (
	MessageTriggerBootNotification              MessageTrigger = "BootNotification"
	MessageTriggerDiagnosticsStatusNotification MessageTrigger = "DiagnosticsStatusNotification"
	MessageTriggerFirmwareStatusNotification    MessageTrigger = "FirmwareStatusNotification"
	MessageTriggerHeartbeat                     MessageTrigger = "Heartbeat"
	MessageTriggerMeterValues                   MessageTrigger = "MeterValues"
	MessageTriggerStatusNotification            MessageTrigger = "StatusNotification"
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
	ReasonEmergencyStop  Reason = "EmergencyStop"
	ReasonEVDisconnected Reason = "EVDisconnected"
	ReasonHardReset      Reason = "HardReset"
	ReasonLocal          Reason = "Local"
	ReasonOther          Reason = "Other"
	ReasonPowerLoss      Reason = "PowerLoss"
	ReasonReboot         Reason = "Reboot"
	ReasonRemote         Reason = "Remote"
	ReasonSoftReset      Reason = "SoftReset"
	ReasonUnlockCommand  Reason = "UnlockCommand"
	ReasonDeAuthorized   Reason = "DeAuthorized"
)

type RecurrencyKindType string

const (
	RecurrencyKindDaily  RecurrencyKindType = "Daily"
	RecurrencyKindWeekly RecurrencyKindType = "Weekly"
)

type RegistrationStatus string

const (
	RegistrationStatusAccepted RegistrationStatus = "Accepted"
	RegistrationStatusPending  RegistrationStatus = "Pending"
	RegistrationStatusRejected RegistrationStatus = "Rejected"
)

type RemoteStartStopStatus string

const (
	RemoteStartStopStatusAccepted RemoteStartStopStatus = "Accepted"
	RemoteStartStopStatusRejected RemoteStartStopStatus = "Rejected"
)

type ReservationStatus string

const (
	ReservationStatusAccepted    ReservationStatus = "Accepted"
	ReservationStatusFaulted     ReservationStatus = "Faulted"
	ReservationStatusOccupied    ReservationStatus = "Occupied"
	ReservationStatusRejected    ReservationStatus = "Rejected"
	ReservationStatusUnavailable ReservationStatus = "Unavailable"
)

type ResetStatus string

const (
	ResetStatusAccepted ResetStatus = "Accepted"
	ResetStatusRejected ResetStatus = "Rejected"
)

type ResetType string

const (
	ResetTypeHard ResetType = "Hard"
	ResetTypeSoft ResetType = "Soft"
)

type TriggerMessageStatus string

const (
	TriggerMessageStatusAccepted       TriggerMessageStatus = "Accepted"
	TriggerMessageStatusRejected       TriggerMessageStatus = "Rejected"
	TriggerMessageStatusNotImplemented TriggerMessageStatus = "NotImplemented"
)

type UnitOfMeasure string

const (
	UnitWh         UnitOfMeasure = "Wh"
	UnitKWh        UnitOfMeasure = "kWh"
	UnitVarh       UnitOfMeasure = "varh"
	UnitKvarh      UnitOfMeasure = "kvarh"
	UnitW          UnitOfMeasure = "W"
	UnitKW         UnitOfMeasure = "kW"
	UnitVA         UnitOfMeasure = "VA"
	UnitKVA        UnitOfMeasure = "kVA"
	UnitVar        UnitOfMeasure = "var"
	UnitKvar       UnitOfMeasure = "kvar"
	UnitA          UnitOfMeasure = "A"
	UnitV          UnitOfMeasure = "V"
	UnitCelsius    UnitOfMeasure = "Celsius"
	UnitFahrenheit UnitOfMeasure = "Fahrenheit"
	UnitK          UnitOfMeasure = "K"
	UnitPercent    UnitOfMeasure = "Percent"
)

type UnlockStatus string

const (
	UnlockStatusUnlocked     UnlockStatus = "Unlocked"
	UnlockStatusUnlockFailed UnlockStatus = "UnlockFailed"
	UnlockStatusNotSupported UnlockStatus = "NotSupported"
)

type UpdateStatus string

const (
	UpdateStatusAccepted        UpdateStatus = "Accepted"
	UpdateStatusFailed          UpdateStatus = "Failed"
	UpdateStatusNotSupported    UpdateStatus = "NotSupported"
	UpdateStatusVersionMismatch UpdateStatus = "VersionMismatch"
)

type UpdateType string

const (
	UpdateTypeDifferential UpdateType = "Differential"
	UpdateTypeFull         UpdateType = "Full"
)

type ValueFormat string

const (
	ValueFormatRaw        ValueFormat = "Raw"
	ValueFormatSignedData ValueFormat = "SignedData"
)

var (
	authorizationStatusEnum = schema.NewEnumOf("AuthorizationStatus",
		AuthorizationStatusAccepted, AuthorizationStatusBlocked, AuthorizationStatusExpired,
		AuthorizationStatusInvalid, AuthorizationStatusConcurrentTx)
	availabilityStatusEnum = schema.NewEnumOf("AvailabilityStatus",
		AvailabilityStatusAccepted, AvailabilityStatusRejected, AvailabilityStatusScheduled)
	availabilityTypeEnum = schema.NewEnumOf("AvailabilityType",
		AvailabilityTypeInoperative, AvailabilityTypeOperative)
	cancelReservationStatusEnum = schema.NewEnumOf("CancelReservationStatus",
		CancelReservationStatusAccepted, CancelReservationStatusRejected)
	chargePointErrorCodeEnum = schema.NewEnumOf("ChargePointErrorCode",
		ChargePointErrorCodeConnectorLockFailure, ChargePointErrorCodeEVCommunicationError,
		ChargePointErrorCodeGroundFailure, ChargePointErrorCodeHighTemperature,
		ChargePointErrorCodeInternalError, ChargePointErrorCodeLocalListConflict,
		ChargePointErrorCodeNoError, ChargePointErrorCodeOtherError,
		ChargePointErrorCodeOverCurrentFailure, ChargePointErrorCodeOverVoltage,
		ChargePointErrorCodePowerMeterFailure, ChargePointErrorCodePowerSwitchFailure,
		ChargePointErrorCodeReaderFailure, ChargePointErrorCodeResetFailure,
		ChargePointErrorCodeUnderVoltage, ChargePointErrorCodeWeakSignal)
	chargePointStatusEnum = schema.NewEnumOf("ChargePointStatus",
		ChargePointStatusAvailable, ChargePointStatusPreparing, ChargePointStatusCharging,
		ChargePointStatusSuspendedEVSE, ChargePointStatusSuspendedEV, ChargePointStatusFinishing,
		ChargePointStatusReserved, ChargePointStatusUnavailable, ChargePointStatusFaulted)
	chargingProfileKindEnum = schema.NewEnumOf("ChargingProfileKindType",
		ChargingProfileKindAbsolute, ChargingProfileKindRecurring, ChargingProfileKindRelative)
	chargingProfilePurposeEnum = schema.NewEnumOf("ChargingProfilePurposeType",
		ChargingProfilePurposeChargePointMaxProfile, ChargingProfilePurposeTxDefaultProfile,
		ChargingProfilePurposeTxProfile)
	chargingProfileStatusEnum = schema.NewEnumOf("ChargingProfileStatus",
		ChargingProfileStatusAccepted, ChargingProfileStatusRejected, ChargingProfileStatusNotSupported)
	chargingRateUnitEnum = schema.NewEnumOf("ChargingRateUnitType",
		ChargingRateUnitW, ChargingRateUnitA)
	clearCacheStatusEnum = schema.NewEnumOf("ClearCacheStatus",
		ClearCacheStatusAccepted, ClearCacheStatusRejected)
	clearChargingProfileStatusEnum = schema.NewEnumOf("ClearChargingProfileStatus",
		ClearChargingProfileStatusAccepted, ClearChargingProfileStatusUnknown)
	configurationStatusEnum = schema.NewEnumOf("ConfigurationStatus",
		ConfigurationStatusAccepted, ConfigurationStatusRejected,
		ConfigurationStatusRebootRequired, ConfigurationStatusNotSupported)
	dataTransferStatusEnum = schema.NewEnumOf("DataTransferStatus",
		DataTransferStatusAccepted, DataTransferStatusRejected,
		DataTransferStatusUnknownMessageID, DataTransferStatusUnknownVendorID)
	diagnosticsStatusEnum = schema.NewEnumOf("DiagnosticsStatus",
		DiagnosticsStatusIdle, DiagnosticsStatusUploaded, DiagnosticsStatusUploadFailed,
		DiagnosticsStatusUploading)
	firmwareStatusEnum = schema.NewEnumOf("FirmwareStatus",
		FirmwareStatusDownloaded, FirmwareStatusDownloadFailed, FirmwareStatusDownloading,
		FirmwareStatusIdle, FirmwareStatusInstallationFailed, FirmwareStatusInstalling,
		FirmwareStatusInstalled)
	getCompositeScheduleStatusEnum = schema.NewEnumOf("GetCompositeScheduleStatus",
		GetCompositeScheduleStatusAccepted, GetCompositeScheduleStatusRejected)
	locationEnum = schema.NewEnumOf("Location",
		LocationBody, LocationCable, LocationEV, LocationInlet, LocationOutlet)
	measurandEnum = schema.NewEnumOf("Measurand",
		MeasurandCurrentExport, MeasurandCurrentImport, MeasurandCurrentOffered,
		MeasurandEnergyActiveExportRegister, MeasurandEnergyActiveImportRegister,
		MeasurandEnergyReactiveExportRegister, MeasurandEnergyReactiveImportRegister,
		MeasurandEnergyActiveExportInterval, MeasurandEnergyActiveImportInterval,
		MeasurandEnergyReactiveExportInterval, MeasurandEnergyReactiveImportInterval,
		MeasurandPowerActiveExport, MeasurandPowerActiveImport, MeasurandPowerFactor,
		MeasurandPowerOffered, MeasurandPowerReactiveExport, MeasurandPowerReactiveImport,
		MeasurandRPM, MeasurandSoC, MeasurandTemperature, MeasurandVoltage)
	messageTriggerEnum = schema.NewEnumOf("MessageTrigger",
		MessageTriggerBootNotification, MessageTriggerDiagnosticsStatusNotification,
		MessageTriggerFirmwareStatusNotification, MessageTriggerHeartbeat,
		MessageTriggerMeterValues, MessageTriggerStatusNotification)
	phaseEnum = schema.NewEnumOf("Phase",
		PhaseL1, PhaseL2, PhaseL3, PhaseN, PhaseL1N, PhaseL2N, PhaseL3N, PhaseL1L2, PhaseL2L3, PhaseL3L1)
	readingContextEnum = schema.NewEnumOf("ReadingContext",
		ReadingContextInterruptionBegin, ReadingContextInterruptionEnd, ReadingContextOther,
		ReadingContextSampleClock, ReadingContextSamplePeriodic, ReadingContextTransactionBegin,
		ReadingContextTransactionEnd, ReadingContextTrigger)
	reasonEnum = schema.NewEnumOf("Reason",
		ReasonEmergencyStop, ReasonEVDisconnected, ReasonHardReset, ReasonLocal, ReasonOther,
		ReasonPowerLoss, ReasonReboot, ReasonRemote, ReasonSoftReset, ReasonUnlockCommand,
		ReasonDeAuthorized)
	recurrencyKindEnum = schema.NewEnumOf("RecurrencyKindType",
		RecurrencyKindDaily, RecurrencyKindWeekly)
	registrationStatusEnum = schema.NewEnumOf("RegistrationStatus",
		RegistrationStatusAccepted, RegistrationStatusPending, RegistrationStatusRejected)
	remoteStartStopStatusEnum = schema.NewEnumOf("RemoteStartStopStatus",
		RemoteStartStopStatusAccepted, RemoteStartStopStatusRejected)
	reservationStatusEnum = schema.NewEnumOf("ReservationStatus",
		ReservationStatusAccepted, ReservationStatusFaulted, ReservationStatusOccupied,
		ReservationStatusRejected, ReservationStatusUnavailable)
	resetStatusEnum = schema.NewEnumOf("ResetStatus", ResetStatusAccepted, ResetStatusRejected)
	resetTypeEnum   = schema.NewEnumOf("ResetType", ResetTypeHard, ResetTypeSoft)
	triggerMessageStatusEnum = schema.NewEnumOf("TriggerMessageStatus",
		TriggerMessageStatusAccepted, TriggerMessageStatusRejected, TriggerMessageStatusNotImplemented)
	unitOfMeasureEnum = schema.NewEnumOf("UnitOfMeasure",
		UnitWh, UnitKWh, UnitVarh, UnitKvarh, UnitW, UnitKW, UnitVA, UnitKVA, UnitVar, UnitKvar,
		UnitA, UnitV, UnitCelsius, UnitFahrenheit, UnitK, UnitPercent)
	unlockStatusEnum = schema.NewEnumOf("UnlockStatus",
		UnlockStatusUnlocked, UnlockStatusUnlockFailed, UnlockStatusNotSupported)
	updateStatusEnum = schema.NewEnumOf("UpdateStatus",
		UpdateStatusAccepted, UpdateStatusFailed, UpdateStatusNotSupported, UpdateStatusVersionMismatch)
	updateTypeEnum  = schema.NewEnumOf("UpdateType", UpdateTypeDifferential, UpdateTypeFull)
	valueFormatEnum = schema.NewEnumOf("ValueFormat", ValueFormatRaw, ValueFormatSignedData)
)
