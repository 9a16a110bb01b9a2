package v16

import (
	"time"

	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

var (
	t0 = time.Date(2013, 2, 1, 20, 53, 32, 486000000, time.UTC)
	t1 = time.Date(2019, 1, 30, 12, 30, 0, 0, time.UTC)
)

func sampleProfile() ChargingProfile {
	return ChargingProfile{
		ChargingProfileID:      7,
		StackLevel:             0,
		ChargingProfilePurpose: ChargingProfilePurposeTxProfile,
		ChargingProfileKind:    ChargingProfileKindRecurring,
		ChargingSchedule: ChargingSchedule{
			ChargingRateUnit: ChargingRateUnitA,
			ChargingSchedulePeriod: []ChargingSchedulePeriod{
				{StartPeriod: 0, Limit: decimal.RequireFromString("16.5"), NumberPhases: ptr(3)},
				{StartPeriod: 3600, Limit: decimal.RequireFromString("8")},
			},
			Duration:        ptr(7200),
			StartSchedule:   ptr(t1),
			MinChargingRate: ptr(decimal.RequireFromString("6.1")),
		},
		TransactionID:  ptr(42),
		RecurrencyKind: ptr(RecurrencyKindDaily),
		ValidFrom:      ptr(t0),
		ValidTo:        ptr(t1),
	}
}

func sampleMeterValue() MeterValue {
	return MeterValue{
		Timestamp: t0,
		SampledValue: []SampledValue{
			{Value: "1234.5"},
			{
				Value:     "230",
				Context:   ptr(ReadingContextSamplePeriodic),
				Format:    ptr(ValueFormatRaw),
				Measurand: ptr(MeasurandVoltage),
				Phase:     ptr(PhaseL1N),
				Location:  ptr(LocationOutlet),
				Unit:      ptr(UnitV),
			},
		},
	}
}

// samples holds one valid request and response per action.
var samples = map[string][2]any{
	"Authorize": {
		AuthorizeRequest{IdTag: "B4F62CEF"},
		AuthorizeResponse{IdTagInfo: IdTagInfo{Status: AuthorizationStatusAccepted, ExpiryDate: ptr(t1), ParentIdTag: ptr("PARENT")}},
	},
	"BootNotification": {
		BootNotificationRequest{ChargePointModel: "Model", ChargePointVendor: "Vendor", FirmwareVersion: ptr("1.0.2"), Iccid: ptr("8931")},
		BootNotificationResponse{CurrentTime: t0, Interval: 300, Status: RegistrationStatusAccepted},
	},
	"CancelReservation": {
		CancelReservationRequest{ReservationID: 12},
		CancelReservationResponse{Status: CancelReservationStatusRejected},
	},
	"ChangeAvailability": {
		ChangeAvailabilityRequest{ConnectorID: 0, Type: AvailabilityTypeInoperative},
		ChangeAvailabilityResponse{Status: AvailabilityStatusScheduled},
	},
	"ChangeConfiguration": {
		ChangeConfigurationRequest{Key: "HeartbeatInterval", Value: "600"},
		ChangeConfigurationResponse{Status: ConfigurationStatusRebootRequired},
	},
	"ClearCache": {
		ClearCacheRequest{},
		ClearCacheResponse{Status: ClearCacheStatusAccepted},
	},
	"ClearChargingProfile": {
		ClearChargingProfileRequest{ID: ptr(7), ChargingProfilePurpose: ptr(ChargingProfilePurposeTxDefaultProfile)},
		ClearChargingProfileResponse{Status: ClearChargingProfileStatusUnknown},
	},
	"DataTransfer": {
		DataTransferRequest{VendorID: "com.example", MessageID: ptr("ping"), Data: ptr(`{"a":1}`)},
		DataTransferResponse{Status: DataTransferStatusUnknownVendorID},
	},
	"DiagnosticsStatusNotification": {
		DiagnosticsStatusNotificationRequest{Status: DiagnosticsStatusUploading},
		DiagnosticsStatusNotificationResponse{},
	},
	"FirmwareStatusNotification": {
		FirmwareStatusNotificationRequest{Status: FirmwareStatusInstallationFailed},
		FirmwareStatusNotificationResponse{},
	},
	"GetCompositeSchedule": {
		GetCompositeScheduleRequest{ConnectorID: 1, Duration: 3600, ChargingRateUnit: ptr(ChargingRateUnitW)},
		GetCompositeScheduleResponse{
			Status:           GetCompositeScheduleStatusAccepted,
			ConnectorID:      ptr(1),
			ScheduleStart:    ptr(t0),
			ChargingSchedule: ptr(sampleProfile().ChargingSchedule),
		},
	},
	"GetConfiguration": {
		GetConfigurationRequest{Key: []string{"HeartbeatInterval", "Bogus"}},
		GetConfigurationResponse{
			ConfigurationKey: []KeyValue{{Key: "HeartbeatInterval", Readonly: false, Value: ptr("600")}, {Key: "NumberOfConnectors", Readonly: true}},
			UnknownKey:       []string{"Bogus"},
		},
	},
	"GetDiagnostics": {
		GetDiagnosticsRequest{Location: "ftp://example.org/diag", Retries: ptr(3), RetryInterval: ptr(60), StartTime: ptr(t0), StopTime: ptr(t1)},
		GetDiagnosticsResponse{FileName: ptr("diag-2019.tar.gz")},
	},
	"GetLocalListVersion": {
		GetLocalListVersionRequest{},
		GetLocalListVersionResponse{ListVersion: -1},
	},
	"Heartbeat": {
		HeartbeatRequest{},
		HeartbeatResponse{CurrentTime: t0},
	},
	"MeterValues": {
		MeterValuesRequest{ConnectorID: 1, MeterValue: []MeterValue{sampleMeterValue()}, TransactionID: ptr(42)},
		MeterValuesResponse{},
	},
	"RemoteStartTransaction": {
		RemoteStartTransactionRequest{IdTag: "B4F62CEF", ConnectorID: ptr(1), ChargingProfile: ptr(sampleProfile())},
		RemoteStartTransactionResponse{Status: RemoteStartStopStatusAccepted},
	},
	"RemoteStopTransaction": {
		RemoteStopTransactionRequest{TransactionID: 42},
		RemoteStopTransactionResponse{Status: RemoteStartStopStatusRejected},
	},
	"ReserveNow": {
		ReserveNowRequest{ConnectorID: 2, ExpiryDate: t1, IdTag: "B4F62CEF", ReservationID: 12, ParentIdTag: ptr("PARENT")},
		ReserveNowResponse{Status: ReservationStatusOccupied},
	},
	"Reset": {
		ResetRequest{Type: ResetTypeSoft},
		ResetResponse{Status: ResetStatusAccepted},
	},
	"SendLocalList": {
		SendLocalListRequest{
			ListVersion: 3,
			UpdateType:  UpdateTypeDifferential,
			LocalAuthorizationList: []AuthorizationData{
				{IdTag: "A"},
				{IdTag: "B", IdTagInfo: &IdTagInfo{Status: AuthorizationStatusBlocked}},
			},
		},
		SendLocalListResponse{Status: UpdateStatusVersionMismatch},
	},
	"SetChargingProfile": {
		SetChargingProfileRequest{ConnectorID: 1, CsChargingProfiles: sampleProfile()},
		SetChargingProfileResponse{Status: ChargingProfileStatusNotSupported},
	},
	"StartTransaction": {
		StartTransactionRequest{ConnectorID: 1, IdTag: "B4F62CEF", MeterStart: 1000, Timestamp: t0, ReservationID: ptr(12)},
		StartTransactionResponse{IdTagInfo: IdTagInfo{Status: AuthorizationStatusConcurrentTx}, TransactionID: 42},
	},
	"StatusNotification": {
		StatusNotificationRequest{
			ConnectorID:     1,
			ErrorCode:       ChargePointErrorCodeNoError,
			Status:          ChargePointStatusSuspendedEVSE,
			Info:            ptr("cooling"),
			Timestamp:       ptr(t0),
			VendorID:        ptr("com.example"),
			VendorErrorCode: ptr("E42"),
		},
		StatusNotificationResponse{},
	},
	"StopTransaction": {
		StopTransactionRequest{
			MeterStop:       2000,
			Timestamp:       t1,
			TransactionID:   42,
			IdTag:           ptr("B4F62CEF"),
			Reason:          ptr(ReasonEVDisconnected),
			TransactionData: []MeterValue{sampleMeterValue(), sampleMeterValue()},
		},
		StopTransactionResponse{IdTagInfo: &IdTagInfo{Status: AuthorizationStatusExpired}},
	},
	"TriggerMessage": {
		TriggerMessageRequest{RequestedMessage: MessageTriggerStatusNotification, ConnectorID: ptr(2)},
		TriggerMessageResponse{Status: TriggerMessageStatusNotImplemented},
	},
	"UnlockConnector": {
		UnlockConnectorRequest{ConnectorID: 1},
		UnlockConnectorResponse{Status: UnlockStatusUnlockFailed},
	},
	"UpdateFirmware": {
		UpdateFirmwareRequest{Location: "https://example.org/fw.bin", RetrieveDate: t1, Retries: ptr(2)},
		UpdateFirmwareResponse{},
	},
}
