package v20

import (
	"time"

	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

var (
	t0 = time.Date(2013, 2, 1, 20, 53, 32, 486000000, time.UTC)
	t1 = time.Date(2019, 1, 30, 12, 30, 0, 0, time.UTC)
)

func sampleMeterValue() MeterValue {
	return MeterValue{
		Timestamp: t0,
		SampledValue: []SampledValue{
			{Value: decimal.RequireFromString("1234.567891")},
			{
				Value:     decimal.RequireFromString("230.5"),
				Context:   ptr(ReadingContextSampleClock),
				Measurand: ptr(MeasurandVoltage),
				Phase:     ptr(PhaseL2N),
				Location:  ptr(LocationInlet),
				SignedMeterValue: &SignedMeterValue{
					MeterValueSignature: "c2ln",
					SignatureMethod:     SignatureMethodECDSAP256SHA256,
					EncodingMethod:      EncodingMethodDLMSMessage,
					EncodedMeterValue:   "ZW5j",
				},
				UnitOfMeasure: ptr("V"),
			},
		},
	}
}

func sampleComponent() Component {
	return Component{Name: "OCPPCommCtrlr", Instance: ptr("main"), EVSE: &EVSE{ID: 1, ConnectorID: ptr(2)}}
}

// samples holds one valid request and response per action.
var samples = map[string][2]any{
	"Authorize": {
		AuthorizeRequest{
			IdToken: IdToken{
				IdToken:        "04E8960A1A3180",
				Type:           IdTokenISO14443,
				AdditionalInfo: []AdditionalInfo{{AdditionalIdToken: "contract:42", Type: "contract"}},
			},
			EvseID: []int{1, 2},
			CertificateHashData: []OCSPRequestData{{
				HashAlgorithm:  HashAlgorithmSHA256,
				IssuerNameHash: "abc123",
				IssuerKeyHash:  "def456",
				SerialNumber:   "0001",
				ResponderURL:   ptr("https://ocsp.example.org"),
			}},
		},
		AuthorizeResponse{
			IdTokenInfo: IdTokenInfo{
				Status:              AuthorizationStatusNotAtThisTime,
				CacheExpiryDateTime: ptr(t1),
				ChargingPriority:    ptr(-3),
				Language1:           ptr("en"),
				GroupIdToken:        &GroupIdToken{IdToken: "GROUP-1", Type: IdTokenCentral},
				PersonalMessage:     &MessageContent{Format: MessageFormatUTF8, Content: "Welcome", Language: ptr("en")},
			},
			CertificateStatus: ptr(CertificateStatusCertChainError),
			EvseID:            []int{1},
		},
	},
	"BootNotification": {
		BootNotificationRequest{
			Reason: BootReasonPowerUp,
			ChargingStation: ChargingStation{
				Model:           "SingleSocketCharger",
				VendorName:      "VendorX",
				SerialNumber:    ptr("SN-0001"),
				FirmwareVersion: ptr("2.0.1"),
				Modem:           &Modem{Iccid: ptr("8931440400000000001"), Imsi: ptr("204043000000000")},
			},
		},
		BootNotificationResponse{CurrentTime: t0, Interval: 300, Status: RegistrationStatusAccepted},
	},
	"ChangeAvailability": {
		ChangeAvailabilityRequest{EvseID: 0, OperationalStatus: OperationalStatusInoperative},
		ChangeAvailabilityResponse{Status: ChangeAvailabilityStatusScheduled},
	},
	"ClearCache": {
		ClearCacheRequest{},
		ClearCacheResponse{Status: ClearCacheStatusRejected},
	},
	"GetVariables": {
		GetVariablesRequest{GetVariableData: []GetVariableData{
			{Component: sampleComponent(), Variable: Variable{Name: "HeartbeatInterval"}, AttributeType: ptr(AttributeActual)},
			{Component: Component{Name: "AuthCtrlr"}, Variable: Variable{Name: "Enabled", Instance: ptr("1")}},
		}},
		GetVariablesResponse{GetVariableResult: []GetVariableResult{
			{AttributeStatus: GetVariableStatusAccepted, Component: sampleComponent(), Variable: Variable{Name: "HeartbeatInterval"}, AttributeValue: ptr("300")},
			{AttributeStatus: GetVariableStatusUnknownVariable, Component: Component{Name: "AuthCtrlr"}, Variable: Variable{Name: "Enabled"}, AttributeType: ptr(AttributeTarget)},
		}},
	},
	"Heartbeat": {
		HeartbeatRequest{},
		HeartbeatResponse{CurrentTime: t1},
	},
	"MeterValues": {
		MeterValuesRequest{EvseID: 1, MeterValue: []MeterValue{sampleMeterValue()}},
		MeterValuesResponse{},
	},
	"RequestStopTransaction": {
		RequestStopTransactionRequest{TransactionID: "tx-0001"},
		RequestStopTransactionResponse{Status: RequestStartStopStatusAccepted},
	},
	"Reset": {
		ResetRequest{Type: ResetOnIdle, EvseID: ptr(1)},
		ResetResponse{Status: ResetStatusScheduled},
	},
	"SetVariables": {
		SetVariablesRequest{SetVariableData: []SetVariableData{
			{AttributeValue: "600", Component: sampleComponent(), Variable: Variable{Name: "HeartbeatInterval"}, AttributeType: ptr(AttributeMaxSet)},
		}},
		SetVariablesResponse{SetVariableResult: []SetVariableResult{
			{AttributeStatus: SetVariableStatusRebootRequired, Component: sampleComponent(), Variable: Variable{Name: "HeartbeatInterval"}},
		}},
	},
	"StatusNotification": {
		StatusNotificationRequest{Timestamp: t0, ConnectorStatus: ConnectorStatusOccupied, EvseID: 1, ConnectorID: 1},
		StatusNotificationResponse{},
	},
	"TransactionEvent": {
		TransactionEventRequest{
			EventType:     TransactionEventEnded,
			Timestamp:     t1,
			TriggerReason: TriggerReasonStopAuthorized,
			SeqNo:         7,
			TransactionData: Transaction{
				ID:                "tx-0001",
				ChargingState:     ptr(ChargingStateSuspendedEV),
				TimeSpentCharging: ptr(3600),
				StoppedReason:     ptr(ReasonEVDisconnected),
				RemoteStartID:     ptr(99),
			},
			Offline:            ptr(true),
			NumberOfPhasesUsed: ptr(3),
			CableMaxCurrent:    ptr(decimal.RequireFromString("32.25")),
			ReservationID:      ptr(5),
			IdToken:            &IdToken{IdToken: "04E8960A1A3180", Type: IdTokenISO14443},
			EVSE:               &EVSE{ID: 1},
			MeterValue:         []MeterValue{sampleMeterValue()},
		},
		TransactionEventResponse{},
	},
	"UnlockConnector": {
		UnlockConnectorRequest{EvseID: 1, ConnectorID: 1},
		UnlockConnectorResponse{Status: UnlockStatusOngoingAuthorizedTransaction},
	},
}
