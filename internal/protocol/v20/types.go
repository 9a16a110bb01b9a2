package v20

import (
	"time"

	"github.com/shopspring/decimal"
)

type Modem struct {
	Iccid *string
	Imsi  *string
}

type ChargingStation struct {
	Model           string
	VendorName      string
	SerialNumber    *string
	FirmwareVersion *string
	Modem           *Modem
}

type AdditionalInfo struct {
	AdditionalIdToken string
	Type              string
}

type IdToken struct {
	IdToken        string
	Type           IdTokenKind
	AdditionalInfo []AdditionalInfo
}

// GroupIdToken is IdToken without additional info.
type GroupIdToken struct {
	IdToken string
	Type    IdTokenKind
}

type MessageContent struct {
	Format   MessageFormat
	Content  string
	Language *string
}

type IdTokenInfo struct {
	Status              AuthorizationStatus
	CacheExpiryDateTime *time.Time
	ChargingPriority    *int
	Language1           *string
	Language2           *string
	GroupIdToken        *GroupIdToken
	PersonalMessage     *MessageContent
}

type OCSPRequestData struct {
	HashAlgorithm  HashAlgorithm
	IssuerNameHash string
	IssuerKeyHash  string
	SerialNumber   string
	ResponderURL   *string
}

type EVSE struct {
	ID          int
	ConnectorID *int
}

type Component struct {
	Name     string
	Instance *string
	EVSE     *EVSE
}

type Variable struct {
	Name     string
	Instance *string
}

type GetVariableData struct {
	Component     Component
	Variable      Variable
	AttributeType *Attribute
}

type GetVariableResult struct {
	AttributeStatus GetVariableStatus
	Component       Component
	Variable        Variable
	AttributeType   *Attribute
	AttributeValue  *string
}

type SetVariableData struct {
	AttributeValue string
	Component      Component
	Variable       Variable
	AttributeType  *Attribute
}

type SetVariableResult struct {
	AttributeStatus SetVariableStatus
	Component       Component
	Variable        Variable
	AttributeType   *Attribute
}

type SignedMeterValue struct {
	MeterValueSignature string
	SignatureMethod     SignatureMethod
	EncodingMethod      EncodingMethod
	EncodedMeterValue   string
}

type SampledValue struct {
	Value            decimal.Decimal
	Context          *ReadingContext
	Measurand        *Measurand
	Phase            *Phase
	Location         *Location
	SignedMeterValue *SignedMeterValue
	UnitOfMeasure    *string
}

type MeterValue struct {
	Timestamp    time.Time
	SampledValue []SampledValue
}

type Transaction struct {
	ID                string
	ChargingState     *ChargingState
	TimeSpentCharging *int
	StoppedReason     *Reason
	RemoteStartID     *int
}
