package v16

import (
	"time"

	"github.com/shopspring/decimal"
)

type IdTagInfo struct {
	Status      AuthorizationStatus
	ExpiryDate  *time.Time
	ParentIdTag *string
}

type AuthorizationData struct {
	IdTag     string
	IdTagInfo *IdTagInfo
}

type ChargingSchedulePeriod struct {
	StartPeriod  int
	Limit        decimal.Decimal
	NumberPhases *int
}

type ChargingSchedule struct {
	ChargingRateUnit       ChargingRateUnitType
	ChargingSchedulePeriod []ChargingSchedulePeriod
	Duration               *int
	StartSchedule          *time.Time
	MinChargingRate        *decimal.Decimal
}

type ChargingProfile struct {
	ChargingProfileID      int
	StackLevel             int
	ChargingProfilePurpose ChargingProfilePurposeType
	ChargingProfileKind    ChargingProfileKindType
	ChargingSchedule       ChargingSchedule
	TransactionID          *int
	RecurrencyKind         *RecurrencyKindType
	ValidFrom              *time.Time
	ValidTo                *time.Time
}

// KeyValue is one configuration entry reported by GetConfiguration.
type KeyValue struct {
	Key      string
	Readonly bool
	Value    *string
}

type SampledValue struct {
	Value     string
	Context   *ReadingContext
	Format    *ValueFormat
	Measurand *Measurand
	Phase     *Phase
	Location  *Location
	Unit      *UnitOfMeasure
}

type MeterValue struct {
	Timestamp    time.Time
	SampledValue []SampledValue
}
