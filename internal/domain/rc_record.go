// Package domain defines the persistence model for cached vehicle
// registration (RC) records. The type is mapped with GORM and forms the core
// data layer of the gateway's read-through cache.
package domain

import (
	"strings"
	"time"
)

// rcTableName is the table backing RCRecord. It defaults to "rc_details" and
// can be overridden at startup via SetRCTableName (RC_TABLE env).
var rcTableName = "rc_details"

// SetRCTableName overrides the table name used for RCRecord. Blank values are
// ignored. Call once during startup, before any query runs.
func SetRCTableName(name string) {
	if strings.TrimSpace(name) != "" {
		rcTableName = strings.TrimSpace(name)
	}
}

// RCRecord is one cached registration lookup, keyed by the registration
// number exactly as supplied (case-sensitive). Every attribute column is
// independently nullable: the upstream API omits or mangles fields freely,
// and the normalizer maps anything unusable to NULL rather than failing.
//
// Value classes:
//   - calendar dates (*time.Time): registration, insurance, tax, permits …
//   - month-only date: ManufacturingDate keeps the raw "MM/YYYY" string while
//     ManufacturingDateFormatted holds the normalized first-of-month date
//   - tri-state booleans (*int, 0/1/NULL): Financed, LessInfo
//   - true boolean (*bool): MaskedName
//   - numerics (*int64 / *float64): weights, capacities, cylinder counts
//   - opaque passthrough (*string holding raw JSON): ChallanDetails
type RCRecord struct {
	RCNumber string `json:"rc_number" gorm:"column:rc_number;type:varchar(32);primaryKey"`

	FitUpTo          *time.Time `json:"fit_up_to"         gorm:"column:fit_up_to"`
	RegistrationDate *time.Time `json:"registration_date" gorm:"column:registration_date"`

	OwnerName        *string `json:"owner_name"        gorm:"column:owner_name;type:varchar(255)"`
	FatherName       *string `json:"father_name"       gorm:"column:father_name;type:varchar(255)"`
	PresentAddress   *string `json:"present_address"   gorm:"column:present_address;type:text"`
	PermanentAddress *string `json:"permanent_address" gorm:"column:permanent_address;type:text"`
	MobileNumber     *string `json:"mobile_number"     gorm:"column:mobile_number;type:varchar(32)"`

	VehicleCategory     *string `json:"vehicle_category"      gorm:"column:vehicle_category;type:varchar(64)"`
	VehicleChasiNumber  *string `json:"vehicle_chasi_number"  gorm:"column:vehicle_chasi_number;type:varchar(64)"`
	VehicleEngineNumber *string `json:"vehicle_engine_number" gorm:"column:vehicle_engine_number;type:varchar(64)"`
	MakerDescription    *string `json:"maker_description"     gorm:"column:maker_description;type:varchar(255)"`
	MakerModel          *string `json:"maker_model"           gorm:"column:maker_model;type:varchar(255)"`
	BodyType            *string `json:"body_type"             gorm:"column:body_type;type:varchar(64)"`
	FuelType            *string `json:"fuel_type"             gorm:"column:fuel_type;type:varchar(32)"`
	Color               *string `json:"color"                 gorm:"column:color;type:varchar(64)"`
	NormsType           *string `json:"norms_type"            gorm:"column:norms_type;type:varchar(64)"`

	Financer *string `json:"financer" gorm:"column:financer;type:varchar(255)"`
	Financed *int    `json:"financed" gorm:"column:financed;type:tinyint"`

	InsuranceCompany      *string    `json:"insurance_company"       gorm:"column:insurance_company;type:varchar(255)"`
	InsurancePolicyNumber *string    `json:"insurance_policy_number" gorm:"column:insurance_policy_number;type:varchar(64)"`
	InsuranceUpto         *time.Time `json:"insurance_upto"          gorm:"column:insurance_upto"`

	ManufacturingDate          *string    `json:"manufacturing_date"           gorm:"column:manufacturing_date;type:varchar(16)"`
	ManufacturingDateFormatted *time.Time `json:"manufacturing_date_formatted" gorm:"column:manufacturing_date_formatted"`

	RegisteredAt *string    `json:"registered_at" gorm:"column:registered_at;type:varchar(255)"`
	LatestBy     *time.Time `json:"latest_by"     gorm:"column:latest_by"`
	LessInfo     *int       `json:"less_info"     gorm:"column:less_info;type:tinyint"`

	TaxUpto     *time.Time `json:"tax_upto"      gorm:"column:tax_upto"`
	TaxPaidUpto *time.Time `json:"tax_paid_upto" gorm:"column:tax_paid_upto"`

	CubicCapacity      *float64 `json:"cubic_capacity"       gorm:"column:cubic_capacity"`
	VehicleGrossWeight *int64   `json:"vehicle_gross_weight" gorm:"column:vehicle_gross_weight"`
	NoCylinders        *int64   `json:"no_cylinders"         gorm:"column:no_cylinders"`
	SeatCapacity       *int64   `json:"seat_capacity"        gorm:"column:seat_capacity"`
	SleeperCapacity    *int64   `json:"sleeper_capacity"     gorm:"column:sleeper_capacity"`
	StandingCapacity   *int64   `json:"standing_capacity"    gorm:"column:standing_capacity"`
	Wheelbase          *int64   `json:"wheelbase"            gorm:"column:wheelbase"`
	UnladenWeight      *int64   `json:"unladen_weight"       gorm:"column:unladen_weight"`

	VehicleCategoryDescription *string `json:"vehicle_category_description" gorm:"column:vehicle_category_description;type:varchar(255)"`

	PuccNumber *string    `json:"pucc_number" gorm:"column:pucc_number;type:varchar(64)"`
	PuccUpto   *time.Time `json:"pucc_upto"   gorm:"column:pucc_upto"`

	PermitNumber    *string    `json:"permit_number"     gorm:"column:permit_number;type:varchar(64)"`
	PermitIssueDate *time.Time `json:"permit_issue_date" gorm:"column:permit_issue_date"`
	PermitValidFrom *time.Time `json:"permit_valid_from" gorm:"column:permit_valid_from"`
	PermitValidUpto *time.Time `json:"permit_valid_upto" gorm:"column:permit_valid_upto"`
	PermitType      *string    `json:"permit_type"       gorm:"column:permit_type;type:varchar(64)"`

	NationalPermitNumber    *string    `json:"national_permit_number"     gorm:"column:national_permit_number;type:varchar(64)"`
	NationalPermitIssueDate *time.Time `json:"national_permit_issue_date" gorm:"column:national_permit_issue_date"`
	NationalPermitUpto      *time.Time `json:"national_permit_upto"       gorm:"column:national_permit_upto"`
	NationalPermitIssuedBy  *string    `json:"national_permit_issued_by"  gorm:"column:national_permit_issued_by;type:varchar(255)"`

	NonUseStatus *string    `json:"non_use_status" gorm:"column:non_use_status;type:varchar(64)"`
	NonUseFrom   *time.Time `json:"non_use_from"   gorm:"column:non_use_from"`
	NonUseTo     *time.Time `json:"non_use_to"     gorm:"column:non_use_to"`

	BlacklistStatus *string `json:"blacklist_status" gorm:"column:blacklist_status;type:varchar(64)"`
	NocDetails      *string `json:"noc_details"      gorm:"column:noc_details;type:text"`
	OwnerNumber     *int64  `json:"owner_number"     gorm:"column:owner_number"`
	RCStatus        *string `json:"rc_status"        gorm:"column:rc_status;type:varchar(64)"`
	MaskedName      *bool   `json:"masked_name"      gorm:"column:masked_name"`

	// ChallanDetails is stored verbatim as the raw JSON text the upstream
	// returned. The cache never interprets it.
	ChallanDetails *string `json:"challan_details" gorm:"column:challan_details;type:text"`

	Variant *string `json:"variant" gorm:"column:variant;type:varchar(255)"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the database table name for RCRecord.
func (RCRecord) TableName() string { return rcTableName }
