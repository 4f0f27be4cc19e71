// Package upstream defines the wire types of the external RC verification API
// and an HTTP client for it. RCData mirrors the provider's JSON exactly:
// nearly everything is a string, including dates, booleans, and numbers. That
// loosely-typed shape is confined to this package and the normalize package;
// it never reaches the repository layer.
package upstream

import "encoding/json"

// Envelope is the response wrapper the provider uses for both success and
// failure. Status=false carries a human-readable Message and no Data.
type Envelope struct {
	ReferenceID int64   `json:"reference_id,omitempty"`
	StatusCode  int     `json:"statuscode,omitempty"`
	Message     string  `json:"message"`
	Status      bool    `json:"status"`
	Data        *RCData `json:"data,omitempty"`
}

// RCData is the provider's vehicle payload. Dates are free-form strings and
// may be "", "N/A", or the literal "null"; tri-state booleans are "0"/"1"/
// "true"/"false"; numbers are numeric strings. ManufacturingDate uses a
// month-only "MM/YYYY" format. ChallanDetails is opaque JSON passed through
// without interpretation.
type RCData struct {
	RCNumber                   string          `json:"rc_number"`
	FitUpTo                    string          `json:"fit_up_to"`
	RegistrationDate           string          `json:"registration_date"`
	OwnerName                  string          `json:"owner_name"`
	FatherName                 string          `json:"father_name"`
	PresentAddress             string          `json:"present_address"`
	PermanentAddress           string          `json:"permanent_address"`
	MobileNumber               string          `json:"mobile_number"`
	VehicleCategory            string          `json:"vehicle_category"`
	VehicleChasiNumber         string          `json:"vehicle_chasi_number"`
	VehicleEngineNumber        string          `json:"vehicle_engine_number"`
	MakerDescription           string          `json:"maker_description"`
	MakerModel                 string          `json:"maker_model"`
	BodyType                   string          `json:"body_type"`
	FuelType                   string          `json:"fuel_type"`
	Color                      string          `json:"color"`
	NormsType                  string          `json:"norms_type"`
	Financer                   string          `json:"financer"`
	Financed                   string          `json:"financed"`
	InsuranceCompany           string          `json:"insurance_company"`
	InsurancePolicyNumber      string          `json:"insurance_policy_number"`
	InsuranceUpto              string          `json:"insurance_upto"`
	ManufacturingDate          string          `json:"manufacturing_date"`
	ManufacturingDateFormatted string          `json:"manufacturing_date_formatted"`
	RegisteredAt               string          `json:"registered_at"`
	LatestBy                   string          `json:"latest_by"`
	LessInfo                   bool            `json:"less_info"`
	TaxUpto                    string          `json:"tax_upto"`
	TaxPaidUpto                string          `json:"tax_paid_upto"`
	CubicCapacity              string          `json:"cubic_capacity"`
	VehicleGrossWeight         string          `json:"vehicle_gross_weight"`
	NoCylinders                string          `json:"no_cylinders"`
	SeatCapacity               string          `json:"seat_capacity"`
	SleeperCapacity            string          `json:"sleeper_capacity"`
	StandingCapacity           string          `json:"standing_capacity"`
	Wheelbase                  string          `json:"wheelbase"`
	UnladenWeight              string          `json:"unladen_weight"`
	VehicleCategoryDescription string          `json:"vehicle_category_description"`
	PuccNumber                 string          `json:"pucc_number"`
	PuccUpto                   string          `json:"pucc_upto"`
	PermitNumber               string          `json:"permit_number"`
	PermitIssueDate            string          `json:"permit_issue_date"`
	PermitValidFrom            string          `json:"permit_valid_from"`
	PermitValidUpto            string          `json:"permit_valid_upto"`
	PermitType                 string          `json:"permit_type"`
	NationalPermitNumber       string          `json:"national_permit_number"`
	NationalPermitIssueDate    string          `json:"national_permit_issue_date"`
	NationalPermitUpto         string          `json:"national_permit_upto"`
	NationalPermitIssuedBy     string          `json:"national_permit_issued_by"`
	NonUseStatus               string          `json:"non_use_status"`
	NonUseFrom                 string          `json:"non_use_from"`
	NonUseTo                   string          `json:"non_use_to"`
	BlacklistStatus            string          `json:"blacklist_status"`
	NocDetails                 string          `json:"noc_details"`
	OwnerNumber                string          `json:"owner_number"`
	RCStatus                   string          `json:"rc_status"`
	MaskedName                 bool            `json:"masked_name"`
	ChallanDetails             json.RawMessage `json:"challan_details"`
	Variant                    string          `json:"variant"`
}
