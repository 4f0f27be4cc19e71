package normalize

import (
	"encoding/json"

	"github.com/rtolink/go-rc-gateway/internal/domain"
	"github.com/rtolink/go-rc-gateway/internal/upstream"
)

// ToRecord converts an upstream payload into the internal storage shape.
// Timestamps (CreatedAt/UpdatedAt) are left zero; the store maintains them.
func ToRecord(d *upstream.RCData) *domain.RCRecord {
	mfgRaw, mfgNorm := MonthDate(d.ManufacturingDate)

	rec := &domain.RCRecord{
		RCNumber:         d.RCNumber,
		FitUpTo:          Date(d.FitUpTo),
		RegistrationDate: Date(d.RegistrationDate),
		OwnerName:        Str(d.OwnerName),
		FatherName:       Str(d.FatherName),
		PresentAddress:   Str(d.PresentAddress),
		PermanentAddress: Str(d.PermanentAddress),
		MobileNumber:     Str(d.MobileNumber),

		VehicleCategory:     Str(d.VehicleCategory),
		VehicleChasiNumber:  Str(d.VehicleChasiNumber),
		VehicleEngineNumber: Str(d.VehicleEngineNumber),
		MakerDescription:    Str(d.MakerDescription),
		MakerModel:          Str(d.MakerModel),
		BodyType:            Str(d.BodyType),
		FuelType:            Str(d.FuelType),
		Color:               Str(d.Color),
		NormsType:           Str(d.NormsType),

		Financer: Str(d.Financer),
		Financed: TriStateBool(d.Financed),

		InsuranceCompany:      Str(d.InsuranceCompany),
		InsurancePolicyNumber: Str(d.InsurancePolicyNumber),
		InsuranceUpto:         Date(d.InsuranceUpto),

		ManufacturingDate:          mfgRaw,
		ManufacturingDateFormatted: mfgNorm,

		RegisteredAt: Str(d.RegisteredAt),
		LatestBy:     Date(d.LatestBy),
		LessInfo:     boolToTriState(d.LessInfo),

		TaxUpto:     Date(d.TaxUpto),
		TaxPaidUpto: Date(d.TaxPaidUpto),

		CubicCapacity:      Float(d.CubicCapacity),
		VehicleGrossWeight: Int(d.VehicleGrossWeight),
		NoCylinders:        Int(d.NoCylinders),
		SeatCapacity:       Int(d.SeatCapacity),
		SleeperCapacity:    Int(d.SleeperCapacity),
		StandingCapacity:   Int(d.StandingCapacity),
		Wheelbase:          Int(d.Wheelbase),
		UnladenWeight:      Int(d.UnladenWeight),

		VehicleCategoryDescription: Str(d.VehicleCategoryDescription),

		PuccNumber: Str(d.PuccNumber),
		PuccUpto:   Date(d.PuccUpto),

		PermitNumber:    Str(d.PermitNumber),
		PermitIssueDate: Date(d.PermitIssueDate),
		PermitValidFrom: Date(d.PermitValidFrom),
		PermitValidUpto: Date(d.PermitValidUpto),
		PermitType:      Str(d.PermitType),

		NationalPermitNumber:    Str(d.NationalPermitNumber),
		NationalPermitIssueDate: Date(d.NationalPermitIssueDate),
		NationalPermitUpto:      Date(d.NationalPermitUpto),
		NationalPermitIssuedBy:  Str(d.NationalPermitIssuedBy),

		NonUseStatus: Str(d.NonUseStatus),
		NonUseFrom:   Date(d.NonUseFrom),
		NonUseTo:     Date(d.NonUseTo),

		BlacklistStatus: Str(d.BlacklistStatus),
		NocDetails:      Str(d.NocDetails),
		OwnerNumber:     Int(d.OwnerNumber),
		RCStatus:        Str(d.RCStatus),

		Variant: Str(d.Variant),
	}

	// masked_name is a true boolean upstream; only an affirmative value is
	// material, so false stores as absent (it renders false outbound either way).
	if d.MaskedName {
		v := true
		rec.MaskedName = &v
	}

	// Opaque passthrough: keep the raw JSON text, treating JSON null as absent.
	if len(d.ChallanDetails) > 0 && string(d.ChallanDetails) != "null" {
		s := string(d.ChallanDetails)
		rec.ChallanDetails = &s
	}

	return rec
}

// ToData converts a stored record back to the upstream wire shape. Absent
// dates, strings, and numbers render as empty strings; absent true-booleans
// render as false; ChallanDetails passes through unchanged.
func ToData(rec *domain.RCRecord) *upstream.RCData {
	d := &upstream.RCData{
		RCNumber:         rec.RCNumber,
		FitUpTo:          DateString(rec.FitUpTo),
		RegistrationDate: DateString(rec.RegistrationDate),
		OwnerName:        StrString(rec.OwnerName),
		FatherName:       StrString(rec.FatherName),
		PresentAddress:   StrString(rec.PresentAddress),
		PermanentAddress: StrString(rec.PermanentAddress),
		MobileNumber:     StrString(rec.MobileNumber),

		VehicleCategory:     StrString(rec.VehicleCategory),
		VehicleChasiNumber:  StrString(rec.VehicleChasiNumber),
		VehicleEngineNumber: StrString(rec.VehicleEngineNumber),
		MakerDescription:    StrString(rec.MakerDescription),
		MakerModel:          StrString(rec.MakerModel),
		BodyType:            StrString(rec.BodyType),
		FuelType:            StrString(rec.FuelType),
		Color:               StrString(rec.Color),
		NormsType:           StrString(rec.NormsType),

		Financer: StrString(rec.Financer),
		Financed: TriStateBoolString(rec.Financed),

		InsuranceCompany:      StrString(rec.InsuranceCompany),
		InsurancePolicyNumber: StrString(rec.InsurancePolicyNumber),
		InsuranceUpto:         DateString(rec.InsuranceUpto),

		ManufacturingDate:          StrString(rec.ManufacturingDate),
		ManufacturingDateFormatted: DateString(rec.ManufacturingDateFormatted),

		RegisteredAt: StrString(rec.RegisteredAt),
		LatestBy:     DateString(rec.LatestBy),
		LessInfo:     rec.LessInfo != nil && *rec.LessInfo == 1,

		TaxUpto:     DateString(rec.TaxUpto),
		TaxPaidUpto: DateString(rec.TaxPaidUpto),

		CubicCapacity:      FloatString(rec.CubicCapacity),
		VehicleGrossWeight: IntString(rec.VehicleGrossWeight),
		NoCylinders:        IntString(rec.NoCylinders),
		SeatCapacity:       IntString(rec.SeatCapacity),
		SleeperCapacity:    IntString(rec.SleeperCapacity),
		StandingCapacity:   IntString(rec.StandingCapacity),
		Wheelbase:          IntString(rec.Wheelbase),
		UnladenWeight:      IntString(rec.UnladenWeight),

		VehicleCategoryDescription: StrString(rec.VehicleCategoryDescription),

		PuccNumber: StrString(rec.PuccNumber),
		PuccUpto:   DateString(rec.PuccUpto),

		PermitNumber:    StrString(rec.PermitNumber),
		PermitIssueDate: DateString(rec.PermitIssueDate),
		PermitValidFrom: DateString(rec.PermitValidFrom),
		PermitValidUpto: DateString(rec.PermitValidUpto),
		PermitType:      StrString(rec.PermitType),

		NationalPermitNumber:    StrString(rec.NationalPermitNumber),
		NationalPermitIssueDate: DateString(rec.NationalPermitIssueDate),
		NationalPermitUpto:      DateString(rec.NationalPermitUpto),
		NationalPermitIssuedBy:  StrString(rec.NationalPermitIssuedBy),

		NonUseStatus: StrString(rec.NonUseStatus),
		NonUseFrom:   DateString(rec.NonUseFrom),
		NonUseTo:     DateString(rec.NonUseTo),

		BlacklistStatus: StrString(rec.BlacklistStatus),
		NocDetails:      StrString(rec.NocDetails),
		OwnerNumber:     IntString(rec.OwnerNumber),
		RCStatus:        StrString(rec.RCStatus),
		MaskedName:      rec.MaskedName != nil && *rec.MaskedName,

		Variant: StrString(rec.Variant),
	}

	if rec.ChallanDetails != nil {
		d.ChallanDetails = json.RawMessage(*rec.ChallanDetails)
	}

	return d
}

// boolToTriState stores a true boolean in the nullable 0/1 column form used
// for less_info.
func boolToTriState(b bool) *int {
	v := 0
	if b {
		v = 1
	}
	return &v
}
