package codec

import (
	"time"
)

// NMRDetails is the H1 record
type NMRDetails struct {
	Header
	NMRCounty        int             `json:"nmrCounty"`
	NMROffice        int             `json:"nmrOffice"`
	RecordingScheme  RecordingScheme `json:"recordingScheme"`
	WeighingSequence int             `json:"weighingSequence"`
	LastWeighNumber  int             `json:"lastWeighNumber"`
	NationalHerdMark int             `json:"nationalHerdMark"`
	PredominantBreed int             `json:"predominantBreed"`
	HerdPrefix       string          `json:"herdPrefix"`
	EnrolDate        time.Time       `json:"enrolDate"`
}

var nmrDetailsLayout = struct {
	County, Office, Scheme, Sequence, LastWeigh, HerdMark, Breed, Prefix, Enrol Field
}{
	County:    NewField(3, 2),
	Office:    NewField(6, 2),
	Scheme:    NewField(9, 2),
	Sequence:  NewField(12, 2),
	LastWeigh: NewField(15, 2),
	HerdMark:  NewField(33, 5),
	Breed:     NewField(39, 2),
	Prefix:    NewField(42, 20),
	Enrol:     NewField(63, 6),
}

func decodeNMRDetails(h Header, r *fieldReader) Record {
	l := &nmrDetailsLayout
	return &NMRDetails{
		Header:           h,
		NMRCounty:        r.int(l.County),
		NMROffice:        r.int(l.Office),
		RecordingScheme:  readIntEnum[RecordingScheme](r, l.Scheme),
		WeighingSequence: r.int(l.Sequence),
		LastWeighNumber:  r.int(l.LastWeigh),
		NationalHerdMark: r.int(l.HerdMark),
		PredominantBreed: r.int(l.Breed),
		HerdPrefix:       r.text(l.Prefix),
		EnrolDate:        r.date(l.Enrol),
	}
}

// AddressRecord is one of the five address lines H2 to H6
type AddressRecord struct {
	Header
	Content string `json:"content"`
}

var addressContent = NewField(3, 35)

func decodeAddress(h Header, r *fieldReader) Record {
	return &AddressRecord{Header: h, Content: r.text(addressContent)}
}

// PrivateRecord holds the opaque content of private-use records
type PrivateRecord struct {
	Header
	Content string `json:"content"`
}

var privateContent = NewField(3, 68)

func decodePrivate(h Header, r *fieldReader) Record {
	return &PrivateRecord{Header: h, Content: r.text(privateContent)}
}

// ServiceIndicators is the H7 record
type ServiceIndicators struct {
	Header
	County                string          `json:"county"`
	Postcode              string          `json:"postcode"`
	ServiceType           ServiceType     `json:"serviceType"`
	IsProgenyTesting      bool            `json:"isProgenyTesting"`
	IsLifetimeYieldMember bool            `json:"isLifetimeYieldMember"`
	CowCardPrinting       CowCardPrinting `json:"cowCardPrinting"`
	CalfCropListCycle     int             `json:"calfCropListCycle"`
}

var serviceIndicatorsLayout = struct {
	County, Postcode, ServiceType, Progeny, Lifetime, CowCard, CalfCrop Field
}{
	County:      NewField(3, 25),
	Postcode:    NewField(29, 8),
	ServiceType: NewField(52, 1),
	Progeny:     NewField(54, 1),
	Lifetime:    NewField(56, 1),
	CowCard:     NewField(64, 1),
	CalfCrop:    NewField(66, 1),
}

func decodeServiceIndicators(h Header, r *fieldReader) Record {
	l := &serviceIndicatorsLayout
	return &ServiceIndicators{
		Header:                h,
		County:                r.text(l.County),
		Postcode:              r.text(l.Postcode),
		ServiceType:           readStringEnum[ServiceType](r, l.ServiceType),
		IsProgenyTesting:      r.flag(l.Progeny),
		IsLifetimeYieldMember: r.flag(l.Lifetime),
		CowCardPrinting:       readIntEnum[CowCardPrinting](r, l.CowCard),
		CalfCropListCycle:     r.int(l.CalfCrop),
	}
}

// ServiceIndicatorsContinued is the H8 record
type ServiceIndicatorsContinued struct {
	Header
	IsHerdwatchMember   bool                `json:"isHerdwatchMember"`
	CellCountMembership CellCountMembership `json:"cellCountMembership"`
}

var serviceIndicatorsContinuedLayout = struct {
	Herdwatch, CellCount Field
}{
	Herdwatch: NewField(3, 1),
	CellCount: NewField(49, 1),
}

func decodeServiceIndicatorsContinued(h Header, r *fieldReader) Record {
	l := &serviceIndicatorsContinuedLayout
	return &ServiceIndicatorsContinued{
		Header:              h,
		IsHerdwatchMember:   r.flag(l.Herdwatch),
		CellCountMembership: readIntEnum[CellCountMembership](r, l.CellCount),
	}
}

// RecordingPart1 is the HD record: herd totals for one recording
type RecordingPart1 struct {
	Header
	RecordingDate    time.Time      `json:"recordingDate"`
	WeighingSequence int            `json:"weighingSequence"`
	TotalAnimals     int            `json:"totalAnimals"`
	CowsInMilk       int            `json:"cowsInMilk"`
	Cows3xMilked     int            `json:"cows3xMilked"`
	HerdTotalMilk    float64        `json:"herdTotalMilk"`
	HerdTotalFat     float64        `json:"herdTotalFat"`
	HerdTotalProtein float64        `json:"herdTotalProtein"`
	HerdTotalLactose float64        `json:"herdTotalLactose"`
	YieldDifference  DifferenceCode `json:"yieldDifference"`
	IsMissedWeighing bool           `json:"isMissedWeighing"`
	IsPrintEligible  bool           `json:"isPrintEligible"`
}

var recordingPart1Layout = struct {
	Date, Sequence, Animals, InMilk, Milked3x, Milk, Fat, Protein, Lactose, Difference, Missed, Print Field
}{
	Date:       NewField(3, 6),
	Sequence:   NewField(10, 2),
	Animals:    NewField(16, 4),
	InMilk:     NewField(21, 4),
	Milked3x:   NewField(26, 4),
	Milk:       ScaledField(31, 6, 10),
	Fat:        ScaledField(38, 7, 10000),
	Protein:    ScaledField(46, 7, 1000),
	Lactose:    ScaledField(54, 7, 10000),
	Difference: NewField(62, 1),
	Missed:     NewField(64, 1),
	Print:      NewField(66, 1),
}

func decodeRecordingPart1(h Header, r *fieldReader) Record {
	l := &recordingPart1Layout
	return &RecordingPart1{
		Header:           h,
		RecordingDate:    r.date(l.Date),
		WeighingSequence: r.int(l.Sequence),
		TotalAnimals:     r.int(l.Animals),
		CowsInMilk:       r.int(l.InMilk),
		Cows3xMilked:     r.int(l.Milked3x),
		HerdTotalMilk:    r.float(l.Milk),
		HerdTotalFat:     r.float(l.Fat),
		HerdTotalProtein: r.float(l.Protein),
		HerdTotalLactose: r.float(l.Lactose),
		YieldDifference:  readIntEnum[DifferenceCode](r, l.Difference),
		IsMissedWeighing: r.flag(l.Missed),
		IsPrintEligible:  r.flag(l.Print),
	}
}

// RecordingPart2 is the HE record: bulk tank results for one recording
type RecordingPart2 struct {
	Header
	BulkYield          int     `json:"bulkYield"`
	BulkFatPct         float64 `json:"bulkFatPct"`
	BulkProteinPct     float64 `json:"bulkProteinPct"`
	BulkLactosePct     float64 `json:"bulkLactosePct"`
	HerdProductionBase int     `json:"herdProductionBase"`
	BulkCellCount      int     `json:"bulkCellCount"`
}

var recordingPart2Layout = struct {
	Yield, Fat, Protein, Lactose, Base, Cells Field
}{
	Yield:   NewField(3, 5),
	Fat:     ScaledField(9, 4, 100),
	Protein: ScaledField(14, 4, 100),
	Lactose: ScaledField(19, 4, 100),
	Base:    NewField(24, 6),
	Cells:   NewField(51, 4),
}

func decodeRecordingPart2(h Header, r *fieldReader) Record {
	l := &recordingPart2Layout
	return &RecordingPart2{
		Header:             h,
		BulkYield:          r.int(l.Yield),
		BulkFatPct:         r.float(l.Fat),
		BulkProteinPct:     r.float(l.Protein),
		BulkLactosePct:     r.float(l.Lactose),
		HerdProductionBase: r.int(l.Base),
		BulkCellCount:      r.int(l.Cells),
	}
}
