package codec

import (
	"time"
)

// CompletedLactationRecord is the L1 record that starts every completed lactation
type CompletedLactationRecord struct {
	Header
	AliveFlag                byte    `json:"aliveFlag"`
	LineNumber               string  `json:"lineNumber"`
	LactationNumber          int     `json:"lactationNumber"`
	Breed                    int     `json:"breed"`
	NumberOfMaleCalves       int     `json:"numberOfMaleCalves"`
	NumberOfFemaleCalves     int     `json:"numberOfFemaleCalves"`
	NumberOfDeadCalves       int     `json:"numberOfDeadCalves"`
	DryDays                  int     `json:"dryDays"`
	EstimatedLactationNumber int     `json:"estimatedLactationNumber"`
	NumberOfServices         int     `json:"numberOfServices"`
	MissedRecordings         int     `json:"missedRecordings"`
	SeasonalityAdjustment    int     `json:"seasonalityAdjustment"`
	FinancialValue           int     `json:"financialValue"`
	ProductionIndex          int     `json:"productionIndex"`
	ProductionBase           float64 `json:"productionBase"`
	TimesLame                int     `json:"timesLame"`
	TimesMastitis            int     `json:"timesMastitis"`
	TimesSick                int     `json:"timesSick"`
}

var completedLactationLayout = struct {
	Alive, Line, Lactation, Breed, Male, Female, Dead, DryDays, EstLactation, Services, Missed,
	Seasonality, Value, Index, Base, Lame, Mastitis, Sick Field
}{
	Alive:        NewField(3, 1),
	Line:         NewField(5, 4),
	Lactation:    NewField(10, 2),
	Breed:        NewField(13, 2),
	Male:         NewField(16, 1),
	Female:       NewField(18, 1),
	Dead:         NewField(20, 1),
	DryDays:      NewField(22, 3),
	EstLactation: NewField(26, 2),
	Services:     NewField(29, 2),
	Missed:       NewField(32, 2),
	Seasonality:  NewField(35, 4),
	Value:        NewField(40, 4),
	Index:        NewField(45, 6),
	Base:         ScaledField(52, 6, 100),
	Lame:         NewField(59, 2),
	Mastitis:     NewField(62, 2),
	Sick:         NewField(65, 2),
}

func decodeCompletedLactation(h Header, r *fieldReader) Record {
	l := &completedLactationLayout
	return &CompletedLactationRecord{
		Header:                   h,
		AliveFlag:                r.char(l.Alive),
		LineNumber:               r.text(l.Line),
		LactationNumber:          r.int(l.Lactation),
		Breed:                    r.int(l.Breed),
		NumberOfMaleCalves:       r.int(l.Male),
		NumberOfFemaleCalves:     r.int(l.Female),
		NumberOfDeadCalves:       r.int(l.Dead),
		DryDays:                  r.int(l.DryDays),
		EstimatedLactationNumber: r.int(l.EstLactation),
		NumberOfServices:         r.int(l.Services),
		MissedRecordings:         r.int(l.Missed),
		SeasonalityAdjustment:    r.int(l.Seasonality),
		FinancialValue:           r.int(l.Value),
		ProductionIndex:          r.int(l.Index),
		ProductionBase:           r.float(l.Base),
		TimesLame:                r.int(l.Lame),
		TimesMastitis:            r.int(l.Mastitis),
		TimesSick:                r.int(l.Sick),
	}
}

// CalvingDetailsRecord is the L2 record
type CalvingDetailsRecord struct {
	Header
	CalvingInterval          int          `json:"calvingInterval"`
	AgeAtCalving             int          `json:"ageAtCalving"`
	CalvingDate              time.Time    `json:"calvingDate"`
	CalvingDateAuthenticity  Authenticity `json:"calvingDateAuthenticity"`
	SireBreed                int          `json:"sireBreed"`
	SireIdentity             string       `json:"sireIdentity"`
	SireIdentityType         IdentityType `json:"sireIdentityType"`
	SireIdentityAuthenticity Authenticity `json:"sireIdentityAuthenticity"`
	Calf                     CalfDetails  `json:"calf"`
}

var calvingDetailsLayout = struct {
	Interval, Age, Date, DateAuth, SireBreed, SireIdentity, SireType, SireAuth Field
	Calf                                                                       calfLayout
}{
	Interval:     NewField(3, 3),
	Age:          NewField(7, 3),
	Date:         NewField(11, 6),
	DateAuth:     NewField(18, 1),
	SireBreed:    NewField(20, 2),
	SireIdentity: NewField(23, 12),
	SireType:     NewField(36, 1),
	SireAuth:     NewField(38, 1),
	Calf:         newCalfLayout(42),
}

func decodeCalvingDetails(h Header, r *fieldReader) Record {
	l := &calvingDetailsLayout
	return &CalvingDetailsRecord{
		Header:                   h,
		CalvingInterval:          r.int(l.Interval),
		AgeAtCalving:             r.int(l.Age),
		CalvingDate:              r.date(l.Date),
		CalvingDateAuthenticity:  readIntEnum[Authenticity](r, l.DateAuth),
		SireBreed:                r.int(l.SireBreed),
		SireIdentity:             r.text(l.SireIdentity),
		SireIdentityType:         readIntEnum[IdentityType](r, l.SireType),
		SireIdentityAuthenticity: readIntEnum[Authenticity](r, l.SireAuth),
		Calf:                     r.calf(l.Calf),
	}
}

// ExtraCalvesRecord is the L3 record, holding calves two and three
type ExtraCalvesRecord struct {
	Header
	Calf2 CalfDetails `json:"calf2"`
	Calf3 CalfDetails `json:"calf3"`
}

var extraCalvesLayout = struct {
	Calf2, Calf3 calfLayout
}{
	Calf2: newCalfLayout(3),
	Calf3: newCalfLayout(25),
}

func decodeExtraCalves(h Header, r *fieldReader) Record {
	l := &extraCalvesLayout
	return &ExtraCalvesRecord{
		Header: h,
		Calf2:  r.calf(l.Calf2),
		Calf3:  r.calf(l.Calf3),
	}
}

// LactationTotalsRecord holds 305 day (L4) or natural (L5) lactation totals
type LactationTotalsRecord struct {
	Header
	IsQualifying       bool         `json:"isQualifying"`
	TotalsAuthenticity Authenticity `json:"totalsAuthenticity"`
	TotalMilk          float64      `json:"totalMilk"`
	TotalFat           float64      `json:"totalFat"`
	TotalProtein       float64      `json:"totalProtein"`
	TotalLactose       float64      `json:"totalLactose"`
	TotalDays          int          `json:"totalDays"`
	Total3xDays        int          `json:"total3xDays"`
	StartOf3x          int          `json:"startOf3x"`
	LactationEndDate   time.Time    `json:"lactationEndDate"`
	LactationEndReason EndReason    `json:"lactationEndReason"`
	NumberOfRecordings int          `json:"numberOfRecordings"`
	AverageCellCount   int          `json:"averageCellCount"`
	CellsOver200       int          `json:"cellsOver200"`
}

var lactationTotalsLayout = struct {
	Qualifying, Auth, Milk, Fat, Protein, Lactose, Days, Days3x, Start3x, EndDate, EndReason,
	Recordings, Cells, Over200 Field
}{
	Qualifying: NewField(3, 1),
	Auth:       NewField(5, 1),
	Milk:       ScaledField(7, 6, 10),
	Fat:        ScaledField(14, 6, 100),
	Protein:    ScaledField(21, 6, 100),
	Lactose:    ScaledField(28, 6, 100),
	Days:       ScaledField(35, 4, 10),
	Days3x:     ScaledField(40, 4, 10),
	Start3x:    ScaledField(45, 4, 10),
	EndDate:    NewField(50, 6),
	EndReason:  NewField(57, 2),
	Recordings: NewField(60, 2),
	Cells:      NewField(63, 4),
	Over200:    NewField(68, 2),
}

func decodeLactationTotals(h Header, r *fieldReader) Record {
	l := &lactationTotalsLayout
	return &LactationTotalsRecord{
		Header:             h,
		IsQualifying:       r.flag(l.Qualifying),
		TotalsAuthenticity: readIntEnum[Authenticity](r, l.Auth),
		TotalMilk:          r.float(l.Milk),
		TotalFat:           r.float(l.Fat),
		TotalProtein:       r.float(l.Protein),
		TotalLactose:       r.float(l.Lactose),
		TotalDays:          r.int(l.Days),
		Total3xDays:        r.int(l.Days3x),
		StartOf3x:          r.int(l.Start3x),
		LactationEndDate:   r.date(l.EndDate),
		LactationEndReason: readIntEnum[EndReason](r, l.EndReason),
		NumberOfRecordings: r.int(l.Recordings),
		AverageCellCount:   r.int(l.Cells),
		CellsOver200:       r.int(l.Over200),
	}
}

// BullDetailsRecord is the B1 record
type BullDetailsRecord struct {
	Header
	Breed     int    `json:"breed"`
	Identity  string `json:"identity"`
	LongName  string `json:"longName"`
	ShortName string `json:"shortName"`
}

var bullDetailsLayout = struct {
	Breed, Identity, Long, Short Field
}{
	Breed:    NewField(3, 2),
	Identity: NewField(6, 12),
	Long:     NewField(19, 40),
	Short:    NewField(60, 8),
}

func decodeBullDetails(h Header, r *fieldReader) Record {
	l := &bullDetailsLayout
	return &BullDetailsRecord{
		Header:    h,
		Breed:     r.int(l.Breed),
		Identity:  r.text(l.Identity),
		LongName:  r.text(l.Long),
		ShortName: r.text(l.Short),
	}
}

// DeadDamRecord is the D1 record
type DeadDamRecord struct {
	Header
	Breed                int            `json:"breed"`
	Identity             string         `json:"identity"`
	IdentityType         IdentityType   `json:"identityType"`
	PedigreeStatus       PedigreeStatus `json:"pedigreeStatus"`
	IdentityAuthenticity Authenticity   `json:"identityAuthenticity"`
	LongName             string         `json:"longName"`
}

var deadDamLayout = struct {
	Breed, Identity, Type, Pedigree, Auth, Long Field
}{
	Breed:    NewField(3, 2),
	Identity: NewField(6, 12),
	Type:     NewField(19, 1),
	Pedigree: NewField(21, 1),
	Auth:     NewField(23, 1),
	Long:     NewField(28, 40),
}

func decodeDeadDamDetails(h Header, r *fieldReader) Record {
	l := &deadDamLayout
	return &DeadDamRecord{
		Header:               h,
		Breed:                r.int(l.Breed),
		Identity:             r.text(l.Identity),
		IdentityType:         readIntEnum[IdentityType](r, l.Type),
		PedigreeStatus:       readCharEnum[PedigreeStatus](r, l.Pedigree),
		IdentityAuthenticity: readIntEnum[Authenticity](r, l.Auth),
		LongName:             r.text(l.Long),
	}
}
