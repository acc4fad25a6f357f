package codec

import (
	"time"
)

// HerdNumberRecord leads the statement (S0) and lactation (L0) sections
type HerdNumberRecord struct {
	Header
	Region   string `json:"region"`
	Producer string `json:"producer"`
	Herd     string `json:"herd"`
}

// HerdNumber joins region, producer and herd codes
func (n *HerdNumberRecord) HerdNumber() string {
	return n.Region + n.Producer + n.Herd
}

var herdNumberLayout = struct {
	Region, Producer, Herd Field
}{
	Region:   NewField(3, 2),
	Producer: NewField(6, 5),
	Herd:     NewField(12, 2),
}

func decodeHerdNumber(h Header, r *fieldReader) Record {
	l := &herdNumberLayout
	return &HerdNumberRecord{
		Header:   h,
		Region:   r.text(l.Region),
		Producer: r.text(l.Producer),
		Herd:     r.text(l.Herd),
	}
}

// CowIdentity is the S1 record that starts every statement
type CowIdentity struct {
	Header
	LiveFlag                 byte           `json:"liveFlag"`
	LineNumber               string         `json:"lineNumber"`
	IsYoungstock             bool           `json:"isYoungstock"`
	Breed                    int            `json:"breed"`
	LactationNumber          int            `json:"lactationNumber"`
	EstimatedLactationNumber int            `json:"estimatedLactationNumber"`
	Group                    int            `json:"group"`
	LactationStage           LactationStage `json:"lactationStage"`
	LastCalvingDate          *time.Time     `json:"lastCalvingDate,omitempty"`
	SireBreed                int            `json:"sireBreed"`
	SireIdentity             string         `json:"sireIdentity"`
	SireIdentityType         IdentityType   `json:"sireIdentityType"`
	SireIdentityAuthenticity Authenticity   `json:"sireIdentityAuthenticity"`
	DryDays                  int            `json:"dryDays"`
}

var cowIdentityLayout = struct {
	Live, Line, Youngstock, Breed, Lactation, EstLactation, Group, Stage, LastCalving,
	SireBreed, SireIdentity, SireType, SireAuth, DryDays Field
}{
	Live:         NewField(3, 1),
	Line:         NewField(5, 4),
	Youngstock:   NewField(10, 1),
	Breed:        NewField(12, 2),
	Lactation:    NewField(15, 2),
	EstLactation: NewField(18, 2),
	Group:        NewField(21, 2),
	Stage:        NewField(24, 1),
	LastCalving:  NewField(26, 6),
	SireBreed:    NewField(33, 2),
	SireIdentity: NewField(36, 12),
	SireType:     NewField(49, 1),
	SireAuth:     NewField(51, 1),
	DryDays:      NewField(53, 3),
}

func decodeCowIdentity(h Header, r *fieldReader) Record {
	l := &cowIdentityLayout
	return &CowIdentity{
		Header:                   h,
		LiveFlag:                 r.char(l.Live),
		LineNumber:               r.text(l.Line),
		IsYoungstock:             r.flag(l.Youngstock),
		Breed:                    r.int(l.Breed),
		LactationNumber:          r.int(l.Lactation),
		EstimatedLactationNumber: r.int(l.EstLactation),
		Group:                    r.int(l.Group),
		LactationStage:           readIntEnum[LactationStage](r, l.Stage),
		LastCalvingDate:          r.optionalDate(l.LastCalving),
		SireBreed:                r.int(l.SireBreed),
		SireIdentity:             r.text(l.SireIdentity),
		SireIdentityType:         readIntEnum[IdentityType](r, l.SireType),
		SireIdentityAuthenticity: readIntEnum[Authenticity](r, l.SireAuth),
		DryDays:                  r.int(l.DryDays),
	}
}

// WeighingRecord is the S3 record
type WeighingRecord struct {
	Header
	RecordingDate time.Time      `json:"recordingDate"`
	ResultType    WeighingResult `json:"resultType"`
	TimesMilked   int            `json:"timesMilked"`
	AbsenceReason *AbsenceReason `json:"absenceReason,omitempty"`
	MilkYield     float64        `json:"milkYield"`
	FatPct        float64        `json:"fatPct"`
	ProteinPct    float64        `json:"proteinPct"`
	LactosePct    float64        `json:"lactosePct"`
	CellCount     int            `json:"cellCount"`
}

var weighingLayout = struct {
	Date, Result, Times, Absence, Milk, Fat, Protein, Lactose, Cells Field
}{
	Date:    NewField(3, 6),
	Result:  NewField(10, 1),
	Times:   NewField(12, 1),
	Absence: NewField(14, 1),
	Milk:    ScaledField(16, 4, 10),
	Fat:     ScaledField(21, 4, 100),
	Protein: ScaledField(26, 4, 100),
	Lactose: ScaledField(31, 4, 100),
	Cells:   NewField(46, 4),
}

func decodeWeighing(h Header, r *fieldReader) Record {
	l := &weighingLayout
	return &WeighingRecord{
		Header:        h,
		RecordingDate: r.date(l.Date),
		ResultType:    readIntEnum[WeighingResult](r, l.Result),
		TimesMilked:   r.int(l.Times),
		AbsenceReason: readOptionalIntEnum[AbsenceReason](r, l.Absence),
		MilkYield:     r.float(l.Milk),
		FatPct:        r.float(l.Fat),
		ProteinPct:    r.float(l.Protein),
		LactosePct:    r.float(l.Lactose),
		CellCount:     r.int(l.Cells),
	}
}

// ServiceRecord is the S4 record
type ServiceRecord struct {
	Header
	EventDate                time.Time       `json:"eventDate"`
	EventAuthenticity        Authenticity    `json:"eventAuthenticity"`
	SireBreed                int             `json:"sireBreed"`
	SireIdentity             string          `json:"sireIdentity"`
	SireIdentityAuthenticity Authenticity    `json:"sireIdentityAuthenticity"`
	PregnancyStatus          PregnancyStatus `json:"pregnancyStatus"`
}

var serviceLayout = struct {
	Date, Auth, SireBreed, SireIdentity, SireAuth, Pregnancy Field
}{
	Date:         NewField(3, 6),
	Auth:         NewField(10, 1),
	SireBreed:    NewField(15, 2),
	SireIdentity: NewField(18, 12),
	SireAuth:     NewField(31, 1),
	Pregnancy:    NewField(37, 1),
}

func decodeService(h Header, r *fieldReader) Record {
	l := &serviceLayout
	return &ServiceRecord{
		Header:                   h,
		EventDate:                r.date(l.Date),
		EventAuthenticity:        readIntEnum[Authenticity](r, l.Auth),
		SireBreed:                r.int(l.SireBreed),
		SireIdentity:             r.text(l.SireIdentity),
		SireIdentityAuthenticity: readIntEnum[Authenticity](r, l.SireAuth),
		PregnancyStatus:          readIntEnum[PregnancyStatus](r, l.Pregnancy),
	}
}

// CalfDetails is the identity block shared by calving records.
// Sex is nil when no calf was recorded in the slot.
type CalfDetails struct {
	Breed                int          `json:"breed"`
	Identity             string       `json:"identity"`
	IdentityType         IdentityType `json:"identityType"`
	IdentityAuthenticity Authenticity `json:"identityAuthenticity"`
	Sex                  *Sex         `json:"sex,omitempty"`
}

// calfLayout locates a calf block at base, base+3, base+16, base+18, base+20
type calfLayout struct {
	Breed, Identity, Type, Auth, Sex Field
}

func newCalfLayout(base int) calfLayout {
	return calfLayout{
		Breed:    NewField(base, 2),
		Identity: NewField(base+3, 12),
		Type:     NewField(base+16, 1),
		Auth:     NewField(base+18, 1),
		Sex:      NewField(base+20, 1),
	}
}

func (r *fieldReader) calf(l calfLayout) CalfDetails {
	c := CalfDetails{
		Breed:                r.int(l.Breed),
		Identity:             r.text(l.Identity),
		IdentityType:         readIntEnum[IdentityType](r, l.Type),
		IdentityAuthenticity: readIntEnum[Authenticity](r, l.Auth),
	}
	if sex := readOptionalCharEnum[Sex](r, l.Sex); sex != nil {
		n := sex.Normalize()
		c.Sex = &n
	}
	return c
}

// ActualCalvingRecord is the S5 record, holding up to two calves
type ActualCalvingRecord struct {
	Header
	EventDate         time.Time    `json:"eventDate"`
	EventAuthenticity Authenticity `json:"eventAuthenticity"`
	Calf1             CalfDetails  `json:"calf1"`
	Calf2             CalfDetails  `json:"calf2"`
}

var actualCalvingLayout = struct {
	Date, Auth   Field
	Calf1, Calf2 calfLayout
}{
	Date:  NewField(3, 6),
	Auth:  NewField(10, 1),
	Calf1: newCalfLayout(15),
	Calf2: newCalfLayout(37),
}

func decodeActualCalving(h Header, r *fieldReader) Record {
	l := &actualCalvingLayout
	return &ActualCalvingRecord{
		Header:            h,
		EventDate:         r.date(l.Date),
		EventAuthenticity: readIntEnum[Authenticity](r, l.Auth),
		Calf1:             r.calf(l.Calf1),
		Calf2:             r.calf(l.Calf2),
	}
}

// ThirdCalfRecord is the S6 record, following an S5 for triplets
type ThirdCalfRecord struct {
	Header
	Calf CalfDetails `json:"calf"`
}

var thirdCalfLayout = newCalfLayout(3)

func decodeThirdCalf(h Header, r *fieldReader) Record {
	return &ThirdCalfRecord{Header: h, Calf: r.calf(thirdCalfLayout)}
}

// AssumedCalvingRecord is the S7 record
type AssumedCalvingRecord struct {
	Header
	EventDate time.Time `json:"eventDate"`
}

var assumedCalvingDate = NewField(3, 6)

func decodeAssumedCalving(h Header, r *fieldReader) Record {
	return &AssumedCalvingRecord{Header: h, EventDate: r.date(assumedCalvingDate)}
}

// OtherEventRecord covers the dated events S8 to SM
type OtherEventRecord struct {
	Header
	EventDate         time.Time    `json:"eventDate"`
	EventAuthenticity Authenticity `json:"eventAuthenticity"`
}

var otherEventKinds = map[Identifier]OtherEventKind{
	IDNoSample:           EventNoSample,
	IDAssumed1x:          EventAssumed1x,
	ID1x:                 Event1x,
	IDAssumedDry:         EventAssumedDry,
	IDDry:                EventDry,
	IDSuckling:           EventSuckling,
	IDAbsent:             EventAbsent,
	IDBarren:             EventBarren,
	IDAbort:              EventAbort,
	IDSick:               EventSick,
	IDLame:               EventLame,
	IDMastitis:           EventMastitis,
	IDDead:               EventDead,
	IDSoldInPreviousHerd: EventSoldInPreviousHerd,
	IDSold:               EventSold,
}

// Kind returns the event named by the record identifier
func (e *OtherEventRecord) Kind() OtherEventKind {
	return otherEventKinds[e.ID]
}

var otherEventLayout = struct {
	Date, Auth Field
}{
	Date: NewField(3, 6),
	Auth: NewField(10, 1),
}

func decodeOtherEvent(h Header, r *fieldReader) Record {
	l := &otherEventLayout
	return &OtherEventRecord{
		Header:            h,
		EventDate:         r.date(l.Date),
		EventAuthenticity: readIntEnum[Authenticity](r, l.Auth),
	}
}

// CurrentLactationRecord is the SX record closing every statement
type CurrentLactationRecord struct {
	Header
	TotalDays            int         `json:"totalDays"`
	TotalMilk            float64     `json:"totalMilk"`
	TotalFat             float64     `json:"totalFat"`
	TotalProtein         float64     `json:"totalProtein"`
	TotalLactose         float64     `json:"totalLactose"`
	FatPct               float64     `json:"fatPct"`
	ProteinPct           float64     `json:"proteinPct"`
	LactosePct           float64     `json:"lactosePct"`
	TotalValue           int         `json:"totalValue"`
	AveragePencePerLitre float64     `json:"averagePencePerLitre"`
	Seasonality          Seasonality `json:"seasonality"`
	AverageCellCount     int         `json:"averageCellCount"`
}

var currentLactationLayout = struct {
	Days, Milk, Fat, Protein, Lactose, FatPct, ProteinPct, LactosePct, Value, PPL, Seasonality, Cells Field
}{
	Days:        ScaledField(3, 4, 10),
	Milk:        ScaledField(8, 6, 10),
	Fat:         ScaledField(15, 6, 100),
	Protein:     ScaledField(22, 6, 100),
	Lactose:     ScaledField(29, 6, 100),
	FatPct:      ScaledField(36, 4, 100),
	ProteinPct:  ScaledField(41, 4, 100),
	LactosePct:  ScaledField(46, 4, 100),
	Value:       NewField(51, 6),
	PPL:         ScaledField(58, 4, 100),
	Seasonality: NewField(63, 1),
	Cells:       NewField(65, 4),
}

func decodeCurrentLactation(h Header, r *fieldReader) Record {
	l := &currentLactationLayout
	return &CurrentLactationRecord{
		Header:               h,
		TotalDays:            r.int(l.Days),
		TotalMilk:            r.float(l.Milk),
		TotalFat:             r.float(l.Fat),
		TotalProtein:         r.float(l.Protein),
		TotalLactose:         r.float(l.Lactose),
		FatPct:               r.float(l.FatPct),
		ProteinPct:           r.float(l.ProteinPct),
		LactosePct:           r.float(l.LactosePct),
		TotalValue:           r.int(l.Value),
		AveragePencePerLitre: r.float(l.PPL),
		Seasonality:          readCharEnum[Seasonality](r, l.Seasonality),
		AverageCellCount:     r.int(l.Cells),
	}
}
