package codec

import (
	"time"
)

// AnimalIdentity is the C1 record
type AnimalIdentity struct {
	Header
	Region              string         `json:"region"`
	Producer            string         `json:"producer"`
	Herd                string         `json:"herd"`
	LiveFlag            byte           `json:"liveFlag"`
	LineNumber          string         `json:"lineNumber"`
	Breed               int            `json:"breed"`
	Identity            string         `json:"identity"`
	IdentityType        IdentityType   `json:"identityType"`
	PedigreeStatus      PedigreeStatus `json:"pedigreeStatus"`
	HBNAuthenticity     Authenticity   `json:"hbnAuthenticity"`
	EarmarkAuthenticity Authenticity   `json:"earmarkAuthenticity"`
}

// HerdNumber joins region, producer and herd codes
func (a *AnimalIdentity) HerdNumber() string {
	return a.Region + a.Producer + a.Herd
}

var animalIdentityLayout = struct {
	Region, Producer, Herd, Live, Line, Breed, Identity, IdentityType, Pedigree, HBNAuth, EarmarkAuth Field
}{
	Region:       NewField(3, 2),
	Producer:     NewField(6, 5),
	Herd:         NewField(12, 2),
	Live:         NewField(15, 1),
	Line:         NewField(17, 4),
	Breed:        NewField(22, 2),
	Identity:     NewField(25, 12),
	IdentityType: NewField(38, 1),
	Pedigree:     NewField(40, 1),
	HBNAuth:      NewField(42, 1),
	EarmarkAuth:  NewField(44, 1),
}

func decodeAnimalIdentity(h Header, r *fieldReader) Record {
	l := &animalIdentityLayout
	return &AnimalIdentity{
		Header:              h,
		Region:              r.text(l.Region),
		Producer:            r.text(l.Producer),
		Herd:                r.text(l.Herd),
		LiveFlag:            r.char(l.Live),
		LineNumber:          r.text(l.Line),
		Breed:               r.int(l.Breed),
		Identity:            r.text(l.Identity),
		IdentityType:        readIntEnum[IdentityType](r, l.IdentityType),
		PedigreeStatus:      readCharEnum[PedigreeStatus](r, l.Pedigree),
		HBNAuthenticity:     readIntEnum[Authenticity](r, l.HBNAuth),
		EarmarkAuthenticity: readIntEnum[Authenticity](r, l.EarmarkAuth),
	}
}

// AnimalOtherDetails is the C2 record
type AnimalOtherDetails struct {
	Header
	AlternativeBreed    int           `json:"alternativeBreed"`
	AlternativeIdentity string        `json:"alternativeIdentity"`
	BirthDate           time.Time     `json:"birthDate"`
	IsYoungstock        bool          `json:"isYoungstock"`
	EntryDate           time.Time     `json:"entryDate"`
	ExitDate            *time.Time    `json:"exitDate,omitempty"`
	LeavingReason       LeavingReason `json:"leavingReason"`
	ClassChangeDate     *time.Time    `json:"classChangeDate,omitempty"`
}

var animalOtherDetailsLayout = struct {
	AltBreed, AltIdentity, Birth, Youngstock, Entry, Exit, Leaving, ClassChange Field
}{
	AltBreed:    NewField(3, 2),
	AltIdentity: NewField(6, 12),
	Birth:       NewField(19, 6),
	Youngstock:  NewField(26, 1),
	Entry:       NewField(28, 6),
	Exit:        NewField(35, 6),
	Leaving:     NewField(42, 1),
	ClassChange: NewField(44, 6),
}

func decodeAnimalOtherDetails(h Header, r *fieldReader) Record {
	l := &animalOtherDetailsLayout
	return &AnimalOtherDetails{
		Header:              h,
		AlternativeBreed:    r.int(l.AltBreed),
		AlternativeIdentity: r.text(l.AltIdentity),
		BirthDate:           r.date(l.Birth),
		IsYoungstock:        r.flag(l.Youngstock),
		EntryDate:           r.date(l.Entry),
		ExitDate:            r.optionalDate(l.Exit),
		LeavingReason:       readIntEnum[LeavingReason](r, l.Leaving),
		ClassChangeDate:     r.optionalDate(l.ClassChange),
	}
}

// AnimalName is the C3 record
type AnimalName struct {
	Header
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
}

var animalNameLayout = struct {
	Short, Long Field
}{
	Short: NewField(3, 20),
	Long:  NewField(24, 40),
}

func decodeAnimalName(h Header, r *fieldReader) Record {
	l := &animalNameLayout
	return &AnimalName{
		Header:    h,
		ShortName: r.text(l.Short),
		LongName:  r.text(l.Long),
	}
}

// AnimalSireDam is the C4 record
type AnimalSireDam struct {
	Header
	SireBreed               int            `json:"sireBreed"`
	SireIdentity            string         `json:"sireIdentity"`
	SireIdentityType        IdentityType   `json:"sireIdentityType"`
	DamBreed                int            `json:"damBreed"`
	DamIdentity             string         `json:"damIdentity"`
	DamIdentityType         IdentityType   `json:"damIdentityType"`
	DamPedigreeStatus       PedigreeStatus `json:"damPedigreeStatus"`
	DamIdentityAuthenticity Authenticity   `json:"damIdentityAuthenticity"`
}

var animalSireDamLayout = struct {
	SireBreed, SireIdentity, SireType, DamBreed, DamIdentity, DamType, DamPedigree, DamAuth Field
}{
	SireBreed:    NewField(3, 2),
	SireIdentity: NewField(6, 12),
	SireType:     NewField(19, 1),
	DamBreed:     NewField(23, 2),
	DamIdentity:  NewField(26, 12),
	DamType:      NewField(39, 1),
	DamPedigree:  NewField(41, 1),
	DamAuth:      NewField(43, 1),
}

func decodeAnimalSireDam(h Header, r *fieldReader) Record {
	l := &animalSireDamLayout
	return &AnimalSireDam{
		Header:                  h,
		SireBreed:               r.int(l.SireBreed),
		SireIdentity:            r.text(l.SireIdentity),
		SireIdentityType:        readIntEnum[IdentityType](r, l.SireType),
		DamBreed:                r.int(l.DamBreed),
		DamIdentity:             r.text(l.DamIdentity),
		DamIdentityType:         readIntEnum[IdentityType](r, l.DamType),
		DamPedigreeStatus:       readCharEnum[PedigreeStatus](r, l.DamPedigree),
		DamIdentityAuthenticity: readIntEnum[Authenticity](r, l.DamAuth),
	}
}

// PTARecord is a predicted transmitting ability evaluation (C5-C8, B2-B8, D2-D8).
// EvaluationDate is nil for the all-zero null evaluation.
type PTARecord struct {
	Header
	EvaluationGroup  EvaluationGroup  `json:"evaluationGroup"`
	EvaluationSource EvaluationSource `json:"evaluationSource"`
	EvaluationDate   *time.Time       `json:"evaluationDate,omitempty"`
	MilkKg           int              `json:"milkKg"`
	FatKg            float64          `json:"fatKg"`
	ProteinKg        float64          `json:"proteinKg"`
	FatPct           float64          `json:"fatPct"`
	ProteinPct       float64          `json:"proteinPct"`
	Reliability      int              `json:"reliability"`
}

var ptaLayout = struct {
	Group, Source, Date, Milk, Fat, Protein, FatPct, ProteinPct, Reliability Field
}{
	Group:       NewField(3, 2),
	Source:      NewField(6, 2),
	Date:        NewField(9, 6),
	Milk:        NewField(16, 5),
	Fat:         ScaledField(22, 5, 10),
	Protein:     ScaledField(28, 5, 10),
	FatPct:      ScaledField(34, 5, 100),
	ProteinPct:  ScaledField(40, 5, 100),
	Reliability: NewField(46, 2),
}

func decodePTA(h Header, r *fieldReader) Record {
	l := &ptaLayout
	return &PTARecord{
		Header:           h,
		EvaluationGroup:  readIntEnum[EvaluationGroup](r, l.Group),
		EvaluationSource: readIntEnum[EvaluationSource](r, l.Source),
		EvaluationDate:   r.optionalDate(l.Date),
		MilkKg:           r.int(l.Milk),
		FatKg:            r.float(l.Fat),
		ProteinKg:        r.float(l.Protein),
		FatPct:           r.float(l.FatPct),
		ProteinPct:       r.float(l.ProteinPct),
		Reliability:      r.int(l.Reliability),
	}
}
