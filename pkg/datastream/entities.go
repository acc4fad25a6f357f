package datastream

import (
	"time"

	"github.com/barnettben/Datastream/pkg/breed"
	"github.com/barnettben/Datastream/pkg/codec"
)

// HerdDetails describes the herd a file was produced for
type HerdDetails struct {
	NationalHerdMark int            `json:"nationalHerdMark"`
	PredominantBreed *breed.Breed   `json:"predominantBreed"`
	HerdPrefix       string         `json:"herdPrefix"`
	EnrolDate        time.Time      `json:"enrolDate"`
	Address          []string       `json:"address"`
	County           string         `json:"county"`
	Postcode         string         `json:"postcode"`
	NMRInformation   NMRInformation `json:"nmrInformation"`
	PrivateRecords   []string       `json:"privateRecords,omitempty"`
}

// NMRInformation holds the recording organisation's settings for the herd
type NMRInformation struct {
	NMRCounty             int                       `json:"nmrCounty"`
	NMROffice             int                       `json:"nmrOffice"`
	RecordingScheme       codec.RecordingScheme     `json:"recordingScheme"`
	WeighingSequence      int                       `json:"weighingSequence"`
	LastWeighNumber       int                       `json:"lastWeighNumber"`
	ServiceType           codec.ServiceType         `json:"serviceType"`
	IsProgenyTesting      bool                      `json:"isProgenyTesting"`
	IsLifetimeYieldMember bool                      `json:"isLifetimeYieldMember"`
	CowCardPrinting       codec.CowCardPrinting     `json:"cowCardPrinting"`
	CalfCropListCycle     int                       `json:"calfCropListCycle"`
	IsHerdwatchMember     bool                      `json:"isHerdwatchMember"`
	CellCountMembership   codec.CellCountMembership `json:"cellCountMembership"`
}

// HerdRecording is one herd-level milk recording (HD and HE)
type HerdRecording struct {
	RecordingDate      time.Time            `json:"recordingDate"`
	WeighingSequence   int                  `json:"weighingSequence"`
	TotalAnimals       int                  `json:"totalAnimals"`
	CowsInMilk         int                  `json:"cowsInMilk"`
	Cows3xMilked       int                  `json:"cows3xMilked"`
	HerdTotalMilk      float64              `json:"herdTotalMilk"`
	HerdTotalFat       float64              `json:"herdTotalFat"`
	HerdTotalProtein   float64              `json:"herdTotalProtein"`
	HerdTotalLactose   float64              `json:"herdTotalLactose"`
	YieldDifference    codec.DifferenceCode `json:"yieldDifference"`
	IsMissedWeighing   bool                 `json:"isMissedWeighing"`
	IsPrintEligible    bool                 `json:"isPrintEligible"`
	BulkYield          int                  `json:"bulkYield"`
	BulkFatPct         float64              `json:"bulkFatPct"`
	BulkProteinPct     float64              `json:"bulkProteinPct"`
	BulkLactosePct     float64              `json:"bulkLactosePct"`
	HerdProductionBase int                  `json:"herdProductionBase"`
	BulkCellCount      int                  `json:"bulkCellCount"`
}

// Animal is one animal of the herd, built from its C records
type Animal struct {
	NMRHerdNumber        string               `json:"nmrHerdNumber"`
	IsInHerd             bool                 `json:"isInHerd"`
	LineNumber           string               `json:"lineNumber"`
	Breed                *breed.Breed         `json:"breed"`
	Identity             string               `json:"identity"`
	IdentityType         codec.IdentityType   `json:"identityType"`
	PedigreeStatus       codec.PedigreeStatus `json:"pedigreeStatus"`
	HBNAuthenticity      codec.Authenticity   `json:"hbnAuthenticity"`
	IdentityAuthenticity codec.Authenticity   `json:"identityAuthenticity"`
	AlternativeBreed     *breed.Breed         `json:"alternativeBreed"`
	AlternativeIdentity  string               `json:"alternativeIdentity"`
	BirthDate            time.Time            `json:"birthDate"`
	IsYoungstock         bool                 `json:"isYoungstock"`
	HerdEntryDate        time.Time            `json:"herdEntryDate"`
	HerdExitDate         *time.Time           `json:"herdExitDate,omitempty"`
	LeavingReason        codec.LeavingReason  `json:"leavingReason"`
	ClassChangeDate      *time.Time           `json:"classChangeDate,omitempty"`
	ShortName            string               `json:"shortName"`
	LongName             string               `json:"longName"`
	Sire                 AnimalParent         `json:"sire"`
	Dam                  AnimalParent         `json:"dam"`
	Evaluations          []GeneticEvaluation  `json:"evaluations"`
}

// AnimalParent identifies a sire or dam. Pedigree status and authenticity
// are only recorded for dams.
type AnimalParent struct {
	Breed                *breed.Breed          `json:"breed"`
	Identity             string                `json:"identity"`
	IdentityType         codec.IdentityType    `json:"identityType"`
	PedigreeStatus       *codec.PedigreeStatus `json:"pedigreeStatus,omitempty"`
	IdentityAuthenticity *codec.Authenticity   `json:"identityAuthenticity,omitempty"`
}

// GeneticEvaluation is one dated PTA evaluation
type GeneticEvaluation struct {
	Group       codec.EvaluationGroup  `json:"group"`
	Source      codec.EvaluationSource `json:"source"`
	Date        time.Time              `json:"date"`
	MilkKg      int                    `json:"milkKg"`
	FatKg       float64                `json:"fatKg"`
	ProteinKg   float64                `json:"proteinKg"`
	FatPct      float64                `json:"fatPct"`
	ProteinPct  float64                `json:"proteinPct"`
	Reliability int                    `json:"reliability"`
}

// AnimalStatement is the current-lactation statement for one cow
type AnimalStatement struct {
	LineNumber               string               `json:"lineNumber"`
	IsInHerd                 bool                 `json:"isInHerd"`
	IsYoungstock             bool                 `json:"isYoungstock"`
	Breed                    *breed.Breed         `json:"breed"`
	LactationNumber          int                  `json:"lactationNumber"`
	EstimatedLactationNumber int                  `json:"estimatedLactationNumber"`
	ManagementGroup          int                  `json:"managementGroup"`
	LactationStage           codec.LactationStage `json:"lactationStage"`
	PreviousCalvingDate      *time.Time           `json:"previousCalvingDate,omitempty"`
	Sire                     SireDetails          `json:"sire"`
	DryDays                  int                  `json:"dryDays"`
	Weighings                []WeighingEvent      `json:"weighings"`
	Services                 []ServiceEvent       `json:"services"`
	Calvings                 []CalvingEvent       `json:"calvings"`
	OtherEvents              []OtherEvent         `json:"otherEvents"`
	LactationDetails         LactationDetails     `json:"lactationDetails"`
}

// SireDetails identifies the sire of a lactation
type SireDetails struct {
	Breed                *breed.Breed       `json:"breed"`
	Identity             string             `json:"identity"`
	IdentityType         codec.IdentityType `json:"identityType"`
	IdentityAuthenticity codec.Authenticity `json:"identityAuthenticity"`
}

// WeighingEvent is one milk weighing (S3)
type WeighingEvent struct {
	RecordingDate time.Time            `json:"recordingDate"`
	ResultType    codec.WeighingResult `json:"resultType"`
	TimesMilked   int                  `json:"timesMilked"`
	AbsenceReason *codec.AbsenceReason `json:"absenceReason,omitempty"`
	MilkYield     float64              `json:"milkYield"`
	FatPct        float64              `json:"fatPct"`
	ProteinPct    float64              `json:"proteinPct"`
	LactosePct    float64              `json:"lactosePct"`
	CellCount     int                  `json:"cellCount"`
}

// ServiceEvent is one service (S4)
type ServiceEvent struct {
	EventDate                time.Time             `json:"eventDate"`
	EventAuthenticity        codec.Authenticity    `json:"eventAuthenticity"`
	SireBreed                *breed.Breed          `json:"sireBreed"`
	SireIdentity             string                `json:"sireIdentity"`
	SireIdentityAuthenticity codec.Authenticity    `json:"sireIdentityAuthenticity"`
	PregnancyStatus          codec.PregnancyStatus `json:"pregnancyStatus"`
}

// CalvingEvent is one calf born to a cow. Twins produce one event per calf.
type CalvingEvent struct {
	EventDate                time.Time          `json:"eventDate"`
	EventAuthenticity        codec.Authenticity `json:"eventAuthenticity"`
	IsAssumed                bool               `json:"isAssumed"`
	CalfBreed                *breed.Breed       `json:"calfBreed"`
	CalfIdentity             string             `json:"calfIdentity"`
	CalfIdentityType         codec.IdentityType `json:"calfIdentityType"`
	CalfIdentityAuthenticity codec.Authenticity `json:"calfIdentityAuthenticity"`
	CalfSex                  codec.Sex          `json:"calfSex"`
}

// OtherEvent is a simple dated event (S8 to SM)
type OtherEvent struct {
	Identifier        codec.Identifier     `json:"identifier"`
	Kind              codec.OtherEventKind `json:"kind"`
	EventDate         time.Time            `json:"eventDate"`
	EventAuthenticity codec.Authenticity   `json:"eventAuthenticity"`
}

// LactationDetails are the running totals of the current lactation (SX)
type LactationDetails struct {
	TotalDays            int               `json:"totalDays"`
	TotalMilk            float64           `json:"totalMilk"`
	TotalFat             float64           `json:"totalFat"`
	TotalProtein         float64           `json:"totalProtein"`
	TotalLactose         float64           `json:"totalLactose"`
	FatPct               float64           `json:"fatPct"`
	ProteinPct           float64           `json:"proteinPct"`
	LactosePct           float64           `json:"lactosePct"`
	TotalValue           int               `json:"totalValue"`
	AveragePencePerLitre float64           `json:"averagePencePerLitre"`
	Seasonality          codec.Seasonality `json:"seasonality"`
	AverageCellCount     int               `json:"averageCellCount"`
}

// Lactation is one completed lactation (L1 to L5)
type Lactation struct {
	LineNumber               string               `json:"lineNumber"`
	IsInHerd                 bool                 `json:"isInHerd"`
	LactationNumber          int                  `json:"lactationNumber"`
	EstimatedLactationNumber int                  `json:"estimatedLactationNumber"`
	Breed                    *breed.Breed         `json:"breed"`
	NumberOfMaleCalves       int                  `json:"numberOfMaleCalves"`
	NumberOfFemaleCalves     int                  `json:"numberOfFemaleCalves"`
	NumberOfDeadCalves       int                  `json:"numberOfDeadCalves"`
	DryDays                  int                  `json:"dryDays"`
	NumberOfServices         int                  `json:"numberOfServices"`
	MissedRecordings         int                  `json:"missedRecordings"`
	SeasonalityAdjustment    int                  `json:"seasonalityAdjustment"`
	FinancialValue           int                  `json:"financialValue"`
	ProductionIndex          int                  `json:"productionIndex"`
	ProductionBase           float64              `json:"productionBase"`
	TimesLame                int                  `json:"timesLame"`
	TimesMastitis            int                  `json:"timesMastitis"`
	TimesSick                int                  `json:"timesSick"`
	CalvingInterval          int                  `json:"calvingInterval"`
	AgeAtCalving             int                  `json:"ageAtCalving"`
	CalvingDate              time.Time            `json:"calvingDate"`
	CalvingDateAuthenticity  codec.Authenticity   `json:"calvingDateAuthenticity"`
	Sire                     SireDetails          `json:"sire"`
	Calves                   []CalvingEvent       `json:"calves"`
	Production305            LactationProduction  `json:"production305"`
	ProductionNatural        *LactationProduction `json:"productionNatural,omitempty"`
}

// LactationProduction holds the 305-day or natural totals of a lactation
type LactationProduction struct {
	IsQualifying       bool               `json:"isQualifying"`
	TotalsAuthenticity codec.Authenticity `json:"totalsAuthenticity"`
	TotalMilk          float64            `json:"totalMilk"`
	TotalFat           float64            `json:"totalFat"`
	TotalProtein       float64            `json:"totalProtein"`
	TotalLactose       float64            `json:"totalLactose"`
	TotalDays          int                `json:"totalDays"`
	Total3xDays        int                `json:"total3xDays"`
	StartOf3x          int                `json:"startOf3x"`
	EndDate            time.Time          `json:"endDate"`
	EndReason          codec.EndReason    `json:"endReason"`
	NumberOfRecordings int                `json:"numberOfRecordings"`
	AverageCellCount   int                `json:"averageCellCount"`
	CellsOver200       int                `json:"cellsOver200"`
}

// BullDetails identifies a bull referenced elsewhere in the file
type BullDetails struct {
	Breed       *breed.Breed        `json:"breed"`
	Identity    string              `json:"identity"`
	LongName    string              `json:"longName"`
	ShortName   string              `json:"shortName"`
	Evaluations []GeneticEvaluation `json:"evaluations"`
}

// DeadDam identifies a dam that is no longer in the herd
type DeadDam struct {
	Breed                *breed.Breed         `json:"breed"`
	Identity             string               `json:"identity"`
	IdentityType         codec.IdentityType   `json:"identityType"`
	PedigreeStatus       codec.PedigreeStatus `json:"pedigreeStatus"`
	IdentityAuthenticity codec.Authenticity   `json:"identityAuthenticity"`
	Name                 string               `json:"name"`
	Evaluations          []GeneticEvaluation  `json:"evaluations"`
}

// WeighingCalendar lists the planned weighing dates. StartDate is the first
// day of the start month, EndDate the last day of the end month.
type WeighingCalendar struct {
	StartDate     time.Time      `json:"startDate"`
	EndDate       time.Time      `json:"endDate"`
	WeighingDates []WeighingDate `json:"weighingDates"`
}

// WeighingDate is one filled slot of a W2 record
type WeighingDate struct {
	RecordingYear int `json:"recordingYear"`
	Sequence      int `json:"sequence"`
	SequenceMonth int `json:"sequenceMonth"`
	CalendarMonth int `json:"calendarMonth"`
	PMDay         int `json:"pmDay"`
	AMDay         int `json:"amDay"`
}
