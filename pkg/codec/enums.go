package codec

import (
	"fmt"
)

func known[T comparable](names map[T]string, v T) bool {
	_, ok := names[v]
	return ok
}

func enumName[T comparable](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%T(%v)", v, v)
}

// RecordingScheme is the milk recording service a herd is enrolled in
type RecordingScheme int

const (
	SchemePremium   RecordingScheme = 1
	SchemeCMR       RecordingScheme = 2
	SchemePMR       RecordingScheme = 3
	SchemeFMR       RecordingScheme = 4
	SchemeGoats     RecordingScheme = 5
	SchemeIsleOfMan RecordingScheme = 6
	SchemeJersey    RecordingScheme = 7
	SchemeGuernsey  RecordingScheme = 8
	SchemeStandard1 RecordingScheme = 11
	SchemeStandard2 RecordingScheme = 12
	SchemeStandard3 RecordingScheme = 13
	SchemeStandard4 RecordingScheme = 14
	SchemeBasic1    RecordingScheme = 15
	SchemeBasic2    RecordingScheme = 16
)

var recordingSchemeNames = map[RecordingScheme]string{
	SchemePremium: "premium", SchemeCMR: "cmr", SchemePMR: "pmr", SchemeFMR: "fmr",
	SchemeGoats: "goats", SchemeIsleOfMan: "isleOfMan", SchemeJersey: "jersey", SchemeGuernsey: "guernsey",
	SchemeStandard1: "standard1", SchemeStandard2: "standard2", SchemeStandard3: "standard3",
	SchemeStandard4: "standard4", SchemeBasic1: "basic1", SchemeBasic2: "basic2",
}

func (s RecordingScheme) Valid() bool { return known(recordingSchemeNames, s) }
func (s RecordingScheme) String() string { return enumName(recordingSchemeNames, s) }

// ServiceType says whether milk recording is automatic or manual
type ServiceType string

const (
	ServiceAutomatic ServiceType = "A"
	ServiceManual    ServiceType = "M"
	ServiceUnknown   ServiceType = ""
)

func (s ServiceType) Valid() bool {
	return s == ServiceAutomatic || s == ServiceManual || s == ServiceUnknown
}

// CowCardPrinting selects which lactation ends trigger a cow card
type CowCardPrinting int

const (
	CowCardNone CowCardPrinting = iota
	CowCardEnd305
	CowCardEndNatural
	CowCardBoth
)

var cowCardPrintingNames = map[CowCardPrinting]string{
	CowCardNone: "none", CowCardEnd305: "end305", CowCardEndNatural: "endNatural", CowCardBoth: "both",
}

func (c CowCardPrinting) Valid() bool { return known(cowCardPrintingNames, c) }
func (c CowCardPrinting) String() string { return enumName(cowCardPrintingNames, c) }

// CellCountMembership is the herd's cell count service status. There is no value 2.
type CellCountMembership int

const (
	CellCountNotMember CellCountMembership = 0
	CellCountMember    CellCountMembership = 1
	CellCountResigned  CellCountMembership = 3
)

var cellCountMembershipNames = map[CellCountMembership]string{
	CellCountNotMember: "notMember", CellCountMember: "currentMember", CellCountResigned: "resigned",
}

func (c CellCountMembership) Valid() bool { return known(cellCountMembershipNames, c) }
func (c CellCountMembership) String() string { return enumName(cellCountMembershipNames, c) }

// DifferenceCode explains a gap between herd and bulk yields.
// DifferenceUnknown appears in real files but is undocumented.
type DifferenceCode int

const (
	DifferenceNotDefined DifferenceCode = iota
	DifferenceNoSampleTaken
	DifferenceYieldsMissing
	DifferenceNotReceivedAtLab
	DifferenceNoSampleTaken2
	DifferenceSpilt
	DifferenceSpoiled
	DifferenceSediment
	DifferenceUnknown
)

var differenceCodeNames = map[DifferenceCode]string{
	DifferenceNotDefined: "notDefined", DifferenceNoSampleTaken: "noSampleTaken",
	DifferenceYieldsMissing: "yieldsMissing", DifferenceNotReceivedAtLab: "notReceivedAtLab",
	DifferenceNoSampleTaken2: "noSampleTaken2", DifferenceSpilt: "spilt", DifferenceSpoiled: "spoiled",
	DifferenceSediment: "sediment", DifferenceUnknown: "unknown",
}

func (d DifferenceCode) Valid() bool { return known(differenceCodeNames, d) }
func (d DifferenceCode) String() string { return enumName(differenceCodeNames, d) }

// IdentityType says what kind of identifier an identity field holds
type IdentityType int

const (
	IdentityNone IdentityType = iota
	IdentityPedigreeHBN
	IdentityEarmark
	IdentityAINumber
	IdentityLineNumber
	IdentityInvalid
	IdentityMissing
	IdentityBeef
)

var identityTypeNames = map[IdentityType]string{
	IdentityNone: "noID", IdentityPedigreeHBN: "pedigreeHBN", IdentityEarmark: "earmark",
	IdentityAINumber: "aiNumber", IdentityLineNumber: "lineNumber", IdentityInvalid: "invalid",
	IdentityMissing: "missing", IdentityBeef: "beef",
}

func (i IdentityType) Valid() bool { return known(identityTypeNames, i) }
func (i IdentityType) String() string { return enumName(identityTypeNames, i) }

// Authenticity describes how trustworthy an identity or event is
type Authenticity int

const (
	Authentic         Authenticity = 0
	NonAuthentic      Authenticity = 1
	ComputerGenerated Authenticity = 3
)

var authenticityNames = map[Authenticity]string{
	Authentic: "authentic", NonAuthentic: "nonAuthentic", ComputerGenerated: "computerGenerated",
}

func (a Authenticity) Valid() bool { return known(authenticityNames, a) }
func (a Authenticity) String() string { return enumName(authenticityNames, a) }

// PedigreeStatus is a herd book registration status.
// A to D are grading-up register stages, J to T supplementary register sources.
type PedigreeStatus byte

const (
	PedigreeUnknown     PedigreeStatus = '0'
	PedigreeRegistered  PedigreeStatus = '1'
	PedigreeNonPedigree PedigreeStatus = '2'
	PedigreeHybrid      PedigreeStatus = '5'
)

func (p PedigreeStatus) Valid() bool {
	switch p {
	case PedigreeUnknown, PedigreeRegistered, PedigreeNonPedigree, PedigreeHybrid:
		return true
	}
	return p.IsGradingUp() || p.IsSupplementaryRegister()
}

// IsGradingUp reports whether the status is a grading-up register stage
func (p PedigreeStatus) IsGradingUp() bool {
	return p >= 'A' && p <= 'D'
}

// IsSupplementaryRegister reports whether the status is a supplementary register source
func (p PedigreeStatus) IsSupplementaryRegister() bool {
	return p >= 'J' && p <= 'T'
}

func (p PedigreeStatus) String() string {
	switch {
	case p == PedigreeUnknown:
		return "unknown"
	case p == PedigreeRegistered:
		return "pedigree"
	case p == PedigreeNonPedigree:
		return "nonPedigree"
	case p == PedigreeHybrid:
		return "hybrid"
	case p.IsGradingUp():
		return "gradingUp(" + string(rune(p)) + ")"
	case p.IsSupplementaryRegister():
		return "supplementaryRegister(" + string(rune(p)) + ")"
	}
	return fmt.Sprintf("PedigreeStatus(%q)", byte(p))
}

// MarshalText encodes the raw character
func (p PedigreeStatus) MarshalText() ([]byte, error) {
	return []byte{byte(p)}, nil
}

func (p *PedigreeStatus) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("invalid PedigreeStatus %q", text)
	}
	*p = PedigreeStatus(text[0])
	return nil
}

// LeavingReason is why an animal left the herd
type LeavingReason int

const (
	LeavingInHerd          LeavingReason = 0
	LeavingDied            LeavingReason = 1
	LeavingSold            LeavingReason = 2
	LeavingCeasedRecording LeavingReason = 4
)

var leavingReasonNames = map[LeavingReason]string{
	LeavingInHerd: "inHerd", LeavingDied: "died", LeavingSold: "sold", LeavingCeasedRecording: "ceasedRecording",
}

func (l LeavingReason) Valid() bool { return known(leavingReasonNames, l) }
func (l LeavingReason) String() string { return enumName(leavingReasonNames, l) }

// EvaluationGroup is the breed group a genetic evaluation belongs to
type EvaluationGroup int

const (
	GroupNone EvaluationGroup = iota
	GroupHolsteinFriesian
	GroupShorthorn
	GroupAyrshire
	GroupJersey
	GroupGuernsey
	GroupIsleOfJersey
	GroupIsleOfGuernsey
)

var evaluationGroupNames = map[EvaluationGroup]string{
	GroupNone: "none", GroupHolsteinFriesian: "holsteinFriesian", GroupShorthorn: "shorthorn",
	GroupAyrshire: "ayrshire", GroupJersey: "jersey", GroupGuernsey: "guernsey",
	GroupIsleOfJersey: "isleOfJersey", GroupIsleOfGuernsey: "isleOfGuernsey",
}

func (g EvaluationGroup) Valid() bool { return known(evaluationGroupNames, g) }
func (g EvaluationGroup) String() string { return enumName(evaluationGroupNames, g) }

// EvaluationSource says where a genetic evaluation came from
type EvaluationSource int

const (
	SourceNone             EvaluationSource = 0
	SourceHolsteinFriesian EvaluationSource = 1
	SourceShorthorn        EvaluationSource = 2
	SourceAyrshire         EvaluationSource = 3
	SourceJersey           EvaluationSource = 4
	SourceGuernsey         EvaluationSource = 5
	SourceIsleOfJersey     EvaluationSource = 6
	SourceIsleOfGuernsey   EvaluationSource = 7
	SourceEstimated        EvaluationSource = 97
	SourceIndirectForeign  EvaluationSource = 98
	SourceDirectForeign    EvaluationSource = 99
)

var evaluationSourceNames = map[EvaluationSource]string{
	SourceNone: "none", SourceHolsteinFriesian: "holsteinFriesian", SourceShorthorn: "shorthorn",
	SourceAyrshire: "ayrshire", SourceJersey: "jersey", SourceGuernsey: "guernsey",
	SourceIsleOfJersey: "isleOfJersey", SourceIsleOfGuernsey: "isleOfGuernsey",
	SourceEstimated: "estimated", SourceIndirectForeign: "indirectForeign", SourceDirectForeign: "directForeign",
}

func (s EvaluationSource) Valid() bool { return known(evaluationSourceNames, s) }
func (s EvaluationSource) String() string { return enumName(evaluationSourceNames, s) }

// LactationStage is the state of the current lactation
type LactationStage int

const (
	StageOngoing LactationStage = iota
	StageAssumedEnded
	StageEnded
	StageAssumedNaturalEnd
	StageDefiniteNaturalEnd
)

var lactationStageNames = map[LactationStage]string{
	StageOngoing: "ongoing", StageAssumedEnded: "assumedEnded", StageEnded: "ended",
	StageAssumedNaturalEnd: "assumedNaturalEnd", StageDefiniteNaturalEnd: "definiteNaturalEnd",
}

func (s LactationStage) Valid() bool { return known(lactationStageNames, s) }
func (s LactationStage) String() string { return enumName(lactationStageNames, s) }

// WeighingResult says how a weighing result was obtained
type WeighingResult int

const (
	ResultNormal WeighingResult = iota
	ResultSolidsEstimated
	ResultEstimateAbsent
	ResultEstimateSick
)

var weighingResultNames = map[WeighingResult]string{
	ResultNormal: "normal", ResultSolidsEstimated: "solidsEstimated",
	ResultEstimateAbsent: "fullEstimateAbsent", ResultEstimateSick: "fullEstimateSick",
}

func (w WeighingResult) Valid() bool { return known(weighingResultNames, w) }
func (w WeighingResult) String() string { return enumName(weighingResultNames, w) }

// AbsenceReason is why a sample result is missing
type AbsenceReason int

const (
	AbsenceNoSample AbsenceReason = iota
	AbsenceSpilt
	AbsenceSour
	AbsenceDirty
	AbsenceAbnormal
)

var absenceReasonNames = map[AbsenceReason]string{
	AbsenceNoSample: "noSample", AbsenceSpilt: "spilt", AbsenceSour: "sour",
	AbsenceDirty: "dirty", AbsenceAbnormal: "abnormal",
}

func (a AbsenceReason) Valid() bool { return known(absenceReasonNames, a) }
func (a AbsenceReason) String() string { return enumName(absenceReasonNames, a) }

// PregnancyStatus is the outcome recorded against a service
type PregnancyStatus int

const (
	PregnancyUnknown PregnancyStatus = iota
	PregnancyNotPregnant
	PregnancyPregnant
)

var pregnancyStatusNames = map[PregnancyStatus]string{
	PregnancyUnknown: "unknown", PregnancyNotPregnant: "notPregnant", PregnancyPregnant: "pregnant",
}

func (p PregnancyStatus) Valid() bool { return known(pregnancyStatusNames, p) }
func (p PregnancyStatus) String() string { return enumName(pregnancyStatusNames, p) }

// Sex of a calf. Files use F and M as well as the documented H and B.
type Sex byte

const (
	SexFemale Sex = 'H'
	SexMale   Sex = 'B'
	SexDead   Sex = 'D'
)

func (s Sex) Valid() bool {
	switch s {
	case 'H', 'F', 'B', 'M', 'D':
		return true
	}
	return false
}

// Normalize maps F to H and M to B
func (s Sex) Normalize() Sex {
	switch s {
	case 'F':
		return SexFemale
	case 'M':
		return SexMale
	}
	return s
}

func (s Sex) String() string {
	switch s.Normalize() {
	case SexFemale:
		return "female"
	case SexMale:
		return "male"
	case SexDead:
		return "dead"
	}
	return fmt.Sprintf("Sex(%q)", byte(s))
}

// MarshalText encodes the raw character
func (s Sex) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}

func (s *Sex) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("invalid Sex %q", text)
	}
	*s = Sex(text[0])
	return nil
}

// Seasonality is the adjustment applied to the lactation value
type Seasonality byte

const (
	SeasonalityNone        Seasonality = 'G'
	SeasonalityApplied     Seasonality = 'N'
	SeasonalityComparative Seasonality = 'C'
)

func (s Seasonality) Valid() bool {
	return s == SeasonalityNone || s == SeasonalityApplied || s == SeasonalityComparative
}

func (s Seasonality) String() string {
	switch s {
	case SeasonalityNone:
		return "noSeasonality"
	case SeasonalityApplied:
		return "seasonality"
	case SeasonalityComparative:
		return "comparative"
	}
	return fmt.Sprintf("Seasonality(%q)", byte(s))
}

// MarshalText encodes the raw character
func (s Seasonality) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}

func (s *Seasonality) UnmarshalText(text []byte) error {
	if len(text) != 1 {
		return fmt.Errorf("invalid Seasonality %q", text)
	}
	*s = Seasonality(text[0])
	return nil
}

// EndReason is why a lactation ended. EndReasonLP (5) is undocumented but occurs in real files.
type EndReason int

const (
	EndDead            EndReason = 1
	EndSold            EndReason = 2
	EndDry             EndReason = 3
	EndOnceADay        EndReason = 4
	EndReasonLP        EndReason = 5
	EndCalved          EndReason = 6
	EndCeasedRecording EndReason = 7
	EndSuckled         EndReason = 8
)

var endReasonNames = map[EndReason]string{
	EndDead: "dead", EndSold: "sold", EndDry: "dry", EndOnceADay: "onceADay", EndReasonLP: "lp",
	EndCalved: "calved", EndCeasedRecording: "ceasedRecording", EndSuckled: "suckled",
}

func (e EndReason) Valid() bool { return known(endReasonNames, e) }
func (e EndReason) String() string { return enumName(endReasonNames, e) }

// OtherEventKind names the simple dated events S8 to SM
type OtherEventKind int

const (
	EventNoSample OtherEventKind = iota
	EventAssumed1x
	Event1x
	EventAssumedDry
	EventDry
	EventSuckling
	EventAbsent
	EventBarren
	EventAbort
	EventSick
	EventLame
	EventMastitis
	EventDead
	EventSoldInPreviousHerd
	EventSold
)

var otherEventKindNames = map[OtherEventKind]string{
	EventNoSample: "noSample", EventAssumed1x: "assumed1x", Event1x: "1x", EventAssumedDry: "assumedDry",
	EventDry: "dry", EventSuckling: "suckling", EventAbsent: "absent", EventBarren: "barren",
	EventAbort: "abort", EventSick: "sick", EventLame: "lame", EventMastitis: "mastitis",
	EventDead: "dead", EventSoldInPreviousHerd: "soldInPreviousHerd", EventSold: "sold",
}

func (k OtherEventKind) Valid() bool { return known(otherEventKindNames, k) }
func (k OtherEventKind) String() string { return enumName(otherEventKindNames, k) }
