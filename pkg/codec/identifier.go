package codec

import (
	"fmt"
)

// Section groups records by the first character of their identifier
type Section byte

const (
	SectionHerd             Section = 'H'
	SectionAnimal           Section = 'C'
	SectionStatement        Section = 'S'
	SectionLactation        Section = 'L'
	SectionBull             Section = 'B'
	SectionDeadDam          Section = 'D'
	SectionBreedAndCalendar Section = 'W'
)

var sectionNames = map[Section]string{
	SectionHerd:             "herd",
	SectionAnimal:           "animal",
	SectionStatement:        "statement",
	SectionLactation:        "lactation",
	SectionBull:             "bullIdentity",
	SectionDeadDam:          "damIdentity",
	SectionBreedAndCalendar: "breedAndCalendar",
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Section(%q)", byte(s))
}

// Identifier is the two character record type code at the start of every record
type Identifier string

const (
	IDNMRDetails                 Identifier = "H1"
	IDAddress1                   Identifier = "H2"
	IDAddress2                   Identifier = "H3"
	IDAddress3                   Identifier = "H4"
	IDAddress4                   Identifier = "H5"
	IDAddress5                   Identifier = "H6"
	IDServiceIndicators          Identifier = "H7"
	IDServiceIndicatorsContinued Identifier = "H8"
	IDHerdPrivate1               Identifier = "H9"
	IDHerdPrivate2               Identifier = "HA"
	IDHerdPrivate3               Identifier = "HB"
	IDHerdPrivate4               Identifier = "HC"
	IDRecordingPart1             Identifier = "HD"
	IDRecordingPart2             Identifier = "HE"
	IDAnimalIdentity             Identifier = "C1"
	IDAnimalOtherDetails         Identifier = "C2"
	IDAnimalName                 Identifier = "C3"
	IDAnimalSireDam              Identifier = "C4"
	IDAnimalPTA1                 Identifier = "C5"
	IDAnimalPTA2                 Identifier = "C6"
	IDAnimalPTA3                 Identifier = "C7"
	IDAnimalPTA4                 Identifier = "C8"
	IDStatementLeader            Identifier = "S0"
	IDCowIdentity                Identifier = "S1"
	IDStatementPrivateNMR        Identifier = "S2"
	IDWeighing                   Identifier = "S3"
	IDService                    Identifier = "S4"
	IDActualCalving              Identifier = "S5"
	IDThirdCalf                  Identifier = "S6"
	IDAssumedCalving             Identifier = "S7"
	IDNoSample                   Identifier = "S8"
	IDAssumed1x                  Identifier = "S9"
	ID1x                         Identifier = "SA"
	IDAssumedDry                 Identifier = "SB"
	IDDry                        Identifier = "SC"
	IDSuckling                   Identifier = "SD"
	IDAbsent                     Identifier = "SE"
	IDBarren                     Identifier = "SF"
	IDAbort                      Identifier = "SG"
	IDSick                       Identifier = "SH"
	IDLame                       Identifier = "SI"
	IDMastitis                   Identifier = "SJ"
	IDDead                       Identifier = "SK"
	IDSoldInPreviousHerd         Identifier = "SL"
	IDSold                       Identifier = "SM"
	IDCurrentLactation           Identifier = "SX"
	IDStatementPrivateMMB        Identifier = "SZ"
	IDLactationLeader            Identifier = "L0"
	IDCompletedLactation         Identifier = "L1"
	IDCalvingDetails             Identifier = "L2"
	IDCalvingExtraCalves         Identifier = "L3"
	IDLactation305Totals         Identifier = "L4"
	IDLactationNaturalTotals     Identifier = "L5"
	IDBullDetails                Identifier = "B1"
	IDBullPTA1                   Identifier = "B2"
	IDBullPTA2                   Identifier = "B3"
	IDBullPTA3                   Identifier = "B4"
	IDBullPTA4                   Identifier = "B5"
	IDBullPTA5                   Identifier = "B6"
	IDBullPTA6                   Identifier = "B7"
	IDBullPTA7                   Identifier = "B8"
	IDDeadDamDetails             Identifier = "D1"
	IDDeadDamPTA1                Identifier = "D2"
	IDDeadDamPTA2                Identifier = "D3"
	IDDeadDamPTA3                Identifier = "D4"
	IDDeadDamPTA4                Identifier = "D5"
	IDDeadDamPTA5                Identifier = "D6"
	IDDeadDamPTA6                Identifier = "D7"
	IDDeadDamPTA7                Identifier = "D8"
	IDWeighingCalendarLeader     Identifier = "W1"
	IDWeighingCalendarQuarter    Identifier = "W2"
	IDWeighingCalendarTrailer    Identifier = "W3"
	IDBreedDetails1              Identifier = "W4"
	IDBreedDetails2              Identifier = "W5"
	IDBreedDetails3              Identifier = "W6"
)

// Identifiers lists every known identifier in file order
var Identifiers = []Identifier{
	IDNMRDetails, IDAddress1, IDAddress2, IDAddress3, IDAddress4, IDAddress5,
	IDServiceIndicators, IDServiceIndicatorsContinued,
	IDHerdPrivate1, IDHerdPrivate2, IDHerdPrivate3, IDHerdPrivate4,
	IDRecordingPart1, IDRecordingPart2,
	IDAnimalIdentity, IDAnimalOtherDetails, IDAnimalName, IDAnimalSireDam,
	IDAnimalPTA1, IDAnimalPTA2, IDAnimalPTA3, IDAnimalPTA4,
	IDStatementLeader, IDCowIdentity, IDStatementPrivateNMR, IDWeighing, IDService,
	IDActualCalving, IDThirdCalf, IDAssumedCalving,
	IDNoSample, IDAssumed1x, ID1x, IDAssumedDry, IDDry, IDSuckling, IDAbsent, IDBarren,
	IDAbort, IDSick, IDLame, IDMastitis, IDDead, IDSoldInPreviousHerd, IDSold,
	IDCurrentLactation, IDStatementPrivateMMB,
	IDLactationLeader, IDCompletedLactation, IDCalvingDetails, IDCalvingExtraCalves,
	IDLactation305Totals, IDLactationNaturalTotals,
	IDBullDetails, IDBullPTA1, IDBullPTA2, IDBullPTA3, IDBullPTA4, IDBullPTA5, IDBullPTA6, IDBullPTA7,
	IDDeadDamDetails, IDDeadDamPTA1, IDDeadDamPTA2, IDDeadDamPTA3, IDDeadDamPTA4, IDDeadDamPTA5,
	IDDeadDamPTA6, IDDeadDamPTA7,
	IDWeighingCalendarLeader, IDWeighingCalendarQuarter, IDWeighingCalendarTrailer,
	IDBreedDetails1, IDBreedDetails2, IDBreedDetails3,
}

// Section returns the section an identifier belongs to
func (id Identifier) Section() Section {
	if id == "" {
		return 0
	}
	return Section(id[0])
}

// Known reports whether id is part of the closed set of identifiers
func (id Identifier) Known() bool {
	_, ok := registry[id]
	return ok
}

// ParseIdentifier reads the identifier at the start of a line
func ParseIdentifier(line string) (Identifier, error) {
	if len(line) < IdentifierLength {
		return "", NewError(CodeInvalidLength, line, "line too short for an identifier")
	}
	id := Identifier(line[:IdentifierLength])
	if !id.Known() {
		return "", NewError(CodeUnknownIdentifier, string(id), "no record type for identifier")
	}
	return id, nil
}
