// Package codectest builds well-formed Datastream lines for tests.
package codectest

import (
	"fmt"

	"github.com/barnettben/Datastream/pkg/codec"
)

// Value places text at a field offset
type Value struct {
	At   int
	Text string
}

// V is shorthand for a Value
func V(at int, text string) Value {
	return Value{At: at, Text: text}
}

// Line lays the values out on a blank record, separates the identifier
// with a comma the way real files do and appends the correct checksum.
// It panics if a value would overwrite the checksum field.
func Line(id codec.Identifier, values ...Value) string {
	body := []byte(fmt.Sprintf("%-*s", codec.ChecksumOffset, ""))
	copy(body, id)
	body[codec.IdentifierLength] = ','
	for _, v := range values {
		if v.At < codec.IdentifierLength || v.At+len(v.Text) > codec.ChecksumOffset {
			panic(fmt.Sprintf("codectest: value %q at %d does not fit", v.Text, v.At))
		}
		copy(body[v.At:], v.Text)
	}
	return WithChecksum(string(body))
}

// WithChecksum appends the computed checksum to a 71 character body
func WithChecksum(body string) string {
	return body + codec.FormatChecksum(codec.ComputeChecksum(body))
}

// Sample returns a valid line for any known identifier
func Sample(id codec.Identifier) string {
	values, ok := samples[id]
	if !ok {
		values = samplesBySection(id)
	}
	return Line(id, values...)
}

// Override returns the sample line for id with some values replaced
func Override(id codec.Identifier, values ...Value) string {
	base, ok := samples[id]
	if !ok {
		base = samplesBySection(id)
	}
	return Line(id, append(append([]Value{}, base...), values...)...)
}

// Real lines taken from a demonstration file
const (
	RealNMRDetails   = "H1,69,01,15,14,11,00,00,00,00,00,89000,01,FOR DEMO USE ONLY   ,880201,,03750"
	RealAddress      = "H4,                                   ,                               ,02368"
	RealBreedDetails = "W4,01,01,HOLSTEIN                 ,HF,280,001,030,750,999,            ,03274"
)

var (
	address = []Value{V(3, "1 DEMO FARM")}
	private = []Value{V(3, "PRIVATE")}
	leader  = []Value{V(3, "12"), V(6, "34567"), V(12, "01")}
	pta     = []Value{
		V(3, "01"), V(6, "01"), V(9, "230801"), V(16, "00250"), V(22, "00105"),
		V(28, "00090"), V(34, "00012"), V(40, "-0005"), V(46, "75"),
	}
	otherEvent = []Value{V(3, "231010"), V(10, "0")}
	totals     = []Value{
		V(3, "1"), V(5, "0"), V(7, "085000"), V(14, "034000"), V(21, "028000"), V(28, "039000"),
		V(35, "3050"), V(40, "0000"), V(45, "0000"), V(50, "230710"), V(57, "03"), V(60, "10"),
		V(63, "0150"), V(68, "02"),
	}
)

func samplesBySection(id codec.Identifier) []Value {
	switch id {
	case codec.IDAddress1, codec.IDAddress2, codec.IDAddress3, codec.IDAddress4, codec.IDAddress5:
		return address
	case codec.IDHerdPrivate1, codec.IDHerdPrivate2, codec.IDHerdPrivate3, codec.IDHerdPrivate4,
		codec.IDStatementPrivateNMR, codec.IDStatementPrivateMMB:
		return private
	case codec.IDStatementLeader, codec.IDLactationLeader:
		return leader
	case codec.IDLactation305Totals, codec.IDLactationNaturalTotals:
		return totals
	}
	s, err := codec.ShapeFor(id)
	if err != nil {
		panic(fmt.Sprintf("codectest: no sample for %s", id))
	}
	switch s.Name() {
	case "PTA":
		return pta
	case "OtherEvent":
		return otherEvent
	}
	panic(fmt.Sprintf("codectest: no sample for %s", id))
}

var samples = map[codec.Identifier][]Value{
	codec.IDNMRDetails: {
		V(3, "69"), V(6, "01"), V(9, "15"), V(12, "14"), V(15, "11"), V(33, "89000"), V(39, "01"),
		V(42, "FOR DEMO USE ONLY"), V(63, "880201"),
	},
	codec.IDServiceIndicators: {
		V(3, "DEMOSHIRE"), V(29, "AB1 2CD"), V(52, "A"), V(54, "1"), V(56, "0"), V(64, "1"), V(66, "0"),
	},
	codec.IDServiceIndicatorsContinued: {V(3, "1"), V(49, "1")},
	codec.IDRecordingPart1: {
		V(3, "240115"), V(10, "14"), V(16, "0120"), V(21, "0100"), V(26, "0000"), V(31, "025000"),
		V(38, "0100000"), V(46, "0085000"), V(54, "0120000"), V(62, "0"), V(64, "0"), V(66, "1"),
	},
	codec.IDRecordingPart2: {
		V(3, "02400"), V(9, "0410"), V(14, "0330"), V(19, "0460"), V(24, "000100"), V(51, "0150"),
	},
	codec.IDAnimalIdentity: {
		V(3, "12"), V(6, "34567"), V(12, "01"), V(15, "0"), V(17, "0042"), V(22, "01"),
		V(25, "UK1234567890"), V(38, "2"), V(40, "1"), V(42, "0"), V(44, "0"),
	},
	codec.IDAnimalOtherDetails: {
		V(3, "01"), V(6, "UK1234567890"), V(19, "190301"), V(26, "0"), V(28, "190301"), V(42, "0"),
	},
	codec.IDAnimalName: {V(3, "DAISY"), V(24, "DEMO DAISY 42")},
	codec.IDAnimalSireDam: {
		V(3, "01"), V(6, "HOLUSA000123"), V(19, "3"), V(23, "01"), V(26, "UK0987654321"),
		V(39, "2"), V(41, "1"), V(43, "0"),
	},
	codec.IDCowIdentity: {
		V(3, "0"), V(5, "0042"), V(10, "0"), V(12, "01"), V(15, "03"), V(18, "03"), V(21, "01"),
		V(24, "0"), V(26, "230915"), V(33, "01"), V(36, "HOLUSA000123"), V(49, "3"), V(51, "0"),
		V(53, "060"),
	},
	codec.IDWeighing: {
		V(3, "240115"), V(10, "0"), V(12, "2"), V(16, "0325"), V(21, "0410"), V(26, "0330"),
		V(31, "0460"), V(46, "0150"),
	},
	codec.IDService: {
		V(3, "231201"), V(10, "0"), V(15, "01"), V(18, "HOLUSA000456"), V(31, "0"), V(37, "2"),
	},
	codec.IDActualCalving: {
		V(3, "230915"), V(10, "0"),
		V(15, "01"), V(18, "UK1111111111"), V(31, "2"), V(33, "0"), V(35, "H"),
		V(37, "00"), V(53, "0"), V(55, "0"),
	},
	codec.IDThirdCalf:      {V(3, "01"), V(6, "UK2222222222"), V(19, "2"), V(21, "0"), V(23, "B")},
	codec.IDAssumedCalving: {V(3, "230915")},
	codec.IDCurrentLactation: {
		V(3, "1230"), V(8, "085000"), V(15, "034000"), V(22, "028000"), V(29, "039000"),
		V(36, "0400"), V(41, "0330"), V(46, "0460"), V(51, "002500"), V(58, "2950"), V(63, "G"),
		V(65, "0150"),
	},
	codec.IDCompletedLactation: {
		V(3, "0"), V(5, "0042"), V(10, "02"), V(13, "01"), V(16, "0"), V(18, "1"), V(20, "0"),
		V(22, "060"), V(26, "02"), V(29, "02"), V(32, "00"), V(35, "0000"), V(40, "0000"),
		V(45, "000100"), V(52, "000100"), V(59, "00"), V(62, "01"), V(65, "00"),
	},
	codec.IDCalvingDetails: {
		V(3, "365"), V(7, "036"), V(11, "220901"), V(18, "0"), V(20, "01"), V(23, "HOLUSA000123"),
		V(36, "3"), V(38, "0"), V(42, "01"), V(45, "UK3333333333"), V(58, "2"), V(60, "0"), V(62, "H"),
	},
	codec.IDCalvingExtraCalves: {
		V(3, "01"), V(6, "UK4444444444"), V(19, "2"), V(21, "0"), V(23, "B"),
		V(25, "00"), V(41, "0"), V(43, "0"),
	},
	codec.IDBullDetails: {V(3, "01"), V(6, "HOLUSA000123"), V(19, "DEMO SIRE"), V(60, "SIRE")},
	codec.IDDeadDamDetails: {
		V(3, "01"), V(6, "UK0987654321"), V(19, "2"), V(21, "1"), V(23, "0"), V(28, "DEMO DAM"),
	},
	codec.IDWeighingCalendarLeader: {V(3, "2401"), V(8, "2412")},
	codec.IDWeighingCalendarQuarter: {
		V(3, "24"), V(6, "14"), V(9, "01"), V(12, "01"), V(15, "15"), V(18, "16"),
		V(23, "24"), V(26, "14"), V(29, "02"), V(32, "02"), V(35, "12"), V(38, "13"),
		V(43, "24"), V(46, "14"), V(49, "03"), V(52, "03"), V(55, "11"), V(58, "12"),
	},
	codec.IDWeighingCalendarTrailer: {V(3, "0004")},
	codec.IDBreedDetails1: {
		V(3, "01"), V(6, "01"), V(9, "HOLSTEIN"), V(35, "HF"), V(38, "280"), V(42, "001"),
		V(46, "030"), V(50, "750"), V(54, "999"),
	},
	codec.IDBreedDetails2: {
		V(3, "0150"), V(8, "0250"), V(13, "0600"), V(18, "0900"),
		V(23, "0200"), V(28, "0280"), V(33, "0450"), V(38, "0600"),
		V(43, "0350"), V(48, "0420"), V(53, "0520"), V(58, "0600"),
	},
	codec.IDBreedDetails3: {V(3, "12000"), V(9, "15000"), V(15, "14000"), V(21, "18000")},
}
