// Package datastreamtest provides small, valid Datastream files for tests
// of the packages built on the parser.
package datastreamtest

import (
	"fmt"
	"strings"

	"github.com/barnettben/Datastream/pkg/codec"
	"github.com/barnettben/Datastream/pkg/codec/codectest"
)

// Lines returns the records of a file with one recording, the given
// animals and statements for each, a four quarter calendar and one breed
func Lines(lineNumbers ...string) []string {
	if len(lineNumbers) == 0 {
		lineNumbers = []string{"0042"}
	}

	ids := []codec.Identifier{
		codec.IDNMRDetails, codec.IDAddress1, codec.IDServiceIndicators, codec.IDServiceIndicatorsContinued,
		codec.IDRecordingPart1, codec.IDRecordingPart2,
	}
	var lines []string
	for _, id := range ids {
		lines = append(lines, codectest.Sample(id))
	}

	for _, n := range lineNumbers {
		lines = append(lines,
			codectest.Override(codec.IDAnimalIdentity, codectest.V(17, n)),
			codectest.Sample(codec.IDAnimalOtherDetails),
			codectest.Sample(codec.IDAnimalName),
			codectest.Sample(codec.IDAnimalSireDam),
			codectest.Sample(codec.IDAnimalPTA1),
		)
	}

	lines = append(lines, codectest.Sample(codec.IDStatementLeader))
	for _, n := range lineNumbers {
		lines = append(lines,
			codectest.Override(codec.IDCowIdentity, codectest.V(5, n)),
			codectest.Sample(codec.IDCurrentLactation),
		)
	}

	lines = append(lines, codectest.Sample(codec.IDWeighingCalendarLeader))
	for i := 0; i < 4; i++ {
		lines = append(lines, codectest.Sample(codec.IDWeighingCalendarQuarter))
	}
	lines = append(lines,
		codectest.Sample(codec.IDWeighingCalendarTrailer),
		codectest.Sample(codec.IDBreedDetails1),
		codectest.Sample(codec.IDBreedDetails2),
		codectest.Sample(codec.IDBreedDetails3),
	)
	return lines
}

// File joins Lines with CRLF terminators the way exported files are written
func File(lineNumbers ...string) string {
	return strings.Join(Lines(lineNumbers...), "\r\n") + "\r\n"
}

// Broken returns a file whose animal section is missing its PTA record
func Broken() string {
	lines := Lines()
	for i, l := range lines {
		if strings.HasPrefix(l, string(codec.IDAnimalPTA1)) {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "\r\n") + "\r\n"
		}
	}
	panic(fmt.Sprintf("datastreamtest: no %s record", codec.IDAnimalPTA1))
}
