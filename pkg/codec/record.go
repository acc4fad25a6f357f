package codec

import (
	"fmt"
	"slices"
)

// Header holds the parts every record shares
type Header struct {
	ID              Identifier `json:"identifier"`
	Checksum        int        `json:"checksum"`
	ChecksumIsValid bool       `json:"checksumIsValid"`
}

// RecordHeader returns the shared header of a record
func (h Header) RecordHeader() Header {
	return h
}

// Record is a decoded line. Concrete values are pointers to one of the
// record structs in this package; use a type switch to get at the fields.
type Record interface {
	RecordHeader() Header
}

// Shape is the decoder for one record layout. Several identifiers can share a shape.
type Shape struct {
	name   string
	ids    []Identifier
	decode func(h Header, r *fieldReader) Record
}

// Name returns the name of the record layout
func (s *Shape) Name() string {
	return s.name
}

// Identifiers returns the identifiers this shape can represent
func (s *Shape) Identifiers() []Identifier {
	return slices.Clone(s.ids)
}

// Represents reports whether id may be decoded with this shape
func (s *Shape) Represents(id Identifier) bool {
	return slices.Contains(s.ids, id)
}

// Decode decodes a 76 character line. It panics if the line's identifier
// cannot be represented by this shape, which means the dispatch table is wrong.
func (s *Shape) Decode(line string) (Record, error) {
	if !ValidateLength(line) {
		return nil, NewError(CodeInvalidLength, line, "expected %d ASCII characters, found %d", RecordLength, len(line))
	}
	id := Identifier(line[:IdentifierLength])
	if !s.Represents(id) {
		panic(fmt.Sprintf("codec: shape %s cannot represent identifier %s", s.name, id))
	}
	checksum, err := ParseChecksum(line)
	if err != nil {
		return nil, err
	}
	h := Header{
		ID:              id,
		Checksum:        checksum,
		ChecksumIsValid: checksum == ComputeChecksum(line),
	}
	r := newFieldReader(line)
	rec := s.decode(h, r)
	if r.err != nil {
		if e, ok := r.err.(*Error); ok && e.Message != "" {
			e.Message = fmt.Sprintf("%s: %s", id, e.Message)
		}
		return nil, r.err
	}
	return rec, nil
}

func shape(name string, decode func(Header, *fieldReader) Record, ids ...Identifier) *Shape {
	return &Shape{name: name, ids: ids, decode: decode}
}

var shapes = []*Shape{
	shape("NMRDetails", decodeNMRDetails, IDNMRDetails),
	shape("Address", decodeAddress, IDAddress1, IDAddress2, IDAddress3, IDAddress4, IDAddress5),
	shape("ServiceIndicators", decodeServiceIndicators, IDServiceIndicators),
	shape("ServiceIndicatorsContinued", decodeServiceIndicatorsContinued, IDServiceIndicatorsContinued),
	shape("Private", decodePrivate,
		IDHerdPrivate1, IDHerdPrivate2, IDHerdPrivate3, IDHerdPrivate4, IDStatementPrivateNMR, IDStatementPrivateMMB),
	shape("RecordingPart1", decodeRecordingPart1, IDRecordingPart1),
	shape("RecordingPart2", decodeRecordingPart2, IDRecordingPart2),
	shape("AnimalIdentity", decodeAnimalIdentity, IDAnimalIdentity),
	shape("AnimalOtherDetails", decodeAnimalOtherDetails, IDAnimalOtherDetails),
	shape("AnimalName", decodeAnimalName, IDAnimalName),
	shape("AnimalSireDam", decodeAnimalSireDam, IDAnimalSireDam),
	shape("PTA", decodePTA,
		IDAnimalPTA1, IDAnimalPTA2, IDAnimalPTA3, IDAnimalPTA4,
		IDBullPTA1, IDBullPTA2, IDBullPTA3, IDBullPTA4, IDBullPTA5, IDBullPTA6, IDBullPTA7,
		IDDeadDamPTA1, IDDeadDamPTA2, IDDeadDamPTA3, IDDeadDamPTA4, IDDeadDamPTA5, IDDeadDamPTA6, IDDeadDamPTA7),
	shape("HerdNumber", decodeHerdNumber, IDStatementLeader, IDLactationLeader),
	shape("CowIdentity", decodeCowIdentity, IDCowIdentity),
	shape("Weighing", decodeWeighing, IDWeighing),
	shape("Service", decodeService, IDService),
	shape("ActualCalving", decodeActualCalving, IDActualCalving),
	shape("ThirdCalf", decodeThirdCalf, IDThirdCalf),
	shape("AssumedCalving", decodeAssumedCalving, IDAssumedCalving),
	shape("OtherEvent", decodeOtherEvent,
		IDNoSample, IDAssumed1x, ID1x, IDAssumedDry, IDDry, IDSuckling, IDAbsent, IDBarren,
		IDAbort, IDSick, IDLame, IDMastitis, IDDead, IDSoldInPreviousHerd, IDSold),
	shape("CurrentLactation", decodeCurrentLactation, IDCurrentLactation),
	shape("CompletedLactation", decodeCompletedLactation, IDCompletedLactation),
	shape("CalvingDetails", decodeCalvingDetails, IDCalvingDetails),
	shape("ExtraCalves", decodeExtraCalves, IDCalvingExtraCalves),
	shape("LactationTotals", decodeLactationTotals, IDLactation305Totals, IDLactationNaturalTotals),
	shape("BullDetails", decodeBullDetails, IDBullDetails),
	shape("DeadDamDetails", decodeDeadDamDetails, IDDeadDamDetails),
	shape("CalendarLeader", decodeCalendarLeader, IDWeighingCalendarLeader),
	shape("CalendarQuarter", decodeCalendarQuarter, IDWeighingCalendarQuarter),
	shape("CalendarTrailer", decodeCalendarTrailer, IDWeighingCalendarTrailer),
	shape("BreedDetails1", decodeBreedDetails1, IDBreedDetails1),
	shape("BreedDetails2", decodeBreedDetails2, IDBreedDetails2),
	shape("BreedDetails3", decodeBreedDetails3, IDBreedDetails3),
}

// registry maps every identifier to its shape. Building it panics if the
// table is inconsistent with the identifier list.
var registry = buildRegistry(shapes, Identifiers)

func buildRegistry(shapes []*Shape, ids []Identifier) map[Identifier]*Shape {
	reg := make(map[Identifier]*Shape, len(ids))
	for _, s := range shapes {
		for _, id := range s.ids {
			if prev, ok := reg[id]; ok {
				panic(fmt.Sprintf("codec: identifier %s mapped to both %s and %s", id, prev.name, s.name))
			}
			reg[id] = s
		}
	}
	for _, id := range ids {
		if _, ok := reg[id]; !ok {
			panic(fmt.Sprintf("codec: identifier %s has no shape", id))
		}
	}
	if len(reg) != len(ids) {
		panic("codec: shape table lists identifiers that are not known")
	}
	return reg
}

// ShapeFor returns the decoder responsible for id
func ShapeFor(id Identifier) (*Shape, error) {
	s, ok := registry[id]
	if !ok {
		return nil, NewError(CodeUnknownIdentifier, string(id), "no record type for identifier")
	}
	return s, nil
}

// RecordCodec turns raw lines into records
type RecordCodec struct {
	strict bool
}

// NewRecordCodec creates a codec that decodes eagerly and reports checksum
// validity on the record header
func NewRecordCodec() *RecordCodec {
	return &RecordCodec{}
}

// NewStrictRecordCodec creates a codec that rejects records with a bad
// length or checksum before decoding them
func NewStrictRecordCodec() *RecordCodec {
	return &RecordCodec{strict: true}
}

// Strict reports whether the codec validates checksums before decoding
func (c *RecordCodec) Strict() bool {
	return c.strict
}

// Validate checks the length and checksum of a line
func (c *RecordCodec) Validate(line string) error {
	if !ValidateLength(line) {
		return NewError(CodeInvalidLength, line, "expected %d ASCII characters, found %d", RecordLength, len(line))
	}
	if !ValidateChecksum(line) {
		return NewError(CodeInvalidChecksum, line, "checksum does not match content (computed %s)", FormatChecksum(ComputeChecksum(line)))
	}
	return nil
}

// Decode dispatches a line to the decoder for its identifier
func (c *RecordCodec) Decode(line string) (Record, error) {
	if c.strict {
		if err := c.Validate(line); err != nil {
			return nil, err
		}
	} else if !ValidateLength(line) {
		return nil, NewError(CodeInvalidLength, line, "expected %d ASCII characters, found %d", RecordLength, len(line))
	}

	id, err := ParseIdentifier(line)
	if err != nil {
		return nil, err
	}
	s, err := ShapeFor(id)
	if err != nil {
		return nil, err
	}
	rec, err := s.Decode(line)
	if err != nil {
		if e, ok := err.(*Error); ok && e.Code == CodeInvalidContentType && e.Context == "" {
			e.Context = line
		}
		return nil, err
	}
	return rec, nil
}
