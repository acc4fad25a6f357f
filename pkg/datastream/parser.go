package datastream

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/barnettben/Datastream/pkg/breed"
	"github.com/barnettben/Datastream/pkg/codec"
	"github.com/barnettben/Datastream/pkg/stream"
)

// Options configures a parse
type Options struct {
	Strict bool            // Validate length and checksum of every record before decoding
	Breeds *breed.Registry // Registry to resolve and merge breeds into; a fresh seeded one if nil
	Logger *zap.Logger     // Defaults to a no-op logger
}

type state int

const (
	stateHerdDetails state = iota
	stateHerdRecordings
	stateAnimals
	stateStatementsLeader
	stateStatements
	stateLactations
	stateBulls
	stateDeadDams
	stateWeighingCalendar
	stateBreeds
	stateDone
)

var stateNames = [...]string{
	stateHerdDetails:      "herd details",
	stateHerdRecordings:   "herd recordings",
	stateAnimals:          "animals",
	stateStatementsLeader: "statements leader",
	stateStatements:       "statements",
	stateLactations:       "lactations",
	stateBulls:            "bulls",
	stateDeadDams:         "dead dams",
	stateWeighingCalendar: "weighing calendar",
	stateBreeds:           "breeds",
	stateDone:             "done",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// lineTracker is implemented by sources that know the physical line of the
// last record they produced
type lineTracker interface {
	Line() int
}

type parser struct {
	cur    *stream.Cursor
	lines  lineTracker
	breeds *breed.Registry
	log    *zap.Logger
	doc    *Document

	// first physical line of the group being collected, 0 if unknown
	batchLine int
}

// Parse reads a whole Datastream file from src and assembles it into a
// Document. Parsing is fail-fast: the first decode or structural error is
// returned and no partial document is produced.
func Parse(ctx context.Context, src stream.RecordSource, opts Options) (*Document, error) {
	breeds := opts.Breeds
	if breeds == nil {
		breeds = breed.NewRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	p := &parser{
		cur:    stream.NewCursor(src),
		breeds: breeds,
		log:    log,
		doc:    newDocument(breeds),
	}
	p.lines, _ = src.(lineTracker)

	if err := p.run(ctx); err != nil {
		var cerr *codec.Error
		if errors.As(err, &cerr) && cerr.Line == 0 && p.lines != nil {
			cerr.Line = p.lines.Line()
		}
		return nil, err
	}
	return p.doc, nil
}

// ParseReader parses a Datastream file from r
func ParseReader(ctx context.Context, r io.Reader, opts Options) (*Document, error) {
	return Parse(ctx, stream.NewRecordReaderFrom(r, opts.Strict), opts)
}

// ParseFile opens and parses the Datastream file at path
func ParseFile(ctx context.Context, path string, opts Options) (*Document, error) {
	reader, err := stream.NewRecordReader(stream.ReaderConfig{FilePath: path, Strict: opts.Strict})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer reader.Close()

	return Parse(ctx, reader, opts)
}

func (p *parser) run(ctx context.Context) error {
	st := stateHerdDetails
	for st != stateDone {
		next, err := p.step(ctx, st)
		if err != nil {
			return err
		}
		st = next
	}

	rec, ok, err := p.peek(ctx)
	if err != nil {
		return err
	}
	if ok {
		id := rec.RecordHeader().ID
		return codec.Malformed(string(id), "unexpected %s record after the breed section", id)
	}
	return nil
}

func (p *parser) step(ctx context.Context, st state) (state, error) {
	switch st {
	case stateHerdDetails:
		if _, err := p.expectLead(ctx, codec.IDNMRDetails, st); err != nil {
			return st, err
		}
		batch, err := p.collect(ctx, codec.IDRecordingPart1)
		if err != nil {
			return st, err
		}
		details, err := p.buildHerdDetails(batch)
		if err != nil {
			return st, p.atBatch(err)
		}
		p.doc.HerdDetails = details
		p.done(st, 1)
		return stateHerdRecordings, nil

	case stateHerdRecordings:
		err := repeating(ctx, p, codec.IDRecordingPart1, st, p.buildHerdRecording, &p.doc.Recordings)
		return stateAnimals, err

	case stateAnimals:
		err := repeating(ctx, p, codec.IDAnimalIdentity, st, p.buildAnimal, &p.doc.Animals)
		return stateStatementsLeader, err

	case stateStatementsLeader:
		leader, err := p.leader(ctx, codec.IDStatementLeader)
		if err != nil {
			return st, err
		}
		p.doc.NMRHerdNumber = leader.HerdNumber()
		return stateStatements, nil

	case stateStatements:
		err := repeating(ctx, p, codec.IDCowIdentity, st, p.buildStatement, &p.doc.Statements)
		return stateLactations, err

	case stateLactations:
		present, err := p.sectionAhead(ctx, codec.SectionLactation)
		if err != nil || !present {
			return stateBulls, err
		}
		if _, err := p.leader(ctx, codec.IDLactationLeader); err != nil {
			return st, err
		}
		err = repeating(ctx, p, codec.IDCompletedLactation, st, p.buildLactation, &p.doc.Lactations)
		return stateBulls, err

	case stateBulls:
		present, err := p.sectionAhead(ctx, codec.SectionBull)
		if err != nil || !present {
			return stateDeadDams, err
		}
		err = repeating(ctx, p, codec.IDBullDetails, st, p.buildBull, &p.doc.Bulls)
		return stateDeadDams, err

	case stateDeadDams:
		present, err := p.sectionAhead(ctx, codec.SectionDeadDam)
		if err != nil || !present {
			return stateWeighingCalendar, err
		}
		err = repeating(ctx, p, codec.IDDeadDamDetails, st, p.buildDeadDam, &p.doc.DeadDams)
		return stateWeighingCalendar, err

	case stateWeighingCalendar:
		calendar, err := p.parseWeighingCalendar(ctx)
		if err != nil {
			return st, err
		}
		p.doc.WeighingCalendar = calendar
		p.done(st, len(calendar.WeighingDates))
		return stateBreeds, nil

	case stateBreeds:
		err := repeating(ctx, p, codec.IDBreedDetails1, st, p.mergeBreed, &p.doc.Breeds)
		return stateDone, err
	}
	return st, fmt.Errorf("parser in unexpected state %s", st)
}

// repeating collects groups opened by lead until the section ends, building
// one entity per group. The next record must be lead.
func repeating[T any](ctx context.Context, p *parser, lead codec.Identifier, st state,
	build func([]codec.Record) (T, error), out *[]T) error {
	if _, err := p.expectLead(ctx, lead, st); err != nil {
		return err
	}
	for {
		batch, err := p.collect(ctx, lead)
		if err != nil {
			return err
		}
		if batch == nil {
			break
		}
		item, err := build(batch)
		if err != nil {
			return p.atBatch(err)
		}
		*out = append(*out, item)
	}
	p.done(st, len(*out))
	return nil
}

// collect gathers the records of one group. It returns nil once the next
// record is outside lead's section. Otherwise it consumes records until the
// next one is lead again or belongs to another section.
func (p *parser) collect(ctx context.Context, lead codec.Identifier) ([]codec.Record, error) {
	section := lead.Section()
	present, err := p.sectionAhead(ctx, section)
	if err != nil || !present {
		return nil, err
	}
	p.batchLine = 0
	if p.lines != nil {
		p.batchLine = p.lines.Line()
	}

	var batch []codec.Record
	for {
		rec, err := p.cur.Next(ctx)
		if err != nil {
			return nil, err
		}
		batch = append(batch, rec)

		next, ok, err := p.peek(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return batch, nil
		}
		id := next.RecordHeader().ID
		if id == lead || id.Section() != section {
			return batch, nil
		}
	}
}

// atBatch points an assembly error at the first line of the group it came from
func (p *parser) atBatch(err error) error {
	var cerr *codec.Error
	if errors.As(err, &cerr) && cerr.Line == 0 && p.batchLine > 0 {
		cerr.Line = p.batchLine
	}
	return err
}

// peek returns the next record. ok is false at the end of the stream.
func (p *parser) peek(ctx context.Context) (rec codec.Record, ok bool, err error) {
	rec, err = p.cur.Peek(ctx)
	if errors.Is(err, io.EOF) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

func (p *parser) sectionAhead(ctx context.Context, section codec.Section) (bool, error) {
	rec, ok, err := p.peek(ctx)
	if err != nil || !ok {
		return false, err
	}
	return rec.RecordHeader().ID.Section() == section, nil
}

// expectLead checks that the next record is lead without consuming it
func (p *parser) expectLead(ctx context.Context, lead codec.Identifier, st state) (codec.Record, error) {
	rec, ok, err := p.peek(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, codec.Malformed("", "unexpected end of input, expected %s to start %s", lead, st)
	}
	if id := rec.RecordHeader().ID; id != lead {
		return nil, codec.Malformed(string(id), "expected %s to start %s, found %s", lead, st, id)
	}
	return rec, nil
}

// next consumes the next record, which must be id
func (p *parser) next(ctx context.Context, id codec.Identifier) (codec.Record, error) {
	rec, err := p.cur.Next(ctx)
	if errors.Is(err, io.EOF) {
		return nil, codec.Malformed("", "unexpected end of input, expected %s", id)
	}
	if err != nil {
		return nil, err
	}
	if got := rec.RecordHeader().ID; got != id {
		return nil, codec.Malformed(string(got), "expected %s, found %s", id, got)
	}
	return rec, nil
}

func (p *parser) leader(ctx context.Context, id codec.Identifier) (*codec.HerdNumberRecord, error) {
	rec, err := p.next(ctx, id)
	if err != nil {
		return nil, err
	}
	leader, ok := rec.(*codec.HerdNumberRecord)
	if !ok {
		return nil, codec.Malformed(string(id), "missing leader record %s", id)
	}
	return leader, nil
}

func (p *parser) parseWeighingCalendar(ctx context.Context) (WeighingCalendar, error) {
	rec, err := p.next(ctx, codec.IDWeighingCalendarLeader)
	if err != nil {
		return WeighingCalendar{}, err
	}
	w1 := rec.(*codec.CalendarLeaderRecord)

	calendar := WeighingCalendar{
		StartDate:     w1.StartDate,
		EndDate:       w1.EndDate,
		WeighingDates: []WeighingDate{},
	}

	quarters := 0
	for {
		next, ok, err := p.peek(ctx)
		if err != nil {
			return WeighingCalendar{}, err
		}
		if !ok || next.RecordHeader().ID != codec.IDWeighingCalendarQuarter {
			break
		}
		if _, err := p.cur.Next(ctx); err != nil {
			return WeighingCalendar{}, err
		}
		quarters++
		for _, slot := range next.(*codec.CalendarQuarterRecord).Slots {
			if slot.Empty {
				continue
			}
			calendar.WeighingDates = append(calendar.WeighingDates, WeighingDate{
				RecordingYear: slot.Year,
				Sequence:      slot.Sequence,
				SequenceMonth: slot.SequenceMonth,
				CalendarMonth: slot.CalendarMonth,
				PMDay:         slot.PMDay,
				AMDay:         slot.AMDay,
			})
		}
	}

	rec, err = p.next(ctx, codec.IDWeighingCalendarTrailer)
	if err != nil {
		return WeighingCalendar{}, err
	}
	if declared := rec.(*codec.CalendarTrailerRecord).NumberOfQuarters; declared != quarters {
		return WeighingCalendar{}, codec.Malformed(string(codec.IDWeighingCalendarTrailer),
			"number of W2 records (%d) does not match W3 value (%d)", quarters, declared)
	}
	return calendar, nil
}

func (p *parser) done(st state, count int) {
	p.log.Debug("Section parsed", zap.Stringer("section", st), zap.Int("count", count))
}
