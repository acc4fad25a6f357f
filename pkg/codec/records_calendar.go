package codec

import (
	"time"
)

const yearMonthLayout = "0601"

// CalendarLeaderRecord is the W1 record opening the weighing calendar
type CalendarLeaderRecord struct {
	Header
	StartDate time.Time `json:"startDate"` // first day of the start month
	EndDate   time.Time `json:"endDate"`   // last day of the end month
}

var calendarLeaderLayout = struct {
	Start, End Field
}{
	Start: NewField(3, 4),
	End:   NewField(8, 4),
}

func (r *fieldReader) yearMonth(f Field) time.Time {
	text := f.Text(r.line)
	t, err := time.Parse(yearMonthLayout, text)
	if err != nil {
		r.keep(f.contentError(text, "expected a yyMM month"))
	}
	return t
}

func decodeCalendarLeader(h Header, r *fieldReader) Record {
	l := &calendarLeaderLayout
	end := r.yearMonth(l.End)
	return &CalendarLeaderRecord{
		Header:    h,
		StartDate: r.yearMonth(l.Start),
		EndDate:   end.AddDate(0, 1, -1),
	}
}

// CalendarSlot is one weighing inside a W2 record
type CalendarSlot struct {
	Empty         bool `json:"empty,omitempty"`
	Year          int  `json:"year"`
	Sequence      int  `json:"sequence"`
	SequenceMonth int  `json:"sequenceMonth"`
	CalendarMonth int  `json:"calendarMonth"`
	PMDay         int  `json:"pmDay"`
	AMDay         int  `json:"amDay"`
}

// CalendarQuarterRecord is a W2 record holding three weighings
type CalendarQuarterRecord struct {
	Header
	Slots [3]CalendarSlot `json:"slots"`
}

type calendarSlotLayout struct {
	Year, Sequence, WeighMonth, CalendarMonth, PMDay, AMDay Field
}

func newCalendarSlotLayout(base int) calendarSlotLayout {
	return calendarSlotLayout{
		Year:          NewField(base, 2),
		Sequence:      NewField(base+3, 2),
		WeighMonth:    NewField(base+6, 2),
		CalendarMonth: NewField(base+9, 2),
		PMDay:         NewField(base+12, 2),
		AMDay:         NewField(base+15, 2),
	}
}

var calendarQuarterLayout = [3]calendarSlotLayout{
	newCalendarSlotLayout(3),
	newCalendarSlotLayout(23),
	newCalendarSlotLayout(43),
}

func (r *fieldReader) calendarSlot(l calendarSlotLayout) CalendarSlot {
	blank := true
	for _, f := range []Field{l.Year, l.Sequence, l.WeighMonth, l.CalendarMonth, l.PMDay, l.AMDay} {
		if f.Text(r.line) != "" {
			blank = false
			break
		}
	}
	if blank {
		return CalendarSlot{Empty: true}
	}
	return CalendarSlot{
		Year:          r.int(l.Year),
		Sequence:      r.int(l.Sequence),
		SequenceMonth: r.int(l.WeighMonth),
		CalendarMonth: r.int(l.CalendarMonth),
		PMDay:         r.int(l.PMDay),
		AMDay:         r.int(l.AMDay),
	}
}

func decodeCalendarQuarter(h Header, r *fieldReader) Record {
	rec := &CalendarQuarterRecord{Header: h}
	for i, l := range calendarQuarterLayout {
		rec.Slots[i] = r.calendarSlot(l)
	}
	return rec
}

// CalendarTrailerRecord is the W3 record closing the weighing calendar
type CalendarTrailerRecord struct {
	Header
	NumberOfQuarters int `json:"numberOfQuarters"`
}

var calendarTrailerQuarters = NewField(3, 4)

func decodeCalendarTrailer(h Header, r *fieldReader) Record {
	return &CalendarTrailerRecord{Header: h, NumberOfQuarters: r.int(calendarTrailerQuarters)}
}

// BreedDetails1Record is the W4 record: breed identity and daily yield limits
type BreedDetails1Record struct {
	Header
	Code                int     `json:"code"`
	EquivalentCode      int     `json:"equivalentCode"`
	Name                string  `json:"name"`
	Abbreviation        string  `json:"abbreviation"`
	GestationPeriod     int     `json:"gestationPeriod"`
	MinDailyYield       float64 `json:"minDailyYield"`
	LowDailyYieldQuery  float64 `json:"lowDailyYieldQuery"`
	HighDailyYieldQuery float64 `json:"highDailyYieldQuery"`
	MaxDailyYield       float64 `json:"maxDailyYield"`
}

var breedDetails1Layout = struct {
	Code, Equivalent, Name, Abbreviation, Gestation, MinDaily, LowQuery, HighQuery, MaxDaily Field
}{
	Code:         NewField(3, 2),
	Equivalent:   NewField(6, 2),
	Name:         NewField(9, 25),
	Abbreviation: NewField(35, 2),
	Gestation:    NewField(38, 3),
	MinDaily:     ScaledField(42, 3, 10),
	LowQuery:     ScaledField(46, 3, 10),
	HighQuery:    ScaledField(50, 3, 10),
	MaxDaily:     ScaledField(54, 3, 10),
}

func decodeBreedDetails1(h Header, r *fieldReader) Record {
	l := &breedDetails1Layout
	return &BreedDetails1Record{
		Header:              h,
		Code:                r.int(l.Code),
		EquivalentCode:      r.int(l.Equivalent),
		Name:                r.text(l.Name),
		Abbreviation:        r.text(l.Abbreviation),
		GestationPeriod:     r.int(l.Gestation),
		MinDailyYield:       r.float(l.MinDaily),
		LowDailyYieldQuery:  r.float(l.LowQuery),
		HighDailyYieldQuery: r.float(l.HighQuery),
		MaxDailyYield:       r.float(l.MaxDaily),
	}
}

// BreedDetails2Record is the W5 record: percentage limits for fat, protein and lactose
type BreedDetails2Record struct {
	Header
	MinFatPct           float64 `json:"minFatPct"`
	LowFatPctQuery      float64 `json:"lowFatPctQuery"`
	HighFatPctQuery     float64 `json:"highFatPctQuery"`
	MaxFatPct           float64 `json:"maxFatPct"`
	MinProteinPct       float64 `json:"minProteinPct"`
	LowProteinPctQuery  float64 `json:"lowProteinPctQuery"`
	HighProteinPctQuery float64 `json:"highProteinPctQuery"`
	MaxProteinPct       float64 `json:"maxProteinPct"`
	MinLactosePct       float64 `json:"minLactosePct"`
	LowLactosePctQuery  float64 `json:"lowLactosePctQuery"`
	HighLactosePctQuery float64 `json:"highLactosePctQuery"`
	MaxLactosePct       float64 `json:"maxLactosePct"`
}

// breedDetails2Layout holds twelve 4-digit percentages every 5 characters from offset 3
var breedDetails2Layout = func() [12]Field {
	var fields [12]Field
	for i := range fields {
		fields[i] = ScaledField(3+5*i, 4, 100)
	}
	return fields
}()

func decodeBreedDetails2(h Header, r *fieldReader) Record {
	l := &breedDetails2Layout
	return &BreedDetails2Record{
		Header:              h,
		MinFatPct:           r.float(l[0]),
		LowFatPctQuery:      r.float(l[1]),
		HighFatPctQuery:     r.float(l[2]),
		MaxFatPct:           r.float(l[3]),
		MinProteinPct:       r.float(l[4]),
		LowProteinPctQuery:  r.float(l[5]),
		HighProteinPctQuery: r.float(l[6]),
		MaxProteinPct:       r.float(l[7]),
		MinLactosePct:       r.float(l[8]),
		LowLactosePctQuery:  r.float(l[9]),
		HighLactosePctQuery: r.float(l[10]),
		MaxLactosePct:       r.float(l[11]),
	}
}

// BreedDetails3Record is the W6 record: lactation yield limits
type BreedDetails3Record struct {
	Header
	High305dYieldQuery    int `json:"high305dYieldQuery"`
	Max305dYield          int `json:"max305dYield"`
	HighNaturalYieldQuery int `json:"highNaturalYieldQuery"`
	MaxNaturalYield       int `json:"maxNaturalYield"`
}

var breedDetails3Layout = struct {
	High305, Max305, HighNatural, MaxNatural Field
}{
	High305:     NewField(3, 5),
	Max305:      NewField(9, 5),
	HighNatural: NewField(15, 5),
	MaxNatural:  NewField(21, 5),
}

func decodeBreedDetails3(h Header, r *fieldReader) Record {
	l := &breedDetails3Layout
	return &BreedDetails3Record{
		Header:                h,
		High305dYieldQuery:    r.int(l.High305),
		Max305dYield:          r.int(l.Max305),
		HighNaturalYieldQuery: r.int(l.HighNatural),
		MaxNaturalYield:       r.int(l.MaxNatural),
	}
}
