package codec_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnettben/Datastream/pkg/codec"
	"github.com/barnettben/Datastream/pkg/codec/codectest"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestRecordCodec_DecodeRealLines(t *testing.T) {
	c := codec.NewRecordCodec()

	rec, err := c.Decode(codectest.RealNMRDetails)
	require.NoError(t, err)
	h1, ok := rec.(*codec.NMRDetails)
	require.True(t, ok, "expected *NMRDetails, got %T", rec)
	assert.Equal(t, codec.IDNMRDetails, h1.ID)
	assert.Equal(t, 3750, h1.Checksum)
	assert.True(t, h1.ChecksumIsValid)
	assert.Equal(t, 69, h1.NMRCounty)
	assert.Equal(t, 1, h1.NMROffice)
	assert.Equal(t, codec.RecordingScheme(15), h1.RecordingScheme)
	assert.Equal(t, 14, h1.WeighingSequence)
	assert.Equal(t, 11, h1.LastWeighNumber)
	assert.Equal(t, 89000, h1.NationalHerdMark)
	assert.Equal(t, 1, h1.PredominantBreed)
	assert.Equal(t, "FOR DEMO USE ONLY", h1.HerdPrefix)
	assert.Equal(t, date(1988, 2, 1), h1.EnrolDate)

	rec, err = c.Decode(codectest.RealAddress)
	require.NoError(t, err)
	h4, ok := rec.(*codec.AddressRecord)
	require.True(t, ok)
	assert.Equal(t, codec.IDAddress3, h4.ID)
	assert.Empty(t, h4.Content)
	assert.True(t, h4.ChecksumIsValid)

	rec, err = c.Decode(codectest.RealBreedDetails)
	require.NoError(t, err)
	w4, ok := rec.(*codec.BreedDetails1Record)
	require.True(t, ok)
	assert.Equal(t, 1, w4.Code)
	assert.Equal(t, 1, w4.EquivalentCode)
	assert.Equal(t, "HOLSTEIN", w4.Name)
	assert.Equal(t, "HF", w4.Abbreviation)
	assert.Equal(t, 280, w4.GestationPeriod)
	assert.InDelta(t, 0.1, w4.MinDailyYield, 1e-9)
	assert.InDelta(t, 3.0, w4.LowDailyYieldQuery, 1e-9)
	assert.InDelta(t, 75.0, w4.HighDailyYieldQuery, 1e-9)
	assert.InDelta(t, 99.9, w4.MaxDailyYield, 1e-9)
}

func TestRecordCodec_BadChecksum(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"nmr details", codectest.RealNMRDetails[:71] + "09999"},
		{"address", codectest.RealAddress[:71] + "01234"},
		{"breed details", codectest.RealBreedDetails[:71] + "43210"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := codec.NewRecordCodec().Decode(tt.line)
			require.NoError(t, err)
			assert.False(t, rec.RecordHeader().ChecksumIsValid)

			_, err = codec.NewStrictRecordCodec().Decode(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, codec.ErrInvalidChecksum)

			var cerr *codec.Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.line, cerr.Context)
		})
	}
}

func TestRecordCodec_BadLength(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too long", "H1,69,01,15,14,11,00,00,00,00,00,89000,01,FOR DEMO USE ONLY TOO LONG,880201,,03750"},
		{"too short", "H4, MISSING DIVIDING COMMA AND TOO SHORT                       ,02368"},
		{"empty", ""},
		{"non ascii", strings.Replace(codectest.RealAddress, " ", "é", 1)[:76]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range []*codec.RecordCodec{codec.NewRecordCodec(), codec.NewStrictRecordCodec()} {
				_, err := c.Decode(tt.line)
				assert.ErrorIs(t, err, codec.ErrInvalidLength)
			}
		})
	}
}

func TestRecordCodec_UnknownIdentifier(t *testing.T) {
	line := codectest.WithChecksum("ZZ" + codectest.RealAddress[2:71])

	_, err := codec.NewRecordCodec().Decode(line)
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrUnknownIdentifier)
	assert.NotErrorIs(t, err, codec.ErrInvalidLength)
}

func TestRecordCodec_InvalidContent(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"letters in integer", codectest.Override(codec.IDNMRDetails, codectest.V(3, "XX"))},
		{"bad date", codectest.Override(codec.IDNMRDetails, codectest.V(63, "881340"))},
		{"blank date", codectest.Override(codec.IDNMRDetails, codectest.V(63, "      "))},
		{"scheme out of range", codectest.Override(codec.IDNMRDetails, codectest.V(9, "09"))},
		{"bad service type", codectest.Override(codec.IDServiceIndicators, codectest.V(52, "Q"))},
		{"bad seasonality", codectest.Override(codec.IDCurrentLactation, codectest.V(63, "Z"))},
		{"bad pedigree", codectest.Override(codec.IDAnimalIdentity, codectest.V(40, "9"))},
		{"bad calendar month", codectest.Override(codec.IDWeighingCalendarLeader, codectest.V(3, "2413"))},
		{"bad checksum digits", codectest.RealAddress[:71] + "0A368"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.NewRecordCodec().Decode(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, codec.ErrInvalidContentType)
		})
	}
}

func TestRecordCodec_ContentErrorNamesIdentifier(t *testing.T) {
	line := codectest.Override(codec.IDRecordingPart1, codectest.V(10, "A1"))

	_, err := codec.NewRecordCodec().Decode(line)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HD:")

	var cerr *codec.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "A1", cerr.Context)
}

func TestRecordCodec_DecodesEverySample(t *testing.T) {
	c := codec.NewStrictRecordCodec()
	for _, id := range codec.Identifiers {
		t.Run(string(id), func(t *testing.T) {
			rec, err := c.Decode(codectest.Sample(id))
			require.NoError(t, err)
			assert.Equal(t, id, rec.RecordHeader().ID)
			assert.True(t, rec.RecordHeader().ChecksumIsValid)
		})
	}
}

func TestRecordCodec_Strict(t *testing.T) {
	assert.False(t, codec.NewRecordCodec().Strict())
	assert.True(t, codec.NewStrictRecordCodec().Strict())
}

func TestShape_PanicsOnUnrepresentableIdentifier(t *testing.T) {
	s, err := codec.ShapeFor(codec.IDAddress1)
	require.NoError(t, err)
	assert.Equal(t, "Address", s.Name())
	assert.True(t, s.Represents(codec.IDAddress5))
	assert.False(t, s.Represents(codec.IDNMRDetails))

	assert.Panics(t, func() {
		_, _ = s.Decode(codectest.RealNMRDetails)
	})
	assert.NotPanics(t, func() {
		_, err := s.Decode(codectest.RealAddress)
		assert.NoError(t, err)
	})
}

func TestShapeFor_Unknown(t *testing.T) {
	_, err := codec.ShapeFor("Q1")
	assert.ErrorIs(t, err, codec.ErrUnknownIdentifier)
}

func TestShape_Identifiers(t *testing.T) {
	seen := make(map[codec.Identifier]bool)
	for _, id := range codec.Identifiers {
		s, err := codec.ShapeFor(id)
		require.NoError(t, err)
		assert.Contains(t, s.Identifiers(), id)
		assert.False(t, seen[id], "identifier %s listed twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, 75)
}

func TestDecode_HerdRecords(t *testing.T) {
	c := codec.NewRecordCodec()

	rec, err := c.Decode(codectest.Sample(codec.IDRecordingPart1))
	require.NoError(t, err)
	hd := rec.(*codec.RecordingPart1)
	assert.Equal(t, date(2024, 1, 15), hd.RecordingDate)
	assert.Equal(t, 120, hd.TotalAnimals)
	assert.InDelta(t, 2500.0, hd.HerdTotalMilk, 1e-9)
	assert.InDelta(t, 10.0, hd.HerdTotalFat, 1e-9)
	assert.InDelta(t, 85.0, hd.HerdTotalProtein, 1e-9)
	assert.InDelta(t, 12.0, hd.HerdTotalLactose, 1e-9)
	assert.False(t, hd.IsMissedWeighing)
	assert.True(t, hd.IsPrintEligible)

	rec, err = c.Decode(codectest.Sample(codec.IDServiceIndicators))
	require.NoError(t, err)
	h7 := rec.(*codec.ServiceIndicators)
	assert.Equal(t, "DEMOSHIRE", h7.County)
	assert.Equal(t, "AB1 2CD", h7.Postcode)
	assert.Equal(t, codec.ServiceAutomatic, h7.ServiceType)
	assert.True(t, h7.IsProgenyTesting)
	assert.False(t, h7.IsLifetimeYieldMember)

	rec, err = c.Decode(codectest.Override(codec.IDServiceIndicators, codectest.V(52, " ")))
	require.NoError(t, err)
	assert.Equal(t, codec.ServiceUnknown, rec.(*codec.ServiceIndicators).ServiceType)
}

func TestDecode_AnimalRecords(t *testing.T) {
	c := codec.NewRecordCodec()

	rec, err := c.Decode(codectest.Sample(codec.IDAnimalIdentity))
	require.NoError(t, err)
	c1 := rec.(*codec.AnimalIdentity)
	assert.Equal(t, "123456701", c1.HerdNumber())
	assert.Equal(t, byte('0'), c1.LiveFlag)
	assert.Equal(t, "0042", c1.LineNumber)
	assert.Equal(t, codec.PedigreeRegistered, c1.PedigreeStatus)

	rec, err = c.Decode(codectest.Sample(codec.IDAnimalOtherDetails))
	require.NoError(t, err)
	c2 := rec.(*codec.AnimalOtherDetails)
	assert.Equal(t, date(2019, 3, 1), c2.BirthDate)
	assert.Nil(t, c2.ExitDate)
	assert.Nil(t, c2.ClassChangeDate)

	rec, err = c.Decode(codectest.Sample(codec.IDAnimalPTA1))
	require.NoError(t, err)
	pta := rec.(*codec.PTARecord)
	require.NotNil(t, pta.EvaluationDate)
	assert.Equal(t, date(2023, 8, 1), *pta.EvaluationDate)
	assert.Equal(t, 250, pta.MilkKg)
	assert.InDelta(t, 10.5, pta.FatKg, 1e-9)
	assert.InDelta(t, -0.05, pta.ProteinPct, 1e-9)
	assert.Equal(t, 75, pta.Reliability)

	rec, err = c.Decode(codectest.Override(codec.IDDeadDamPTA7, codectest.V(9, "000000")))
	require.NoError(t, err)
	assert.Nil(t, rec.(*codec.PTARecord).EvaluationDate)
}

func TestDecode_StatementRecords(t *testing.T) {
	c := codec.NewRecordCodec()

	rec, err := c.Decode(codectest.Sample(codec.IDWeighing))
	require.NoError(t, err)
	s3 := rec.(*codec.WeighingRecord)
	assert.Nil(t, s3.AbsenceReason)
	assert.InDelta(t, 32.5, s3.MilkYield, 1e-9)
	assert.InDelta(t, 4.1, s3.FatPct, 1e-9)

	rec, err = c.Decode(codectest.Override(codec.IDWeighing, codectest.V(14, "2")))
	require.NoError(t, err)
	require.NotNil(t, rec.(*codec.WeighingRecord).AbsenceReason)
	assert.Equal(t, codec.AbsenceReason(2), *rec.(*codec.WeighingRecord).AbsenceReason)

	rec, err = c.Decode(codectest.Sample(codec.IDActualCalving))
	require.NoError(t, err)
	s5 := rec.(*codec.ActualCalvingRecord)
	require.NotNil(t, s5.Calf1.Sex)
	assert.Equal(t, codec.SexFemale, *s5.Calf1.Sex)
	assert.Equal(t, "UK1111111111", s5.Calf1.Identity)
	assert.Nil(t, s5.Calf2.Sex)

	rec, err = c.Decode(codectest.Override(codec.IDThirdCalf, codectest.V(23, "M")))
	require.NoError(t, err)
	s6 := rec.(*codec.ThirdCalfRecord)
	require.NotNil(t, s6.Calf.Sex)
	assert.Equal(t, codec.SexMale, *s6.Calf.Sex)

	rec, err = c.Decode(codectest.Sample(codec.IDSold))
	require.NoError(t, err)
	sm := rec.(*codec.OtherEventRecord)
	assert.Equal(t, codec.EventSold, sm.Kind())
	assert.Equal(t, date(2023, 10, 10), sm.EventDate)

	rec, err = c.Decode(codectest.Sample(codec.IDCurrentLactation))
	require.NoError(t, err)
	sx := rec.(*codec.CurrentLactationRecord)
	assert.Equal(t, 123, sx.TotalDays)
	assert.InDelta(t, 8500.0, sx.TotalMilk, 1e-9)
	assert.InDelta(t, 29.5, sx.AveragePencePerLitre, 1e-9)
	assert.Equal(t, codec.SeasonalityNone, sx.Seasonality)
}

func TestDecode_CalendarRecords(t *testing.T) {
	c := codec.NewRecordCodec()

	rec, err := c.Decode(codectest.Sample(codec.IDWeighingCalendarLeader))
	require.NoError(t, err)
	w1 := rec.(*codec.CalendarLeaderRecord)
	assert.Equal(t, date(2024, 1, 1), w1.StartDate)
	assert.Equal(t, date(2024, 12, 31), w1.EndDate)

	rec, err = c.Decode(codectest.Line(codec.IDWeighingCalendarQuarter,
		codectest.V(3, "24"), codectest.V(6, "14"), codectest.V(9, "01"),
		codectest.V(12, "01"), codectest.V(15, "15"), codectest.V(18, "16")))
	require.NoError(t, err)
	w2 := rec.(*codec.CalendarQuarterRecord)
	assert.False(t, w2.Slots[0].Empty)
	assert.Equal(t, 15, w2.Slots[0].PMDay)
	assert.Equal(t, 16, w2.Slots[0].AMDay)
	assert.True(t, w2.Slots[1].Empty)
	assert.True(t, w2.Slots[2].Empty)

	rec, err = c.Decode(codectest.Sample(codec.IDBreedDetails2))
	require.NoError(t, err)
	w5 := rec.(*codec.BreedDetails2Record)
	assert.InDelta(t, 1.5, w5.MinFatPct, 1e-9)
	assert.InDelta(t, 6.0, w5.MaxLactosePct, 1e-9)
}
