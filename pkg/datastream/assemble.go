package datastream

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/barnettben/Datastream/pkg/breed"
	"github.com/barnettben/Datastream/pkg/codec"
)

// liveFlagPresent marks an animal that is still in the herd
const liveFlagPresent = '0'

func batchContext(batch []codec.Record) string {
	ids := make([]string, len(batch))
	for i, rec := range batch {
		ids[i] = string(rec.RecordHeader().ID)
	}
	return strings.Join(ids, " ")
}

// mandatory returns the record with the given identifier
func mandatory[T codec.Record](batch []codec.Record, id codec.Identifier) (T, error) {
	if rec, ok := optional[T](batch, id); ok {
		return rec, nil
	}
	var zero T
	return zero, codec.Malformed(batchContext(batch), "group is missing its %s record", id)
}

func optional[T codec.Record](batch []codec.Record, id codec.Identifier) (T, bool) {
	for _, rec := range batch {
		if rec.RecordHeader().ID != id {
			continue
		}
		if v, ok := rec.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func ofType[T codec.Record](batch []codec.Record) []T {
	var out []T
	for _, rec := range batch {
		if v, ok := rec.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func (p *parser) buildHerdDetails(batch []codec.Record) (HerdDetails, error) {
	h1, err := mandatory[*codec.NMRDetails](batch, codec.IDNMRDetails)
	if err != nil {
		return HerdDetails{}, err
	}
	h7, err := mandatory[*codec.ServiceIndicators](batch, codec.IDServiceIndicators)
	if err != nil {
		return HerdDetails{}, err
	}
	h8, err := mandatory[*codec.ServiceIndicatorsContinued](batch, codec.IDServiceIndicatorsContinued)
	if err != nil {
		return HerdDetails{}, err
	}

	address := []string{}
	for _, line := range ofType[*codec.AddressRecord](batch) {
		address = append(address, line.Content)
	}
	var private []string
	for _, rec := range ofType[*codec.PrivateRecord](batch) {
		private = append(private, rec.Content)
	}

	return HerdDetails{
		NationalHerdMark: h1.NationalHerdMark,
		PredominantBreed: p.breeds.Resolve(h1.PredominantBreed),
		HerdPrefix:       h1.HerdPrefix,
		EnrolDate:        h1.EnrolDate,
		Address:          address,
		County:           h7.County,
		Postcode:         h7.Postcode,
		PrivateRecords:   private,
		NMRInformation: NMRInformation{
			NMRCounty:             h1.NMRCounty,
			NMROffice:             h1.NMROffice,
			RecordingScheme:       h1.RecordingScheme,
			WeighingSequence:      h1.WeighingSequence,
			LastWeighNumber:       h1.LastWeighNumber,
			ServiceType:           h7.ServiceType,
			IsProgenyTesting:      h7.IsProgenyTesting,
			IsLifetimeYieldMember: h7.IsLifetimeYieldMember,
			CowCardPrinting:       h7.CowCardPrinting,
			CalfCropListCycle:     h7.CalfCropListCycle,
			IsHerdwatchMember:     h8.IsHerdwatchMember,
			CellCountMembership:   h8.CellCountMembership,
		},
	}, nil
}

func (p *parser) buildHerdRecording(batch []codec.Record) (HerdRecording, error) {
	hd, err := mandatory[*codec.RecordingPart1](batch, codec.IDRecordingPart1)
	if err != nil {
		return HerdRecording{}, err
	}
	he, err := mandatory[*codec.RecordingPart2](batch, codec.IDRecordingPart2)
	if err != nil {
		return HerdRecording{}, err
	}

	return HerdRecording{
		RecordingDate:      hd.RecordingDate,
		WeighingSequence:   hd.WeighingSequence,
		TotalAnimals:       hd.TotalAnimals,
		CowsInMilk:         hd.CowsInMilk,
		Cows3xMilked:       hd.Cows3xMilked,
		HerdTotalMilk:      hd.HerdTotalMilk,
		HerdTotalFat:       hd.HerdTotalFat,
		HerdTotalProtein:   hd.HerdTotalProtein,
		HerdTotalLactose:   hd.HerdTotalLactose,
		YieldDifference:    hd.YieldDifference,
		IsMissedWeighing:   hd.IsMissedWeighing,
		IsPrintEligible:    hd.IsPrintEligible,
		BulkYield:          he.BulkYield,
		BulkFatPct:         he.BulkFatPct,
		BulkProteinPct:     he.BulkProteinPct,
		BulkLactosePct:     he.BulkLactosePct,
		HerdProductionBase: he.HerdProductionBase,
		BulkCellCount:      he.BulkCellCount,
	}, nil
}

func (p *parser) buildAnimal(batch []codec.Record) (Animal, error) {
	c1, err := mandatory[*codec.AnimalIdentity](batch, codec.IDAnimalIdentity)
	if err != nil {
		return Animal{}, err
	}
	c2, err := mandatory[*codec.AnimalOtherDetails](batch, codec.IDAnimalOtherDetails)
	if err != nil {
		return Animal{}, err
	}
	c3, err := mandatory[*codec.AnimalName](batch, codec.IDAnimalName)
	if err != nil {
		return Animal{}, err
	}
	c4, err := mandatory[*codec.AnimalSireDam](batch, codec.IDAnimalSireDam)
	if err != nil {
		return Animal{}, err
	}
	if len(ofType[*codec.PTARecord](batch)) == 0 {
		return Animal{}, codec.Malformed(batchContext(batch), "animal %s has no evaluation records", c1.LineNumber)
	}

	damPedigree := c4.DamPedigreeStatus
	damAuth := c4.DamIdentityAuthenticity

	return Animal{
		NMRHerdNumber:        c1.HerdNumber(),
		IsInHerd:             c1.LiveFlag == liveFlagPresent,
		LineNumber:           c1.LineNumber,
		Breed:                p.breeds.Resolve(c1.Breed),
		Identity:             c1.Identity,
		IdentityType:         c1.IdentityType,
		PedigreeStatus:       c1.PedigreeStatus,
		HBNAuthenticity:      c1.HBNAuthenticity,
		IdentityAuthenticity: c1.EarmarkAuthenticity,
		AlternativeBreed:     p.breeds.Resolve(c2.AlternativeBreed),
		AlternativeIdentity:  c2.AlternativeIdentity,
		BirthDate:            c2.BirthDate,
		IsYoungstock:         c2.IsYoungstock,
		HerdEntryDate:        c2.EntryDate,
		HerdExitDate:         c2.ExitDate,
		LeavingReason:        c2.LeavingReason,
		ClassChangeDate:      c2.ClassChangeDate,
		ShortName:            c3.ShortName,
		LongName:             c3.LongName,
		Sire: AnimalParent{
			Breed:        p.breeds.Resolve(c4.SireBreed),
			Identity:     c4.SireIdentity,
			IdentityType: c4.SireIdentityType,
		},
		Dam: AnimalParent{
			Breed:                p.breeds.Resolve(c4.DamBreed),
			Identity:             c4.DamIdentity,
			IdentityType:         c4.DamIdentityType,
			PedigreeStatus:       &damPedigree,
			IdentityAuthenticity: &damAuth,
		},
		Evaluations: p.evaluations(batch, c1.LineNumber),
	}, nil
}

// evaluations maps the batch's PTA records. Records without an evaluation
// date are null evaluations and are left out.
func (p *parser) evaluations(batch []codec.Record, owner string) []GeneticEvaluation {
	out := []GeneticEvaluation{}
	for _, pta := range ofType[*codec.PTARecord](batch) {
		if pta.EvaluationDate == nil {
			p.log.Warn("Skipping evaluation without a date",
				zap.String("record", string(pta.ID)),
				zap.String("owner", owner))
			continue
		}
		out = append(out, GeneticEvaluation{
			Group:       pta.EvaluationGroup,
			Source:      pta.EvaluationSource,
			Date:        *pta.EvaluationDate,
			MilkKg:      pta.MilkKg,
			FatKg:       pta.FatKg,
			ProteinKg:   pta.ProteinKg,
			FatPct:      pta.FatPct,
			ProteinPct:  pta.ProteinPct,
			Reliability: pta.Reliability,
		})
	}
	return out
}

func (p *parser) buildStatement(batch []codec.Record) (AnimalStatement, error) {
	s1, err := mandatory[*codec.CowIdentity](batch, codec.IDCowIdentity)
	if err != nil {
		return AnimalStatement{}, err
	}
	sx, err := mandatory[*codec.CurrentLactationRecord](batch, codec.IDCurrentLactation)
	if err != nil {
		return AnimalStatement{}, err
	}

	statement := AnimalStatement{
		LineNumber:               s1.LineNumber,
		IsInHerd:                 s1.LiveFlag == liveFlagPresent,
		IsYoungstock:             s1.IsYoungstock,
		Breed:                    p.breeds.Resolve(s1.Breed),
		LactationNumber:          s1.LactationNumber,
		EstimatedLactationNumber: s1.EstimatedLactationNumber,
		ManagementGroup:          s1.Group,
		LactationStage:           s1.LactationStage,
		PreviousCalvingDate:      s1.LastCalvingDate,
		DryDays:                  s1.DryDays,
		Sire: SireDetails{
			Breed:                p.breeds.Resolve(s1.SireBreed),
			Identity:             s1.SireIdentity,
			IdentityType:         s1.SireIdentityType,
			IdentityAuthenticity: s1.SireIdentityAuthenticity,
		},
		Weighings:   []WeighingEvent{},
		Services:    []ServiceEvent{},
		Calvings:    []CalvingEvent{},
		OtherEvents: []OtherEvent{},
		LactationDetails: LactationDetails{
			TotalDays:            sx.TotalDays,
			TotalMilk:            sx.TotalMilk,
			TotalFat:             sx.TotalFat,
			TotalProtein:         sx.TotalProtein,
			TotalLactose:         sx.TotalLactose,
			FatPct:               sx.FatPct,
			ProteinPct:           sx.ProteinPct,
			LactosePct:           sx.LactosePct,
			TotalValue:           sx.TotalValue,
			AveragePencePerLitre: sx.AveragePencePerLitre,
			Seasonality:          sx.Seasonality,
			AverageCellCount:     sx.AverageCellCount,
		},
	}

	// S6 belongs to the S5 before it, so events are walked in file order
	var lastCalving *codec.ActualCalvingRecord
	for _, rec := range batch {
		switch r := rec.(type) {
		case *codec.WeighingRecord:
			statement.Weighings = append(statement.Weighings, WeighingEvent{
				RecordingDate: r.RecordingDate,
				ResultType:    r.ResultType,
				TimesMilked:   r.TimesMilked,
				AbsenceReason: r.AbsenceReason,
				MilkYield:     r.MilkYield,
				FatPct:        r.FatPct,
				ProteinPct:    r.ProteinPct,
				LactosePct:    r.LactosePct,
				CellCount:     r.CellCount,
			})
		case *codec.ServiceRecord:
			statement.Services = append(statement.Services, ServiceEvent{
				EventDate:                r.EventDate,
				EventAuthenticity:        r.EventAuthenticity,
				SireBreed:                p.breeds.Resolve(r.SireBreed),
				SireIdentity:             r.SireIdentity,
				SireIdentityAuthenticity: r.SireIdentityAuthenticity,
				PregnancyStatus:          r.PregnancyStatus,
			})
		case *codec.ActualCalvingRecord:
			lastCalving = r
			for _, calf := range []codec.CalfDetails{r.Calf1, r.Calf2} {
				if ev, ok := p.calving(r.EventDate, r.EventAuthenticity, calf); ok {
					statement.Calvings = append(statement.Calvings, ev)
				}
			}
		case *codec.ThirdCalfRecord:
			if lastCalving == nil {
				return AnimalStatement{}, codec.Malformed(batchContext(batch),
					"%s record without a preceding %s", r.ID, codec.IDActualCalving)
			}
			if ev, ok := p.calving(lastCalving.EventDate, lastCalving.EventAuthenticity, r.Calf); ok {
				statement.Calvings = append(statement.Calvings, ev)
			}
		case *codec.AssumedCalvingRecord:
			statement.Calvings = append(statement.Calvings, CalvingEvent{
				EventDate:                r.EventDate,
				EventAuthenticity:        codec.NonAuthentic,
				IsAssumed:                true,
				CalfBreed:                p.breeds.Resolve(breed.UnknownCode),
				CalfIdentityType:         codec.IdentityNone,
				CalfIdentityAuthenticity: codec.NonAuthentic,
				CalfSex:                  codec.SexDead,
			})
		case *codec.OtherEventRecord:
			statement.OtherEvents = append(statement.OtherEvents, OtherEvent{
				Identifier:        r.ID,
				Kind:              r.Kind(),
				EventDate:         r.EventDate,
				EventAuthenticity: r.EventAuthenticity,
			})
		}
	}

	return statement, nil
}

// calving turns one calf of a calving record into an event. Calves without
// a sex are unused slots.
func (p *parser) calving(date time.Time, auth codec.Authenticity, calf codec.CalfDetails) (CalvingEvent, bool) {
	if calf.Sex == nil {
		return CalvingEvent{}, false
	}
	return CalvingEvent{
		EventDate:                date,
		EventAuthenticity:        auth,
		CalfBreed:                p.breeds.Resolve(calf.Breed),
		CalfIdentity:             calf.Identity,
		CalfIdentityType:         calf.IdentityType,
		CalfIdentityAuthenticity: calf.IdentityAuthenticity,
		CalfSex:                  *calf.Sex,
	}, true
}

func (p *parser) buildLactation(batch []codec.Record) (Lactation, error) {
	l1, err := mandatory[*codec.CompletedLactationRecord](batch, codec.IDCompletedLactation)
	if err != nil {
		return Lactation{}, err
	}
	l2, err := mandatory[*codec.CalvingDetailsRecord](batch, codec.IDCalvingDetails)
	if err != nil {
		return Lactation{}, err
	}
	l4, err := mandatory[*codec.LactationTotalsRecord](batch, codec.IDLactation305Totals)
	if err != nil {
		return Lactation{}, err
	}

	calves := []CalvingEvent{}
	details := []codec.CalfDetails{l2.Calf}
	if l3, ok := optional[*codec.ExtraCalvesRecord](batch, codec.IDCalvingExtraCalves); ok {
		details = append(details, l3.Calf2, l3.Calf3)
	}
	for _, calf := range details {
		if ev, ok := p.calving(l2.CalvingDate, l2.CalvingDateAuthenticity, calf); ok {
			calves = append(calves, ev)
		}
	}

	lactation := Lactation{
		LineNumber:               l1.LineNumber,
		IsInHerd:                 l1.AliveFlag == liveFlagPresent,
		LactationNumber:          l1.LactationNumber,
		EstimatedLactationNumber: l1.EstimatedLactationNumber,
		Breed:                    p.breeds.Resolve(l1.Breed),
		NumberOfMaleCalves:       l1.NumberOfMaleCalves,
		NumberOfFemaleCalves:     l1.NumberOfFemaleCalves,
		NumberOfDeadCalves:       l1.NumberOfDeadCalves,
		DryDays:                  l1.DryDays,
		NumberOfServices:         l1.NumberOfServices,
		MissedRecordings:         l1.MissedRecordings,
		SeasonalityAdjustment:    l1.SeasonalityAdjustment,
		FinancialValue:           l1.FinancialValue,
		ProductionIndex:          l1.ProductionIndex,
		ProductionBase:           l1.ProductionBase,
		TimesLame:                l1.TimesLame,
		TimesMastitis:            l1.TimesMastitis,
		TimesSick:                l1.TimesSick,
		CalvingInterval:          l2.CalvingInterval,
		AgeAtCalving:             l2.AgeAtCalving,
		CalvingDate:              l2.CalvingDate,
		CalvingDateAuthenticity:  l2.CalvingDateAuthenticity,
		Sire: SireDetails{
			Breed:                p.breeds.Resolve(l2.SireBreed),
			Identity:             l2.SireIdentity,
			IdentityType:         l2.SireIdentityType,
			IdentityAuthenticity: l2.SireIdentityAuthenticity,
		},
		Calves:        calves,
		Production305: production(l4),
	}
	if l5, ok := optional[*codec.LactationTotalsRecord](batch, codec.IDLactationNaturalTotals); ok {
		natural := production(l5)
		lactation.ProductionNatural = &natural
	}
	return lactation, nil
}

func production(r *codec.LactationTotalsRecord) LactationProduction {
	return LactationProduction{
		IsQualifying:       r.IsQualifying,
		TotalsAuthenticity: r.TotalsAuthenticity,
		TotalMilk:          r.TotalMilk,
		TotalFat:           r.TotalFat,
		TotalProtein:       r.TotalProtein,
		TotalLactose:       r.TotalLactose,
		TotalDays:          r.TotalDays,
		Total3xDays:        r.Total3xDays,
		StartOf3x:          r.StartOf3x,
		EndDate:            r.LactationEndDate,
		EndReason:          r.LactationEndReason,
		NumberOfRecordings: r.NumberOfRecordings,
		AverageCellCount:   r.AverageCellCount,
		CellsOver200:       r.CellsOver200,
	}
}

func (p *parser) buildBull(batch []codec.Record) (BullDetails, error) {
	b1, err := mandatory[*codec.BullDetailsRecord](batch, codec.IDBullDetails)
	if err != nil {
		return BullDetails{}, err
	}
	return BullDetails{
		Breed:       p.breeds.Resolve(b1.Breed),
		Identity:    b1.Identity,
		LongName:    b1.LongName,
		ShortName:   b1.ShortName,
		Evaluations: p.evaluations(batch, b1.Identity),
	}, nil
}

func (p *parser) buildDeadDam(batch []codec.Record) (DeadDam, error) {
	d1, err := mandatory[*codec.DeadDamRecord](batch, codec.IDDeadDamDetails)
	if err != nil {
		return DeadDam{}, err
	}
	return DeadDam{
		Breed:                p.breeds.Resolve(d1.Breed),
		Identity:             d1.Identity,
		IdentityType:         d1.IdentityType,
		PedigreeStatus:       d1.PedigreeStatus,
		IdentityAuthenticity: d1.IdentityAuthenticity,
		Name:                 d1.LongName,
		Evaluations:          p.evaluations(batch, d1.Identity),
	}, nil
}

// mergeBreed builds a breed from a W4 to W6 group and merges it into the
// registry. The returned pointer is the registry entry.
func (p *parser) mergeBreed(batch []codec.Record) (*breed.Breed, error) {
	w4, err := mandatory[*codec.BreedDetails1Record](batch, codec.IDBreedDetails1)
	if err != nil {
		return nil, err
	}
	w5, err := mandatory[*codec.BreedDetails2Record](batch, codec.IDBreedDetails2)
	if err != nil {
		return nil, err
	}
	w6, err := mandatory[*codec.BreedDetails3Record](batch, codec.IDBreedDetails3)
	if err != nil {
		return nil, err
	}

	entry, merged := p.breeds.Merge(breed.Breed{
		Code:                  w4.Code,
		EquivalentCode:        w4.EquivalentCode,
		Name:                  w4.Name,
		Abbreviation:          w4.Abbreviation,
		GestationPeriod:       w4.GestationPeriod,
		Type:                  breed.Unspecified,
		MinDailyYield:         w4.MinDailyYield,
		LowDailyYieldQuery:    w4.LowDailyYieldQuery,
		HighDailyYieldQuery:   w4.HighDailyYieldQuery,
		MaxDailyYield:         w4.MaxDailyYield,
		MinFatPct:             w5.MinFatPct,
		LowFatPctQuery:        w5.LowFatPctQuery,
		HighFatPctQuery:       w5.HighFatPctQuery,
		MaxFatPct:             w5.MaxFatPct,
		MinProteinPct:         w5.MinProteinPct,
		LowProteinPctQuery:    w5.LowProteinPctQuery,
		HighProteinPctQuery:   w5.HighProteinPctQuery,
		MaxProteinPct:         w5.MaxProteinPct,
		MinLactosePct:         w5.MinLactosePct,
		LowLactosePctQuery:    w5.LowLactosePctQuery,
		HighLactosePctQuery:   w5.HighLactosePctQuery,
		MaxLactosePct:         w5.MaxLactosePct,
		High305dYieldQuery:    w6.High305dYieldQuery,
		Max305dYield:          w6.Max305dYield,
		HighNaturalYieldQuery: w6.HighNaturalYieldQuery,
		MaxNaturalYield:       w6.MaxNaturalYield,
	})
	p.log.Debug("Breed group read",
		zap.Int("code", entry.Code),
		zap.Bool("merged", merged))
	return entry, nil
}
