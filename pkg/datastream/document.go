package datastream

import (
	"github.com/barnettben/Datastream/pkg/breed"
)

// Document is the fully assembled content of one Datastream file.
// Slices for absent optional sections are empty, never nil.
type Document struct {
	HerdDetails      HerdDetails       `json:"herdDetails"`
	Recordings       []HerdRecording   `json:"recordings"`
	Animals          []Animal          `json:"animals"`
	NMRHerdNumber    string            `json:"nmrHerdNumber"`
	Statements       []AnimalStatement `json:"statements"`
	Lactations       []Lactation       `json:"lactations"`
	Bulls            []BullDetails     `json:"bulls"`
	DeadDams         []DeadDam         `json:"deadDams"`
	WeighingCalendar WeighingCalendar  `json:"weighingCalendar"`

	// Breeds holds the breeds described by the file's W4 to W6 groups, in
	// file order. Each points at its entry in KnownBreeds.
	Breeds []*breed.Breed `json:"breeds"`

	// KnownBreeds is the registry after the file's breed groups were merged
	KnownBreeds *breed.Registry `json:"knownBreeds"`
}

func newDocument(breeds *breed.Registry) *Document {
	return &Document{
		Recordings:  []HerdRecording{},
		Animals:     []Animal{},
		Statements:  []AnimalStatement{},
		Lactations:  []Lactation{},
		Bulls:       []BullDetails{},
		DeadDams:    []DeadDam{},
		Breeds:      []*breed.Breed{},
		KnownBreeds: breeds,
		WeighingCalendar: WeighingCalendar{
			WeighingDates: []WeighingDate{},
		},
	}
}

// Animal returns the animal with the given line number
func (d *Document) Animal(lineNumber string) (*Animal, bool) {
	for i := range d.Animals {
		if d.Animals[i].LineNumber == lineNumber {
			return &d.Animals[i], true
		}
	}
	return nil, false
}

// Statement returns the statement for the given line number
func (d *Document) Statement(lineNumber string) (*AnimalStatement, bool) {
	for i := range d.Statements {
		if d.Statements[i].LineNumber == lineNumber {
			return &d.Statements[i], true
		}
	}
	return nil, false
}

// LactationsFor returns the completed lactations of one animal in file order
func (d *Document) LactationsFor(lineNumber string) []Lactation {
	var out []Lactation
	for _, l := range d.Lactations {
		if l.LineNumber == lineNumber {
			out = append(out, l)
		}
	}
	return out
}

// Breed resolves a breed code, falling back to the unknown breed
func (d *Document) Breed(code int) *breed.Breed {
	if d.KnownBreeds == nil {
		d.KnownBreeds = breed.NewRegistry()
	}
	return d.KnownBreeds.Resolve(code)
}

// Summary counts the entities of each section
type Summary struct {
	NationalHerdMark int    `json:"nationalHerdMark" yaml:"national_herd_mark"`
	HerdPrefix       string `json:"herdPrefix" yaml:"herd_prefix"`
	NMRHerdNumber    string `json:"nmrHerdNumber" yaml:"nmr_herd_number"`
	Recordings       int    `json:"recordings" yaml:"recordings"`
	Animals          int    `json:"animals" yaml:"animals"`
	AnimalsInHerd    int    `json:"animalsInHerd" yaml:"animals_in_herd"`
	Statements       int    `json:"statements" yaml:"statements"`
	Lactations       int    `json:"lactations" yaml:"lactations"`
	Bulls            int    `json:"bulls" yaml:"bulls"`
	DeadDams         int    `json:"deadDams" yaml:"dead_dams"`
	WeighingDates    int    `json:"weighingDates" yaml:"weighing_dates"`
	Breeds           int    `json:"breeds" yaml:"breeds"`
}

// Summary returns the per-section counts of the document
func (d *Document) Summary() Summary {
	inHerd := 0
	for _, a := range d.Animals {
		if a.IsInHerd {
			inHerd++
		}
	}
	return Summary{
		NationalHerdMark: d.HerdDetails.NationalHerdMark,
		HerdPrefix:       d.HerdDetails.HerdPrefix,
		NMRHerdNumber:    d.NMRHerdNumber,
		Recordings:       len(d.Recordings),
		Animals:          len(d.Animals),
		AnimalsInHerd:    inHerd,
		Statements:       len(d.Statements),
		Lactations:       len(d.Lactations),
		Bulls:            len(d.Bulls),
		DeadDams:         len(d.DeadDams),
		WeighingDates:    len(d.WeighingCalendar.WeighingDates),
		Breeds:           len(d.Breeds),
	}
}
