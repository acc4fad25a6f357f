// Package breed holds the reference table of cattle, goat and sheep breeds.
//
// Breeds live in a Registry keyed by their integer code. The equivalent
// breed of an entry is stored as a code and resolved through the registry
// when it is needed, so entries never point at each other.
package breed

import (
	"fmt"
)

// UnknownCode is the breed every unresolvable code falls back to
const UnknownCode = 29

// Type is the production type of a breed
type Type int

const (
	Unspecified Type = iota
	Dairy
	Beef
	DualPurpose
)

var typeNames = map[Type]string{
	Unspecified: "unspecified",
	Dairy:       "dairy",
	Beef:        "beef",
	DualPurpose: "dualPurpose",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalText encodes the type by name
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	for k, v := range typeNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("invalid breed type %q", text)
}

// Breed is one entry of the breed table. The yield and percentage limits are
// only known for breeds that appeared in a file's breed section.
type Breed struct {
	Code            int    `json:"code"`
	EquivalentCode  int    `json:"equivalentCode"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation,omitempty"`
	GestationPeriod int    `json:"gestationPeriod"`
	Type            Type   `json:"type"`
	IsImported      bool   `json:"isImported"`

	MinDailyYield       float64 `json:"minDailyYield"`
	LowDailyYieldQuery  float64 `json:"lowDailyYieldQuery"`
	HighDailyYieldQuery float64 `json:"highDailyYieldQuery"`
	MaxDailyYield       float64 `json:"maxDailyYield"`

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

	High305dYieldQuery    int `json:"high305dYieldQuery"`
	Max305dYield          int `json:"max305dYield"`
	HighNaturalYieldQuery int `json:"highNaturalYieldQuery"`
	MaxNaturalYield       int `json:"maxNaturalYield"`
}

func (b *Breed) String() string {
	return fmt.Sprintf("%02d %s", b.Code, b.Name)
}

// mergeFrom copies everything except the code, name, type and imported flag
func (b *Breed) mergeFrom(src *Breed) {
	code, name, typ, imported := b.Code, b.Name, b.Type, b.IsImported
	*b = *src
	b.Code, b.Name, b.Type, b.IsImported = code, name, typ, imported
}
