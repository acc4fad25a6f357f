package breed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewRegistry_Seeds(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 98, r.Len())

	_, ok := r.Lookup(94)
	assert.False(t, ok)

	tests := []struct {
		code      int
		name      string
		gestation int
		typ       Type
		imported  bool
	}{
		{1, "Holstein-Friesian (UK&E)", 280, Dairy, false},
		{13, "NZ/Aus Shorthorn", 280, Dairy, true},
		{19, "Hereford", 283, Beef, false},
		{29, "Unknown Breed", 280, DualPurpose, false},
		{42, "Water Buffalo", 311, Dairy, false},
		{82, "Saanen", 149, Dairy, false},
		{99, "Other Breeds (sheep)", 147, Dairy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := r.Lookup(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.name, b.Name)
			assert.Equal(t, tt.gestation, b.GestationPeriod)
			assert.Equal(t, tt.typ, b.Type)
			assert.Equal(t, tt.imported, b.IsImported)
			assert.Equal(t, tt.code, b.EquivalentCode)
		})
	}
}

func TestNewRegistry_Independent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()
	a.Merge(Breed{Code: 1, GestationPeriod: 300})

	ab, _ := a.Lookup(1)
	bb, _ := b.Lookup(1)
	assert.Equal(t, 300, ab.GestationPeriod)
	assert.Equal(t, 280, bb.GestationPeriod)
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, 21, r.Resolve(21).Code)
	assert.Equal(t, UnknownCode, r.Resolve(94).Code)
	assert.Equal(t, UnknownCode, r.Resolve(0).Code)
	assert.Equal(t, "Unknown Breed", r.Resolve(-7).Name)
}

func TestRegistry_MergeExisting(t *testing.T) {
	r := NewRegistry()
	before, _ := r.Lookup(1)

	entry, merged := r.Merge(Breed{
		Code:            1,
		EquivalentCode:  12,
		Name:            "HOLSTEIN",
		Abbreviation:    "HF",
		GestationPeriod: 281,
		Type:            Unspecified,
		MinDailyYield:   0.1,
		MaxFatPct:       9.0,
		Max305dYield:    18000,
	})
	require.True(t, merged)
	assert.Same(t, before, entry)
	assert.Equal(t, 98, r.Len())

	assert.Equal(t, "Holstein-Friesian (UK&E)", entry.Name)
	assert.Equal(t, Dairy, entry.Type)
	assert.False(t, entry.IsImported)
	assert.Equal(t, 12, entry.EquivalentCode)
	assert.Equal(t, "HF", entry.Abbreviation)
	assert.Equal(t, 281, entry.GestationPeriod)
	assert.InDelta(t, 0.1, entry.MinDailyYield, 1e-9)
	assert.InDelta(t, 9.0, entry.MaxFatPct, 1e-9)
	assert.Equal(t, 18000, entry.Max305dYield)

	assert.Equal(t, "British Holstein", r.Equivalent(entry).Name)
}

func TestRegistry_MergeNew(t *testing.T) {
	r := NewRegistry()

	entry, merged := r.Merge(Breed{Code: 94, EquivalentCode: 77, Name: "NEW"})
	assert.False(t, merged)
	assert.Equal(t, 99, r.Len())
	assert.Equal(t, "NEW", entry.Name)
	assert.Equal(t, Unspecified, entry.Type)

	got, ok := r.Lookup(94)
	require.True(t, ok)
	assert.Same(t, entry, got)

	all := r.All()
	assert.Same(t, entry, all[len(all)-1])
}

func TestRegistry_EquivalentFallsBack(t *testing.T) {
	r := NewRegistry()
	entry, _ := r.Merge(Breed{Code: 94, EquivalentCode: 94})
	assert.Same(t, entry, r.Equivalent(entry))

	entry, _ = r.Merge(Breed{Code: 1, EquivalentCode: 0})
	assert.Equal(t, UnknownCode, r.Equivalent(entry).Code)
}

func TestRegistry_JSONRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.Merge(Breed{Code: 3, EquivalentCode: 3, Abbreviation: "AY", MaxLactosePct: 6.5})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded Registry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.Len(), decoded.Len())

	b, ok := decoded.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "Ayrshire", b.Name)
	assert.Equal(t, "AY", b.Abbreviation)
	assert.Equal(t, Dairy, b.Type)
	assert.InDelta(t, 6.5, b.MaxLactosePct, 1e-9)
}

func TestRegistry_UnmarshalWithoutSentinel(t *testing.T) {
	var r Registry
	require.NoError(t, json.Unmarshal([]byte(`[{"code":1,"name":"ONE","type":"beef"}]`), &r))
	assert.Equal(t, 1, r.Len())

	unknown := r.Resolve(5)
	assert.Equal(t, UnknownCode, unknown.Code)
	assert.Equal(t, 2, r.Len())

	err := json.Unmarshal([]byte(`[{"code":1},{"code":1}]`), &r)
	assert.Error(t, err)
}

func TestType_Text(t *testing.T) {
	for typ := range typeNames {
		text, err := typ.MarshalText()
		require.NoError(t, err)
		var back Type
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, typ, back)
	}
	var bad Type
	assert.Error(t, bad.UnmarshalText([]byte("goat")))
}

func TestRegistry_YAML(t *testing.T) {
	r := NewRegistry()

	data, err := yaml.Marshal(r)
	require.NoError(t, err)

	var list []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &list))
	assert.Len(t, list, r.Len())
	assert.Contains(t, string(data), "name: Ayrshire")
	assert.Contains(t, string(data), "type: dairy")
}
