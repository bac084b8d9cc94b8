package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLanguage_SetSemantics(t *testing.T) {
	l := NewLanguage("b", "a", "b", "")
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains(""))
	assert.False(t, l.Contains("c"))
	assert.Equal(t, []string{"", "a", "b"}, l.Words())
	assert.Equal(t, `{"", "a", "b"}`, l.String())

	var zero Language
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, []string{}, zero.Words())
	assert.True(t, zero.Equal(NewLanguage()))
	assert.False(t, zero.Equal(Epsilon()))
}

func TestLanguage_MaxLen(t *testing.T) {
	assert.Equal(t, 0, NewLanguage().MaxLen())
	assert.Equal(t, 0, Epsilon().MaxLen())
	assert.Equal(t, 3, NewLanguage("a", "ñañ", "bb").MaxLen())
}

func TestLanguage_JSON(t *testing.T) {
	data, err := json.Marshal(NewLanguage("b", "a"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))

	data, err = json.Marshal(Language{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	var l Language
	require.NoError(t, json.Unmarshal([]byte(`["x","y","x"]`), &l))
	assert.Equal(t, []string{"x", "y"}, l.Words())

	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &l))
}

func TestLanguage_YAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Words Language `yaml:"words"`
	}{NewLanguage("b", "a")})
	require.NoError(t, err)
	assert.Equal(t, "words:\n    - a\n    - b\n", string(out))

	var in struct {
		Words Language `yaml:"words"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("words: [c, d, c]\n"), &in))
	assert.Equal(t, []string{"c", "d"}, in.Words.Words())
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(2)
	b.Add("a")
	b.AddAll(NewLanguage("a", "b"))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"a", "b"}, b.Language().Words())
}

func TestSymbolSet_Sorted(t *testing.T) {
	set := make(SymbolSet)
	set.AddString("cañab")
	assert.Equal(t, []Symbol{"a", "b", "c", "ñ"}, set.Sorted())
	assert.Equal(t, 'ñ', Symbol("ñ").Rune())
}

func TestCheckExponent(t *testing.T) {
	assert.NoError(t, CheckExponent("n", 0))
	err := CheckExponent("maxPower", -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "maxPower must be non-negative, got -1")
	assert.Contains(t, Hint(err), "exponents start at 0")
}
