package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsantos/sievelang/eval"
	"github.com/tsantos/sievelang/parser"
)

const sampleConfig = `
filters:
  adult_us: "location.country == \"US\""
sieves:
  suspects:
    - 'name =~ /^John/'
    - 'location.country not in ["US","UK"]'
`

func TestParseCompilesFiltersAndSieves(t *testing.T) {
	doc, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	require.Contains(t, doc.Filters, "adult_us")
	require.Contains(t, doc.Sieves, "suspects")
	require.Len(t, doc.Sieves["suspects"].Predicates, 2)
}

func TestParseRejectsMalformedFilterAtLoadTime(t *testing.T) {
	const bad = `
filters:
  broken: "== 1"
`
	_, err := Parse([]byte(bad))
	require.Error(t, err)
}

func TestParseRejectsMalformedSieveEntryAtLoadTime(t *testing.T) {
	const bad = `
sieves:
  broken:
    - "a == 1"
    - "(unclosed"
`
	_, err := Parse([]byte(bad))
	require.Error(t, err)
}

func TestParseRecordNormalizesNestedMaps(t *testing.T) {
	const doc = `
name: John Doe
age: 133
location:
  city: Ono
  country: US
`
	rec, err := ParseRecord([]byte(doc))
	require.NoError(t, err)

	f, err := parser.CompileFilter(`location.country == "US"`)
	require.NoError(t, err)

	ok, err := eval.NewEvaluator().Eval(f, rec)
	require.NoError(t, err)
	require.True(t, ok)
}
