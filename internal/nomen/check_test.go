package nomen_test

import (
	"strings"
	"testing"

	"github.com/mikrolab/nomen/internal/nomen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleName = "NES-SAI2d15-CS_200514-01_Vehicle-1_200517_DAPI+goPitx3-dk488_200519_CF_10Xz1-1.tiff"

func TestCheck_Mismatch(t *testing.T) {
	rep := nomen.Check(sampleName, nomen.Options{})

	// Sanitizing changes nothing, the name splits, both dates are valid.
	assert.Equal(t, sampleName, rep.CurrentName())
	require.Nil(t, rep.Split)
	require.Len(t, rep.Fields, nomen.FieldCount)
	assert.Zero(t, rep.Problems())

	// Only the label and lens fields are normalised.
	assert.False(t, rep.Consistent)
	assert.Equal(t,
		"NES-SAI2d15-CS_200514-01_Vehicle-1_200517_DAPI+goPITX3-dk488_200519_CF_10X-z1-1.tiff",
		rep.UpdatedName())

	lines := strings.Join(rep.Lines(), "\n")
	assert.Contains(t, lines, nomen.VerdictMismatch)
	assert.Contains(t, lines, "current: "+rep.CurrentName())
	assert.Contains(t, lines, "updated: "+rep.UpdatedName())
}

func TestCheck_CanonicalIsIdempotent(t *testing.T) {
	first := nomen.Check(sampleName, nomen.Options{})
	second := nomen.Check(first.UpdatedName(), nomen.Options{})

	assert.True(t, second.Consistent)
	assert.Equal(t, first.UpdatedName(), second.UpdatedName())
	assert.Contains(t, strings.Join(second.Lines(), "\n"), nomen.VerdictConsistent)
}

func TestCheck_SplitFailureIsTerminal(t *testing.T) {
	rep := nomen.Check("one_two_three.tif", nomen.Options{})

	require.NotNil(t, rep.Split)
	assert.Equal(t, 3, rep.Split.Count)
	assert.Nil(t, rep.Fields)
	assert.False(t, rep.Consistent)
	// The diagnostic stands in for the verdict and no rename is suggested.
	assert.Equal(t, rep.CurrentName(), rep.UpdatedName())

	lines := strings.Join(rep.Lines(), "\n")
	assert.Contains(t, lines, "3 of 8 sections found")
	assert.Contains(t, lines, "too few sections: 5 missing")
	assert.NotContains(t, lines, nomen.VerdictMismatch)
}

func TestCheck_WrongDelimiterHint(t *testing.T) {
	rep := nomen.Check("exp-200514-01-Vehicle-1.tif", nomen.Options{})
	require.NotNil(t, rep.Split)
	assert.Contains(t, strings.Join(rep.Lines(), "\n"), "only one section found")
}

func TestCheck_BadFieldsAreIndependent(t *testing.T) {
	// Bad IHC date, bad lens: both must be reported, the rest still checked.
	rep := nomen.Check("exp-CS_200514-01_Vehicle-1_20051x_DAPI+goPitx3-dk488_200519_CF_10z1-1.tif", nomen.Options{})

	require.Nil(t, rep.Split)
	assert.Equal(t, 2, rep.Problems())
	assert.False(t, rep.Consistent)

	lines := strings.Join(rep.Lines(), "\n")
	assert.Contains(t, lines, `field 4: "20051x" is not a date in the expected YYMMDD format`)
	assert.Contains(t, lines, `field 8: cannot parse lens/zoom from "10z1-1"`)
	// The label field was still normalised despite the failures around it.
	assert.Contains(t, rep.UpdatedName(), "goPITX3-dk488")
	// Failed fields contribute unmodified.
	assert.Contains(t, rep.UpdatedName(), "_20051x_")
	assert.True(t, strings.HasSuffix(rep.UpdatedName(), "_10z1-1.tif"))
}

func TestCheck_SanitizesBeforeSplitting(t *testing.T) {
	rep := nomen.Check("exp CS_200514-01_Vehicle-1_200517_DAPI_200519_CF_10X-z1-1.tiff", nomen.Options{})
	require.Nil(t, rep.Split)
	assert.Equal(t, "expCS", rep.Fields[0])
	assert.True(t, rep.Consistent)
}

func TestCheck_VerboseFindings(t *testing.T) {
	verbose := nomen.Check(sampleName, nomen.Options{Verbose: true})
	terse := nomen.Check(sampleName, nomen.Options{})

	vLines := strings.Join(verbose.Lines(), "\n")
	assert.Contains(t, vLines, `condition "Vehicle", replicate "1"`)
	assert.Contains(t, vLines, "destination path NES-SAI2d15-CS/200514-01/Vehicle-1")
	assert.Contains(t, vLines, "date 2020-05-17")
	assert.Contains(t, vLines, "date 2020-05-19")
	assert.Contains(t, vLines, "changes: ")

	tLines := strings.Join(terse.Lines(), "\n")
	assert.NotContains(t, tLines, "condition")
	assert.NotContains(t, tLines, "changes: ")
}

func TestSplitReplicate(t *testing.T) {
	tests := []struct {
		field     string
		condition string
		replicate string
	}{
		{field: "Vehicle-1", condition: "Vehicle", replicate: "1"},
		{field: "High-Dose-3", condition: "High-Dose", replicate: "3"},
		{field: "KO#2", condition: "KO", replicate: "2"},
		{field: "KO-1#2", condition: "KO-1", replicate: "2"}, // hash wins over dash
		{field: "Control", condition: "Control", replicate: ""},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			c, r := nomen.SplitReplicate(tt.field)
			assert.Equal(t, tt.condition, c)
			assert.Equal(t, tt.replicate, r)
		})
	}
}
