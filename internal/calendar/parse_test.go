package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFormats(t *testing.T) {
	cases := map[string]string{
		"2023-12-25": "2023-12-25",
		"2023/12/25": "2023-12-25",
		"25/12/2023": "2023-12-25",
		" 2024-01-02 ": "2024-01-02",
	}

	for in, want := range cases {
		got, err := ParseDate(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "2023-13-40", "12-25-2023", "25-12-2023"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}

func TestParseDateConfigSingleDates(t *testing.T) {
	assert.Equal(t,
		[]DatePair{{Start: "2023-12-25", End: "2023-12-25"}},
		ParseDateConfig("2023-12-25"))

	// Slash formats normalize to the same pair.
	assert.Equal(t,
		[]DatePair{{Start: "2023-12-25", End: "2023-12-25"}},
		ParseDateConfig("25/12/2023"))
}

func TestParseDateConfigRanges(t *testing.T) {
	assert.Equal(t,
		[]DatePair{{Start: "2023-12-24", End: "2024-01-03"}},
		ParseDateConfig("2023-12-24-2024-01-03"))

	// Slash-format ranges carry exactly one hyphen.
	assert.Equal(t,
		[]DatePair{{Start: "2023-12-24", End: "2024-01-03"}},
		ParseDateConfig("24/12/2023-03/01/2024"))

	assert.Equal(t,
		[]DatePair{{Start: "2023-12-24", End: "2024-01-03"}},
		ParseDateConfig("2023/12/24-2024/01/03"))
}

func TestParseDateConfigDropsInvalidTokens(t *testing.T) {
	assert.Equal(t,
		[]DatePair{{Start: "2023-01-01", End: "2023-01-01"}},
		ParseDateConfig("bad-token, 2023-01-01"))

	assert.Empty(t, ParseDateConfig("nonsense"))
	assert.Empty(t, ParseDateConfig(""))
	assert.Empty(t, ParseDateConfig("  ,  "))
}

func TestParseDateConfigMixedTokens(t *testing.T) {
	got := ParseDateConfig("2023-12-25, 24/12/2023-03/01/2024, junk, 2024/02/14")

	assert.Equal(t, []DatePair{
		{Start: "2023-12-25", End: "2023-12-25"},
		{Start: "2023-12-24", End: "2024-01-03"},
		{Start: "2024-02-14", End: "2024-02-14"},
	}, got)
}

func TestParseDateConfigNoOrderingValidation(t *testing.T) {
	// Inverted ranges survive parsing; ordering is enforced on insert.
	assert.Equal(t,
		[]DatePair{{Start: "2024-01-03", End: "2023-12-24"}},
		ParseDateConfig("2024-01-03-2023-12-24"))
}
