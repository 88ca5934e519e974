package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	testCases := []struct {
		guess, target string
		mask          string
	}{
		{"crane", "crane", "ggggg"},
		{"crane", "moist", "bbbbb"},
		{"robot", "floor", "yybgb"},
		{"apple", "paper", "yygby"},
		{"speed", "abide", "bbyby"},
		{"eerie", "geese", "ygbbg"},
		{"ALLOT", "llama", "ygybb"},
	}

	for _, tc := range testCases {
		t.Run(tc.guess+"/"+tc.target, func(t *testing.T) {
			row, err := Score(tc.guess, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.mask, row.Mask())
		})
	}
}

func TestScoreSolved(t *testing.T) {
	row, err := NewScorer().Score("Moist", "moist")
	require.NoError(t, err)
	assert.True(t, row.Solved())
	assert.Equal(t, "moist", row.Word())
}

func TestScoreErrors(t *testing.T) {
	_, err := Score("cat", "crane")
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Score("cr4ne", "crane")
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = Score("", "")
	assert.ErrorIs(t, err, ErrInvalidWord)
}
