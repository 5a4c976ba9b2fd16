package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psttools/pstsweep/internal/sweep"
)

func confirmWith(input string, friction sweep.Friction) bool {
	c := TerminalConfirmer{In: strings.NewReader(input), Out: io.Discard}
	return c.Confirm("delete things?", friction)
}

func TestConfirmRoutineAcceptsSingleLetter(t *testing.T) {
	assert.True(t, confirmWith("Y\n", sweep.FrictionLow))
	assert.True(t, confirmWith("y\n", sweep.FrictionLow))
	assert.True(t, confirmWith("  y  \n", sweep.FrictionLow), "surrounding whitespace is trimmed")
}

func TestConfirmRoutineRejectsEverythingElse(t *testing.T) {
	for _, reply := range []string{"n\n", "N\n", "yes\n", "YES\n", "\n", "q\n"} {
		assert.Falsef(t, confirmWith(reply, sweep.FrictionLow), "reply %q", reply)
	}
}

func TestConfirmResetRequiresExactPhrase(t *testing.T) {
	assert.True(t, confirmWith("YES\n", sweep.FrictionHigh))
	for _, reply := range []string{"yes\n", "Yes\n", "Y\n", "y\n", "\n"} {
		assert.Falsef(t, confirmWith(reply, sweep.FrictionHigh), "reply %q", reply)
	}
}

func TestConfirmClosedInputCancels(t *testing.T) {
	assert.False(t, confirmWith("", sweep.FrictionLow), "EOF declines")
	assert.False(t, confirmWith("", sweep.FrictionHigh))
}

func TestConfirmLastLineWithoutNewline(t *testing.T) {
	assert.True(t, confirmWith("Y", sweep.FrictionLow))
	assert.True(t, confirmWith("YES", sweep.FrictionHigh))
}
