package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-d", "scana.db", "-x", "other", "-l", "en"}
	got := FilterArgs(args, []string{"-d", "-l"})
	assert.Equal(t, []string{"-d", "scana.db", "-l", "en"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "--other=1"}
	got := FilterArgs(args, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-d", "-l", "en"}
	got := FilterArgs(args, []string{"-d"})
	assert.Equal(t, []string{"-d"}, got)
}

func TestFilterArgs_NoMatches(t *testing.T) {
	args := []string{"-x", "1", "-y"}
	got := FilterArgs(args, []string{"-d"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
