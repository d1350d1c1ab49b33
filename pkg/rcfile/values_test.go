package rcfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "numpy", []string{"numpy"}},
		{"simple", "i,j,k", []string{"i", "j", "k"}},
		{"padded", " i , j , k ", []string{"i", "j", "k"}},
		{"trailing comma dropped", "i,j,", []string{"i", "j"}},
		{"empty tokens dropped", "i,,j", []string{"i", "j"}},
		{"multiline", "no-member,\n    not-callable", []string{"no-member", "not-callable"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.value))
		})
	}
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "numpy", JoinList([]string{"numpy"}))
	assert.Equal(t, "no-member,\nnot-callable", JoinList([]string{"no-member", "not-callable"}))
	assert.Equal(t, "", JoinList(nil))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	items := []string{"bad-continuation", "no-member", "duplicate-code"}
	assert.Equal(t, items, SplitList(JoinList(items)))
}
