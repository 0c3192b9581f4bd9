package tagset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList_Add(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{
			name:   "duplicate entry yields a single tag",
			inputs: []string{"Python", "Python"},
			want:   []string{"Python"},
		},
		{
			name:   "insertion order preserved",
			inputs: []string{"Python", "SQL"},
			want:   []string{"Python", "SQL"},
		},
		{
			name:   "whitespace trimmed before commit",
			inputs: []string{"  Python  ", "Python"},
			want:   []string{"Python"},
		},
		{
			name:   "blank input ignored",
			inputs: []string{"", "   ", "GPT"},
			want:   []string{"GPT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l List
			for _, in := range tt.inputs {
				l.Add(in)
			}
			assert.Equal(t, tt.want, l.Values())
		})
	}
}

func TestList_Remove(t *testing.T) {
	var l List
	l.Add("Python")
	l.Add("SQL")
	l.Add("GPT")

	l.Remove("SQL")
	assert.Equal(t, []string{"Python", "GPT"}, l.Values())

	// removing a missing tag is a no-op
	l.Remove("Rust")
	assert.Equal(t, []string{"Python", "GPT"}, l.Values())
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" Data Analysts ", "PMs", "Data Analysts", ""})
	assert.Equal(t, []string{"Data Analysts", "PMs"}, got)

	assert.Nil(t, Normalize(nil))
	assert.Nil(t, Normalize([]string{"", "  "}))
}
