package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCell_IsBlank(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"empty", Empty(), true},
		{"whitespace text", Text("  \t"), true},
		{"text", Text("x"), false},
		{"number", Int(0), false},
		{"zero date", Date(time.Time{}), true},
		{"date", Date(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.IsBlank())
		})
	}
}

func TestBlankRow(t *testing.T) {
	assert.True(t, BlankRow(nil))
	assert.True(t, BlankRow([]Cell{Empty(), Text(" ")}))
	assert.False(t, BlankRow([]Cell{Empty(), Int(4)}))
}

func TestKind_RoundTrip(t *testing.T) {
	for _, k := range []Kind{KindEmpty, KindText, KindNumber, KindDate} {
		assert.Equal(t, k, ParseKind(k.String()))
	}
	assert.Equal(t, KindEmpty, ParseKind("bogus"))
}
