package venues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLayout() Layout {
	return NewLayout([]ScreenRow{
		{RowLabel: "A", SeatType: "Normal", SeatCount: 12, Position: 0},
		{RowLabel: "B", SeatType: "Premium", SeatCount: 10, Position: 1},
		{RowLabel: "AA", SeatType: "VIP", SeatCount: 4, Position: 2},
	})
}

func TestSplitSeatLabel(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		wantRow    string
		wantNumber int
		wantOK     bool
	}{
		{"simple", "A12", "A", 12, true},
		{"double letter row", "AA3", "AA", 3, true},
		{"lowercase normalized", "b7", "B", 7, true},
		{"surrounding whitespace", " A1 ", "A", 1, true},
		{"no number", "A", "", 0, false},
		{"no row", "12", "", 0, false},
		{"zero seat", "A0", "", 0, false},
		{"negative seat", "A-3", "", 0, false},
		{"empty", "", "", 0, false},
		{"letters after digits", "A1B", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, number, ok := SplitSeatLabel(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantNumber, number)
		})
	}
}

func TestLayoutContains(t *testing.T) {
	layout := testLayout()

	assert.True(t, layout.Contains("A1"))
	assert.True(t, layout.Contains("A12"))
	assert.True(t, layout.Contains("a5"), "label matching is case-insensitive")
	assert.True(t, layout.Contains("AA4"))

	assert.False(t, layout.Contains("A13"), "beyond the row's seat count")
	assert.False(t, layout.Contains("Z1"), "row does not exist")
	assert.False(t, layout.Contains("A"), "missing seat number")
	assert.False(t, layout.Contains("5"))
}

func TestLayoutResolveSeatType(t *testing.T) {
	layout := testLayout()

	assert.Equal(t, "Normal", layout.ResolveSeatType("A3"))
	assert.Equal(t, "Premium", layout.ResolveSeatType("B10"))
	assert.Equal(t, "VIP", layout.ResolveSeatType("AA1"))

	// Unresolvable identifiers fall back to Normal
	assert.Equal(t, SeatTypeNormal, layout.ResolveSeatType("Z9"))
	assert.Equal(t, SeatTypeNormal, layout.ResolveSeatType("bogus"))
}

func TestLayoutSeatCount(t *testing.T) {
	assert.Equal(t, 26, testLayout().SeatCount())
	assert.Equal(t, 0, NewLayout(nil).SeatCount())
}
