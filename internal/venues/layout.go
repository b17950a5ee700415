package venues

import (
	"strconv"
	"strings"
)

// Layout is a screen's seat map, built from its rows. It answers the two
// questions the booking path needs: does a seat identifier exist, and what
// seat type does it carry.
type Layout struct {
	rows map[string]ScreenRow
}

func NewLayout(rows []ScreenRow) Layout {
	m := make(map[string]ScreenRow, len(rows))
	for _, row := range rows {
		m[strings.ToUpper(row.RowLabel)] = row
	}
	return Layout{rows: m}
}

// SplitSeatLabel breaks a seat identifier like "A12" into its row label and
// seat number. The row label is the leading run of letters.
func SplitSeatLabel(label string) (rowLabel string, seatNumber int, ok bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	i := 0
	for i < len(label) && label[i] >= 'A' && label[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(label) {
		return "", 0, false
	}

	num, err := strconv.Atoi(label[i:])
	if err != nil || num <= 0 {
		return "", 0, false
	}
	return label[:i], num, true
}

// Contains reports whether the seat identifier names a seat that exists in
// this layout.
func (l Layout) Contains(label string) bool {
	rowLabel, seatNumber, ok := SplitSeatLabel(label)
	if !ok {
		return false
	}
	row, found := l.rows[rowLabel]
	if !found {
		return false
	}
	return seatNumber <= row.SeatCount
}

// ResolveSeatType maps a seat identifier to its row's seat type. Unresolvable
// identifiers fall back to the Normal type.
func (l Layout) ResolveSeatType(label string) string {
	rowLabel, _, ok := SplitSeatLabel(label)
	if !ok {
		return SeatTypeNormal
	}
	row, found := l.rows[rowLabel]
	if !found {
		return SeatTypeNormal
	}
	return row.SeatType
}

// SeatCount returns the total number of seats across all rows.
func (l Layout) SeatCount() int {
	total := 0
	for _, row := range l.rows {
		total += row.SeatCount
	}
	return total
}
