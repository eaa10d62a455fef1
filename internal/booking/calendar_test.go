package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateGroupsByDateAndStatus(t *testing.T) {
	visits := []CalendarVisit{
		{ID: 1, Date: "2024-03-05", Time: "10:00", Status: StatusPending},
		{ID: 2, Date: "2024-03-05", Time: "14:30", Status: StatusApproved},
		{ID: 3, Date: "2024-03-06", Time: "09:15", Status: StatusCancelled},
	}

	agg := Aggregate(visits)

	require.Len(t, agg.ByDate, 2)
	assert.Len(t, agg.ByDate["2024-03-05"], 2)
	assert.Len(t, agg.ByDate["2024-03-06"], 1)
	assert.Equal(t, map[Status]int{
		StatusPending:   1,
		StatusApproved:  1,
		StatusCancelled: 1,
	}, agg.ByStatus)
}

func TestAggregateIsIdempotent(t *testing.T) {
	visits := []CalendarVisit{
		{ID: 1, Date: "2024-03-05", Status: StatusPending},
		{ID: 2, Date: "2024-03-05", Status: StatusApproved},
		{ID: 3, Date: "2024-04-01", Status: StatusDisapproved},
	}

	first := Aggregate(visits)
	second := Aggregate(visits)

	assert.Equal(t, first, second)
	// The input slice must be untouched by aggregation.
	assert.Equal(t, uint64(1), visits[0].ID)
	assert.Equal(t, StatusApproved, visits[1].Status)
}

func TestAggregateSkipsUnparseableDates(t *testing.T) {
	visits := []CalendarVisit{
		{ID: 1, Date: "2024-03-05", Status: StatusPending},
		{ID: 2, Date: "05/03/2024", Status: StatusApproved},
		{ID: 3, Date: "", Status: StatusApproved},
	}

	agg := Aggregate(visits)

	// Bad dates are dropped from the index but still counted.
	require.Len(t, agg.ByDate, 1)
	assert.Len(t, agg.ByDate["2024-03-05"], 1)
	assert.Equal(t, 1, agg.ByStatus[StatusPending])
	assert.Equal(t, 2, agg.ByStatus[StatusApproved])
}

func TestAggregateEmptyInput(t *testing.T) {
	agg := Aggregate(nil)
	assert.Empty(t, agg.ByDate)
	assert.Empty(t, agg.ByStatus)
}

func TestBuildMonthGrid(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       time.Month
		days        int
		leading     int
		totalCells  int
	}{
		// March 2024 starts on a Friday (column 5).
		{name: "march 2024", year: 2024, month: time.March, days: 31, leading: 4, totalCells: 35},
		// September 2024 starts on a Sunday, which must land in
		// column 7, not column 1.
		{name: "sunday start", year: 2024, month: time.September, days: 30, leading: 6, totalCells: 42},
		// July 2024 starts on a Monday: no leading blanks.
		{name: "monday start", year: 2024, month: time.July, days: 31, leading: 0, totalCells: 35},
		// February in a leap year.
		{name: "leap february", year: 2024, month: time.February, days: 29, leading: 3, totalCells: 35},
		// February 2021 starts on a Monday and fills exactly four weeks.
		{name: "exact weeks", year: 2021, month: time.February, days: 28, leading: 0, totalCells: 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonthGrid(tt.year, tt.month)

			assert.Equal(t, tt.days, grid.Days)
			assert.Equal(t, tt.leading, grid.Leading)
			require.Len(t, grid.Cells, tt.totalCells)
			require.Zero(t, len(grid.Cells)%7)

			// Leading blanks, then days 1..N in order, then blanks.
			for i := 0; i < tt.leading; i++ {
				assert.Zero(t, grid.Cells[i])
			}
			for d := 1; d <= tt.days; d++ {
				assert.Equal(t, d, grid.Cells[tt.leading+d-1])
			}
			for i := tt.leading + tt.days; i < len(grid.Cells); i++ {
				assert.Zero(t, grid.Cells[i])
			}
		})
	}
}
