package booking

import "time"

// dateLayout is the wire format of visit dates.
const dateLayout = "2006-01-02"

// CalendarVisit is the minimal projection of a visit needed by the
// calendar aggregation.  The query layer maps its richer rows onto
// this type before aggregating.
type CalendarVisit struct {
    ID     uint64 `json:"visit_id"`
    Date   string `json:"visit_date"`
    Time   string `json:"visit_time"`
    Status Status `json:"status"`
}

// Aggregation holds the two derived views of a visit list: the
// by-date index used to render per-day markers, and the by-status
// counts used for summary badges.  Both are built in a single pass
// and never share state with the input slice, so aggregating the
// same list twice yields identical results.
type Aggregation struct {
    ByDate   map[string][]CalendarVisit `json:"by_date"`
    ByStatus map[Status]int             `json:"by_status"`
}

// Aggregate builds both derived views from a flat visit list.  It is
// a pure function of its input.  A visit whose date does not parse
// as YYYY-MM-DD is excluded from the by-date index but still counted
// in the by-status counts, so summary badges stay consistent with
// the total number of visits.
func Aggregate(visits []CalendarVisit) Aggregation {
    agg := Aggregation{
        ByDate:   make(map[string][]CalendarVisit),
        ByStatus: make(map[Status]int),
    }
    for _, v := range visits {
        agg.ByStatus[v.Status]++
        if _, err := time.Parse(dateLayout, v.Date); err != nil {
            continue
        }
        agg.ByDate[v.Date] = append(agg.ByDate[v.Date], v)
    }
    return agg
}

// MonthGrid describes the cell layout of one displayed month with
// Monday as the first column.  Cells contains zero for blank padding
// cells and the day number (1..Days) for content cells.  The total
// cell count is always a multiple of seven.
type MonthGrid struct {
    Year    int   `json:"year"`
    Month   int   `json:"month"`
    Days    int   `json:"days"`
    Leading int   `json:"leading_blanks"`
    Cells   []int `json:"cells"`
}

// BuildMonthGrid computes the calendar grid for the given month.
// The day-of-week offset of day 1 is (weekday || 7) - 1 so that a
// Sunday (time.Weekday 0) lands in the seventh column rather than
// the first.  Trailing blanks pad the grid to a full final week.
func BuildMonthGrid(year int, month time.Month) MonthGrid {
    first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
    days := first.AddDate(0, 1, -1).Day()

    w := int(first.Weekday())
    if w == 0 {
        w = 7
    }
    leading := w - 1

    cells := make([]int, 0, leading+days+6)
    for i := 0; i < leading; i++ {
        cells = append(cells, 0)
    }
    for d := 1; d <= days; d++ {
        cells = append(cells, d)
    }
    for len(cells)%7 != 0 {
        cells = append(cells, 0)
    }

    return MonthGrid{
        Year:    year,
        Month:   int(month),
        Days:    days,
        Leading: leading,
        Cells:   cells,
    }
}
