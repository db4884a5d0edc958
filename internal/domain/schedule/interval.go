package schedule

import "fmt"

// Interval is a half-open range [Start, End) on a minute-of-day axis.
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Valid() bool {
	return iv.Start < iv.End
}

func (iv Interval) Minutes() int {
	return iv.End - iv.Start
}

// Contains reports whether [s, e) lies entirely inside iv.
func (iv Interval) Contains(s, e int) bool {
	return iv.Start <= s && e <= iv.End
}

// Overlaps reports whether iv and o share at least one minute.
// Touching intervals ([a,b) and [b,c)) do not overlap.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start < o.End && o.Start < iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}
