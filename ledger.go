package footprint

import (
	"iter"
	"sort"
)

// Ledger represents one user's store: the list of activity records and the
// user preferences.
//
// In a Ledger activities are always in chronological order. Records are
// appended, never mutated; a record only disappears when the whole store is
// rewritten without it.
type Ledger struct {
	name       string // the user this store belongs to
	activities []Activity
	prefs      Preferences
}

// NewLedger creates an empty ledger with default preferences.
func NewLedger() *Ledger {
	return &Ledger{
		activities: make([]Activity, 0),
		prefs:      DefaultPreferences(),
	}
}

// Name returns the user name this ledger belongs to.
func (l *Ledger) Name() string { return l.name }

// Preferences gives access to the user's behavior flags.
func (l *Ledger) Preferences() *Preferences { return &l.prefs }

// Len returns the number of activity records.
func (l *Ledger) Len() int { return len(l.activities) }

// Append appends activities to this ledger and maintains the chronological
// order of records.
func (l *Ledger) Append(activities ...Activity) {
	l.activities = append(l.activities, activities...)
	l.stableSort()
}

// stableSort sorts the ledger by activity date. The sort is stable, meaning
// activities on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.activities, func(i, j int) bool {
		return l.activities[i].When().Before(l.activities[j].When())
	})
}

// Activities returns an iterator that yields each activity in chronological
// order. An activity is yielded if at least one filter accepts it.
func (l *Ledger) Activities(filters ...func(Activity) bool) iter.Seq2[int, Activity] {
	return func(yield func(int, Activity) bool) {
		for i, a := range l.activities {
			accept := false
			for _, filter := range filters {
				if filter(a) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, a) {
				return
			}
		}
	}
}

// AcceptAll is a predicate that accepts every activity.
func AcceptAll(Activity) bool { return true }

// ByCategory returns a predicate that filters activities by category.
func ByCategory(c Category) func(Activity) bool {
	return func(a Activity) bool { return a.What() == c }
}

// Within returns a predicate that filters activities by date range.
func Within(r Range) func(Activity) bool {
	return func(a Activity) bool { return r.Contains(a.When()) }
}

// OldestActivityDate returns the date of the earliest record in the ledger,
// or the zero date if the ledger is empty.
func (l *Ledger) OldestActivityDate() Date {
	if len(l.activities) == 0 {
		return Date{}
	}
	return l.activities[0].When()
}

// NewestActivityDate returns the date of the latest record in the ledger,
// or the zero date if the ledger is empty.
func (l *Ledger) NewestActivityDate() Date {
	if len(l.activities) == 0 {
		return Date{}
	}
	return l.activities[len(l.activities)-1].When()
}
