package form

// States are the two-letter codes offered by the state select.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var stateSet = func() map[string]bool {
	m := make(map[string]bool, len(States))
	for _, s := range States {
		m[s] = true
	}
	return m
}()

// IsState reports whether s is one of States.
func IsState(s string) bool { return stateSet[s] }
