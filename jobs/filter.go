package jobs

// Any matches every value of a selector.
const Any = ""

// ModeOptions and ContractOptions are the selector values, "Any" first.
var (
	ModeOptions     = []Mode{Any, Remote, Hybrid, Onsite}
	ContractOptions = []Contract{Any, CLT, PJ}
)

// Filter narrows the listing. The zero value matches everything.
type Filter struct {
	Mode     Mode
	Contract Contract
}

// IsZero reports whether f matches everything.
func (f Filter) IsZero() bool { return f == Filter{} }

// Match reports whether j passes f.
func (f Filter) Match(j Job) bool {
	if f.Mode != Any && j.Mode != f.Mode {
		return false
	}
	if f.Contract != Any && j.Contract != f.Contract {
		return false
	}
	return true
}

// Apply returns the indexes of all jobs passing f, in order.
func (f Filter) Apply(all []Job) []int {
	idx := make([]int, 0, len(all))
	for i, j := range all {
		if f.Match(j) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Field is one selector in the filter panel.
type Field int

const (
	FieldMode Field = iota
	FieldContract
	numFields
)

// NextField moves focus to the following selector, wrapping around.
func (fl Field) NextField() Field { return (fl + 1) % numFields }

// Cycle steps the focused selector by delta through its options.
func (f Filter) Cycle(field Field, delta int) Filter {
	switch field {
	case FieldMode:
		f.Mode = ModeOptions[step(indexOf(ModeOptions, f.Mode), delta, len(ModeOptions))]
	case FieldContract:
		f.Contract = ContractOptions[step(indexOf(ContractOptions, f.Contract), delta, len(ContractOptions))]
	}
	return f
}

// ModeLabel renders the mode selector value.
func (f Filter) ModeLabel() string {
	if f.Mode == Any {
		return "Any"
	}
	return f.Mode.Label()
}

// ContractLabel renders the contract selector value.
func (f Filter) ContractLabel() string {
	if f.Contract == Any {
		return "Any"
	}
	return string(f.Contract)
}

func indexOf[T comparable](opts []T, v T) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}

func step(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}
