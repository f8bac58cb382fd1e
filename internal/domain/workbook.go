package domain

// CaseKind selects which drill a workbook case exercises.
type CaseKind string

const (
	CaseFormat        CaseKind = "format"
	CaseFilterRating  CaseKind = "filter_rating"
	CaseConcat        CaseKind = "concat"
	CaseVehicle       CaseKind = "vehicle"
	CaseProcessValue  CaseKind = "process_value"
	CaseMostExpensive CaseKind = "most_expensive"
	CaseDayType       CaseKind = "day_type"
	CaseSquare        CaseKind = "square"
)

// CaseKinds lists every supported kind in display order.
var CaseKinds = []CaseKind{
	CaseFormat,
	CaseFilterRating,
	CaseConcat,
	CaseVehicle,
	CaseProcessValue,
	CaseMostExpensive,
	CaseDayType,
	CaseSquare,
}

func (k CaseKind) Valid() bool {
	for _, c := range CaseKinds {
		if k == c {
			return true
		}
	}
	return false
}

// LetterCase picks the target case of the text formatter.
// The zero value is Upper, which is also the documented default.
type LetterCase int

const (
	Upper LetterCase = iota
	Lower
)

// DefaultLetterCase is used when a caller does not choose a case explicitly.
const DefaultLetterCase = Upper

func (c LetterCase) String() string {
	if c == Lower {
		return "lower"
	}
	return "upper"
}

// Expectation is a JSONPath-based check over a case's output document.
type Expectation struct {
	Exists   bool
	Eq       *string
	Contains *string
	Matches  *string
	Gt       *float64
	Lt       *float64
}

// HasChecks reports whether at least one check is set. `exists: false`
// alone checks nothing.
func (e Expectation) HasChecks() bool {
	return e.Exists || e.Eq != nil || e.Contains != nil || e.Matches != nil || e.Gt != nil || e.Lt != nil
}

// Expectations maps a JSONPath expression to its checks.
type Expectations map[string]Expectation

// Case is one drill invocation. Only the inputs of its Kind are meaningful.
type Case struct {
	Name string
	Kind CaseKind

	Text       string
	LetterCase LetterCase

	Items     []RatedItem
	Sequences [][]any

	// Car with an empty Model is treated as a plain Vehicle.
	Car Car

	Value    Value
	Products []Product
	Day      Day
	Number   float64

	// MaxLatencyMS is a maximum allowed latency in milliseconds (optional).
	MaxLatencyMS *int
	Expect       Expectations
}

// Workbook groups cases under one name (Git-friendly YAML on disk).
type Workbook struct {
	Name  string
	Cases []Case
}

// WorkbookRef is a lightweight reference to a workbook file on disk.
type WorkbookRef struct {
	Name string
	Path string
}
