package domain

// Era is a Japanese calendar era token with the base year that converts an
// era year to a Gregorian year (Gregorian = Base + era year).
type Era struct {
	Token string
	Base  int
}

// Known era tokens.
const (
	EraReiwa  = "令和"
	EraHeisei = "平成"
	EraShowa  = "昭和"
)

// EraTable is a read-only lookup of era tokens to base years.
// The zero value is an empty table.
type EraTable struct {
	eras []Era
}

// NewEraTable builds a table from the given eras. The slice is copied.
func NewEraTable(eras ...Era) EraTable {
	return EraTable{eras: append([]Era(nil), eras...)}
}

// DefaultEras returns the table of the three eras found in the datasets.
func DefaultEras() EraTable {
	return NewEraTable(
		Era{Token: EraReiwa, Base: 2018},
		Era{Token: EraHeisei, Base: 1988},
		Era{Token: EraShowa, Base: 1925},
	)
}

// Base returns the base year for an era token.
func (t EraTable) Base(token string) (int, bool) {
	for _, e := range t.eras {
		if e.Token == token {
			return e.Base, true
		}
	}
	return 0, false
}

// Eras returns the eras in table order. The returned slice is a copy.
func (t EraTable) Eras() []Era {
	return append([]Era(nil), t.eras...)
}

// Len returns the number of eras in the table.
func (t EraTable) Len() int {
	return len(t.eras)
}
