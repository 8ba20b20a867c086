package models

// ECLevel represents a QR error-correction level
type ECLevel int

const (
	ECLevelL ECLevel = iota // ~7% recovery
	ECLevelM                // ~15% recovery
	ECLevelQ                // ~25% recovery
	ECLevelH                // ~30% recovery
)

// String returns the standard single-letter name of the level
func (l ECLevel) String() string {
	switch l {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	}
	return "?"
}
