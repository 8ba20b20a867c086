package constants

const (
	// Glyph constants
	GlyphWidth   = 3
	GlyphHeight  = 5
	GlyphSpacing = 1

	// QR version constants
	MinVersion          = 1
	MaxVersion          = 40
	DefaultStartVersion = 5
	DefaultMaxVersion   = 40

	// Label constants
	RecommendedMaxLabelLength = 15
	LabelPadding              = 1 // light modules around the label

	// Rendering constants
	DefaultModuleSize = 10 // pixels per module
	DefaultQuietZone  = 4  // modules of white border

	// Network constants
	DefaultTimeout       = 30
	DefaultRetryCount    = 3
	DefaultRetryWaitTime = 5
	MaxURLLength         = 4096

	// Cache constants
	CacheExpiration      = 60 // minutes
	CacheCleanupInterval = 10 // minutes
)
