package models

// Result represents a verified embedding produced by the generator
type Result struct {
	// Version is the QR version that passed verification
	Version int

	// Matrix is the final module grid with the label burned in
	Matrix Matrix

	// EmbeddedText is the label text actually embedded, which may be a
	// truncated form of the requested text
	EmbeddedText string

	// Iterations is the number of versions tried before success
	Iterations int
}
