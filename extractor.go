package linkcheck

// LinkExtractor reads a local document and returns the references it contains.
type LinkExtractor interface {
	// Extract parses the document at path, decoded with the given character
	// encoding, and returns its link, frame and image references in
	// document order. Elements without the attribute yield nothing.
	Extract(path string, encoding string) ([]Reference, error)
}
