// Package keyword splices a suggested keyword into user text.
package keyword

import "strings"

// Insert places keyword at the end of the first sentence of text.
// If text already contains keyword the input is returned unchanged,
// which makes repeated insertion idempotent.
//
// Sentences are approximated by splitting on the literal '.' character.
// Abbreviations, decimals and ellipses all alias as sentence breaks;
// this matches how the scoring UI has always behaved and stays stable
// because of the substring guard above.
func Insert(text, keyword string) string {
	if strings.Contains(text, keyword) {
		return text
	}

	segments := strings.Split(text, ".")
	if len(segments) == 0 {
		return keyword + ". " + text
	}

	segments[0] += " " + keyword
	return strings.Join(segments, ".")
}
