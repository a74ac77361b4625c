// Package lenientcsv provides delimiter detection for CSV samples.
package lenientcsv

import "strings"

// snifferCandidates are the delimiters considered by DetectDelimiter,
// checked in order: comma, tab, semicolon, pipe.
var snifferCandidates = []byte{',', '\t', ';', '|'}

// DetectDelimiter guesses the field delimiter of a CSV sample. For best
// results provide at least two or three lines of data. It falls back to
// ',' when the sample is empty or no candidate occurs at all.
//
// Candidates are scored by how often they occur outside enclosures, with
// a strong bonus when the count is identical on every non-empty line:
// a delimiter that splits each record into the same number of fields is
// almost certainly the real one.
func DetectDelimiter(sample string, enclosure byte) byte {
	if sample == "" {
		return ','
	}

	lines := strings.Split(sample, "\n")
	best := byte(',')
	bestScore := 0

	for _, cand := range snifferCandidates {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			counts = append(counts, countUnenclosed(line, cand, enclosure))
		}
		if len(counts) == 0 || counts[0] == 0 {
			continue
		}

		score := counts[0]
		consistent := true
		for _, c := range counts[1:] {
			if c != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10
		}
		if score > bestScore {
			best = cand
			bestScore = score
		}
	}

	return best
}

// countUnenclosed counts occurrences of b outside enclosed sections.
func countUnenclosed(line string, b, enclosure byte) int {
	count := 0
	enclosed := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case enclosure:
			enclosed = !enclosed
		case b:
			if !enclosed {
				count++
			}
		}
	}
	return count
}
