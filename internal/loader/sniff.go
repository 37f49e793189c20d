package loader

import "strings"

// candidate delimiters, in preference order on ties
var delimiters = []rune{',', ';', '\t', '|'}

// sniffSampleSize bounds how much of the input the sniffer inspects.
const sniffSampleSize = 2048

// DetectDelimiter guesses the field delimiter from a sample of the input.
// A candidate scores by how many sample lines it appears on, with the total
// occurrence count breaking ties; a delimiter that shows up consistently on
// every data line wins. Falls back to comma when nothing matches.
func DetectDelimiter(sample string) rune {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestLines := 0
	bestCount := 0
	for _, delim := range delimiters {
		lineHits := 0
		total := 0
		for _, line := range lines {
			n := strings.Count(line, string(delim))
			if n > 0 {
				lineHits++
				total += n
			}
		}
		if lineHits > bestLines || (lineHits == bestLines && total > bestCount) {
			best = delim
			bestLines = lineHits
			bestCount = total
		}
	}
	if bestLines == 0 {
		return ','
	}
	return best
}

// sampleLines returns the non-empty lines of the sniffing sample. The last
// line is dropped when the sample was cut mid-line, so a truncated row
// cannot skew the counts.
func sampleLines(sample string) []string {
	truncated := len(sample) >= sniffSampleSize && !strings.HasSuffix(sample, "\n")
	raw := strings.Split(strings.ReplaceAll(sample, "\r\n", "\n"), "\n")
	if truncated && len(raw) > 1 {
		raw = raw[:len(raw)-1]
	}

	var lines []string
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// IsHeaderRow reports whether the first three trimmed cells look like the
// canonical header (name, subject, marks in any order, case-insensitive).
func IsHeaderRow(cells []string) bool {
	if len(cells) < 3 {
		return false
	}
	expected := map[string]bool{"name": true, "subject": true, "marks": true}
	for _, cell := range cells[:3] {
		if !expected[strings.ToLower(strings.TrimSpace(cell))] {
			return false
		}
	}
	return true
}
