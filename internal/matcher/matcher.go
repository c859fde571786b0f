// Package matcher finds lines of a text containing the query - exact or case-insensitive
package matcher

import "strings"

// Search returns every line of content that contains query.
// Returned lines are substrings of content, no copies are made.
func Search(query, content string) []string {
	result := []string{}
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchCaseInsensitive works as Search but compares lower-cased copies of query and line.
// Lines are returned in their original casing.
func SearchCaseInsensitive(query, content string) []string {
	query = strings.ToLower(query)

	result := []string{}
	for _, line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), query) {
			result = append(result, line)
		}
	}
	return result
}

// Lines splits content on "\n". A "\r" right before "\n" is dropped, a lone "\r" stays in the line.
// The last line may go without terminator, a trailing "\n" doesn't add an empty line.
func Lines(content string) []string {
	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 { // последняя строка без перевода строки
			lines = append(lines, content)
			break
		}
		lines = append(lines, strings.TrimSuffix(content[:i], "\r"))
		content = content[i+1:]
	}
	return lines
}
