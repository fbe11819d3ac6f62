package domain

import "strings"

// Signal is a source-tagged batch of short text observations about ecosystem activity.
type Signal struct {
	Source string   `json:"source"`
	Type   string   `json:"type"`
	Data   []string `json:"data"`
}

// NewSignal copies data so the caller cannot mutate the signal afterwards.
func NewSignal(source, category string, data []string) Signal {
	snippets := make([]string, len(data))
	copy(snippets, data)
	return Signal{Source: source, Type: category, Data: snippets}
}

// Empty reports whether the signal carries no snippets.
func (s Signal) Empty() bool {
	return len(s.Data) == 0
}

// Text joins the snippets with single spaces.
func (s Signal) Text() string {
	return strings.Join(s.Data, " ")
}
