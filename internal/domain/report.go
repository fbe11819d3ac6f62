package domain

import "time"

// Summary captures per-run counts.
type Summary struct {
	Signals        int      `json:"signals"`
	Narratives     int      `json:"narratives"`
	BuildIdeas     int      `json:"buildIdeas"`
	Sources        []string `json:"sources"`
	HighConfidence int      `json:"highConfidence"`
}

// Report is the terminal artifact of one detection run.
type Report struct {
	RunID      string      `json:"runId"`
	Timestamp  time.Time   `json:"timestamp"`
	Signals    []Signal    `json:"signals"`
	Narratives []Narrative `json:"narratives"`
	BuildIdeas []BuildIdea `json:"buildIdeas"`
	Summary    Summary     `json:"summary"`
}

// NewReport assembles a report and derives its summary.
func NewReport(runID string, at time.Time, signals []Signal, narratives []Narrative, ideas []BuildIdea) Report {
	if signals == nil {
		signals = []Signal{}
	}
	return Report{
		RunID:      runID,
		Timestamp:  at.UTC(),
		Signals:    signals,
		Narratives: narratives,
		BuildIdeas: ideas,
		Summary:    Summarize(signals, narratives, ideas),
	}
}

// Summarize counts signals, narratives, and ideas.
func Summarize(signals []Signal, narratives []Narrative, ideas []BuildIdea) Summary {
	sources := make([]string, 0, len(signals))
	for _, s := range signals {
		sources = append(sources, s.Source)
	}

	high := 0
	for _, n := range narratives {
		if n.Confidence == ConfidenceHigh {
			high++
		}
	}

	return Summary{
		Signals:        len(signals),
		Narratives:     len(narratives),
		BuildIdeas:     len(ideas),
		Sources:        sources,
		HighConfidence: high,
	}
}

// Day returns the calendar date of the report in YYYY-MM-DD form.
func (r Report) Day() string {
	return r.Timestamp.UTC().Format("2006-01-02")
}
