package domain

// Confidence grades how strongly a narrative is supported.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Difficulty estimates the effort required to ship a build idea.
type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

// Timeframe labels used by the detection rules.
const (
	TimeframeEmerging = "Emerging"
	TimeframePeak     = "Peak"
	TimeframeSteady   = "Steady"
	TimeframeGrowing  = "Growing"
	TimeframeOngoing  = "Ongoing"
)

// GeneralNarrative is the narrative reference carried by filler ideas.
const GeneralNarrative = "General"

// Narrative is a named, evidenced claim that a thematic trend is emerging.
type Narrative struct {
	Name       string     `json:"name"`
	Confidence Confidence `json:"confidence"`
	Evidence   string     `json:"evidence"`
	Timeframe  string     `json:"timeframe"`
	Keywords   []string   `json:"keywords,omitempty"`
}

// BuildIdea is a templated product concept tied to one narrative.
type BuildIdea struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	NarrativeRef string     `json:"narrative"`
	TargetMarket string     `json:"targetMarket"`
	Difficulty   Difficulty `json:"difficulty"`
}
