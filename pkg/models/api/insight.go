package api

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Finding struct {
	Id             string   `json:"id"`
	Item           string   `json:"item_id,omitempty"`
	Class          string   `json:"class,omitempty"`
	Issue          string   `json:"issue"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
	Severity       Severity `json:"severity"`
}

type InsightReport struct {
	Dataset  string                 `json:"dataset"`
	Period   TimePeriod             `json:"period"`
	Summary  map[string]interface{} `json:"summary"`
	Findings []Finding              `json:"findings"`
}
