package domain

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

type Finding struct {
	ID             string
	Item           ItemID // empty for portfolio level findings
	Class          string // composite label the finding refers to, if any
	Issue          string
	Description    string
	Recommendation string
	Severity       Severity
}

type InsightReport struct {
	Dataset  string
	Period   TimePeriod
	Summary  map[string]any
	Findings []Finding
}
