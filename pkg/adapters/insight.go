package adapters

import (
	"github.com/de-tools/sku-atlas/pkg/models/api"
	"github.com/de-tools/sku-atlas/pkg/models/domain"
)

func MapSeverityDomainToApi(s domain.Severity) api.Severity {
	switch s {
	case domain.SeverityHigh:
		return api.SeverityHigh
	case domain.SeverityMedium:
		return api.SeverityMedium
	default:
		return api.SeverityLow
	}
}

func MapFindingDomainToApi(f domain.Finding) api.Finding {
	return api.Finding{
		Id:             f.ID,
		Item:           string(f.Item),
		Class:          f.Class,
		Issue:          f.Issue,
		Description:    f.Description,
		Recommendation: f.Recommendation,
		Severity:       MapSeverityDomainToApi(f.Severity),
	}
}

func MapInsightReportDomainToApi(r domain.InsightReport) api.InsightReport {
	res := api.InsightReport{
		Dataset:  r.Dataset,
		Period:   MapTimePeriodDomainToApi(r.Period),
		Summary:  map[string]any{},
		Findings: make([]api.Finding, 0, len(r.Findings)),
	}

	for k, v := range r.Summary {
		res.Summary[k] = v
	}
	for _, f := range r.Findings {
		res.Findings = append(res.Findings, MapFindingDomainToApi(f))
	}

	return res
}
