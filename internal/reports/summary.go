// Package reports implements dashboard aggregates for Tutela.
// Counts are computed with concurrent queries since each aggregate is
// independent of the others.
package reports

// Summary is the compliance dashboard snapshot across the whole inventory.
type Summary struct {
	Organizations      int            `json:"organizations"`
	Systems            int            `json:"systems"`
	SystemsByStatus    map[string]int `json:"systems_by_status"`
	SystemsByRiskLevel map[string]int `json:"systems_by_risk_level"`
	ProhibitedSystems  int            `json:"prohibited_systems"`
	OpenTasks          int            `json:"open_tasks"`
	OverdueTasks       int            `json:"overdue_tasks"`
	EvidenceFiles      int            `json:"evidence_files"`
}
