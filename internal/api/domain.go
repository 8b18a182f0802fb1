package api

import (
	"github.com/JaimeStill/tutela/internal/aisystems"
	"github.com/JaimeStill/tutela/internal/assessments"
	"github.com/JaimeStill/tutela/internal/config"
	"github.com/JaimeStill/tutela/internal/evidence"
	"github.com/JaimeStill/tutela/internal/organizations"
	"github.com/JaimeStill/tutela/internal/remediation"
	"github.com/JaimeStill/tutela/internal/reports"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Organizations organizations.System
	AISystems     aisystems.System
	Assessments   assessments.System
	Remediation   remediation.System
	Evidence      evidence.System
	Reports       reports.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	return &Domain{
		Organizations: organizations.New(db, runtime.Logger, runtime.Pagination),
		AISystems:     aisystems.New(db, runtime.Logger, runtime.Pagination),
		Assessments: assessments.New(
			db,
			runtime.Logger,
			runtime.Pagination,
			cfg.RemediationDeadlineDuration(),
		),
		Remediation: remediation.New(db, runtime.Logger, runtime.Pagination),
		Evidence: evidence.New(
			db,
			runtime.Storage,
			runtime.Logger,
			runtime.Pagination,
		),
		Reports: reports.New(db, runtime.Logger),
	}
}
