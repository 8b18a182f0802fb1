package api

import (
	"net/http"

	"github.com/JaimeStill/tutela/internal/catalog"
	"github.com/JaimeStill/tutela/internal/config"
	"github.com/JaimeStill/tutela/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		catalog.NewHandler(runtime.Logger).Routes(),
		domain.Organizations.Handler().Routes(),
		domain.AISystems.Handler().Routes(),
		domain.Assessments.Handler().Routes(),
		domain.Remediation.Handler().Routes(),
		domain.Evidence.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Reports.Handler().Routes(),
	)
}
