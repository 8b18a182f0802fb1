package classifier

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/tutela/internal/catalog"
)

var tierNames = map[RiskLevel]catalog.Text{
	RiskUnacceptable: {
		catalog.LocaleES: "riesgo inaceptable",
		catalog.LocaleEN: "unacceptable risk",
	},
	RiskHigh: {
		catalog.LocaleES: "alto riesgo",
		catalog.LocaleEN: "high risk",
	},
	RiskLimited: {
		catalog.LocaleES: "riesgo limitado",
		catalog.LocaleEN: "limited risk",
	},
	RiskMinimal: {
		catalog.LocaleES: "riesgo mínimo",
		catalog.LocaleEN: "minimal risk",
	},
}

var summaryTemplates = map[RiskLevel]catalog.Text{
	RiskUnacceptable: {
		catalog.LocaleES: "El sistema incurre en una práctica prohibida (%s) y no puede desplegarse.",
		catalog.LocaleEN: "The system engages in a prohibited practice (%s) and must not be deployed.",
	},
	RiskHigh: {
		catalog.LocaleES: "El sistema se clasifica como de alto riesgo por: %s.",
		catalog.LocaleEN: "The system is classified as high risk due to: %s.",
	},
	RiskLimited: {
		catalog.LocaleES: "El sistema se clasifica como de riesgo limitado por: %s.",
		catalog.LocaleEN: "The system is classified as limited risk due to: %s.",
	},
	RiskMinimal: {
		catalog.LocaleES: "El sistema se clasifica como de riesgo mínimo; no se han activado criterios de riesgo.",
		catalog.LocaleEN: "The system is classified as minimal risk; no risk criteria were triggered.",
	},
}

var explanationIntros = map[RiskLevel]catalog.Text{
	RiskUnacceptable: {
		catalog.LocaleES: "La evaluación ha identificado prácticas prohibidas por el reglamento. Un sistema con clasificación de riesgo inaceptable no dispone de vía de cumplimiento: su despliegue está vetado.",
		catalog.LocaleEN: "The assessment identified practices prohibited by the regulation. A system classified as unacceptable risk has no compliance path: its deployment is barred.",
	},
	RiskHigh: {
		catalog.LocaleES: "La evaluación ha identificado casos de uso incluidos en las categorías de alto riesgo del reglamento. El despliegue es posible sujeto al cumplimiento de las obligaciones enumeradas.",
		catalog.LocaleEN: "The assessment identified use cases within the regulation's high-risk categories. Deployment is possible subject to fulfilling the listed obligations.",
	},
	RiskLimited: {
		catalog.LocaleES: "La evaluación ha identificado únicamente criterios de transparencia. El sistema puede desplegarse cumpliendo los deberes de información señalados.",
		catalog.LocaleEN: "The assessment identified only transparency criteria. The system may be deployed while fulfilling the indicated disclosure duties.",
	},
	RiskMinimal: {
		catalog.LocaleES: "La evaluación no ha activado ningún criterio de prohibición, alto riesgo ni transparencia. El reglamento no impone obligaciones específicas a este sistema.",
		catalog.LocaleEN: "The assessment triggered no prohibition, high-risk, or transparency criteria. The regulation imposes no specific obligations on this system.",
	},
}

var explanationCriteria = catalog.Text{
	catalog.LocaleES: "Criterios activados: %s.",
	catalog.LocaleEN: "Criteria triggered: %s.",
}

var explanationArticles = catalog.Text{
	catalog.LocaleES: "Artículos aplicables: %s.",
	catalog.LocaleEN: "Applicable articles: %s.",
}

var recommendations = map[RiskLevel][]catalog.Text{
	RiskUnacceptable: {
		{
			catalog.LocaleES: "Suspenda cualquier despliegue previsto del sistema.",
			catalog.LocaleEN: "Halt any planned deployment of the system.",
		},
		{
			catalog.LocaleES: "Rediseñe el sistema para eliminar la práctica prohibida antes de una nueva evaluación.",
			catalog.LocaleEN: "Redesign the system to remove the prohibited practice before reassessment.",
		},
		{
			catalog.LocaleES: "Consulte con asesoría jurídica especializada en regulación de IA.",
			catalog.LocaleEN: "Consult legal counsel specialized in AI regulation.",
		},
	},
	RiskHigh: {
		{
			catalog.LocaleES: "Inicie la evaluación de conformidad antes de la puesta en servicio.",
			catalog.LocaleEN: "Begin the conformity assessment before putting the system into service.",
		},
		{
			catalog.LocaleES: "Planifique las obligaciones enumeradas con plazos y responsables asignados.",
			catalog.LocaleEN: "Plan the listed obligations with deadlines and assigned owners.",
		},
		{
			catalog.LocaleES: "Registre el sistema en la base de datos de la UE cuando proceda.",
			catalog.LocaleEN: "Register the system in the EU database where applicable.",
		},
	},
	RiskLimited: {
		{
			catalog.LocaleES: "Implemente los avisos de transparencia exigidos antes del despliegue.",
			catalog.LocaleEN: "Implement the required transparency notices before deployment.",
		},
		{
			catalog.LocaleES: "Revise la clasificación si cambia el alcance funcional del sistema.",
			catalog.LocaleEN: "Revisit the classification if the system's functional scope changes.",
		},
	},
	RiskMinimal: {
		{
			catalog.LocaleES: "Considere adherirse voluntariamente a códigos de conducta.",
			catalog.LocaleEN: "Consider voluntary adherence to codes of conduct.",
		},
		{
			catalog.LocaleES: "Reevalúe el sistema si incorpora nuevas funciones o contextos de uso.",
			catalog.LocaleEN: "Reassess the system if it gains new functions or usage contexts.",
		},
	},
}

func renderSummary(level RiskLevel, matched []rule, loc catalog.Locale) string {
	tmpl := summaryTemplates[level].In(loc)
	if level == RiskMinimal {
		return tmpl
	}
	return fmt.Sprintf(tmpl, ruleNames(matched, loc))
}

func renderExplanation(level RiskLevel, matched []rule, loc catalog.Locale) string {
	parts := []string{explanationIntros[level].In(loc)}

	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf(explanationCriteria.In(loc), ruleNames(matched, loc)))
		parts = append(parts, fmt.Sprintf(
			explanationArticles.In(loc),
			strings.Join(collectArticles(matched), ", "),
		))
	}

	return strings.Join(parts, " ")
}

func renderRecommendations(level RiskLevel, loc catalog.Locale) []string {
	texts := recommendations[level]
	rendered := make([]string, len(texts))
	for i, t := range texts {
		rendered[i] = t.In(loc)
	}
	return rendered
}
