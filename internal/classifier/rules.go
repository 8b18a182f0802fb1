package classifier

import "github.com/JaimeStill/tutela/internal/catalog"

// rule is a single regulatory criterion: an independent predicate over the
// answer set with the citation, obligations, and text it contributes when it
// matches. Rules are data; each tier is one slice walked by the evaluator, so
// tracking a regulatory revision means editing these tables, not the engine.
type rule struct {
	id          string
	article     string
	predicate   func(catalog.AnswerSet) bool
	name        catalog.Text
	reason      catalog.Text
	obligations []obligationSpec
}

type obligationSpec struct {
	key         string
	article     string
	description catalog.Text
}

// flag returns a predicate that triggers on a single true boolean answer.
// Prohibition and high-risk criteria are flag-only: sector and system type are
// recorded context, never gating conditions.
func flag(questionID string) func(catalog.AnswerSet) bool {
	return func(s catalog.AnswerSet) bool {
		return s.Bool(questionID)
	}
}

var prohibitionRules = []rule{
	{
		id:        catalog.QSubliminalManipulation,
		article:   "Art. 5.1.a",
		predicate: flag(catalog.QSubliminalManipulation),
		name: catalog.Text{
			catalog.LocaleES: "manipulación subliminal",
			catalog.LocaleEN: "subliminal manipulation",
		},
		reason: catalog.Text{
			catalog.LocaleES: "El sistema emplea técnicas subliminales que distorsionan materialmente el comportamiento de las personas (Art. 5.1.a).",
			catalog.LocaleEN: "The system uses subliminal techniques that materially distort people's behavior (Art. 5.1.a).",
		},
	},
	{
		id:        catalog.QVulnerabilityExploit,
		article:   "Art. 5.1.b",
		predicate: flag(catalog.QVulnerabilityExploit),
		name: catalog.Text{
			catalog.LocaleES: "explotación de vulnerabilidades",
			catalog.LocaleEN: "exploitation of vulnerabilities",
		},
		reason: catalog.Text{
			catalog.LocaleES: "El sistema explota vulnerabilidades de grupos específicos por edad, discapacidad o situación social (Art. 5.1.b).",
			catalog.LocaleEN: "The system exploits vulnerabilities of specific groups based on age, disability, or social situation (Art. 5.1.b).",
		},
	},
	{
		id:        catalog.QSocialScoring,
		article:   "Art. 5.1.c",
		predicate: flag(catalog.QSocialScoring),
		name: catalog.Text{
			catalog.LocaleES: "puntuación social",
			catalog.LocaleEN: "social scoring",
		},
		reason: catalog.Text{
			catalog.LocaleES: "El sistema realiza puntuación social de personas físicas con efectos perjudiciales o desproporcionados (Art. 5.1.c).",
			catalog.LocaleEN: "The system performs social scoring of natural persons with detrimental or disproportionate effects (Art. 5.1.c).",
		},
	},
	{
		id:        catalog.QRealtimeBiometricPublic,
		article:   "Art. 5.1.h",
		predicate: flag(catalog.QRealtimeBiometricPublic),
		name: catalog.Text{
			catalog.LocaleES: "identificación biométrica remota en tiempo real",
			catalog.LocaleEN: "real-time remote biometric identification",
		},
		reason: catalog.Text{
			catalog.LocaleES: "El sistema realiza identificación biométrica remota en tiempo real en espacios de acceso público con fines policiales (Art. 5.1.h).",
			catalog.LocaleEN: "The system performs real-time remote biometric identification in publicly accessible spaces for law enforcement purposes (Art. 5.1.h).",
		},
	},
	{
		id:        catalog.QEmotionRecognition,
		article:   "Art. 5.1.f",
		predicate: flag(catalog.QEmotionRecognition),
		name: catalog.Text{
			catalog.LocaleES: "reconocimiento de emociones en contextos prohibidos",
			catalog.LocaleEN: "emotion recognition in prohibited contexts",
		},
		reason: catalog.Text{
			catalog.LocaleES: "El sistema infiere emociones de personas en el lugar de trabajo o en centros educativos (Art. 5.1.f).",
			catalog.LocaleEN: "The system infers emotions of persons in the workplace or in educational institutions (Art. 5.1.f).",
		},
	},
	{
		id:        catalog.QFacialScraping,
		article:   "Art. 5.1.e",
		predicate: flag(catalog.QFacialScraping),
		name: catalog.Text{
			catalog.LocaleES: "extracción no selectiva de imágenes faciales",
			catalog.LocaleEN: "untargeted facial image scraping",
		},
		reason: catalog.Text{
			catalog.LocaleES: "El sistema crea o amplía bases de datos de reconocimiento facial mediante extracción no selectiva de imágenes (Art. 5.1.e).",
			catalog.LocaleEN: "The system creates or expands facial recognition databases through untargeted scraping of images (Art. 5.1.e).",
		},
	},
}

var highRiskRules = []rule{
	{
		id:        catalog.QBiometricIdentification,
		article:   "Anexo III.1",
		predicate: flag(catalog.QBiometricIdentification),
		name: catalog.Text{
			catalog.LocaleES: "identificación biométrica",
			catalog.LocaleEN: "biometric identification",
		},
		obligations: []obligationSpec{
			{
				key:     "biometric_accuracy_controls",
				article: "Anexo III.1",
				description: catalog.Text{
					catalog.LocaleES: "Documentar y supervisar la precisión y las tasas de error del componente biométrico.",
					catalog.LocaleEN: "Document and monitor the accuracy and error rates of the biometric component.",
				},
			},
		},
	},
	{
		id:        catalog.QCriticalInfrastructure,
		article:   "Anexo III.2",
		predicate: flag(catalog.QCriticalInfrastructure),
		name: catalog.Text{
			catalog.LocaleES: "seguridad de infraestructuras críticas",
			catalog.LocaleEN: "critical infrastructure safety",
		},
		obligations: []obligationSpec{
			{
				key:     "resilience_testing",
				article: "Anexo III.2",
				description: catalog.Text{
					catalog.LocaleES: "Someter el componente de seguridad a pruebas de resiliencia y planes de contingencia.",
					catalog.LocaleEN: "Subject the safety component to resilience testing and contingency planning.",
				},
			},
		},
	},
	{
		id:        catalog.QEducationAccess,
		article:   "Anexo III.3",
		predicate: flag(catalog.QEducationAccess),
		name: catalog.Text{
			catalog.LocaleES: "acceso a la educación",
			catalog.LocaleEN: "education access",
		},
		obligations: []obligationSpec{
			{
				key:     "education_fairness_review",
				article: "Anexo III.3",
				description: catalog.Text{
					catalog.LocaleES: "Revisar periódicamente los criterios de admisión y evaluación para evitar sesgos discriminatorios.",
					catalog.LocaleEN: "Periodically review admission and evaluation criteria to prevent discriminatory bias.",
				},
			},
		},
	},
	{
		id:        catalog.QEmploymentDecisions,
		article:   "Anexo III.4",
		predicate: flag(catalog.QEmploymentDecisions),
		name: catalog.Text{
			catalog.LocaleES: "decisiones de empleo",
			catalog.LocaleEN: "employment decisions",
		},
		obligations: []obligationSpec{
			{
				key:     "employment_transparency",
				article: "Anexo III.4",
				description: catalog.Text{
					catalog.LocaleES: "Informar a los trabajadores afectados del uso del sistema en decisiones laborales.",
					catalog.LocaleEN: "Inform affected workers of the system's use in employment decisions.",
				},
			},
		},
	},
	{
		id:        catalog.QEssentialServices,
		article:   "Anexo III.5",
		predicate: flag(catalog.QEssentialServices),
		name: catalog.Text{
			catalog.LocaleES: "acceso a servicios esenciales",
			catalog.LocaleEN: "essential services access",
		},
		obligations: []obligationSpec{
			{
				key:     "essential_services_recourse",
				article: "Anexo III.5",
				description: catalog.Text{
					catalog.LocaleES: "Garantizar una vía de reclamación humana para las personas afectadas por denegaciones.",
					catalog.LocaleEN: "Guarantee a human recourse channel for persons affected by denials.",
				},
			},
		},
	},
	{
		id:        catalog.QLawEnforcementUse,
		article:   "Anexo III.6",
		predicate: flag(catalog.QLawEnforcementUse),
		name: catalog.Text{
			catalog.LocaleES: "uso policial",
			catalog.LocaleEN: "law enforcement use",
		},
		obligations: []obligationSpec{
			{
				key:     "law_enforcement_logging",
				article: "Anexo III.6",
				description: catalog.Text{
					catalog.LocaleES: "Mantener registros de auditoría de cada evaluación realizada por el sistema.",
					catalog.LocaleEN: "Maintain audit logs of every assessment performed by the system.",
				},
			},
		},
	},
	{
		id:        catalog.QMigrationBorderControl,
		article:   "Anexo III.7",
		predicate: flag(catalog.QMigrationBorderControl),
		name: catalog.Text{
			catalog.LocaleES: "gestión de migración y fronteras",
			catalog.LocaleEN: "migration and border management",
		},
		obligations: []obligationSpec{
			{
				key:     "migration_individual_review",
				article: "Anexo III.7",
				description: catalog.Text{
					catalog.LocaleES: "Asegurar revisión individual humana de las decisiones con efectos sobre solicitantes.",
					catalog.LocaleEN: "Ensure individual human review of decisions affecting applicants.",
				},
			},
		},
	},
	{
		id:        catalog.QJusticeDemocratic,
		article:   "Anexo III.8",
		predicate: flag(catalog.QJusticeDemocratic),
		name: catalog.Text{
			catalog.LocaleES: "justicia y procesos democráticos",
			catalog.LocaleEN: "justice and democratic processes",
		},
		obligations: []obligationSpec{
			{
				key:     "judicial_assistive_boundary",
				article: "Anexo III.8",
				description: catalog.Text{
					catalog.LocaleES: "Limitar el sistema a funciones de asistencia sin sustituir la decisión judicial humana.",
					catalog.LocaleEN: "Limit the system to assistive functions without replacing human judicial decisions.",
				},
			},
		},
	},
}

// highRiskBaseline is appended once whenever any high-risk rule matches:
// the horizontal duties every high-risk provider carries.
var highRiskBaseline = []obligationSpec{
	{
		key:     "risk_management_system",
		article: "Art. 9",
		description: catalog.Text{
			catalog.LocaleES: "Establecer y mantener un sistema de gestión de riesgos durante todo el ciclo de vida.",
			catalog.LocaleEN: "Establish and maintain a risk management system across the entire lifecycle.",
		},
	},
	{
		key:     "data_governance",
		article: "Art. 10",
		description: catalog.Text{
			catalog.LocaleES: "Aplicar prácticas de gobernanza de datos a los conjuntos de entrenamiento, validación y prueba.",
			catalog.LocaleEN: "Apply data governance practices to training, validation, and test datasets.",
		},
	},
	{
		key:     "technical_documentation",
		article: "Art. 11",
		description: catalog.Text{
			catalog.LocaleES: "Elaborar y mantener actualizada la documentación técnica del sistema.",
			catalog.LocaleEN: "Prepare and keep up to date the system's technical documentation.",
		},
	},
	{
		key:     "human_oversight",
		article: "Art. 14",
		description: catalog.Text{
			catalog.LocaleES: "Garantizar supervisión humana efectiva durante el uso del sistema.",
			catalog.LocaleEN: "Guarantee effective human oversight during the system's use.",
		},
	},
	{
		key:     "accuracy_robustness",
		article: "Art. 15",
		description: catalog.Text{
			catalog.LocaleES: "Asegurar niveles adecuados de precisión, solidez y ciberseguridad.",
			catalog.LocaleEN: "Ensure appropriate levels of accuracy, robustness, and cybersecurity.",
		},
	},
}

var limitedRiskRules = []rule{
	{
		id:      "conversational_transparency",
		article: "Art. 50.1",
		predicate: func(s catalog.AnswerSet) bool {
			return s.Bool(catalog.QInteractsWithPersons) ||
				s.String(catalog.QSystemType) == catalog.SystemTypeChatbot
		},
		name: catalog.Text{
			catalog.LocaleES: "interacción directa con personas",
			catalog.LocaleEN: "direct interaction with persons",
		},
		obligations: []obligationSpec{
			{
				key:     "disclosure_of_ai_interaction",
				article: "Art. 50.1",
				description: catalog.Text{
					catalog.LocaleES: "Informar a las personas de que están interactuando con un sistema de IA.",
					catalog.LocaleEN: "Inform persons that they are interacting with an AI system.",
				},
			},
		},
	},
	{
		id:        "synthetic_content_marking",
		article:   "Art. 50.2",
		predicate: flag(catalog.QSyntheticContent),
		name: catalog.Text{
			catalog.LocaleES: "generación de contenido sintético",
			catalog.LocaleEN: "synthetic content generation",
		},
		obligations: []obligationSpec{
			{
				key:     "synthetic_content_labeling",
				article: "Art. 50.2",
				description: catalog.Text{
					catalog.LocaleES: "Marcar el contenido generado como producido artificialmente en formato legible por máquina.",
					catalog.LocaleEN: "Mark generated content as artificially produced in a machine-readable format.",
				},
			},
		},
	},
}
