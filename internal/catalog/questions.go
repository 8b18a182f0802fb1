package catalog

// Stable question identifiers. Answers, applicable articles, and obligation
// keys reference these IDs; renaming one breaks stored assessment history.
const (
	QSystemType = "system_type"
	QSector     = "sector"

	QSubliminalManipulation  = "subliminal_manipulation"
	QVulnerabilityExploit    = "vulnerability_exploitation"
	QSocialScoring           = "social_scoring"
	QRealtimeBiometricPublic = "realtime_biometric_public"
	QEmotionRecognition      = "emotion_recognition_prohibited"
	QFacialScraping          = "facial_scraping"

	QBiometricIdentification = "biometric_identification"
	QCriticalInfrastructure  = "critical_infrastructure_safety"
	QEducationAccess         = "education_access"
	QEmploymentDecisions     = "employment_decisions"
	QEssentialServices       = "essential_services_access"
	QLawEnforcementUse       = "law_enforcement_use"
	QMigrationBorderControl  = "migration_border_control"
	QJusticeDemocratic       = "justice_democratic_processes"

	QInteractsWithPersons = "interacts_with_persons"
	QSyntheticContent     = "generates_synthetic_content"
)

// System type option values referenced by visibility conditions and limited-risk rules.
const (
	SystemTypeChatbot           = "chatbot"
	SystemTypeBiometric         = "biometric"
	SystemTypeDecisionSupport   = "decision_support"
	SystemTypeContentGeneration = "content_generation"
	SystemTypePredictive        = "predictive"
	SystemTypeOther             = "other"
)

// catalog is the ordered questionnaire. Visibility conditions may only
// reference questions that appear earlier in this list; catalog tests enforce
// the ordering so the dependency graph stays acyclic.
var catalog = []entry{
	{
		id:        QSystemType,
		qtype:     TypeSingleSelect,
		weight:    10,
		mandatory: true,
		text: Text{
			LocaleES: "¿Qué tipo de sistema de IA es?",
			LocaleEN: "What type of AI system is it?",
		},
		help: Text{
			LocaleES: "Seleccione la categoría que mejor describa la función principal del sistema.",
			LocaleEN: "Select the category that best describes the system's primary function.",
		},
		options: []option{
			{SystemTypeChatbot, Text{LocaleES: "Agente conversacional / chatbot", LocaleEN: "Conversational agent / chatbot"}},
			{SystemTypeBiometric, Text{LocaleES: "Sistema biométrico", LocaleEN: "Biometric system"}},
			{SystemTypeDecisionSupport, Text{LocaleES: "Apoyo a la toma de decisiones", LocaleEN: "Decision support"}},
			{SystemTypeContentGeneration, Text{LocaleES: "Generación de contenido", LocaleEN: "Content generation"}},
			{SystemTypePredictive, Text{LocaleES: "Análisis predictivo", LocaleEN: "Predictive analytics"}},
			{SystemTypeOther, Text{LocaleES: "Otro", LocaleEN: "Other"}},
		},
	},
	{
		id:        QSector,
		qtype:     TypeSingleSelect,
		weight:    10,
		mandatory: true,
		text: Text{
			LocaleES: "¿En qué sector se despliega el sistema?",
			LocaleEN: "In which sector is the system deployed?",
		},
		help: Text{
			LocaleES: "El sector se registra con fines de documentación y contexto.",
			LocaleEN: "The sector is recorded for documentation and context purposes.",
		},
		options: []option{
			{"employment", Text{LocaleES: "Empleo y recursos humanos", LocaleEN: "Employment and human resources"}},
			{"education", Text{LocaleES: "Educación", LocaleEN: "Education"}},
			{"health", Text{LocaleES: "Sanidad", LocaleEN: "Healthcare"}},
			{"finance", Text{LocaleES: "Servicios financieros", LocaleEN: "Financial services"}},
			{"law_enforcement", Text{LocaleES: "Fuerzas y cuerpos de seguridad", LocaleEN: "Law enforcement"}},
			{"public_services", Text{LocaleES: "Servicios públicos", LocaleEN: "Public services"}},
			{"justice", Text{LocaleES: "Justicia", LocaleEN: "Justice"}},
			{"other", Text{LocaleES: "Otro", LocaleEN: "Other"}},
		},
	},
	{
		id:        QSubliminalManipulation,
		qtype:     TypeBoolean,
		weight:    5,
		mandatory: true,
		text: Text{
			LocaleES: "¿Emplea el sistema técnicas subliminales para manipular el comportamiento de las personas?",
			LocaleEN: "Does the system use subliminal techniques to manipulate people's behavior?",
		},
		help: Text{
			LocaleES: "Técnicas que operan por debajo del umbral de consciencia y distorsionan materialmente el comportamiento.",
			LocaleEN: "Techniques operating below the threshold of consciousness that materially distort behavior.",
		},
	},
	{
		id:     QVulnerabilityExploit,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Explota el sistema vulnerabilidades de grupos específicos (edad, discapacidad, situación social)?",
			LocaleEN: "Does the system exploit vulnerabilities of specific groups (age, disability, social situation)?",
		},
	},
	{
		id:     QSocialScoring,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Realiza el sistema puntuación social de personas físicas?",
			LocaleEN: "Does the system perform social scoring of natural persons?",
		},
		help: Text{
			LocaleES: "Evaluación o clasificación de personas según su comportamiento social o características personales.",
			LocaleEN: "Evaluation or classification of persons based on social behavior or personal characteristics.",
		},
	},
	{
		id:     QRealtimeBiometricPublic,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Realiza identificación biométrica remota en tiempo real en espacios públicos con fines policiales?",
			LocaleEN: "Does it perform real-time remote biometric identification in public spaces for law enforcement?",
		},
	},
	{
		id:     QEmotionRecognition,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Infiere emociones de personas en el lugar de trabajo o en centros educativos?",
			LocaleEN: "Does it infer emotions of persons in the workplace or in educational institutions?",
		},
	},
	{
		id:     QFacialScraping,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Crea o amplía bases de datos de reconocimiento facial mediante extracción no selectiva de imágenes?",
			LocaleEN: "Does it create or expand facial recognition databases through untargeted scraping of images?",
		},
	},
	{
		id:     QBiometricIdentification,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Se utiliza el sistema para identificación o categorización biométrica de personas?",
			LocaleEN: "Is the system used for biometric identification or categorization of persons?",
		},
	},
	{
		id:     QCriticalInfrastructure,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Funciona como componente de seguridad en la gestión de infraestructuras críticas?",
			LocaleEN: "Does it operate as a safety component in the management of critical infrastructure?",
		},
	},
	{
		id:     QEducationAccess,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Determina el acceso, admisión o evaluación de personas en la educación o formación profesional?",
			LocaleEN: "Does it determine access, admission, or evaluation of persons in education or vocational training?",
		},
	},
	{
		id:     QEmploymentDecisions,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Se utiliza para decisiones de contratación, promoción, evaluación o despido de trabajadores?",
			LocaleEN: "Is it used for hiring, promotion, evaluation, or termination decisions about workers?",
		},
	},
	{
		id:     QEssentialServices,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Evalúa el acceso de personas a servicios esenciales (crédito, prestaciones, seguros)?",
			LocaleEN: "Does it evaluate persons' access to essential services (credit, benefits, insurance)?",
		},
	},
	{
		id:     QLawEnforcementUse,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Se utiliza por autoridades policiales para evaluación de riesgos o fiabilidad de pruebas?",
			LocaleEN: "Is it used by law enforcement authorities for risk assessment or evidence reliability evaluation?",
		},
	},
	{
		id:     QMigrationBorderControl,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Se utiliza en la gestión de migración, asilo o control de fronteras?",
			LocaleEN: "Is it used in migration, asylum, or border control management?",
		},
	},
	{
		id:     QJusticeDemocratic,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Asiste a autoridades judiciales o influye en procesos democráticos (elecciones, referendos)?",
			LocaleEN: "Does it assist judicial authorities or influence democratic processes (elections, referendums)?",
		},
	},
	{
		id:     QInteractsWithPersons,
		qtype:  TypeBoolean,
		weight: 5,
		text: Text{
			LocaleES: "¿Interactúa el sistema directamente con personas físicas?",
			LocaleEN: "Does the system interact directly with natural persons?",
		},
	},
	{
		id:     QSyntheticContent,
		qtype:  TypeBoolean,
		weight: 5,
		visibleWhen: &Condition{
			QuestionID: QSystemType,
			AnyOf:      []string{SystemTypeChatbot, SystemTypeContentGeneration, SystemTypeOther},
		},
		text: Text{
			LocaleES: "¿Genera el sistema contenido sintético (audio, imagen, vídeo o texto)?",
			LocaleEN: "Does the system generate synthetic content (audio, image, video, or text)?",
		},
		help: Text{
			LocaleES: "Incluye contenido ultrafalso y texto publicado para informar al público sobre asuntos de interés general.",
			LocaleEN: "Includes deepfake content and text published to inform the public on matters of general interest.",
		},
	},
}
