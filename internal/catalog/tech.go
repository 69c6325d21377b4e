// Copyright Akcero Labs Inc., 2026. All rights reserved.

package catalog

var techRecords = map[string]TechRecord{
	"Healthcare": {
		Architecture: "HIPAA-ready service mesh with governed clinical knowledge lake and audit-first workflows",
		Stack: []string{
			"FastAPI microservices",
			"React / Next.js experience layer",
			"FHIR-compatible PostgreSQL + pgvector",
			"Airflow & dbt for governed pipelines",
			"Event bus via Kafka",
		},
		AI: []string{
			"Retrieval-augmented generation over clinical protocols",
			"Agent triage for risk stratification",
			"Quality guardrails monitoring hallucinations and compliance",
		},
		Services: []string{
			"Identity & consent management",
			"Clinical evidence tagging engine",
			"Blueprint orchestration service",
		},
		DataStrategy: "Govern protected health information via encrypted data lake, lineage tracking, and role-based access.",
		DevOps: []string{
			"Terraform IaC with environment blueprints",
			"GitHub Actions → Argo Rollouts for progressive delivery",
			"Automated compliance checks & audit logging",
		},
		Integrations: []string{
			"EHR / EMR platforms",
			"Analytics warehouse (Snowflake / BigQuery)",
			"Customer success tooling",
		},
	},
	"Finance": {
		Architecture: "Zero-trust microservices with streaming risk engine and immutable audit ledger",
		Stack: []string{
			"Python FastAPI or JVM services",
			"React + Ant Design ops console",
			"PostgreSQL + Vitess for ledgering",
			"Kafka Streams for real-time scoring",
			"Lakehouse via Delta or Iceberg",
		},
		AI: []string{
			"Compliance-aware reasoning agents",
			"Anomaly detection on transactional data",
			"Scenario simulation co-pilots",
		},
		Services: []string{
			"Policy engine & rules studio",
			"Risk dashboard",
			"Partner integration hub",
		},
		DataStrategy: "Encrypted columnar storage with fine-grained entitlements and immutable audit trails.",
		DevOps: []string{
			"Terraform & Atlantis workflows",
			"Chaos testing in non-prod",
			"Continuous compliance scanners",
		},
		Integrations: []string{
			"Core banking systems",
			"Identity providers",
			"RegTech feeds",
		},
	},
	"Education": {
		Architecture: "Modular learning fabric with adaptive content engine and analytics lake",
		Stack: []string{
			"FastAPI or NestJS services",
			"Next.js / Tailwind front-end",
			"Postgres + pgvector for content",
			"Superset or Metabase analytics",
			"Event streaming via Redpanda",
		},
		AI: []string{
			"Curriculum summarisation agents",
			"Personalised learning coach",
			"Assessment feedback generator",
		},
		Services: []string{
			"Persona & cohort manager",
			"Content tagging & recommendation",
			"Credentialing & assessment",
		},
		DataStrategy: "Capture learner telemetry into lakehouse with privacy-preserving segmentation.",
		DevOps: []string{
			"Terraform + GitHub Actions",
			"Feature flag orchestration",
			"Observability stack (OpenTelemetry)",
		},
		Integrations: []string{
			"LMS platforms",
			"Video & conferencing APIs",
			"Student information systems",
		},
	},
	"Commerce": {
		Architecture: "Event-driven commerce core with personalization engine and experimentation layer",
		Stack: []string{
			"Node.js / FastAPI microservices",
			"React storefront & design system",
			"PostgreSQL + Redis for sessions",
			"Segment + Snowflake analytics",
			"Kafka / Pulsar event backbone",
		},
		AI: []string{
			"Dynamic merchandising agent",
			"Pricing optimiser",
			"Customer journey summariser",
		},
		Services: []string{
			"Catalog enrichment",
			"Experiment management",
			"Marketplace orchestration",
		},
		DataStrategy: "Unify shopper telemetry and transactions within governed lakehouse for omni-channel insights.",
		DevOps: []string{
			"Infrastructure as code (Terraform)",
			"Canary deploys via Argo",
			"Synthetic journey monitoring",
		},
		Integrations: []string{
			"Payment gateways",
			"Logistics APIs",
			"Marketing automation",
		},
	},
	"Productivity": {
		Architecture: "Composable workspace fabric with knowledge graph and automation bus",
		Stack: []string{
			"Python FastAPI",
			"React + Chakra UI",
			"PostgreSQL + Neo4j knowledge graph",
			"Celery / Dramatiq workers",
			"ClickHouse analytics",
		},
		AI: []string{
			"Workflow summarisation agents",
			"Meeting synthesis",
			"Decision memory assistant",
		},
		Services: []string{
			"Workspace orchestration",
			"Playbook library",
			"Integration controller",
		},
		DataStrategy: "Capture work artefacts in searchable embeddings with strict workspace boundaries.",
		DevOps: []string{
			"Terraform + GitHub Actions",
			"Service level objectives with SLO dashboards",
			"Feature toggle guardrails",
		},
		Integrations: []string{
			"Slack / Teams",
			"Project management suites",
			"Identity providers",
		},
	},
	"Customer": {
		Architecture: "Unified customer intelligence lakehouse with service automation rail",
		Stack: []string{
			"Python / Go services",
			"React + Storybook",
			"Postgres + ClickHouse",
			"Airbyte ingestion",
			"Snowflake warehouse",
		},
		AI: []string{
			"Sentiment clustering agents",
			"Playbook recommendation",
			"Auto-generated QBR narratives",
		},
		Services: []string{
			"Signal ingestion",
			"Success planning",
			"Feedback triage",
		},
		DataStrategy: "Blend CS data sources with customer journey signals into governed warehouse.",
		DevOps: []string{
			"IaC + policy-as-code",
			"Golden signal monitoring",
			"Incident simulation",
		},
		Integrations: []string{
			"CRM suites",
			"Support platforms",
			"Product analytics",
		},
	},
	"Developer": {
		Architecture: "API-first control plane with event mesh and developer experience portal",
		Stack: []string{
			"Go / Rust core services",
			"GraphQL gateway",
			"PostgreSQL + Redis",
			"OpenTelemetry everywhere",
			"Vectordb (Weaviate / Pinecone)",
		},
		AI: []string{
			"Code assistant for integrations",
			"Runbook summariser",
			"API anomaly detection",
		},
		Services: []string{
			"Usage analytics",
			"Credential & secret vault",
			"Extension marketplace",
		},
		DataStrategy: "Track usage telemetry and error budgets with redaction for customer data.",
		DevOps: []string{
			"GitOps with Argo",
			"Progressive delivery with Flagger",
			"CLIs for multi-tenant ops",
		},
		Integrations: []string{
			"Cloud marketplaces",
			"CI/CD tooling",
			"Developer analytics",
		},
	},
	"Marketing": {
		Architecture: "Channel intelligence graph with experimentation and attribution layers",
		Stack: []string{
			"Python services",
			"Next.js marketing workbench",
			"PostgreSQL + DuckDB",
			"Airflow / dbt",
			"Reverse ETL (Hightouch)",
		},
		AI: []string{
			"Campaign narrative generator",
			"Creative brief assistant",
			"Attribution explainer agent",
		},
		Services: []string{
			"Segment harmoniser",
			"Experiment launcher",
			"Insights studio",
		},
		DataStrategy: "Blend paid, owned, and earned channel data with privacy-aware segmentation.",
		DevOps: []string{
			"IaC with Terraform",
			"Data quality monitors",
			"Automated backtesting",
		},
		Integrations: []string{
			"Ad platforms",
			"CRM & marketing automation",
			"Revenue systems",
		},
	},
	"Sustainability": {
		Architecture: "Impact data backbone with scenario modelling engine",
		Stack: []string{
			"Python services",
			"React + D3 visual stories",
			"PostgreSQL + Timescale",
			"Airflow sustainability pipelines",
			"Vector store for ESG policies",
		},
		AI: []string{
			"Carbon hotspot detection agent",
			"ESG report drafter",
			"Supplier classification assistant",
		},
		Services: []string{
			"Emission data ingestion",
			"Target planning studio",
			"Partner marketplace",
		},
		DataStrategy: "Aggregate scope 1-3 data sources with provenance tracking and assurance.",
		DevOps: []string{
			"Terraform + Vault",
			"Automated assurance tests",
			"Forecast monitoring",
		},
		Integrations: []string{
			"ERP systems",
			"Supply chain data feeds",
			"Offset registries",
		},
	},
	"Industry": {
		Architecture: "Edge-aware industrial platform with digital twin and predictive loop",
		Stack: []string{
			"Go / Rust edge services",
			"FastAPI control plane",
			"Time-series DB (Influx / Timescale)",
			"Event backbone via Kafka",
			"Lakehouse on Delta",
		},
		AI: []string{
			"Predictive maintenance agents",
			"Anomaly root-cause analysis",
			"Production optimisation co-pilot",
		},
		Services: []string{
			"Asset registry",
			"Work order automation",
			"Supplier orchestration",
		},
		DataStrategy: "Sync edge telemetry into secure lakehouse with lineage and replay.",
		DevOps: []string{
			"Infrastructure automation",
			"Blue/green for edge updates",
			"Site reliability playbooks",
		},
		Integrations: []string{
			"MES/SCADA",
			"ERP & PLM",
			"Quality management systems",
		},
	},
	"Innovation": {
		Architecture: "Multi-agent orchestration fabric with shared knowledge graph and event bus",
		Stack: []string{
			"FastAPI orchestrators",
			"React + Radix UI",
			"PostgreSQL + pgvector",
			"LangChain or LlamaIndex",
			"Temporal for workflow choreography",
		},
		AI: []string{
			"Persona-specific ideation agents",
			"Blueprint synthesiser",
			"Risk/assumption tracker",
		},
		Services: []string{
			"Idea ingestion",
			"Narrative engine",
			"Metrics cockpit",
		},
		DataStrategy: "Maintain living product knowledge graph with traceable rationale and embeddings.",
		DevOps: []string{
			"IaC with Terraform",
			"Feature flags + experimentation",
			"Observability (OpenTelemetry, Grafana)",
		},
		Integrations: []string{
			"Product analytics",
			"CRM & pipeline",
			"Documentation hubs",
		},
	},
}
