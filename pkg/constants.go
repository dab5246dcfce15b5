package shared

const (
	ProjectID = "formsight-project" // Can be overridden by env var in main if needed

	TopicAnalysisCompleted = "topic-analysis-completed"

	CollectionExecutions = "executions"
	CollectionUsers      = "users"
	CollectionProgress   = "progress"
)
