package command

const (
	JSONOutputFlag = "json"
	LogLevelFlag   = "log-level"
	ChainFlag      = "chain"
)

const (
	DefaultLogLevel = "INFO"
)
