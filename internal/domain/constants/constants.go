package constants

// Management channel provider names accepted in configuration.
const (
	MgmtChannelProviderLocal  = "local"
	MgmtChannelProviderGoogle = "google"
)
