package constants

// Feature names understood by the toggle store.
const (
	FeatureDaily           = "daily"
	FeatureDailyCollection = "daily_collection"
)
