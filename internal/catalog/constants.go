package catalog

// maxSuggestionDistance is the largest edit distance offered as a "did you mean"
const maxSuggestionDistance = 3

// Log messages
const (
	LogMsgCatalogLoaded = "Node catalog loaded"
)
