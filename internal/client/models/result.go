package models

// Outcome tags a PageResult.
type Outcome int

const (
	// OutcomeSuccess: the server reported data (code "1") and a Page was built.
	OutcomeSuccess Outcome = iota
	// OutcomeNoData: the server reported code "0".
	OutcomeNoData
	// OutcomeFailure: transport, timeout, HTTP status, malformed envelope
	// or an unrecognized discriminator.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNoData:
		return "no_data"
	case OutcomeFailure:
		return "failure"
	}
	return "unknown"
}

// PageResult is the Page Fetcher's result. Page is set only for OutcomeSuccess.
type PageResult struct {
	Outcome Outcome
	Page    *Page
	Message string
}

// Success reports whether a page was obtained.
func (r PageResult) Success() bool {
	return r.Outcome == OutcomeSuccess && r.Page != nil
}

// Collection converts a single page result into the aggregator's result
// shape. "No data" is a successful retrieval of zero categories that keeps
// the server message; a failure stays a failure.
func (r PageResult) Collection() CollectionResult {
	switch {
	case r.Success():
		return CollectionResult{
			Success:      true,
			Categories:   r.Page.Categories,
			Total:        r.Page.Len(),
			Message:      r.Message,
			PagesFetched: 1,
		}
	case r.Outcome == OutcomeNoData:
		return CollectionResult{Success: true, Message: r.Message, PagesFetched: 1}
	default:
		return CollectionResult{Success: false, Message: r.Message, PagesFetched: 1}
	}
}

// CollectionResult is the aggregator's result.
//
// Truncated is set when the page-count safety bound stopped the aggregation;
// the result is still successful.
type CollectionResult struct {
	Success      bool
	Categories   []Category
	Total        int
	Message      string
	PagesFetched int
	Truncated    bool
}
