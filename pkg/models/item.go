package models

// Item is one input item of a batch. Its content is only used for
// templated parameter values and to determine batch size.
type Item struct {
	JSON map[string]any `json:"json"`
}

// PairedItem links an output record to the input item it was produced from.
type PairedItem struct {
	Item int `json:"item"`
}

// OutputRecord is the result for one input item: either the raw API response
// or an error descriptor {"error": message}.
type OutputRecord struct {
	JSON       any        `json:"json"`
	PairedItem PairedItem `json:"pairedItem"`

	// Failed marks records built by ErrorRecord. A response payload that
	// happens to look like an error descriptor is not a failure.
	Failed bool `json:"-"`
}

// ErrorRecord builds the record emitted for a failed item when continue on
// failure is enabled.
func ErrorRecord(index int, message string) OutputRecord {
	return OutputRecord{
		JSON:       map[string]any{"error": message},
		PairedItem: PairedItem{Item: index},
		Failed:     true,
	}
}

// IsError reports whether the record stands for a failed item.
func (r OutputRecord) IsError() bool {
	return r.Failed
}
