package domain

// NormalizedFlightsResponse is the flat output of the pipeline.
type NormalizedFlightsResponse struct {
	Flights  []NormalizedFlight `json:"flights"`
	Metadata PipelineMetadata   `json:"metadata"`
}

// GroupsResponse is the grouped output of the pipeline.
type GroupsResponse struct {
	Groups   []DestinationGroup `json:"groups"`
	Metadata PipelineMetadata   `json:"metadata"`
}

// PipelineMetadata describes what the pipeline did to a payload.
type PipelineMetadata struct {
	// RawRecords is the number of records found in the payload
	RawRecords int `json:"raw_records"`

	// SkippedRecords counts payload elements that were not JSON objects
	SkippedRecords int `json:"skipped_records"`

	// DuplicatesRemoved counts flat records dropped by deduplication
	DuplicatesRemoved int `json:"duplicates_removed"`

	// DroppedRecords counts records without any leg
	DroppedRecords int `json:"dropped_records"`

	// FilteredRecords counts flights removed by request filters
	FilteredRecords int `json:"filtered_records"`

	// TotalResults is the number of normalized flights returned
	TotalResults int `json:"total_results"`

	// Warnings counts fields that were defaulted during normalization
	Warnings int `json:"warnings"`

	// ProcessingTimeMs is the wall time spent in the pipeline
	ProcessingTimeMs int64 `json:"processing_time_ms"`

	// Source names the flight source for fetched payloads
	Source string `json:"source,omitempty"`
}

// NewNormalizedFlightsResponse builds a response, never returning a nil flight list.
func NewNormalizedFlightsResponse(flights []NormalizedFlight, metadata PipelineMetadata) NormalizedFlightsResponse {
	if flights == nil {
		flights = []NormalizedFlight{}
	}
	metadata.TotalResults = len(flights)
	return NormalizedFlightsResponse{Flights: flights, Metadata: metadata}
}

// NewGroupsResponse builds a grouped response, never returning a nil group list.
func NewGroupsResponse(groups []DestinationGroup, metadata PipelineMetadata) GroupsResponse {
	if groups == nil {
		groups = []DestinationGroup{}
	}
	total := 0
	for _, g := range groups {
		total += len(g.Flights)
	}
	metadata.TotalResults = total
	return GroupsResponse{Groups: groups, Metadata: metadata}
}
