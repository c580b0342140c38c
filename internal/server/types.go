package server

// fieldPayload is the wire form of one bundle field. Data is a flat
// row-major array matching Shape.
type fieldPayload struct {
	Data  []float64 `json:"data"`
	Shape []int     `json:"shape"`
	Units string    `json:"units,omitempty"`
}

// computeRequest is the body of a POST compute call: a parameter bundle
// keyed by field name.
type computeRequest struct {
	Fields map[string]fieldPayload `json:"fields"`
}

// computeResponse carries the derived field back to the caller.
type computeResponse struct {
	RequestID  string       `json:"request_id"`
	Diagnostic string       `json:"diagnostic"`
	Name       string       `json:"name"`
	Field      fieldPayload `json:"field"`
}

// listResponse enumerates the registered diagnostics.
type listResponse struct {
	Diagnostics []string `json:"diagnostics"`
}
