// Package client contains the envelope client: the lowest layer of the
// catalog retrieval pipeline.
//
// # Overview
//
// HTTPClient.Send issues exactly one POST against the catalog endpoint with
// a JSON body, races it against a fixed timeout supplied by an injected
// Clock, checks the HTTP status, decodes the JSON body and validates that the
// "code" discriminator is present. It returns the Envelope unchanged; the
// business meaning of "code" and "payload" belongs to the services layer.
//
// # Error Handling
//
// Failures are reported as sentinel errors that callers match with
// errors.Is: ErrTimeout, ErrTransport (via *TransportError), ErrHTTPStatus
// (via *HTTPStatusError) and ErrMalformedResponse (via
// *MalformedResponseError). ErrNoData is reserved for the services layer.
//
// Concurrency & Contexts
//
// Send keeps no state between calls and may be used concurrently. The loser
// of the request/timeout race is abandoned: its request context is cancelled
// and its result is dropped.
package client
