// Package source fetches the external sheet snapshot used by
// reconciliation.
//
// The RowSource interface abstracts the transport, making it easy to mock
// the fetch in unit tests (see source/mocks). The HTTP implementation
// understands Google Sheets edit links and rewrites them to the CSV export
// endpoint; any other http(s) locator is fetched as-is.
//
// All failures surface as ErrSourceUnavailable so callers can prompt for a
// corrected locator and retry with the same reconciliation logic.
package source
