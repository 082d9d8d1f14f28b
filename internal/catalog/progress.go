package catalog

// ProgressSink receives refresh progress events. Implementations are invoked
// from a single goroutine at a time; the fetcher serializes calls, so sinks do
// not need their own locking.
type ProgressSink interface {
	// Describe sets the current phase description.
	Describe(message string)
	// SetTotal announces the number of units the current phase will complete.
	SetTotal(total int)
	// Advance reports that n more units completed.
	Advance(n int)
}

type nopSink struct{}

func (nopSink) Describe(string) {}

func (nopSink) SetTotal(int) {}

func (nopSink) Advance(int) {}

// NopSink returns a sink that discards all progress events.
func NopSink() ProgressSink {
	return nopSink{}
}
