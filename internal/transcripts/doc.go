// Package transcripts loads the transcript file produced by the
// transcription pipeline: a JSON object keyed by media filename, each
// entry carrying the transcript text and an optional condensed summary.
package transcripts
