// Package match scores transcripts against episode records and produces
// ranked match lists.
//
// Scoring is a token-set similarity: the sets of case-folded tokens of two
// texts are compared, insensitive to word order and duplication, on a 0-100
// scale. A transcript is scored against an episode's plot summary and title,
// weighted 80/20. All functions are pure; ranking is deterministic and
// order-stable for equal scores.
package match
