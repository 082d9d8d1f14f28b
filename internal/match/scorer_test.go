package match

import (
	"strings"
	"testing"

	"frid/internal/catalog"
)

func TestScoreIdenticalTranscript(t *testing.T) {
	episode := catalog.Episode{
		Season:  2,
		Episode: 8,
		Title:   "A Fight About a List",
		Summary: "Ross and Rachel break up after a fight about a list",
	}
	transcript := "ross and rachel break up after a fight about a list"

	if got := Score(transcript, "", episode); got < 95 {
		t.Errorf("Score(identical) = %d, want >= 95", got)
	}
}

func TestScoreZeroOverlap(t *testing.T) {
	episodes := []catalog.Episode{
		{Season: 1, Episode: 1, Title: "The Pilot", Summary: "Rachel leaves Barry at the altar and moves in with Monica."},
		{Season: 4, Episode: 12, Title: "The One with the Embryos", Summary: "The girls bet their apartment on a trivia game against the guys."},
		{Season: 5, Episode: 14, Title: "The One Where Everybody Finds Out", Summary: "Phoebe learns about Monica and Chandler and tries to out-bluff them."},
	}
	for _, episode := range episodes {
		if got := Score("xyzzy plugh qwerty", "", episode); got != 0 {
			t.Errorf("Score(disjoint, %s) = %d, want 0", episode.Label(), got)
		}
	}
}

func TestScoreCaseNeutral(t *testing.T) {
	episode := catalog.Episode{
		Season:  3,
		Episode: 2,
		Title:   "The One Where No One's Ready",
		Summary: "Ross frets as nobody is dressed for his museum banquet",
	}
	transcript := "Ross Frets As NOBODY Is Dressed For His Museum Banquet"

	upper := Score(transcript, "", episode)
	lower := Score(strings.ToLower(transcript), "", episode)
	if upper != lower {
		t.Errorf("Score not case neutral: %d vs %d", upper, lower)
	}
}

func TestScoreEmptySummary(t *testing.T) {
	episode := catalog.Episode{Season: 1, Episode: 3, Title: "The One with the Thumb"}
	got := Score("a transcript about a thumb in a soda can", "", episode)
	// Plot score is 0; only the 20% title weight can contribute.
	if got > 20 {
		t.Errorf("Score(empty summary) = %d, want <= 20", got)
	}
}

func TestScoreEmptyTranscript(t *testing.T) {
	episode := catalog.Episode{
		Season:  1,
		Episode: 4,
		Title:   "The One with George Stephanopoulos",
		Summary: "The girls spy on the cute guy across the street",
	}
	if got := Score("", "", episode); got != 0 {
		t.Errorf("Score(empty transcript) = %d, want 0", got)
	}
}

func TestScoreAuxiliarySummaryOnlyImproves(t *testing.T) {
	episode := catalog.Episode{
		Season:  2,
		Episode: 14,
		Title:   "The One with the Prom Video",
		Summary: "An old prom video reveals what Ross did for Rachel",
	}
	transcript := "mumbled dialogue with little identifying content whatsoever"
	aux := "an old prom video reveals what ross did for rachel"

	without := Score(transcript, "", episode)
	with := Score(transcript, aux, episode)
	if with < without {
		t.Errorf("aux summary lowered score: %d -> %d", without, with)
	}
	if with < 80 {
		t.Errorf("Score(with matching aux) = %d, want >= 80", with)
	}

	// A blank aux summary is ignored entirely.
	if got := Score(transcript, "   ", episode); got != without {
		t.Errorf("blank aux changed score: %d vs %d", got, without)
	}
}

func TestScoreDeterministic(t *testing.T) {
	episode := catalog.Episode{
		Season:  6,
		Episode: 6,
		Title:   "The One on the Last Night",
		Summary: "Chandler invents a game to give Joey money before moving out",
	}
	transcript := "chandler tries to give joey money with a made up game on their last night"
	first := Score(transcript, "", episode)
	for i := 0; i < 10; i++ {
		if got := Score(transcript, "", episode); got != first {
			t.Fatalf("Score changed between runs: %d vs %d", got, first)
		}
	}
}
