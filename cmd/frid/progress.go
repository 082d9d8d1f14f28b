package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"frid/internal/catalog"
)

// newProgressSink returns a terminal progress bar when the writer is an
// interactive terminal, otherwise a no-op sink so piped and scripted runs
// stay quiet.
func newProgressSink(w io.Writer) catalog.ProgressSink {
	file, ok := w.(*os.File)
	if !ok {
		return catalog.NopSink()
	}
	fd := file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return catalog.NopSink()
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("catalog"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &barSink{bar: bar}
}

type barSink struct {
	bar *progressbar.ProgressBar
}

func (s *barSink) Describe(message string) {
	s.bar.Describe(message)
}

func (s *barSink) SetTotal(total int) {
	s.bar.ChangeMax(total)
}

func (s *barSink) Advance(n int) {
	_ = s.bar.Add(n)
}
