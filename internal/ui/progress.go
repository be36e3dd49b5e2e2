package ui

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

const progressTemplate = `{{string . "prefix"}} {{counters . }} {{bar . "[" "=" ">" " " "]"}} {{percent . }}`

// NewProgress starts a progress bar counting search terms for one provider
func NewProgress(w io.Writer, name string, total int) *pb.ProgressBar {
	bar := pb.New(total)
	bar.SetWriter(w)
	bar.SetTemplateString(progressTemplate)
	bar.Set("prefix", name)
	return bar.Start()
}
