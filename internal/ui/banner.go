package ui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
           _                     _        _
 ___  __ _| | __ _ _ __ _   _ ___| |_ __ _| |_ ___
/ __|/ _` + "`" + ` | |/ _` + "`" + ` | '__| | | / __| __/ _` + "`" + ` | __/ __|
\__ \ (_| | | (_| | |  | |_| \__ \ || (_| | |_\__ \
|___/\__,_|_|\__,_|_|   \__, |___/\__\__,_|\__|___/
                        |___/
`

// ColorizeText fades the input text between two random colors
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := []rune(text)
	half := len(runes) / 2
	if half == 0 {
		return text
	}

	var colored string
	for i, r := range runes {
		colored += startColor.Fade(0, float32(len(runes)), float32(i%half), endColor).Sprint(string(r))
	}

	return colored
}

// PrintBanner displays the application banner on w. It goes to stderr in
// the CLI so stdout only carries the report tables.
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}
