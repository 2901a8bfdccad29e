package color

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var Locus *color.Color = color.New(color.FgWhite, color.Bold)
var Warning *color.Color = color.New(color.FgMagenta, color.Bold)
var Error *color.Color = color.New(color.FgRed, color.Bold)
var Fatal *color.Color = color.New(color.FgWhite, color.Bold, color.BgRed)

func AlwaysColor() {
	color.NoColor = false
}

func AutoColor() {
	color.NoColor = os.Getenv("TERM") == "dumb" ||
		(!isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()))
}

func NeverColor() {
	color.NoColor = true
}

// Init sets the color mode: "always", "auto", "never", or "" which is
// equivalent to "auto".
func Init(mode string) error {
	switch mode {
	case "always":
		AlwaysColor()
	case "auto", "":
		AutoColor()
	case "never":
		NeverColor()
	default:
		return fmt.Errorf("invalid color mode: %s", mode)
	}
	return nil
}
