package checks

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	okMark   = color.New(color.FgGreen)
	failMark = color.New(color.FgRed, color.Bold)

	reportPrinter = message.NewPrinter(language.English)
)

// WriteText renders the human-readable report. Output is deterministic
// for a given report, so repeated runs on an unmodified package produce
// byte-identical text.
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Validation report: %s\n", filepath.Base(r.Dir))

	for _, res := range r.Results {
		if res.Passed {
			line := fmt.Sprintf(" %2d. %s", res.Num, res.Label)
			if res.Detail != "" {
				line += fmt.Sprintf(" (%s)", res.Detail)
			}
			fmt.Fprintf(w, "  %s%s\n", okMark.Sprint("[ OK ]"), line)
			continue
		}

		line := fmt.Sprintf(" %2d. %s", res.Num, res.Label)
		if res.Detail != "" {
			line += fmt.Sprintf(": %s", res.Detail)
		}
		fmt.Fprintf(w, "  %s%s\n", failMark.Sprint("[FAIL]"), line)
		if res.Fix != "" {
			fmt.Fprintf(w, "         Fix: %s\n", res.Fix)
		}
	}

	passed := len(r.Results) - r.Failed()
	if r.Passed() {
		reportPrinter.Fprintf(w, "\nAll %d checks passed. Package is ready for publication.\n", len(r.Results))
		return
	}
	reportPrinter.Fprintf(w, "\n%d of %d checks passed. Fix the failures above before publishing.\n",
		passed, len(r.Results))
}
