package problem

import "strings"

// repairer patches markup defects that problem pages are known to ship.
// The replacements are literal and deliberately narrow; this is not
// general malformed-markup recovery.
var repairer = strings.NewReplacer(
	"<p</p>", "<p></p>",
	"<ul</ul>", "<ul></ul>",
	`<div class="sample-test"<`, `<div class="sample-test"><`,
)

// Repair applies the known markup patches to a raw problem page.
func Repair(page string) string {
	return repairer.Replace(page)
}
