// Package problem extracts sample input/output pairs from a problem page.
//
// A problem page marks its samples with a div whose class contains
// "sample". The extractor records only that subtree: a stack-based builder
// consumes the token stream, turning nested tags into Nodes while the
// recording flag is set and ignoring the rest of the document. The finished
// subtree is then walked for <pre> blocks, which alternate input, output,
// input, output in document order.
//
// The builder trusts end tags positionally: any end tag pops the stack top
// whether or not the names match. This tolerates the mildly broken markup
// these pages are known to ship, at the cost of being fragile against
// deeper nesting errors.
package problem
