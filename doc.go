/*
Package tmconv converts human-readable Turing machine command files into
structured configurations for simulator and visualizer tooling.

A source file is line-oriented, one directive per line:

	q0(a) -> q1(b)R
	alphabet: (ba)
	tape: (*aab)

Transition lines describe one deterministic step; the alphabet declaration
is normalized (sorted, deduplicated); the tape declaration is captured
verbatim, including its leading head marker. Lines matching none of the
three shapes are skipped silently.

The high-level API lives in this package:

	conv := tmconv.New()
	cfg, err := conv.ConvertString(source)

The resulting Configuration serializes to the JSON interchange format via
encoding/json, or through the formatters in internal/output when used
from the tmconv CLI.
*/
package tmconv
