// Package htmlwriter builds nested HTML-like documents through scoped tag
// nesting and renders them to indented text.
//
// # Model
//
// A Builder owns an ordered sequence of top-level children (elements and raw
// text lines) and an insertion-point stack. OpenTag appends a new element at
// the current insertion point and pushes it; CloseTag pops back to the
// parent. Tag wraps this open/close pair so the scope closes on every exit
// path. Self-closing elements (SelfClosingTag) take attributes but never
// children and render without a closing tag.
//
// Several builders can be merged late: Combine concatenates top-level
// sequences, Append splices one builder's content into another at the current
// insertion point, and HTMLTemplate assembles a full page from a head-only
// and a body-only builder. None of these mutate their inputs.
//
// # Escaping
//
// Text and attribute values are emitted verbatim. Escaping reserved markup
// characters is the caller's responsibility; the package performs no
// escaping and no validation of tag or attribute correctness beyond
// rejecting empty tag names.
//
// # Concurrency
//
// A Builder is not safe for concurrent use. Callers that need concurrency
// must serialize the entire build-then-render sequence externally.
package htmlwriter
