// Package pdf lays out proposal Markdown as a paginated A4 document.
//
// The renderer is line-oriented and single-pass: each classified Markdown
// line is drawn at the current vertical cursor, and any draw that would
// cross the bottom margin starts a new page first. Wrapped sub-lines of a
// long paragraph check the page break per sub-line, so only whole elements
// reserve lookahead space.
//
// A render assembles three parts: the proposal Markdown, a forced new page
// with the image gallery, and a forced new page with the design guide
// rendered by the same engine. Per-image failures and font loading failures
// degrade to placeholders and warnings; they never abort the document.
package pdf
