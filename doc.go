// Package proposalgen turns structured proposal form data into a canonical
// Markdown document and the assets that travel with it.
//
// The package is built around pure transformations: the same document and
// chapter toggles always produce the same Markdown, image list, and
// validation result. Nothing is cached between calls and no state survives a
// generation pass.
//
// Core pieces:
//   - GenerateMarkdown: document plus chapter toggles to chaptered Markdown
//   - CollectImages: ordered image descriptors with derived filenames
//   - ValidateAll: advisory field checks, never blocking generation
//   - Preview: generated Markdown rendered for a terminal
//
// Example:
//
//	doc := proposalgen.DefaultDocument()
//	doc.Cover.AccountName = "tokyo_gourmet"
//	md := proposalgen.GenerateMarkdown(doc, proposalgen.DefaultChapters())
//	images := proposalgen.CollectImages(doc, proposalgen.DefaultChapters())
//
// PDF layout lives in the pdf subpackage, which consumes the Markdown and
// image descriptors produced here.
package proposalgen
