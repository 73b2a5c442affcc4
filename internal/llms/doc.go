// Package llms turns a set of prepared documentation pages into LLM-oriented
// plain-text artifacts: a hierarchical index (llms.txt per directory level),
// a concatenated full-text dump (llms-full.txt) and per-page copies.
//
// # Overview
//
// Everything in this package is a pure function of its inputs. Callers read
// files, parse front matter and write outputs; this package only groups,
// cross-references and renders.
//
// # Key Concepts
//
//   - Directory chunks: documents are grouped by directory prefix up to a
//     configured depth. Chunks are cumulative, so a page under guide/advanced
//     is listed by the root chunk, the guide chunk and the guide/advanced
//     chunk (when those survive the minimum-files filter).
//
//   - Navigation: every chunk knows its parent, its siblings (same parent,
//     same depth) and its direct children. These are rendered as links to the
//     neighbouring llms.txt files.
//
//   - Table of contents: the documents of a chunk rendered as a Markdown link
//     list, grouped by an optional sidebar tree.
//
//   - Templates: index files are produced by substituting {name} placeholders.
//
// # Usage
//
//	chunks := llms.ChunkDocuments(docs, root, llms.ChunkConfig{Depth: 2})
//	for _, c := range chunks {
//		text := llms.RenderChunk(c, opts)
//		// write text to llms.ChunkOutputPath(c.DirPath)
//	}
package llms
