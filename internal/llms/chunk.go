package llms

import (
	"sort"
	"strings"
)

// normalized applies defaults to out-of-range values.
func (c ChunkConfig) normalized() ChunkConfig {
	if c.Depth < 1 {
		c.Depth = 1
	}
	if c.MinFilesPerChunk < 1 {
		c.MinFilesPerChunk = 2
	}
	return c
}

// ChunkDocuments groups docs into directory chunks up to cfg.Depth levels.
//
// Every document is appended to the root chunk and to each ancestor
// directory chunk down to the configured depth, so chunks overlap. The root
// survives with at least one file; other prefixes need MinFilesPerChunk.
// Dropped prefixes are not re-attempted at any other level: their files stay
// visible through the surviving ancestors only.
//
// The result is ordered by dirPath, which puts the root first. The input
// slice is never modified.
func ChunkDocuments(docs []Document, root string, cfg ChunkConfig) []DirectoryChunk {
	cfg = cfg.normalized()

	files := make(map[string][]Document)
	for _, doc := range docs {
		segments := splitDir(NormalizePath(doc.chunkPath(), root))
		levels := min(cfg.Depth, len(segments)+1)
		for d := 1; d <= levels; d++ {
			prefix := ""
			if d > 1 {
				prefix = strings.Join(segments[:d-1], "/")
			}
			files[prefix] = append(files[prefix], doc)
		}
	}

	var surviving []string
	for dirPath, list := range files {
		if dirPath == "" {
			if len(list) >= 1 {
				surviving = append(surviving, dirPath)
			}
			continue
		}
		if len(list) >= cfg.MinFilesPerChunk {
			surviving = append(surviving, dirPath)
		}
	}
	sort.Strings(surviving)

	chunks := make([]DirectoryChunk, 0, len(surviving))
	for _, dirPath := range surviving {
		chunks = append(chunks, DirectoryChunk{
			DirPath:      dirPath,
			Files:        files[dirPath],
			DepthLevel:   depthLevel(dirPath),
			ParentPath:   parentDir(dirPath),
			SiblingPaths: siblingsOf(dirPath, surviving),
			ChildPaths:   childrenOf(dirPath, surviving),
		})
	}
	return chunks
}

// siblingsOf returns the surviving paths sharing dirPath's parent and depth.
func siblingsOf(dirPath string, surviving []string) []string {
	parent := parentDir(dirPath)
	level := depthLevel(dirPath)

	var siblings []string
	for _, other := range surviving {
		if other == dirPath {
			continue
		}
		if parentDir(other) == parent && depthLevel(other) == level {
			siblings = append(siblings, other)
		}
	}
	return siblings
}

// childrenOf returns the surviving paths whose parent is exactly dirPath.
func childrenOf(dirPath string, surviving []string) []string {
	var children []string
	for _, other := range surviving {
		if other == dirPath || other == "" {
			continue
		}
		if parentDir(other) == dirPath {
			children = append(children, other)
		}
	}
	return children
}

// findChunk returns the chunk with the given dirPath.
func findChunk(chunks []DirectoryChunk, dirPath string) (DirectoryChunk, bool) {
	for _, c := range chunks {
		if c.DirPath == dirPath {
			return c, true
		}
	}
	return DirectoryChunk{}, false
}
