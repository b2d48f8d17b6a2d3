package main

import (
	"crypto/sha1" //nolint:gosec // git blob ids are sha1
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// node is one entry of a directory listing before it is rendered with URLs.
type node struct {
	name  string
	path  string
	isDir bool
	size  int
	sha   string
}

// store holds file content keyed by "owner/repo", then by path on main.
type store struct {
	mu    sync.RWMutex
	files map[string]map[string][]byte
}

func newStore() *store {
	return &store{files: make(map[string]map[string][]byte)}
}

func (s *store) put(owner, repo, path string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := owner + "/" + repo
	if s.files[key] == nil {
		s.files[key] = make(map[string][]byte)
	}
	s.files[key][path] = content
}

func (s *store) repoCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

func (s *store) getFile(owner, repo, path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[owner+"/"+repo][path]
	return content, ok
}

// listDir returns the immediate children of dirPath sorted by name, the way
// GET /repos/:owner/:repo/contents/:path does for a directory. ok is false
// when the repo is unknown or dirPath is not a directory.
func (s *store) listDir(owner, repo, dirPath string) (entries []node, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files, known := s.files[owner+"/"+repo]
	if !known {
		return nil, false
	}

	prefix := dirPath
	if prefix != "" {
		prefix += "/"
	}

	seen := map[string]bool{}
	entries = []node{}
	for filePath, content := range files {
		if !strings.HasPrefix(filePath, prefix) {
			continue
		}
		name, _, isDir := strings.Cut(filePath[len(prefix):], "/")
		if seen[name] {
			continue
		}
		seen[name] = true
		n := node{name: name, path: prefix + name, isDir: isDir}
		if isDir {
			n.sha = treeSHA(n.path)
		} else {
			n.size = len(content)
			n.sha = blobSHA(content)
		}
		entries = append(entries, n)
	}
	if len(entries) == 0 && dirPath != "" {
		return nil, false
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	return entries, true
}

// blobSHA is the git object id of content.
func blobSHA(content []byte) string {
	h := sha1.New() //nolint:gosec // git blob ids are sha1
	fmt.Fprintf(h, "blob %d\x00", len(content))
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

// treeSHA is a stable stand-in id for a directory.
func treeSHA(path string) string {
	sum := sha1.Sum([]byte("tree " + path)) //nolint:gosec // not used for security
	return hex.EncodeToString(sum[:])
}
