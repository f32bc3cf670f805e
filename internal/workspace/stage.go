package workspace

import (
	"fmt"
	"os"
	"strings"
)

const stageSuffix = ".pluginsync-tmp"

// PartialWriteError reports a commit that renamed some files into place before
// failing. Files already written are not rolled back; re-running the
// reconciler converges them.
type PartialWriteError struct {
	Written []string
	Failed  string
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial manifest write: %s failed after writing %s: %v",
		e.Failed, strings.Join(e.Written, ", "), e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

type stagedFile struct {
	path string
	data []byte
}

// stage collects files to be written together: each is first written next to
// its target, and targets are replaced only once every temp file exists.
type stage struct {
	files []stagedFile
}

func newStage() *stage { return &stage{} }

func (s *stage) add(path string, data []byte) {
	s.files = append(s.files, stagedFile{path: path, data: data})
}

func (s *stage) commit() error {
	for i, f := range s.files {
		if err := os.WriteFile(f.path+stageSuffix, f.data, 0644); err != nil { //nolint:gosec // manifests need to be readable
			s.cleanup(i + 1)
			return fmt.Errorf("staging %s: %w", f.path, err)
		}
	}
	var written []string
	for i, f := range s.files {
		if err := os.Rename(f.path+stageSuffix, f.path); err != nil {
			s.cleanupFrom(i)
			if len(written) == 0 {
				return fmt.Errorf("writing %s: %w", f.path, err)
			}
			return &PartialWriteError{Written: written, Failed: f.path, Err: err}
		}
		written = append(written, f.path)
	}
	return nil
}

// cleanup removes the first n temp files.
func (s *stage) cleanup(n int) {
	for _, f := range s.files[:n] {
		_ = os.Remove(f.path + stageSuffix)
	}
}

// cleanupFrom removes the temp files not yet renamed.
func (s *stage) cleanupFrom(i int) {
	for _, f := range s.files[i:] {
		_ = os.Remove(f.path + stageSuffix)
	}
}
