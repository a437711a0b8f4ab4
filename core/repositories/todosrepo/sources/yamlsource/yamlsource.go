// Package yamlsource reads a task seed from a YAML file.
//
// The file lists tasks under a top level "tasks" key:
//
//	tasks:
//	  - id: 1
//	    title: Go to Market
//	    description: Buy ingredients to prepare dinner
//	    completed: true
package yamlsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/jrazmi/todoview/core/repositories/todosrepo"
	"gopkg.in/yaml.v3"
)

const lockRetry = 100 * time.Millisecond

type document struct {
	Tasks []todosrepo.Task `yaml:"tasks"`
}

// Load reads the seed at path. The read happens under a shared lock on
// path + ".lock" so a tool rewriting the seed under an exclusive lock is
// never observed half written.
func Load(ctx context.Context, path string) ([]todosrepo.Task, error) {
	lock := flock.New(path + ".lock")

	locked, err := lock.TryRLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("locking seed file: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire seed file lock")
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a seed document. Unknown keys are rejected.
func Decode(r io.Reader) ([]todosrepo.Task, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []todosrepo.Task{}, nil
		}
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}

	if doc.Tasks == nil {
		return []todosrepo.Task{}, nil
	}
	return doc.Tasks, nil
}

// Encode writes tasks in the format Decode reads.
func Encode(w io.Writer, tasks []todosrepo.Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Tasks: tasks}); err != nil {
		return fmt.Errorf("encoding seed file: %w", err)
	}
	return enc.Close()
}
