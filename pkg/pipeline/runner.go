package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/fsutil"
)

// FileOutcome captures the result of processing one file.
type FileOutcome struct {
	Path     string
	Output   string
	Modified bool
	Err      error
}

// Stats aggregates a batch of FileOutcomes for summary reporting.
type Stats struct {
	FilesProcessed int
	FilesModified  int
	FilesErrored   int
}

// Summarize tallies outcomes into Stats.
func Summarize(outcomes []FileOutcome) Stats {
	stats := Stats{FilesProcessed: len(outcomes)}
	for _, o := range outcomes {
		if o.Err != nil {
			stats.FilesErrored++
			continue
		}
		if o.Modified {
			stats.FilesModified++
		}
	}
	return stats
}

// RunOptions controls multi-file driving. Jobs <= 0 selects
// runtime.NumCPU() workers, matching how many files would otherwise be
// processed sequentially, capped at len(paths).
type RunOptions struct {
	Jobs      int
	Overwrite bool
	Backup    bool
}

// Run drives p over every path in paths, optionally concurrently. Each
// document's pipeline is independent, so files may be processed in
// any order and the only shared state is the read-only Pipeline
// itself.
func (p *Pipeline) Run(ctx context.Context, paths []string, skip engine.SkipSet, opts engine.Options, run RunOptions) []FileOutcome {
	jobs := run.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(paths) {
		jobs = len(paths)
	}
	if jobs < 1 {
		jobs = 1
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)
	var wg sync.WaitGroup

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range workCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				outCh <- p.processFile(ctx, path, skip, opts, run)
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	byPath := make(map[string]FileOutcome, len(paths))
	for outcome := range outCh {
		byPath[outcome.Path] = outcome
	}

	outcomes := make([]FileOutcome, 0, len(paths))
	for _, path := range paths {
		if o, ok := byPath[path]; ok {
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}

func (p *Pipeline) processFile(ctx context.Context, path string, skip engine.SkipSet, opts engine.Options, run RunOptions) FileOutcome {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileOutcome{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}
	}

	output := p.Process(string(content), skip, opts)
	modified := output != string(content)

	if !run.Overwrite || !modified {
		return FileOutcome{Path: path, Output: output, Modified: modified}
	}

	if run.Backup {
		if _, err := fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}); err != nil {
			return FileOutcome{Path: path, Err: fmt.Errorf("backup %s: %w", path, err)}
		}
	}

	stat, err := os.Stat(path)
	mode := fsutil.DefaultFileMode
	if err == nil {
		mode = stat.Mode()
	}
	if err := fsutil.WriteAtomic(ctx, path, []byte(output), mode); err != nil {
		return FileOutcome{Path: path, Err: fmt.Errorf("overwrite %s: %w", path, err)}
	}
	return FileOutcome{Path: path, Output: output, Modified: true}
}
