// Package watch re-runs work when input files change.
//
// A FileWatcher watches a fixed set of files through their parent
// directories, so editors that save by writing a temporary file and renaming
// it over the original are still noticed. Bursts of events are coalesced by a
// Debouncer into one callback carrying every changed path.
//
//	fw, err := watch.NewFileWatcher(&watch.Config{
//	    Paths:    files.Paths(dir),
//	    Debounce: 500 * time.Millisecond,
//	}, logger)
//	err = fw.Watch(ctx, func(ctx context.Context, changed []string) error {
//	    return rerun(ctx)
//	})
package watch
