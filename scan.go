package spritegen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// findSheets walks base emitting every PNG file, skipping hidden files and
// directories.
func (g *Generator) findSheets(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || filepath.Ext(file) != ".png" {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

// sheetWorker checksums each file and refreshes its catalog entry. Files
// never generated by us are reported but recorded anyway so the catalog
// reflects the whole assets tree.
func (g *Generator) sheetWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			name := filepath.Base(file)
			name = name[:len(name)-len(filepath.Ext(name))]

			known, err := g.db.FindByName(name)
			if err != nil {
				errc <- err
				return
			}

			a := Asset{
				Name: name,
				Path: file,
				CRC:  crc,
			}
			if known != nil {
				a.Width, a.Height, a.Frames = known.Width, known.Height, known.Frames
				if known.CRC != crc {
					g.logger.Printf("Checksum changed for \"%s\": %s -> %s\n", file, known.CRC, crc)
				}
			} else {
				g.logger.Printf("Unknown sheet \"%s\", with CRC \"%s\"\n", file, crc)
			}

			if err := g.db.Put(a); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

// Scan refreshes the catalog from the sheets below path.
func (g *Generator) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := g.findSheets(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	errc, err = g.sheetWorker(ctx, files)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	return waitForPipeline(errcList...)
}
