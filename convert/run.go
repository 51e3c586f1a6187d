// Package convert orchestrates the transformation of pod documents into
// browsable HTML pages: input discovery, the directive and styling passes,
// rendering and output naming. The engine itself stays I/O free; everything
// touching the filesystem lives here.
package convert

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"phb/css"
	"phb/pod"
	"phb/render"
	"phb/state"
)

//go:embed default.css
var defaultStylesheet []byte

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	stylesheet := defaultStylesheet
	if env.Cfg.Document.StylesheetPath != "" {
		data, err := os.ReadFile(env.Cfg.Document.StylesheetPath)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet from %q: %w", env.Cfg.Document.StylesheetPath, err)
		}
		stylesheet = data
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, stylesheet, log)
}

// podExtensions lists source file suffixes recognized when walking an input
// directory.
var podExtensions = []string{".pod", ".xml"}

func hasPodExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range podExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// process resolves the input source to an ordered list of documents and
// renders them all onto one logical page: anchors issued for earlier
// documents seed the allocators of later ones. Per-document failures do not
// stop the run; they are aggregated and reported together.
func process(ctx context.Context, src, dst string, stylesheet []byte, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	var inputs []string
	root := filepath.Dir(src)
	if fi.Mode().IsDir() {
		root = src
		err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err != nil {
				log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
				return nil
			}
			if !info.Mode().IsRegular() || !hasPodExtension(path) {
				return nil
			}
			inputs = append(inputs, path)
			return nil
		})
		if err != nil {
			return err
		}
		// deterministic page order regardless of walk order
		sort.Sort(natural.StringSlice(inputs))
		if len(inputs) == 0 {
			log.Debug("Nothing to process", zap.String("dir", src))
			return nil
		}
	} else if fi.Mode().IsRegular() {
		inputs = append(inputs, src)
	} else {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	known := css.Classes(stylesheet, log)

	var errs error
	var issued []string
	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, root), string(filepath.Separator))
		ids, err := func() ([]string, error) {
			file, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer file.Close()
			return processDocument(ctx, file, rel, dst, stylesheet, known, issued, log)
		}()
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", rel, err))
			continue
		}
		issued = ids
	}
	return errs
}

// processDocument runs the whole pipeline for one document: parse,
// directives, styling, rendering, page assembly, output. Returns the full
// set of anchor identifiers issued so far, for seeding the next document on
// the page.
func processDocument(ctx context.Context, r io.Reader, src, dst string, stylesheet []byte, known css.ClassSet, seed []string, log *zap.Logger) (issued []string, err error) {
	env := state.EnvFromContext(ctx)

	var outputName string
	log.Info("Rendering starting", zap.String("from", src))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
	}(time.Now())

	doc, err := pod.Read(r, src, log)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pod source (%s): %w", src, err)
	}

	if err := doc.ProcessDirectives(env.Cfg.Document.Directives.Target); err != nil {
		return nil, err
	}
	doc.ApplyStyles(known)

	if env.Rpt != nil {
		env.Rpt.StoreData("tree-"+doc.DocumentID()+".txt", []byte(doc.String()))
	}

	session := render.NewSession(doc, render.Options{
		MarkerWords:      env.Cfg.Document.MarkerWords,
		RouteMethods:     env.Cfg.Document.RouteMethods,
		GroupClassPrefix: env.Cfg.Document.Index.GroupClassPrefix,
	}, log)
	session.SeedAnchors(seed)

	page, err := assemblePage(doc, session, stylesheet)
	if err != nil {
		return nil, err
	}

	outputName = buildOutputPath(doc, src, dst, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return nil, fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, []byte(page), 0644); err != nil {
		return nil, fmt.Errorf("unable to write output: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store("result-"+filepath.Base(outputName), outputName)
	}

	return session.Issued(), nil
}
