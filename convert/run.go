package convert

import (
	"archive/zip"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"r2/archive"
	"r2/common"
	"r2/state"
)

// StdinSource is the source name which makes conversion read stdin and write
// stdout.
const StdinSource = "-"

// Flip mirrors stylesheets, applying configured translators and
// translations afterwards.
func Flip(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, common.ConversionModeFlip)
}

// Translate applies only configured translations to stylesheets.
func Translate(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, common.ConversionModeTranslate)
}

func run(ctx context.Context, cmd *cli.Command, mode common.ConversionMode) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named(mode.String())

	if err := env.PrepareConversion(mode, cmd.Bool("compact")); err != nil {
		return err
	}

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src == StdinSource {
		if cmd.Args().Len() > 1 {
			log.Warn("Reading from stdin, output goes to stdout", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
		}
		return processStream(ctx, os.Stdin, os.Stdout, log)
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
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("layout", env.Layout))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines the input type (directory, archive, possibly with path
// inside, or single file) and processes accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		archive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if archive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, filepath.ToSlash(tail), "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		sheet, enc, err := isStylesheetFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if sheet && len(tail) == 0 {
			if err := processFile(ctx, head, filepath.Base(head), enc, dst, log); err != nil {
				return err
			}
			break
		}
		return fmt.Errorf("input was not recognized as stylesheet (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree in natural order finding stylesheets and
// archives and processes them. Individual failures do not stop the walk.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slices.SortStableFunc(paths, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})

	var (
		errs  error
		count int
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		archive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if archive {
			count++
			rel := filepath.Dir(strings.TrimPrefix(path, dir))
			if err := processArchive(ctx, path, "", rel, dst, log); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("archive %s: %w", path, err))
			}
			continue
		}

		sheet, enc, err := isStylesheetFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !sheet {
			log.Debug("Skipping file, not recognized as stylesheet or archive", zap.String("file", path))
			continue
		}
		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		errs = multierr.Append(errs, processFile(ctx, path, src, enc, dst, log))
	}

	if errs == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return failures(errs)
}

// processArchive walks all files inside archive, finds stylesheets under
// "pathIn" and processes them. "pathOut" is prepended to names in archive
// when building output path.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) error {
	var (
		errs  error
		count int
	)
	cp := state.EnvFromContext(ctx).CodePage

	err := archive.Walk(path, pathIn, func(archive string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		sheet, enc, err := isStylesheetInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", archive), zap.String("path", f.Name), zap.Error(err))
			return nil
		}
		if !sheet {
			log.Debug("Skipping file, not recognized as stylesheet", zap.String("archive", archive), zap.String("file", f.Name))
			return nil
		}
		count++

		pathInArchive := f.Name
		if cp != nil && f.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}

		r, err := f.Open()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to open %s in archive: %w", f.Name, err))
			return nil
		}
		defer r.Close()

		src := filepath.Join(pathOut, filepath.FromSlash(pathInArchive))
		errs = multierr.Append(errs, processStylesheet(ctx, r, enc, src, dst, log))
		return nil
	})
	if err != nil {
		return err
	}
	if errs == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return failures(errs)
}

func processFile(ctx context.Context, path, src string, enc srcEncoding, dst string, log *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		return err
	}
	defer file.Close()
	return processStylesheet(ctx, file, enc, src, dst, log)
}

// processStylesheet converts single stylesheet. "src" is part of the source
// path (always including file name) relative to the original path. When
// actual file was specified it will be just base file name. When looking
// inside archive or directory it will be relative path inside archive or
// directory. "dst" is the destination directory.
func processStylesheet(ctx context.Context, r io.Reader, enc srcEncoding, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Conversion starting", zap.String("from", src), zap.Stringer("encoding", enc))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr != nil {
			log.Error("Conversion failed", zap.String("from", src), zap.Error(rerr))
		} else {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	data, err := decodeInput(r, enc, log)
	if err != nil {
		return err
	}
	res, err := convertStylesheet(ctx, data, src, log)
	if err != nil {
		return err
	}

	outputName = buildOutputPath(res, src, dst, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, res.output, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	if err := env.Rpt.StoreCopy("output/"+filepath.Base(outputName), outputName); err != nil {
		log.Warn("Unable to store output in report", zap.String("file", outputName), zap.Error(err))
	}
	return nil
}

// processStream converts stylesheet from "in" writing result to "out".
func processStream(ctx context.Context, in io.Reader, out io.Writer, log *zap.Logger) error {
	br := bufio.NewReader(in)
	head, _ := br.Peek(4)
	enc := detectUTF(head)

	data, err := decodeInput(br, enc, log)
	if err != nil {
		return err
	}
	res, err := convertStylesheet(ctx, data, "stdin.css", log)
	if err != nil {
		return err
	}
	if _, err := out.Write(res.output); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

// failures summarizes accumulated errors, individual ones were logged
// already.
func failures(errs error) error {
	if errs == nil {
		return nil
	}
	return fmt.Errorf("%d stylesheet(s) failed: %w", len(multierr.Errors(errs)), errs)
}
