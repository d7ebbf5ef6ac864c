// Package rename implements the rename operation: copy admitted files into
// a freshly recreated output directory under sequentially numbered,
// template-derived names.
package rename

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/valyala/fasttemplate"
	"github.com/zeebo/xxh3"

	serr "renum/internal/errors"
	"renum/internal/filter"
	"renum/internal/log"
	"renum/internal/scan"
	"renum/pkg/types"
)

// Engine copies files surviving the filter policy into an output directory,
// naming them from a template with a {number} placeholder. The number is an
// accumulator threaded through the copy loop: only files actually copied
// consume a value.
type Engine struct {
	fs      billy.Filesystem
	scanner *scan.Scanner
	policy  *filter.Policy
	tpl     *fasttemplate.Template
	raw     string
	verify  bool
}

// New creates a rename engine. The template is compiled once; a malformed
// template (for example an unclosed placeholder) fails here.
func New(fsys billy.Filesystem, scanner *scan.Scanner, policy *filter.Policy, template string, verify bool) (*Engine, error) {
	tpl, err := fasttemplate.NewTemplate(template, "{", "}")
	if err != nil {
		return nil, serr.NewTemplateError("invalid name template", template, serr.TemplateParseFailed, err)
	}
	return &Engine{
		fs:      fsys,
		scanner: scanner,
		policy:  policy,
		tpl:     tpl,
		raw:     template,
		verify:  verify,
	}, nil
}

// Run wipes and recreates outputDir, then copies every admitted file under
// inputDir (within the depth bound, in enumeration order) to
// outputDir/<rendered name>. Any failure aborts the run; files already
// copied are left in place.
func (e *Engine) Run(inputDir string, depth int, outputDir string, startNumber int) ([]types.CopyRecord, error) {
	if err := e.prepareOutput(outputDir); err != nil {
		return nil, err
	}

	entries, err := e.scanner.ListRecursive(inputDir, depth)
	if err != nil {
		return nil, err
	}

	var records []types.CopyRecord
	number := startNumber
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		ext, err := scan.Extension(entry.Path)
		if err != nil {
			return nil, err
		}
		if ext == "" {
			log.Debug("skipping %s: no extension", entry.Path)
			continue
		}
		if !e.policy.Admits(ext) {
			log.Debug("skipping %s: '%s' rejected by %s", entry.Path, ext, e.policy.Active())
			continue
		}

		name, err := e.render(number)
		if err != nil {
			return nil, err
		}
		dest := e.fs.Join(outputDir, name)

		hash, err := e.copyFile(entry.Path, dest)
		if err != nil {
			return nil, err
		}
		log.Debug("copied %s -> %s", entry.Path, dest)

		records = append(records, types.CopyRecord{
			Source: entry.Path,
			Dest:   dest,
			Number: number,
			Hash:   hash,
		})
		number++
	}

	return records, nil
}

// prepareOutput deletes the output directory recursively if it exists, then
// recreates it. The directory is exclusively owned by this run from here
// on.
func (e *Engine) prepareOutput(outputDir string) error {
	if _, err := e.fs.Stat(outputDir); err == nil {
		log.Debug("removing existing output directory %s", outputDir)
		if err := util.RemoveAll(e.fs, outputDir); err != nil {
			return serr.NewFileError("failed to remove output directory", outputDir, serr.OutputPrepareFailed, err)
		}
	} else if !os.IsNotExist(err) {
		return serr.NewFileError("failed to stat output directory", outputDir, serr.OutputPrepareFailed, err)
	}
	if err := e.fs.MkdirAll(outputDir, 0755); err != nil {
		return serr.NewFileError("failed to create output directory", outputDir, serr.OutputPrepareFailed, err)
	}
	return nil
}

// render produces the destination filename for the given number. The only
// placeholder supplied is {number}; anything else in the template is a
// render failure.
func (e *Engine) render(number int) (string, error) {
	name, err := e.tpl.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		if tag != "number" {
			return 0, fmt.Errorf("unknown placeholder %q", tag)
		}
		return io.WriteString(w, strconv.Itoa(number))
	})
	if err != nil {
		return "", serr.NewTemplateError("failed to render name template", e.raw, serr.TemplateRenderFailed, err)
	}
	return name, nil
}

// copyFile copies src's bytes to dest. A pre-existing destination is a
// collision, not an overwrite. Returns the hex xxh3-128 digest of the
// copied bytes when verification is enabled.
func (e *Engine) copyFile(src, dest string) (string, error) {
	if _, err := e.fs.Stat(dest); err == nil {
		return "", serr.NewFileError("destination already exists", dest, serr.DestinationExists, nil)
	} else if !os.IsNotExist(err) {
		return "", serr.NewFileError("failed to stat destination", dest, serr.CopyFailed, err)
	}

	in, err := e.fs.Open(src)
	if err != nil {
		return "", serr.NewFileError("failed to open source file", src, serr.CopyFailed, err)
	}
	defer in.Close()

	out, err := e.fs.Create(dest)
	if err != nil {
		return "", serr.NewFileError("failed to create destination file", dest, serr.CopyFailed, err)
	}

	hasher := xxh3.New()
	if _, err := io.Copy(out, io.TeeReader(in, hasher)); err != nil {
		out.Close()
		return "", serr.NewFileError("failed to copy file", src, serr.CopyFailed, err)
	}
	if err := out.Close(); err != nil {
		return "", serr.NewFileError("failed to close destination file", dest, serr.CopyFailed, err)
	}

	if !e.verify {
		return "", nil
	}
	return e.verifyCopy(src, dest, hasher)
}

// verifyCopy re-reads the copied bytes and compares digests with the
// source.
func (e *Engine) verifyCopy(src, dest string, hasher *xxh3.Hasher) (string, error) {
	want := fmt.Sprintf("%x", hasher.Sum128().Bytes())

	data, err := util.ReadFile(e.fs, dest)
	if err != nil {
		return "", serr.NewFileError("failed to read back copy", dest, serr.CopyFailed, err)
	}
	got := fmt.Sprintf("%x", xxh3.Hash128(data).Bytes())
	if got != want {
		return "", serr.NewFileError(
			fmt.Sprintf("copy verification failed (source %s, got %s, want %s)", src, got, want),
			dest, serr.CopyFailed, nil)
	}
	return got, nil
}
