// Package analyze implements the analyze operation: enumerate a directory
// tree, classify files by extension, and report aggregate counts.
package analyze

import (
	"fmt"
	"io"
	"sort"

	"renum/internal/filter"
	"renum/internal/log"
	"renum/internal/scan"
	"renum/pkg/types"
)

// Engine aggregates per-extension counts over a scanned tree and writes a
// summary report. It performs reads only.
type Engine struct {
	scanner *scan.Scanner
	policy  *filter.Policy
	out     io.Writer
}

// New creates an analyze engine writing its report to out.
func New(scanner *scan.Scanner, policy *filter.Policy, out io.Writer) *Engine {
	return &Engine{
		scanner: scanner,
		policy:  policy,
		out:     out,
	}
}

// Run enumerates dir within the depth bound, counts files per extension,
// prints the summary, and returns the report. Directories and extensionless
// files are excluded from the counts entirely.
func (e *Engine) Run(dir string, depth int) (*types.Report, error) {
	entries, err := e.scanner.ListRecursive(dir, depth)
	if err != nil {
		return nil, err
	}

	report := &types.Report{
		Types:    make(map[string]int),
		ListName: e.policy.Active(),
	}
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		ext, err := scan.Extension(entry.Path)
		if err != nil {
			return nil, err
		}
		if ext == "" {
			continue
		}
		report.FileCount++
		report.Types[ext]++
	}

	for ext, count := range report.Types {
		if e.policy.InActive(ext) {
			report.Matched += count
		}
	}

	log.Debug("analyzed %s: %d file(s), %d type(s)", dir, report.FileCount, len(report.Types))

	e.print(report)
	return report, nil
}

// print writes the report. The wording is a behavioral contract; only the
// breakdown ordering (sorted here for determinism) is implementation
// defined.
func (e *Engine) print(report *types.Report) {
	fmt.Fprintf(e.out, "Detected %d file(s), %d in %s\n", report.FileCount, report.Matched, report.ListName)
	if report.FileCount == 0 {
		return
	}

	exts := make([]string, 0, len(report.Types))
	for ext := range report.Types {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	fmt.Fprintln(e.out, "File type(s):")
	for _, ext := range exts {
		fmt.Fprintf(e.out, "\t%d '%s' file(s)\n", report.Types[ext], ext)
	}
}
