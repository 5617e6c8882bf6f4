// Package reporter renders classifier results to an io.Writer in one of
// several formats.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/filekit-dev/filekit/internal/classify"
	"github.com/filekit-dev/filekit/pkg/fsutil"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// ParseFormat validates a format flag value
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatTable, FormatJSON, FormatYAML, FormatSummary:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Group is one classification bucket in a report.
type Group struct {
	Key   string   `json:"key" yaml:"key"`
	Size  int64    `json:"size,omitempty" yaml:"size,omitempty"`
	Paths []string `json:"paths" yaml:"paths"`
}

// Report is a renderable snapshot of a classification run.
type Report struct {
	Kind       string   `json:"kind" yaml:"kind"`
	Root       string   `json:"root" yaml:"root"`
	Groups     []Group  `json:"groups" yaml:"groups"`
	FilesSeen  int      `json:"files_seen" yaml:"files_seen"`
	Skipped    []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	WastedSize int64    `json:"wasted_size,omitempty" yaml:"wasted_size,omitempty"`
}

// FromDuplicates builds a report from confirmed duplicate sets.
func FromDuplicates(root string, sets []classify.DuplicateSet, scan *classify.ScanReport) *Report {
	r := &Report{Kind: "duplicates", Root: root, WastedSize: classify.WastedBytes(sets)}
	for _, set := range sets {
		r.Groups = append(r.Groups, Group{Key: set.Digest, Size: set.Size, Paths: set.Paths})
	}
	r.addScan(scan)
	return r
}

// FromHashGroups builds a report from a content-hash grouping.
func FromHashGroups(root string, groups classify.HashGroups, scan *classify.ScanReport) *Report {
	r := &Report{Kind: "hash", Root: root}
	for digest, paths := range groups {
		r.Groups = append(r.Groups, Group{Key: digest, Paths: paths})
	}
	r.sortGroups()
	r.addScan(scan)
	return r
}

// FromSizeGroups builds a report from a size grouping.
func FromSizeGroups(root string, groups classify.SizeGroups, scan *classify.ScanReport) *Report {
	r := &Report{Kind: "size", Root: root}
	for size, paths := range groups {
		r.Groups = append(r.Groups, Group{Key: fsutil.HumanSize(size), Size: size, Paths: paths})
	}
	sort.Slice(r.Groups, func(i, j int) bool { return r.Groups[i].Size > r.Groups[j].Size })
	r.addScan(scan)
	return r
}

// FromExtGroups builds a report from an extension grouping.
func FromExtGroups(root string, groups classify.ExtGroups) *Report {
	r := &Report{Kind: "extensions", Root: root}
	for key, names := range groups {
		r.Groups = append(r.Groups, Group{Key: key, Paths: names})
	}
	r.sortGroups()
	return r
}

func (r *Report) sortGroups() {
	sort.Slice(r.Groups, func(i, j int) bool { return r.Groups[i].Key < r.Groups[j].Key })
}

func (r *Report) addScan(scan *classify.ScanReport) {
	if scan == nil {
		return
	}
	r.FilesSeen = scan.FilesSeen
	for _, skip := range scan.Skipped {
		r.Skipped = append(r.Skipped, skip.Error())
	}
}

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Render writes the report in the reporter's format
func (r *Reporter) Render(report *Report) error {
	switch r.format {
	case FormatTable:
		return r.renderTable(report)
	case FormatJSON:
		return r.renderJSON(report)
	case FormatYAML:
		return r.renderYAML(report)
	case FormatSummary:
		return r.renderSummary(report)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) renderSummary(report *Report) error {
	fmt.Fprintln(r.writer, titleStyle.Render(fmt.Sprintf("%s: %s", report.Kind, report.Root)))
	fmt.Fprintf(r.writer, "Groups: %d\n", len(report.Groups))

	for _, group := range report.Groups {
		key := keyStyle.Render(group.Key)
		if group.Size > 0 {
			fmt.Fprintf(r.writer, "  %s (%s): %d files\n", key, sizeStyle.Render(fsutil.HumanSize(group.Size)), len(group.Paths))
		} else {
			fmt.Fprintf(r.writer, "  %s: %d files\n", key, len(group.Paths))
		}
	}

	if report.WastedSize > 0 {
		fmt.Fprintf(r.writer, "\nReclaimable: %s\n", sizeStyle.Render(fsutil.HumanSize(report.WastedSize)))
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintln(r.writer, warnStyle.Render(fmt.Sprintf("Skipped %d unreadable entries", len(report.Skipped))))
	}
	return nil
}

func (r *Reporter) renderTable(report *Report) error {
	fmt.Fprintf(r.writer, "%-36s | %-10s | %s\n", "Key", "Size", "Path")
	fmt.Fprintf(r.writer, "%s\n", divider(80))

	for _, group := range report.Groups {
		size := ""
		if group.Size > 0 {
			size = fsutil.HumanSize(group.Size)
		}
		for _, path := range group.Paths {
			key := group.Key
			if len(key) > 36 {
				key = key[:33] + "..."
			}
			fmt.Fprintf(r.writer, "%-36s | %-10s | %s\n", key, size, path)
		}
	}

	fmt.Fprintf(r.writer, "%s\n", divider(80))
	fmt.Fprintf(r.writer, "Total: %d groups\n", len(report.Groups))
	return nil
}

func (r *Reporter) renderJSON(report *Report) error {
	wrapped := struct {
		Timestamp string `json:"timestamp"`
		*Report
	}{
		Timestamp: time.Now().Format(time.RFC3339),
		Report:    report,
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(wrapped)
}

func (r *Reporter) renderYAML(report *Report) error {
	wrapped := struct {
		Timestamp string  `yaml:"timestamp"`
		Report    *Report `yaml:"report"`
	}{
		Timestamp: time.Now().Format(time.RFC3339),
		Report:    report,
	}

	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(wrapped)
}

// SaveToFile writes the report to a file in the given format
func SaveToFile(report *Report, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return New(file, format).Render(report)
}

func divider(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
