package reporter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/filekit-dev/filekit/internal/classify"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "json", "yaml", "summary"} {
		format, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(s), format)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestFromDuplicates(t *testing.T) {
	sets := []classify.DuplicateSet{
		{Digest: "aaa", Size: 100, Paths: []string{"/x/a", "/x/b"}},
		{Digest: "bbb", Size: 50, Paths: []string{"/x/c", "/x/d", "/x/e"}},
	}
	scan := &classify.ScanReport{FilesSeen: 7}

	report := FromDuplicates("/x", sets, scan)

	assert.Equal(t, "duplicates", report.Kind)
	assert.Equal(t, "/x", report.Root)
	require.Len(t, report.Groups, 2)
	assert.Equal(t, "aaa", report.Groups[0].Key)
	assert.Equal(t, int64(100), report.Groups[0].Size)
	assert.Equal(t, 7, report.FilesSeen)
	// one redundant copy of 100 plus two of 50
	assert.Equal(t, int64(200), report.WastedSize)
}

func TestFromHashGroupsSorted(t *testing.T) {
	groups := classify.HashGroups{
		"zzz": {"/a"},
		"aaa": {"/b"},
		"mmm": {"/c"},
	}

	report := FromHashGroups("/root", groups, nil)

	require.Len(t, report.Groups, 3)
	assert.Equal(t, "aaa", report.Groups[0].Key)
	assert.Equal(t, "mmm", report.Groups[1].Key)
	assert.Equal(t, "zzz", report.Groups[2].Key)
}

func TestFromSizeGroupsLargestFirst(t *testing.T) {
	groups := classify.SizeGroups{
		100:  {"/a", "/b"},
		5000: {"/c", "/d"},
	}

	report := FromSizeGroups("/root", groups, nil)

	require.Len(t, report.Groups, 2)
	assert.Equal(t, int64(5000), report.Groups[0].Size)
	assert.Equal(t, int64(100), report.Groups[1].Size)
	assert.Equal(t, "4.9 KB", report.Groups[0].Key)
}

func TestFromExtGroups(t *testing.T) {
	groups := classify.ExtGroups{
		"txt":              {"a.txt", "b.txt"},
		classify.NoExtension: {"Makefile"},
	}

	report := FromExtGroups("/root", groups)

	assert.Equal(t, "extensions", report.Kind)
	require.Len(t, report.Groups, 2)
	assert.Equal(t, classify.NoExtension, report.Groups[0].Key)
	assert.Equal(t, "txt", report.Groups[1].Key)
}

func TestReportCarriesSkippedErrors(t *testing.T) {
	scan := &classify.ScanReport{
		FilesSeen: 3,
		Skipped: []*classify.ClassifyError{
			{Path: "/p/secret", Kind: classify.KindPermissionDenied, Err: os.ErrPermission},
		},
	}

	report := FromHashGroups("/p", classify.HashGroups{}, scan)

	require.Len(t, report.Skipped, 1)
	assert.Contains(t, report.Skipped[0], "/p/secret")
	assert.Contains(t, report.Skipped[0], "Permission denied")
}

func sampleReport() *Report {
	return &Report{
		Kind: "duplicates",
		Root: "/data",
		Groups: []Group{
			{Key: "d41d8cd98f00b204e9800998ecf8427e", Size: 2048, Paths: []string{"/data/a.bin", "/data/b.bin"}},
		},
		FilesSeen:  4,
		WastedSize: 2048,
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatSummary).Render(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "duplicates: /data")
	assert.Contains(t, out, "Groups: 1")
	assert.Contains(t, out, "2 files")
	assert.Contains(t, out, "Reclaimable")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatTable).Render(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "/data/a.bin")
	assert.Contains(t, out, "/data/b.bin")
	assert.Contains(t, out, "2.0 KB")
	assert.Contains(t, out, "Total: 1 groups")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Render(sampleReport()))

	var decoded struct {
		Timestamp string `json:"timestamp"`
		Kind      string `json:"kind"`
		Groups    []struct {
			Key   string   `json:"key"`
			Paths []string `json:"paths"`
		} `json:"groups"`
		FilesSeen int `json:"files_seen"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.NotEmpty(t, decoded.Timestamp)
	assert.Equal(t, "duplicates", decoded.Kind)
	require.Len(t, decoded.Groups, 1)
	assert.Len(t, decoded.Groups[0].Paths, 2)
	assert.Equal(t, 4, decoded.FilesSeen)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatYAML).Render(sampleReport()))

	var decoded struct {
		Timestamp string `yaml:"timestamp"`
		Report    struct {
			Kind      string `yaml:"kind"`
			FilesSeen int    `yaml:"files_seen"`
		} `yaml:"report"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.NotEmpty(t, decoded.Timestamp)
	assert.Equal(t, "duplicates", decoded.Report.Kind)
	assert.Equal(t, 4, decoded.Report.FilesSeen)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, OutputFormat("csv")).Render(sampleReport())
	assert.Error(t, err)
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, SaveToFile(sampleReport(), path, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"kind": "duplicates"`))
}
