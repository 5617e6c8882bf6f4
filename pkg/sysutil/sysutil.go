// Package sysutil queries host and process state: disk usage, system
// identity, environment, and external commands.
package sysutil

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/filekit-dev/filekit/pkg/fsutil"
)

// DiskStats describes usage of the filesystem containing a path.
type DiskStats struct {
	Path       string
	TotalBytes uint64
	UsedBytes  uint64
	FreeBytes  uint64
	Total      string
	Used       string
	Free       string
	Percent    float64
}

// DiskUsage returns usage of the filesystem containing path
func DiskUsage(path string) (*DiskStats, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, err
	}

	return &DiskStats{
		Path:       usage.Path,
		TotalBytes: usage.Total,
		UsedBytes:  usage.Used,
		FreeBytes:  usage.Free,
		Total:      fsutil.HumanSize(int64(usage.Total)),
		Used:       fsutil.HumanSize(int64(usage.Used)),
		Free:       fsutil.HumanSize(int64(usage.Free)),
		Percent:    usage.UsedPercent,
	}, nil
}

// SystemInfo identifies the host and runtime.
type SystemInfo struct {
	OS              string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	Arch            string
	Hostname        string
	NumCPU          int
	GoVersion       string
}

// Info returns host identity and Go runtime details. Host queries that
// fail leave their fields empty rather than failing the whole call.
func Info() *SystemInfo {
	info := &SystemInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	if hi, err := host.Info(); err == nil {
		info.Hostname = hi.Hostname
		info.Platform = hi.Platform
		info.PlatformVersion = hi.PlatformVersion
		info.KernelVersion = hi.KernelVersion
	} else if name, herr := os.Hostname(); herr == nil {
		info.Hostname = name
	}

	return info
}

// Env returns an environment variable, or fallback when unset.
func Env(name, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

// EnvMap returns all environment variables as a map.
func EnvMap() map[string]string {
	env := os.Environ()
	vars := make(map[string]string, len(env))
	for _, kv := range env {
		if key, value, ok := strings.Cut(kv, "="); ok {
			vars[key] = value
		}
	}
	return vars
}

// CommandResult captures the outcome of an external command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success reports whether the command ran and exited zero.
func (r *CommandResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// RunCommand executes a command and captures its output. Cancellation
// and timeouts come from the context. A non-zero exit is reported via
// ExitCode, not Err.
func RunCommand(ctx context.Context, name string, args ...string) *CommandResult {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &CommandResult{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.Err = err
		}
	}
	return result
}

// CurrentDir returns the process working directory, or "" if unknown.
func CurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}

// HomeDir returns the current user's home directory, or "" if unknown.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// TempDir returns the system temporary directory.
func TempDir() string {
	return os.TempDir()
}

// CreateTempFile creates an empty temp file with the given name pattern
// and returns its path.
func CreateTempFile(pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
