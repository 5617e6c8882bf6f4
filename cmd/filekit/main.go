package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filekit-dev/filekit/internal/classify"
	"github.com/filekit-dev/filekit/internal/config"
	"github.com/filekit-dev/filekit/internal/reporter"
	"github.com/filekit-dev/filekit/pkg/fsutil"
	"github.com/filekit-dev/filekit/pkg/sysutil"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	outputFmt  string
	outputFile string
	apply      bool
	target     string
	onConflict string
	matchStr   string
	replaceStr string
	permanent  bool
	minSize    string
	topN       int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "filekit",
	Short: "File classification and organization toolkit",
	Long: `Filekit groups the files of a directory by content hash, size, or
extension, finds duplicates, and optionally reorganizes, renames, or
soft-deletes files based on the grouping.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var dupsCmd = &cobra.Command{
	Use:   "dups <dir>",
	Short: "Find duplicate files by content",
	Long: `Scans a directory tree and reports sets of byte-identical files,
confirmed by full content digest. Unreadable files are skipped and
listed in the report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cls, err := newClassifier()
		if err != nil {
			return err
		}

		sets, scan, err := cls.FindDuplicates(args[0])
		if err != nil {
			return err
		}

		return render(reporter.FromDuplicates(args[0], sets, scan))
	},
}

var hashesCmd = &cobra.Command{
	Use:   "hashes <dir>",
	Short: "Group files sharing a content digest",
	Long: `Scans a directory tree, hashes every file, and reports groups of two
or more files with the same digest.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cls, err := newClassifier()
		if err != nil {
			return err
		}

		groups, scan, err := cls.GroupByHash(args[0])
		if err != nil {
			return err
		}

		return render(reporter.FromHashGroups(args[0], groups, scan))
	},
}

var sizesCmd = &cobra.Command{
	Use:   "sizes <dir>",
	Short: "Group files sharing a byte size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cls, err := newClassifier()
		if err != nil {
			return err
		}

		groups, scan, err := cls.GroupBySize(args[0])
		if err != nil {
			return err
		}

		return render(reporter.FromSizeGroups(args[0], groups, scan))
	},
}

var extsCmd = &cobra.Command{
	Use:   "exts <dir>",
	Short: "Group the files of a directory by extension",
	Long: `Buckets the immediate children of a directory by lowercased
extension. Does not recurse into subdirectories.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cls, err := newClassifier()
		if err != nil {
			return err
		}

		groups, err := cls.GroupByExtension(args[0])
		if err != nil {
			return err
		}

		return render(reporter.FromExtGroups(args[0], groups))
	},
}

var organizeCmd = &cobra.Command{
	Use:   "organize <dir>",
	Short: "Move files into one subdirectory per extension",
	Long: `Moves each immediate child of a directory into a subdirectory named
after its extension. Without --apply only the planned grouping is
printed. --on-conflict controls what happens when a same-named file
already exists at the destination (overwrite, skip, or error).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cls, err := newClassifier()
		if err != nil {
			return err
		}

		if !apply {
			groups, gerr := cls.GroupByExtension(args[0])
			if gerr != nil {
				return gerr
			}
			return render(reporter.FromExtGroups(args[0], groups))
		}

		groups, report, err := cls.OrganizeByExtension(args[0], target, config.CollisionPolicy(onConflict))
		if err != nil {
			return err
		}

		if rerr := render(reporter.FromExtGroups(args[0], groups)); rerr != nil {
			return rerr
		}
		fmt.Printf("Moved %d, skipped %d, failed %d\n", len(report.Moved), len(report.Skipped), len(report.Failed))
		for _, failed := range report.Failed {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", failed.Source, failed.Err)
		}
		if len(report.Failed) > 0 {
			return fmt.Errorf("%d moves failed", len(report.Failed))
		}
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <dir>",
	Short: "Batch rename files by substring replacement",
	Long: `Renames every file in a directory whose name contains --match,
replacing each occurrence with --replace. Dry-run by default; pass
--apply to perform the renames. Collisions are reported, never
silently overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cls, err := newClassifier()
		if err != nil {
			return err
		}

		ops, err := cls.RenameBatch(args[0], matchStr, replaceStr, !apply)
		if err != nil {
			return err
		}

		failures := 0
		for _, op := range ops {
			switch {
			case op.Err != nil:
				failures++
				fmt.Fprintf(os.Stderr, "skipped: %s: %v\n", op.Old, op.Err)
			case apply:
				fmt.Printf("%s -> %s\n", op.Old, op.New)
			default:
				fmt.Printf("would rename %s -> %s\n", op.Old, op.New)
			}
		}
		if failures > 0 {
			return fmt.Errorf("%d renames not performed", failures)
		}
		return nil
	},
}

var trashCmd = &cobra.Command{
	Use:   "trash <file>...",
	Short: "Soft-delete files into a .trash subdirectory",
	Long: `Moves each file into a .trash directory next to it, renamed with a
timestamp suffix so nothing is ever overwritten. --permanent deletes
outright instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cls, err := newClassifier()
		if err != nil {
			return err
		}

		if permanent {
			failures := 0
			for _, path := range args {
				if rerr := cls.Remove(path); rerr != nil {
					failures++
					fmt.Fprintf(os.Stderr, "%v\n", rerr)
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d deletions failed", failures)
			}
			return nil
		}

		failures := 0
		for _, res := range cls.TrashBatch(args) {
			if res.Err != nil {
				failures++
				fmt.Fprintf(os.Stderr, "%v\n", res.Err)
				continue
			}
			fmt.Printf("%s -> %s\n", res.Path, res.TrashPath)
		}
		if failures > 0 {
			return fmt.Errorf("%d files could not be trashed", failures)
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show file or directory details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := fsutil.Stat(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Name:     %s\n", info.Name)
		fmt.Printf("Path:     %s\n", info.Path)
		fmt.Printf("Size:     %s (%d bytes)\n", info.SizeHuman, info.Size)
		fmt.Printf("Modified: %s\n", info.ModTime.Format("2006-01-02 15:04:05"))

		if info.IsDir {
			stats, derr := fsutil.DirSize(args[0])
			if derr != nil {
				return derr
			}
			fmt.Printf("Contents: %d files, %s\n", stats.FileCount, stats.TotalHuman)
		}
		return nil
	},
}

var largeCmd = &cobra.Command{
	Use:   "large <dir>",
	Short: "List the largest files under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		min, err := fsutil.ParseSize(minSize)
		if err != nil {
			return err
		}

		files, err := fsutil.LargeFiles(args[0], min, topN)
		if err != nil {
			return err
		}

		for _, f := range files {
			fmt.Printf("%-10s  %s\n", f.SizeHuman, f.Path)
		}
		return nil
	},
}

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo [path]",
	Short: "Show host and disk information",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info := sysutil.Info()
		fmt.Printf("OS:       %s/%s\n", info.OS, info.Arch)
		if info.Platform != "" {
			fmt.Printf("Platform: %s %s\n", info.Platform, info.PlatformVersion)
		}
		fmt.Printf("Host:     %s\n", info.Hostname)
		fmt.Printf("CPUs:     %d\n", info.NumCPU)
		fmt.Printf("Runtime:  %s\n", info.GoVersion)

		path := "/"
		if len(args) == 1 {
			path = args[0]
		}
		usage, err := sysutil.DiskUsage(path)
		if err != nil {
			return err
		}
		fmt.Printf("Disk:     %s used of %s (%.1f%%), %s free\n",
			usage.Used, usage.Total, usage.Percent, usage.Free)
		return nil
	},
}

func newClassifier() (*classify.Classifier, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return classify.New(cfg), nil
}

func render(report *reporter.Report) error {
	format, err := reporter.ParseFormat(outputFmt)
	if err != nil {
		return err
	}

	if outputFile != "" {
		return reporter.SaveToFile(report, outputFile, format)
	}
	return reporter.New(os.Stdout, format).Render(report)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "summary", "output format (summary|table|json|yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFile, "output-file", "", "write report to file instead of stdout")

	organizeCmd.Flags().BoolVar(&apply, "apply", false, "perform the moves instead of reporting")
	organizeCmd.Flags().StringVar(&target, "target", "", "target directory (defaults to the source directory)")
	organizeCmd.Flags().StringVar(&onConflict, "on-conflict", string(config.PolicyOverwrite), "collision policy (overwrite|skip|error)")

	renameCmd.Flags().StringVar(&matchStr, "match", "", "substring to match in filenames")
	renameCmd.Flags().StringVar(&replaceStr, "replace", "", "replacement substring")
	renameCmd.Flags().BoolVar(&apply, "apply", false, "perform the renames instead of reporting")
	renameCmd.MarkFlagRequired("match")

	trashCmd.Flags().BoolVar(&permanent, "permanent", false, "delete permanently instead of moving to trash")

	largeCmd.Flags().StringVar(&minSize, "min-size", "100MB", "minimum file size")
	largeCmd.Flags().IntVar(&topN, "top", 10, "number of files to list")

	rootCmd.AddCommand(dupsCmd, hashesCmd, sizesCmd, extsCmd, organizeCmd, renameCmd, trashCmd, infoCmd, largeCmd, sysinfoCmd)
}
