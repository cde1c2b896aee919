package main

import (
	"fmt"

	"github.com/cheggaaa/pb"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/meigma/sarc"
)

func newExtractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <input> <output_dir>",
		Short: "Write every file in an archive to a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.extract(cmd, args[0], args[1])
		},
	}
	addExtractFlags(cmd.Flags())
	return cmd
}

func addExtractFlags(fs *pflag.FlagSet) {
	fs.IntP(keyWorkers, "w", 0, "parallel writers (0 = GOMAXPROCS, negative = serial)")
	fs.Bool(keyOverwrite, true, "replace files that already exist")
	fs.Bool(keyProgress, false, "show a progress bar on stderr")
}

func (a *app) extract(cmd *cobra.Command, input, outDir string) error {
	f, err := a.open(input)
	if err != nil {
		return err
	}
	archive := f.Archive()
	a.logger.Info("archive loaded",
		"path", input,
		"compression", f.Compression(),
		"files", archive.Len())

	opts := []sarc.CopyOption{
		sarc.CopyWithWorkers(a.v.GetInt(keyWorkers)),
		sarc.CopyWithOverwrite(a.v.GetBool(keyOverwrite)),
	}

	var bar *pb.ProgressBar
	if a.v.GetBool(keyProgress) && archive.Len() > 0 {
		bar = pb.New(archive.Len())
		bar.Output = cmd.ErrOrStderr()
		bar.Start()
		opts = append(opts, sarc.CopyWithProgress(func(sarc.ProgressEvent) {
			bar.Increment()
		}))
	}

	stats, err := f.CopyTo(outDir, opts...)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range archive.NameTable.Names {
		fmt.Fprintln(out, name)
	}
	a.logger.Info("extraction complete",
		"dest", outDir,
		"written", stats.Processed,
		"skipped", stats.Skipped,
		"bytes", stats.TotalBytes)
	return nil
}
