package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <input>",
		Short: "Print the header and table of contents of an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(cmd, args[0])
		},
	}
}

func (a *app) list(cmd *cobra.Command, input string) error {
	f, err := a.open(input)
	if err != nil {
		return err
	}
	entries, err := f.Extract()
	if err != nil {
		return err
	}

	archive := f.Archive()
	hdr := archive.Header
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "compression:     %s\n", f.Compression())
	fmt.Fprintf(out, "byte order:      %s\n", hdr.ByteOrder)
	fmt.Fprintf(out, "version:         0x%04x\n", hdr.Version)
	fmt.Fprintf(out, "file size:       %d\n", hdr.FileSize)
	fmt.Fprintf(out, "data offset:     0x%x\n", hdr.DataOffset)
	fmt.Fprintf(out, "hash multiplier: 0x%x\n", archive.FileTable.HashMultiplier)
	fmt.Fprintf(out, "files:           %d\n", archive.Len())
	if len(entries) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Name", "Size", "Attributes", "Hash", "Digest"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for i, e := range entries {
		node := archive.FileTable.Nodes[i]
		table.Append([]string{
			strconv.Itoa(i),
			e.Name,
			strconv.Itoa(e.Size()),
			fmt.Sprintf("0x%08x", node.Attributes),
			fmt.Sprintf("0x%08x", node.NameHash),
			e.Digest().String(),
		})
	}
	table.Render()
	return nil
}
