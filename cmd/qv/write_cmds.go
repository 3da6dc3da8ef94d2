package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quiverfmt/quiver"
)

var (
	splitDir    string
	splitPrefix string
)

var splitCmd = &cobra.Command{
	Use:   "split FILE NTAGS",
	Short: "Split a Quiver file into shards of NTAGS structures each",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nTags, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("NTAGS must be an integer, got %q", args[1])
		}
		s, err := quiver.Open(args[0], quiver.ModeRead)
		if err != nil {
			return err
		}
		prefix := splitPrefix
		if prefix == "" {
			base := filepath.Base(args[0])
			prefix = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if err := s.Split(nTags, splitDir, prefix); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote shards to %s with prefix %q\n", splitDir, prefix)
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename FILE [NEWTAG...]",
	Short: "Rename all tags in place; new tags from arguments or stdin",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		newTags := quiver.CleanTags(args[1:])
		if len(newTags) == 0 {
			stdinTags, err := readStdinTags()
			if err != nil {
				return err
			}
			newTags = quiver.CleanTags(stdinTags)
		}
		if len(newTags) == 0 {
			return errors.New("no replacement tags provided, pass them as arguments or pipe them on stdin")
		}
		if err := quiver.RenameTags(args[0], newTags); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "renamed %d tag(s) in %s\n", len(newTags), args[0])
		return nil
	},
}

var scorefileCmd = &cobra.Command{
	Use:   "scorefile FILE",
	Short: "Export the score markers of a Quiver file as a tab-separated table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, err := quiver.ExportScores(args[0])
		if err != nil {
			return err
		}
		fmt.Println(outPath)
		return nil
	},
}

var frompdbsCmd = &cobra.Command{
	Use:   "frompdbs PDB...",
	Short: "Pack PDB files into Quiver text on stdout",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := quiver.FromPDBFiles(args)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	splitCmd.Flags().StringVarP(&splitDir, "output-dir", "d", ".", "directory for shard files")
	splitCmd.Flags().StringVarP(&splitPrefix, "prefix", "p", "", "shard file prefix (default: input file stem)")
}
