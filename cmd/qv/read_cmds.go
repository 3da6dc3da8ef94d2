package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quiverfmt/quiver"
)

var lsCmd = &cobra.Command{
	Use:   "ls FILE",
	Short: "List the tags in a Quiver file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := quiver.Open(args[0], quiver.ModeRead)
		if err != nil {
			return err
		}
		tags := s.Tags()
		if len(tags) == 0 {
			fmt.Fprintf(os.Stderr, "no tags in %s\n", args[0])
			return nil
		}
		for _, tag := range tags {
			fmt.Println(tag)
		}
		return nil
	},
}

var extractDir string

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Extract every structure to <tag>.pdb, skipping existing files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := quiver.ExtractAll(args[0], extractDir)
		for _, path := range written {
			fmt.Println(path)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "extracted %d structure(s)\n", len(written))
		return nil
	},
}

var extractTagsDir string

var extractTagsCmd = &cobra.Command{
	Use:   "extract-tags FILE [TAG...]",
	Short: "Extract selected structures; tags from arguments or stdin",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := args[1:]
		stdinTags, err := readStdinTags()
		if err != nil {
			return err
		}
		tags = append(tags, stdinTags...)
		if len(quiver.CleanTags(tags)) == 0 {
			return errors.New("no tags provided, pass them as arguments or pipe them on stdin")
		}
		written, missing, err := quiver.ExtractSelected(args[0], tags, extractTagsDir)
		for _, path := range written {
			fmt.Println(path)
		}
		for _, tag := range missing {
			fmt.Fprintf(os.Stderr, "warning: tag %q not in %s, skipping\n", tag, args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "extracted %d structure(s) to %s, %d tag(s) not found\n",
			len(written), extractTagsDir, len(missing))
		return nil
	},
}

var sliceCmd = &cobra.Command{
	Use:   "slice FILE [TAG...]",
	Short: "Write the records for selected tags to stdout as Quiver text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags := quiver.CleanTags(args[1:])
		if len(tags) == 0 {
			stdinTags, err := readStdinTags()
			if err != nil {
				return err
			}
			tags = quiver.CleanTags(stdinTags)
		}
		if len(tags) == 0 {
			return errors.New("no tags provided, pass them as arguments or pipe them on stdin")
		}
		text, missing, err := quiver.Slice(args[0], tags)
		for _, tag := range missing {
			fmt.Fprintf(os.Stderr, "warning: tag %q not in %s\n", tag, args[0])
		}
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractDir, "output-dir", "o", ".", "directory for extracted .pdb files")
	extractTagsCmd.Flags().StringVarP(&extractTagsDir, "output-dir", "o", ".", "directory for extracted .pdb files")
}
