package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"docfs/internal/config"
	"docfs/internal/filesystem"
	"docfs/internal/logging"
	"docfs/internal/model"
	"docfs/internal/storage"
)

var errWriteFailed = errors.New("write failed")

func main() {
	if err := newRootCmd(fromEnv).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "docfs: %v\n", err)
		os.Exit(1)
	}
}

// fsFactory builds the FileSystem used by every subcommand.
type fsFactory func(logLevel string, stderr io.Writer) (filesystem.FileSystem, error)

func fromEnv(logLevel string, stderr io.Writer) (filesystem.FileSystem, error) {
	cfg := config.Load()
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	backend, err := storage.New(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return filesystem.NewFileSystem(backend, logging.New(logLevel, stderr)), nil
}

func newRootCmd(factory fsFactory) *cobra.Command {
	var (
		logLevel string
		fs       filesystem.FileSystem
	)

	cmd := &cobra.Command{
		Use:           "docfs",
		Short:         "Validated file operations on local disk or S3-compatible storage",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			fs, err = factory(logLevel, cmd.ErrOrStderr())
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error), defaults to LOG_LEVEL")

	get := func() filesystem.FileSystem { return fs }
	cmd.AddCommand(
		newWriteCmd(get),
		newListCmd(get),
		newExistsCmd(get),
		newRemoveCmd(get),
		newCatCmd(get),
	)
	return cmd
}

func newWriteCmd(fs func() filesystem.FileSystem) *cobra.Command {
	var (
		name string
		from string
	)
	cmd := &cobra.Command{
		Use:   "write <directory>",
		Short: "Write a document into a directory, replacing any file with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readSource(cmd.InOrStdin(), from)
			if err != nil {
				return err
			}
			doc, err := model.NewDocument(name, content)
			if err != nil {
				doc = model.NullDocument()
			}

			res := fs().Write(cmd.Context(), args[0], doc)
			if res.HadError() {
				for _, msg := range res.ErrorMessages {
					fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}
				return errWriteFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "file name inside the directory")
	cmd.Flags().StringVarP(&from, "from", "f", "-", "local file to upload, - for stdin")
	return cmd
}

func readSource(stdin io.Reader, from string) ([]byte, error) {
	if from == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(from)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", from, err)
	}
	return data, nil
}

func newListCmd(fs func() filesystem.FileSystem) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "ls <directory>",
		Aliases: []string{"list"},
		Short:   "List the entries directly inside a directory",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := fs().List(cmd.Context(), args[0])
			return printEntries(cmd.OutOrStdout(), output, args[0], entries)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

type listing struct {
	Path    string   `json:"path" yaml:"path"`
	Entries []string `json:"entries" yaml:"entries"`
}

func printEntries(w io.Writer, format, path string, entries []string) error {
	switch strings.ToLower(format) {
	case "text", "":
		for _, e := range entries {
			fmt.Fprintln(w, e)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listing{Path: path, Entries: entries})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(listing{Path: path, Entries: entries}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func newExistsCmd(fs func() filesystem.FileSystem) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "exists <path>",
		Short: "Report whether a file or directory exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := fs().Exists(cmd.Context(), args[0])
			if quiet {
				if !ok {
					return fmt.Errorf("%s does not exist", args[0])
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing, fail when the path is missing")
	return cmd
}

func newRemoveCmd(fs func() filesystem.FileSystem) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <path>",
		Aliases: []string{"delete"},
		Short:   "Remove a file or directory tree; missing paths are ignored",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs().Delete(cmd.Context(), args[0])
			return nil
		},
	}
}

func newCatCmd(fs func() filesystem.FileSystem) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a document's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := fs().GetDocument(cmd.Context(), args[0])
			if doc.IsNull() {
				return fmt.Errorf("document not found: %s", args[0])
			}
			_, err := cmd.OutOrStdout().Write(doc.Bytes())
			return err
		},
	}
}
