package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/e11jah/trie/internal/config"
	"github.com/e11jah/trie/internal/dictionary"
	"github.com/e11jah/trie/prompt"
)

const (
	quitToken    = ":q"
	maxPrefixLen = 256
)

type app struct {
	configPath string
	cfg        *config.Config
	log        zerolog.Logger
	dict       *dictionary.Dictionary
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "autocomplete",
		Short:        "Prefix completion over a dictionary",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to config file")
	flags.String("dict", "", "dictionary file, one key<TAB>description per line")
	flags.String("keyset", "", "built-in key set to load instead of a file")
	flags.Int("limit", 20, "maximum completions to print, 0 for all")
	flags.Int("indent", 0, "prompt indentation in tabs")
	flags.String("log-level", "info", "log level")

	root.AddCommand(
		newCompleteCmd(a),
		newReplCmd(a),
		newRemoveCmd(a),
		newKeysetsCmd(),
	)
	return root
}

// setup loads the configuration and the dictionary. It runs as PreRunE of
// the commands that work on a dictionary only.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, err := cfg.Log.ParseLevel()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		With().Timestamp().Logger().Level(level)
	a.dict = dictionary.New(a.log)

	if cfg.Dictionary.Keyset != "" {
		err = a.dict.LoadKeyset(cfg.Dictionary.Keyset)
	} else {
		err = a.dict.LoadFile(cfg.Dictionary.Path)
	}
	if err != nil {
		return err
	}

	a.log.Info().Int("entries", a.dict.Len()).Msg("dictionary ready")
	return nil
}

func (a *app) printCompletions(w io.Writer, prefix string) error {
	entries := a.dict.Complete(prefix, a.cfg.Complete.Limit)
	if len(entries) == 0 {
		_, err := fmt.Fprintf(w, "no entries start with %q\n", prefix)
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Key, e.Description); err != nil {
			return err
		}
	}
	return nil
}

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <prefix>",
		Short:   "Print the entries starting with prefix in key order",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printCompletions(cmd.OutOrStdout(), args[0])
		},
	}
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Short:   "Read prefixes interactively and print their completions",
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := prompt.New(cmd.InOrStdin(), out)
			req := prompt.Request[string]{
				Message:        fmt.Sprintf("prefix (%s to quit): ", quitToken),
				Indent:         a.cfg.Prompt.Indent,
				Validate:       func(s string) bool { return len(s) <= maxPrefixLen },
				InvalidMessage: fmt.Sprintf("Prefix must be at most %d bytes.\n", maxPrefixLen),
				FormatMessage:  "Enter exactly one word.\n",
			}

			for {
				prefix, err := prompt.Read(p, req)
				if errors.Is(err, prompt.ErrNoInput) {
					return nil
				}
				if err != nil {
					return err
				}
				if prefix == quitToken {
					return nil
				}

				a.log.Debug().Str("prefix", prefix).Bool("exists", a.dict.HasPrefix(prefix)).Msg("completing")
				if err := a.printCompletions(out, prefix); err != nil {
					return err
				}
			}
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <key>...",
		Short:   "Remove keys from the loaded dictionary and report the result",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, key := range args {
				status := "not found"
				if a.dict.Remove(key) {
					status = "removed"
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", key, status); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(out, "%d entries left\n", a.dict.Len())
			return err
		},
	}
}

func newKeysetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keysets",
		Short: "List the built-in key sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range dictionary.Keysets() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
