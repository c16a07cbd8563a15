package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arko-chat/webshare/internal/bridge"
	"github.com/arko-chat/webshare/internal/config"
	"github.com/arko-chat/webshare/internal/logger"
	"github.com/arko-chat/webshare/internal/sharesheet"
	"github.com/arko-chat/webshare/internal/webshare"
)

type shareFlags struct {
	title string
	text  string
	url   string
	base  string
	files []string
}

// NewRootCommand builds the CLI. Commands that need a window are passed
// in by the binary so this package stays free of cgo.
func NewRootCommand(extra ...func(verbose *bool) *cobra.Command) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "webshare",
		Short:         "navigator.share for app shells",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable debug logging")

	cmd.AddCommand(
		newShareCommand(&verbose),
		newCheckCommand(),
	)
	for _, newCmd := range extra {
		cmd.AddCommand(newCmd(&verbose))
	}
	return cmd
}

// LoadConfig loads the user config and builds the logger for it.
func LoadConfig(verbose bool) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, logger.New(os.Stderr, cfg.LogLevel), nil
}

func addShareFlags(cmd *cobra.Command, f *shareFlags) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Title to share")
	cmd.Flags().StringVarP(&f.text, "text", "m", "", "Text to share")
	cmd.Flags().StringVarP(&f.url, "url", "u", "", "URL to share")
	cmd.Flags().StringVar(&f.base, "base", "", "Base location relative URLs resolve against")
	cmd.Flags().StringSliceVar(&f.files, "file", nil, "File to share (not supported, always rejected)")
	cmd.Flags().SortFlags = false
}

// payload only sets members whose flags were given, so an explicit empty
// value is rejected like an empty member would be.
func (f *shareFlags) payload(cmd *cobra.Command) map[string]any {
	data := map[string]any{}
	if cmd.Flags().Changed("title") {
		data["title"] = f.title
	}
	if cmd.Flags().Changed("text") {
		data["text"] = f.text
	}
	if cmd.Flags().Changed("url") {
		data["url"] = f.url
	}
	if cmd.Flags().Changed("file") {
		files := make([]any, len(f.files))
		for i, name := range f.files {
			files[i] = name
		}
		data["files"] = files
	}
	return data
}

func (f *shareFlags) options() ([]webshare.Option, error) {
	if f.base == "" {
		return nil, nil
	}
	base, err := webshare.ParseBase(f.base)
	if err != nil {
		return nil, fmt.Errorf("invalid --base: %w", err)
	}
	return []webshare.Option{webshare.WithBase(base)}, nil
}

func newShareCommand(verbose *bool) *cobra.Command {
	var f shareFlags
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share through the desktop share plugin",
		Example: `  webshare share --text "hello"
  webshare share --title Docs --url /guide --base https://example.com/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, slogger, err := LoadConfig(*verbose)
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			opts = append(opts, webshare.WithLogger(slogger))

			reg := bridge.NewRegistry()
			reg.MustRegister(webshare.Target, sharesheet.New(slogger))
			return share(cmd.Context(), webshare.New(reg, opts...), f.payload(cmd), cmd.OutOrStdout())
		},
	}
	addShareFlags(cmd, &f)
	return cmd
}

func share(ctx context.Context, v *webshare.Validator, data map[string]any, out io.Writer) error {
	if _, err := v.Share(data).Wait(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "shared")
	return nil
}

func newCheckCommand() *cobra.Command {
	var f shareFlags
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a share payload and print what would be dispatched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			return check(webshare.New(nil, opts...), f.payload(cmd), cmd.OutOrStdout())
		},
	}
	addShareFlags(cmd, &f)
	return cmd
}

func check(v *webshare.Validator, data map[string]any, out io.Writer) error {
	normalized, err := v.Normalize(data)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(normalized)
}
