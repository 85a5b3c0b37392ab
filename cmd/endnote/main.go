// Command endnote converts EndNote XML exports to BibTeX or YAML.
//
// Usage:
//
//	endnote convert [--format bibtex|yaml] [--keyword-separator SEP] [--output FILE] [FILE...]
//	endnote probe FILE...
//	endnote inspect [--verify] [FILE...]
//
// Files default to standard input. Preferences may be read from a YAML
// file given with --config; flags override them. glog flags such as
// --v and --logtostderr control logging.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/endnote/config"
)

// app is the state shared by all subcommands
type app struct {
	configPath string
	prefs      config.Preferences
}

func newRootCommand() *cobra.Command {
	a := &app{prefs: config.Default()}
	root := &cobra.Command{
		Use:           "endnote",
		Short:         "Convert EndNote XML libraries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadPreferences(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML preferences file")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(a.convertCommand(), a.probeCommand(), a.inspectCommand())
	return root
}

// loadPreferences reads the preferences file, if any. Flags set on the
// command line take precedence over the file.
func (a *app) loadPreferences(cmd *cobra.Command) error {
	if a.configPath != "" {
		prefs, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("keyword-separator") {
			prefs.KeywordSeparator = a.prefs.KeywordSeparator
		}
		if flags.Changed("format") {
			prefs.Format = a.prefs.Format
		}
		a.prefs = prefs
	}
	if a.prefs.Verbosity > 0 && !cmd.Flags().Changed("v") {
		if err := flag.Set("v", strconv.Itoa(a.prefs.Verbosity)); err != nil {
			return errors.Wrap(err, "set log verbosity")
		}
	}
	glog.V(1).Infof("preferences: %+v", a.prefs)
	return nil
}

// eachInput calls fn for every named file, or for standard input when
// no files are given.
func eachInput(cmd *cobra.Command, args []string, fn func(name string, r io.Reader) error) error {
	if len(args) == 0 {
		return fn("<stdin>", cmd.InOrStdin())
	}
	for _, name := range args {
		if err := openAndCall(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func openAndCall(name string, fn func(name string, r io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return fn(name, f)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		glog.V(1).Infof("%+v", err)
		fmt.Fprintf(os.Stderr, "endnote: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
