package main

import (
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andaru/endnote/bibtex"
	"github.com/andaru/endnote/config"
	"github.com/andaru/endnote/entry"
	"github.com/andaru/endnote/parser"
)

func (a *app) convertCommand() *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Convert EndNote XML to BibTeX or YAML",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var all []*entry.Entry
			err := eachInput(cmd, args, func(name string, r io.Reader) error {
				entries, err := parser.Parse(cmd.Context(), r, a.prefs.ParserOptions()...)
				if err != nil {
					return errors.Wrap(err, name)
				}
				glog.Infof("%s: %d entries", name, len(entries))
				all = append(all, entries...)
				return nil
			})
			if err != nil {
				return err
			}

			if output == "" {
				return writeEntries(cmd.OutOrStdout(), a.prefs.Format, all)
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.WithStack(err)
			}
			if err := writeEntries(f, a.prefs.Format, all); err != nil {
				f.Close()
				return err
			}
			return errors.WithStack(f.Close())
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of standard output")
	c.Flags().Var(&a.prefs.Format, "format", "output format: bibtex or yaml")
	c.Flags().StringVar(&a.prefs.KeywordSeparator, "keyword-separator", a.prefs.KeywordSeparator, "separator joining each entry's keywords")
	return c
}

func writeEntries(w io.Writer, format config.Format, entries []*entry.Entry) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(entries); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	default:
		return bibtex.Write(w, entries)
	}
}
