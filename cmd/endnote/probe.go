package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/endnote/parser"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

func (a *app) probeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe [file...]",
		Short: "Report whether files look like EndNote XML",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			return eachInput(cmd, args, func(name string, r io.Reader) error {
				ok, err := parser.IsRecognizedFormat(r)
				if err != nil {
					return errors.Wrap(err, name)
				}
				if ok {
					okColor.Fprintf(w, "%s: recognized\n", name)
				} else {
					failColor.Fprintf(w, "%s: not recognized\n", name)
				}
				return nil
			})
		},
	}
}
