package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andaru/endnote/inspect"
)

func (a *app) inspectCommand() *cobra.Command {
	var verify bool
	c := &cobra.Command{
		Use:   "inspect [file...]",
		Short: "Summarize the records of EndNote XML files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			return eachInput(cmd, args, func(name string, r io.Reader) error {
				data, err := io.ReadAll(r)
				if err != nil {
					return errors.Wrap(err, name)
				}
				fmt.Fprintf(w, "%s:\n", name)
				if !verify {
					s, err := inspect.Summarize(bytes.NewReader(data))
					if err != nil {
						return errors.Wrap(err, name)
					}
					fmt.Fprint(w, s)
					return nil
				}
				s, entries, err := inspect.Verify(cmd.Context(), data, a.prefs.ParserOptions()...)
				if s != nil {
					fmt.Fprint(w, s)
				}
				if err != nil {
					failColor.Fprintf(w, "verify failed: %v\n", err)
					return errors.Wrap(err, name)
				}
				okColor.Fprintf(w, "verified: %d entries\n", len(entries))
				return nil
			})
		},
	}
	c.Flags().BoolVar(&verify, "verify", false, "also parse with the streaming parser and compare entry counts")
	return c
}
