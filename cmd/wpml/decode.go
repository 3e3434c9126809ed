package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "decode MISSION",
		Short: "Decode a KMZ or KML mission into a YAML or JSON tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readMission(args[0])
			if err != nil {
				return err
			}
			doc, err := a.codec.Unmarshal(text)
			if err != nil {
				return a.report(cmd, args[0], err)
			}
			tree, err := a.codec.EncodeDocument(doc)
			if err != nil {
				return a.report(cmd, args[0], err)
			}
			data, err := marshalTree(tree, treeFormat(out, a.cfg.Format))
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			a.log.Debug().Str("output", out).Msg("writing tree")
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file; the extension picks yaml or json")
	return cmd
}
