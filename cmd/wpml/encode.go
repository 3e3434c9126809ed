package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	var out string
	var touch bool
	cmd := &cobra.Command{
		Use:   "encode TREE",
		Short: "Encode a YAML or JSON mission tree as KMZ or KML",
		Long: `Encode reads a mission tree as written by "wpml decode", validates it and
writes the mission. A .kmz output is zipped; any other output is plain KML.
Without -o the KML text goes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := readTree(args[0], a.cfg.Format)
			if err != nil {
				return a.report(cmd, args[0], err)
			}
			doc, err := a.codec.DecodeDocument(tree)
			if err != nil {
				return a.report(cmd, args[0], err)
			}
			if doc.Author == "" {
				doc.Author = a.cfg.Author
			}
			if touch {
				doc = doc.Touch(a.now())
			}
			text, err := a.codec.Marshal(doc)
			if err != nil {
				return a.report(cmd, args[0], err)
			}
			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			if err := writeMission(out, text); err != nil {
				return err
			}
			a.log.Info().Str("output", out).Int("waypoints", len(doc.Waypoints)).Msg("mission encoded")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.kmz or .kml)")
	cmd.Flags().BoolVar(&touch, "touch", false, "set the update time to now")
	return cmd
}
