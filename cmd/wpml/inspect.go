package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reoring/wpml"
	"github.com/reoring/wpml/action"
	"github.com/reoring/wpml/model"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect MISSION",
		Short: "Validate a KMZ or KML mission and print a summary",
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
			summarize(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}

func summarize(w io.Writer, doc model.Document) {
	drone := "unspecified"
	if doc.Mission.Drone != nil {
		drone = doc.Mission.Drone.Model.String()
	}
	counts := map[action.Kind]int{}
	groups := 0
	for _, wp := range doc.Waypoints {
		if wp.Group == nil {
			continue
		}
		groups++
		for _, act := range wp.Group.Actions {
			counts[act.Kind()]++
		}
	}
	fmt.Fprintf(w, "author:     %s\n", doc.Author)
	fmt.Fprintf(w, "drone:      %s\n", drone)
	fmt.Fprintf(w, "finish:     %s\n", doc.Mission.Finish)
	fmt.Fprintf(w, "rc lost:    %s\n", doc.Mission.RCLost)
	fmt.Fprintf(w, "speed:      %s m/s\n", strconv.FormatFloat(doc.AutoFlightSpeed, 'f', -1, 64))
	fmt.Fprintf(w, "waypoints:  %d\n", len(doc.Waypoints))
	fmt.Fprintf(w, "groups:     %d\n", groups)

	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-20s %d\n", k, counts[action.Kind(k)])
	}
}

// report prints every issue of err and returns a short error for the exit
// status. Other errors pass through unchanged.
func (a *app) report(cmd *cobra.Command, source string, err error) error {
	iss, ok := wpml.AsIssues(err)
	if !ok {
		return fmt.Errorf("%s: %w", source, err)
	}
	for _, it := range iss {
		a.log.Debug().Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", it.Path, it.Code, it.Message)
	}
	return fmt.Errorf("%s: %d validation issue(s)", source, len(iss))
}
