package main

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/wpml/action"
	"github.com/reoring/wpml/internal/config"
	"github.com/reoring/wpml/markup"
	"github.com/reoring/wpml/model"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v     *viper.Viper
	cfg   config.Config
	log   zerolog.Logger
	codec *model.Codec
	now   func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), now: time.Now}
	var cfgFile, envFile string

	root := &cobra.Command{
		Use:           "wpml",
		Short:         "Convert and validate DJI waypoint missions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, cfgFile, envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, a.v.GetBool("verbose"))
			a.codec = model.NewCodec(action.NewRegistry().Freeze(), markup.WithIndent(cfg.Indent))
			a.log.Debug().Str("format", cfg.Format).Str("config", cfgFile).Msg("configuration loaded")
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml or json)")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with WPML_ settings (default .env if present)")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("format", "", "tree format: yaml or json")
	root.PersistentFlags().String("author", "", "author written into encoded missions without one")
	bind(a.v, root, "verbose", "format", "author")

	root.AddCommand(newEncodeCmd(a), newDecodeCmd(a), newInspectCmd(a), newKindsCmd(a))
	return root
}

func bind(v *viper.Viper, cmd *cobra.Command, names ...string) {
	for _, n := range names {
		// Lookup only fails for undefined flags, all of which are declared above.
		_ = v.BindPFlag(n, cmd.PersistentFlags().Lookup(n))
	}
}

func newLogger(w io.Writer, level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(lvl).With().Timestamp().Logger()
}
