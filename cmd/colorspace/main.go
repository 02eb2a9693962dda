package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/colorspace"
	"github.com/kovidgoyal/colorspace/palettes"
)

var _ = fmt.Print

type options struct {
	debug, verbose, quiet bool
	presets               string
	swatch                bool
}

func level_from_flags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (o *options) registry() (*palettes.Registry, error) {
	r, err := palettes.Default()
	if err != nil {
		return nil, err
	}
	if o.presets == "" {
		return r, nil
	}
	user, err := palettes.LoadRegistryFile(o.presets)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded user presets", "path", o.presets, "count", user.Len())
	return r.Merge(user), nil
}

// print_colors writes one hex color per line, preceded by a swatch of the
// color when the terminal supports it and swatches are wanted.
func (o *options) print_colors(w io.Writer, hex []string) {
	out := termenv.NewOutput(w)
	for _, h := range hex {
		if h == "" {
			fmt.Fprintln(w, "NA")
			continue
		}
		if o.swatch && out.Profile != termenv.Ascii {
			fmt.Fprint(w, out.String("    ").Background(out.Color(h[:7])).String(), " ")
		}
		fmt.Fprintln(w, h)
	}
}

func new_root_cmd(stderr io.Writer) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "colorspace",
		Short:         "Convert colors, generate HCL palettes and simulate color vision deficiencies",
		Version:       colorspace.Version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level_from_flags(o.debug, o.verbose, o.quiet)})
			slog.SetDefault(slog.New(h))
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&o.debug, "debug", false, "Log debug messages")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "Log informational messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "Only log errors")
	pf.StringVar(&o.presets, "presets", "", "A YAML or TOML file of extra palette presets")
	pf.BoolVar(&o.swatch, "swatch", true, "Show a swatch next to each color on color terminals")
	root.AddCommand(
		palette_cmd(o), list_cmd(o), convert_cmd(o), cvd_cmd(o),
		desaturate_cmd(o), contrast_cmd(o), image_cmd(o),
	)
	return root
}

func main() {
	if err := new_root_cmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
