package main

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kovidgoyal/colorspace"
	"github.com/kovidgoyal/colorspace/colorimage"
	"github.com/kovidgoyal/colorspace/cvd"
	"github.com/kovidgoyal/colorspace/palettes"
	"github.com/kovidgoyal/colorspace/types"
)

func palette_cmd(o *options) *cobra.Command {
	var (
		n                  int
		method             string
		h, c, l, p, cmax   []float64
		alpha              []float64
		rev, no_fixup, raw bool
	)
	cmd := &cobra.Command{
		Use:   "palette [NAME]",
		Short: "Print the colors of a named palette or of a palette built with --method",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var opts []palettes.Option
			add := func(vals []float64, f func(...float64) palettes.Option) {
				if len(vals) > 0 {
					opts = append(opts, f(vals...))
				}
			}
			add(h, palettes.H)
			add(c, palettes.C)
			add(l, palettes.L)
			add(p, palettes.Power)
			add(cmax, palettes.CMax)
			var pal *palettes.Palette
			switch {
			case len(args) == 1:
				r, err := o.registry()
				if err != nil {
					return err
				}
				if pal, err = r.Palette(args[0], opts...); err != nil {
					return err
				}
			case method != "":
				if pal, err = palettes.NewPalette(method, opts...); err != nil {
					return err
				}
			default:
				return fmt.Errorf("specify either a palette name or --method, one of: %s", strings.Join(palettes.Methods(), ", "))
			}
			slog.Debug("generating palette", "palette", pal.String(), "n", n)
			cols, err := pal.Colors(n, palettes.Reverse(rev), palettes.Fixup(!no_fixup), palettes.Alpha(alpha...))
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cols, " "))
				return nil
			}
			o.print_colors(cmd.OutOrStdout(), cols)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&n, "number", "n", 7, "Number of colors")
	f.StringVar(&method, "method", "", "Build a palette with this method instead of using a named one")
	f.Float64SliceVar(&h, "hue", nil, "Hues h1, h2, ...")
	f.Float64SliceVar(&c, "chroma", nil, "Chromas c1, c2, ...")
	f.Float64SliceVar(&l, "luminance", nil, "Luminances l1, l2, ...")
	f.Float64SliceVar(&p, "power", nil, "Trajectory exponents")
	f.Float64SliceVar(&cmax, "cmax", nil, "Maximum chroma of the trajectories")
	f.Float64SliceVar(&alpha, "alpha", nil, "Transparency, one value or one per color")
	f.BoolVar(&rev, "rev", false, "Reverse the order of the colors")
	f.BoolVar(&no_fixup, "no-fixup", false, "Output NA for colors outside the sRGB gamut instead of clamping them")
	f.BoolVar(&raw, "raw", false, "Print the colors space separated on a single line")
	return cmd
}

func list_cmd(o *options) *cobra.Command {
	var type_name string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the named palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.registry()
			if err != nil {
				return err
			}
			var only []palettes.Type
			if type_name != "" {
				t, err := palettes.ParseType(type_name)
				if err != nil {
					return err
				}
				only = append(only, t)
			}
			w := cmd.OutOrStdout()
			for _, rec := range r.Records(only...) {
				fmt.Fprintf(w, "%-12s %s\n", rec.Type, rec.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&type_name, "type", "", "Only list palettes of this type: qualitative, sequential, diverging or divergingx")
	return cmd
}

func parse_triples(args []string) (a, b, c []float64, err error) {
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		if len(parts) != 3 {
			return nil, nil, nil, fmt.Errorf("%q is not three comma separated numbers", arg)
		}
		var v [3]float64
		for i, p := range parts {
			if v[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
				return nil, nil, nil, fmt.Errorf("%q is not a number: %w", p, err)
			}
		}
		a, b, c = append(a, v[0]), append(b, v[1]), append(c, v[2])
	}
	return
}

func format_colors(c *colorspace.Colors) ([]string, error) {
	if c.Space() == colorspace.HEX {
		return c.Colors(false, false)
	}
	dims := c.Space().Dims()
	ans := make([]string, c.Len())
	vals := make([][]float64, len(dims))
	for i, d := range dims {
		vals[i] = c.MustGet(d)
	}
	for i := range ans {
		parts := make([]string, len(dims))
		for j, d := range dims {
			parts[j] = fmt.Sprintf("%s=%.4f", d, vals[j][i])
		}
		ans[i] = strings.Join(parts, " ")
	}
	return ans, nil
}

func convert_cmd(o *options) *cobra.Command {
	var from, to string
	var fixup bool
	cmd := &cobra.Command{
		Use:   "convert COLOR...",
		Short: "Convert colors between color spaces",
		Long:  "Convert colors between color spaces. Colors are hex strings when converting from hex and three comma separated coordinates otherwise.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := types.ParseSpace(from)
			if err != nil {
				return err
			}
			dest, err := types.ParseSpace(to)
			if err != nil {
				return err
			}
			var c *colorspace.Colors
			if src == colorspace.HEX {
				c = colorspace.FromHex(args)
			} else {
				a, b, v, err := parse_triples(args)
				if err != nil {
					return err
				}
				if c, err = colorspace.New(src, a, b, v); err != nil {
					return err
				}
			}
			if err = c.To(dest, fixup); err != nil {
				return err
			}
			lines, err := format_colors(c)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if dest == colorspace.HEX {
				o.print_colors(w, lines)
				return nil
			}
			missing := c.IsMissing()
			for i, line := range lines {
				if missing[i] {
					line = "NA"
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&from, "from", "hex", "The space of the input colors")
	f.StringVar(&to, "to", "HCL", "The space to convert to")
	f.BoolVar(&fixup, "fixup", true, "Clamp colors outside the sRGB gamut")
	return cmd
}

func cvd_cmd(o *options) *cobra.Command {
	var kind_name string
	var severity float64
	var linear bool
	cmd := &cobra.Command{
		Use:   "cvd HEX...",
		Short: "Show hex colors as seen with a color vision deficiency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := cvd.ParseKind(kind_name)
			if err != nil {
				return err
			}
			c, err := cvd.Simulate(colorspace.FromHex(args), kind, severity, linear)
			if err != nil {
				return err
			}
			cols, err := c.Colors(true, false)
			if err != nil {
				return err
			}
			o.print_colors(cmd.OutOrStdout(), cols)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&kind_name, "kind", "k", "deutan", "The deficiency: protan, deutan or tritan")
	f.Float64VarP(&severity, "severity", "s", 1, "Severity of the deficiency in [0, 1]")
	f.BoolVar(&linear, "linear", true, "Apply the simulation in linear RGB rather than sRGB")
	return cmd
}

func desaturate_cmd(o *options) *cobra.Command {
	var amount float64
	cmd := &cobra.Command{
		Use:   "desaturate HEX...",
		Short: "Remove chroma from hex colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, err := cvd.DesaturateHex(args, amount)
			if err != nil {
				return err
			}
			o.print_colors(cmd.OutOrStdout(), cols)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&amount, "amount", "a", 1, "Fraction of the chroma to remove")
	return cmd
}

func contrast_cmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast HEX HEX...",
		Short: "Print the WCAG contrast ratio of the first color against each of the others",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ratios, err := colorspace.ContrastRatio(args[:1], args[1:])
			if err != nil {
				return err
			}
			for i, r := range ratios {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %.2f\n", args[0], args[i+1], r)
			}
			return nil
		},
	}
	return cmd
}

func image_cmd(o *options) *cobra.Command {
	var kind_name string
	var severity, desaturate float64
	var linear bool
	var quality int
	cmd := &cobra.Command{
		Use:   "image INPUT OUTPUT",
		Short: "Simulate a color vision deficiency or desaturate an image file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := colorimage.Open(args[0])
			if err != nil {
				return err
			}
			b := img.Bounds()
			slog.Info("loaded image", "path", args[0], "width", b.Dx(), "height", b.Dy())
			var out *image.NRGBA
			if desaturate > 0 {
				if out, err = colorimage.Desaturate(img, desaturate); err != nil {
					return err
				}
				img = out
			}
			if kind_name != "" {
				kind, err := cvd.ParseKind(kind_name)
				if err != nil {
					return err
				}
				if out, err = colorimage.SimulateCVD(img, kind, severity, linear); err != nil {
					return err
				}
			}
			if out == nil {
				return fmt.Errorf("nothing to do, specify --kind or --desaturate")
			}
			if err = colorimage.Save(out, args[1], quality); err != nil {
				return err
			}
			slog.Info("saved image", "path", args[1], "opaque", out.Opaque())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&kind_name, "kind", "k", "", "The deficiency to simulate: protan, deutan or tritan")
	f.Float64VarP(&severity, "severity", "s", 1, "Severity of the deficiency in [0, 1]")
	f.BoolVar(&linear, "linear", true, "Apply the simulation in linear RGB rather than sRGB")
	f.Float64Var(&desaturate, "desaturate", 0, "Fraction of the chroma to remove")
	f.IntVar(&quality, "jpeg-quality", colorimage.DefaultJPEGQuality, "Quality of JPEG output")
	return cmd
}
