package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/pointillist"
)

func main() {
	// Action errors are printed and exited on by cli itself; this only sees
	// flag parsing failures.
	if err := newApp().Run(os.Args); err != nil {
		exit(err.Error(), 1)
	}
}

func newApp() *cli.App {
	defaults := pointillist.DefaultConfig()

	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "pointillist"
	app.Usage = "Turns any gif into a pointillist style gif."
	app.UsageText = "pointillist [options] --in-path IN.gif --out-path OUT.gif\n" +
		/*      */ "   IN or OUT may be - for stdin and stdout."
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "in-path,i",
			Usage: "`PATH` of the input animation (GIF, JPEG stream, PNG, BMP or TIFF).",
		},
		cli.StringFlag{
			Name:  "out-path,o",
			Usage: "`PATH` of the output GIF.",
		},
		cli.IntFlag{
			Name:  "block-size,b",
			Usage: "`SIZE` of the square blocks pixels are clustered into.",
			Value: defaults.BlockSize,
		},
		cli.IntFlag{
			Name:  "padding,p",
			Usage: "`PIXELS` of padding between the circles.",
			Value: defaults.Padding,
		},
		cli.IntFlag{
			Name:  "radius,r",
			Usage: "Maximum `RADIUS` of the circles, in pixels.",
			Value: defaults.Radius,
		},
		cli.IntFlag{
			Name:  "delay,d",
			Usage: "`DELAY` of every output frame, in hundredths of a second.",
			Value: defaults.Delay,
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML `FILE` of settings. Flags given on the command line take precedence.",
		},
		cli.StringFlag{
			Name:  "key,k",
			Usage: fmt.Sprintf("`KEY` that sets dot size, one of %v.", pointillist.KeyNames()),
			Value: defaults.Key,
		},
		cli.BoolFlag{
			Name:  "coalesce",
			Usage: "Composite optimized GIF frames onto the full screen before clustering.",
		},
		cli.Float64Flag{
			Name:  "scale",
			Usage: "`SCALE` factor applied to every frame before clustering.",
			Value: defaults.Scale,
		},
		cli.Float64Flag{
			Name:  "gamma",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: defaults.Gamma,
		},
		cli.Float64Flag{
			Name:  "brightness",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
		},
		cli.Float64Flag{
			Name:  "contrast",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of contrast that must be between 0 and 1.",
			Value: defaults.SigmoidMidpoint,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` = 0 gives the original image. FACTOR greater than 0 increases contrast. FACTOR less than 0 decreases contrast.",
		},
		cli.BoolFlag{
			Name:  "invert",
			Usage: "Inverts the image before clustering.",
		},
		cli.StringFlag{
			Name:  "preview",
			Usage: "Also write an anti-aliased PNG of the first frame to `PATH`.",
		},
		cli.BoolFlag{
			Name:  "braille",
			Usage: "Print the first output frame as braille symbols.",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log progress to stderr.",
		},
	}
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	logger := log.New(io.Discard, "pointillist: ", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	in, out := c.String("in-path"), c.String("out-path")
	if in == "" || out == "" {
		return errors.New("both --in-path and --out-path are required")
	}
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	logger.Printf("settings: %v", cfg)

	r, closeIn, err := openInput(in)
	if err != nil {
		return err
	}
	defer closeIn()

	res, err := pointillist.Render(r, cfg)
	if err != nil {
		return err
	}
	cols, rows := int(res.Dots[0].Width), int(res.Dots[0].Height)
	width, height := cfg.Grid().CanvasSize(cols, rows)
	logger.Printf("decoded %d frames into a %dx%d grid", len(res.Dots), cols, rows)
	logger.Printf("intensity: %v", pointillist.Summarize(res.Dots))
	logger.Printf("canvas: %dx%d", width, height)

	if out == "-" {
		err = pointillist.NewEncoder(c.App.Writer, pointillist.WithDelay(cfg.Delay)).Encode(res.Canvases)
	} else {
		err = pointillist.EncodeFile(out, res.Canvases, pointillist.WithDelay(cfg.Delay))
	}
	if err != nil {
		return err
	}
	logger.Printf("wrote %d frames to %s", len(res.Canvases), out)

	if preview := c.String("preview"); preview != "" {
		if err := pointillist.WritePreview(preview, res.Dots[0], cfg.Grid(), res.Max); err != nil {
			return err
		}
		logger.Printf("wrote preview to %s", preview)
	}
	if c.Bool("braille") {
		w := c.App.Writer
		if out == "-" {
			w = c.App.ErrWriter
		}
		if err := pointillist.WriteBraille(w, res.Canvases[0]); err != nil {
			return err
		}
	}
	return nil
}

// configFromContext layers the config file, if any, and explicitly set flags
// over the defaults.
func configFromContext(c *cli.Context) (pointillist.Config, error) {
	cfg := pointillist.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = pointillist.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("block-size") {
		cfg.BlockSize = c.Int("block-size")
	}
	if c.IsSet("padding") {
		cfg.Padding = c.Int("padding")
	}
	if c.IsSet("radius") {
		cfg.Radius = c.Int("radius")
	}
	if c.IsSet("delay") {
		cfg.Delay = c.Int("delay")
	}
	if c.IsSet("key") {
		cfg.Key = c.String("key")
	}
	if c.IsSet("coalesce") {
		cfg.Coalesce = c.Bool("coalesce")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Float64("scale")
	}
	if c.IsSet("gamma") {
		cfg.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-midpoint") {
		cfg.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
	}
	if c.IsSet("sigmoid-factor") {
		cfg.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	if c.IsSet("invert") {
		cfg.Invert = c.Bool("invert")
	}
	return cfg, cfg.Validate()
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", pointillist.ErrIO, err)
	}
	return f, func() { f.Close() }, nil
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
