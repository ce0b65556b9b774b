// Command lightfield renders the digital rain lightfield pipeline.
//
// By default it opens a gogpu window and presents one frame per vsync.
// With -headless it renders a fixed number of frames offscreen and saves
// the last one as PNG:
//
//	lightfield -effect=pride
//	lightfield -headless -frames=120 -output=rain.png
//	lightfield -calibration=visual.json -effect=resurrection
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gogpu"

	"github.com/gogpu/lightfield"
	"github.com/gogpu/lightfield/config"
	"github.com/gogpu/lightfield/frame"
	"github.com/gogpu/lightfield/integration/gogpuhost"
	"github.com/gogpu/lightfield/quilt"
	"github.com/gogpu/lightfield/render"
)

func main() {
	var (
		configPath  = flag.String("config", "", "TOML settings file")
		effect      = flag.String("effect", "", "color effect (overrides the settings file)")
		resolution  = flag.Float64("resolution", 0, "render resolution scale (overrides the settings file)")
		calibration = flag.String("calibration", "", "lightfield calibration JSON file")
		service     = flag.Bool("service", false, "query the local display service for a lightfield device")
		headless    = flag.Bool("headless", false, "render offscreen and save a PNG")
		width       = flag.Int("width", 1280, "display width")
		height      = flag.Int("height", 720, "display height")
		frames      = flag.Int("frames", 60, "frames to render in headless mode")
		fps         = flag.Int("fps", 0, "headless frame rate; 0 renders as fast as possible")
		output      = flag.String("output", "lightfield.png", "output file in headless mode")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		lightfield.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadConfig(*configPath, *effect, *resolution)
	if err != nil {
		log.Fatal(err)
	}

	var transport quilt.Transport
	switch {
	case *calibration != "":
		transport = quilt.FileTransport{Path: *calibration}
	case *service:
		transport = quilt.ServiceTransport{}
	}

	if *headless {
		if err := runHeadless(cfg, transport, *width, *height, *frames, *fps, *output); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runWindow(cfg, transport, *width, *height); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path, effect string, resolution float64) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if effect != "" {
		cfg.Effect = effect
	}
	if resolution != 0 {
		cfg.Resolution = resolution
	}
	return cfg, cfg.Validate()
}

func runHeadless(cfg config.Config, transport quilt.Transport, width, height, frames, fps int, output string) error {
	graphics := render.NewSoftwareGraphics(render.NullDeviceHandle{})
	defer graphics.Close()

	canvas := frame.NewCanvas(cfg, width, height)
	driver, err := lightfield.Start(context.Background(), lightfield.Options{
		Graphics:  graphics,
		Surface:   canvas,
		Config:    cfg,
		Transport: transport,
	})
	if err != nil {
		return err
	}
	defer driver.Destroy()

	start := time.Now()
	var clock frame.Clock
	if fps > 0 {
		clock = frame.NewTickerClock(fps)
	}
	if err := driver.RunFrames(context.Background(), clock, frames); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, canvas.Pixmap().Image()); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}

	w, h := canvas.Size()
	log.Printf("Rendered %d frames at %dx%d in %v, saved to %s", driver.Frames(), w, h, time.Since(start).Round(time.Millisecond), output)
	return nil
}

func runWindow(cfg config.Config, transport quilt.Transport, width, height int) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("lightfield: " + cfg.Effect).
		WithSize(width, height))

	canvas := frame.NewCanvas(cfg, width, height)
	presenter := gogpuhost.NewPresenter()

	// The driver is started on the first draw, once the GPU context exists.
	// A startup failure quits the application and is returned by runWindow.
	var graphics *render.SoftwareGraphics
	launch := newLauncher()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if graphics == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			graphics = render.NewSoftwareGraphics(provider)
			launch.launch(func() (*frame.Driver, error) {
				return lightfield.Start(ctx, lightfield.Options{
					Graphics:  graphics,
					Surface:   canvas,
					Config:    cfg,
					Transport: transport,
				})
			}, func(error) { app.Quit() })
		}

		d := launch.Driver()
		if d == nil {
			return
		}
		canvas.Resize(w, h)
		d.Frame()
		if err := presenter.Present(dc.AsTextureDrawer(), canvas.Pixmap()); err != nil {
			log.Printf("Frame %d: present error: %v", d.Frames(), err)
		}
	})

	app.OnClose(func() {
		cancel()
		if d := launch.Driver(); d != nil {
			d.Destroy()
		}
		_ = presenter.Close()
		if graphics != nil {
			graphics.Close()
		}
	})

	if err := app.Run(); err != nil {
		return err
	}
	// Closing the window during startup cancels it; that is not a failure.
	if err := launch.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
