package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/handbok/pwaicons/internal/config"
	"github.com/handbok/pwaicons/internal/fonts"
	"github.com/handbok/pwaicons/internal/ico"
	"github.com/handbok/pwaicons/internal/render"
)

// Previewer shows a finished icon somewhere other than the output directory.
type Previewer interface {
	Show(img image.Image) error
}

type App struct {
	Config   config.Config
	Renderer *render.Renderer
	Preview  Previewer
	Logger   Logger
	// Progress receives one human-readable line per written file.
	Progress func(line string)
}

func New(cfg config.Config, renderer *render.Renderer) *App {
	return &App{Config: cfg, Renderer: renderer, Logger: NoopLogger{}}
}

// Run writes every configured icon, then the favicon if one is configured.
// The first render or write error stops the run.
func (app *App) Run(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if err := app.Config.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(app.Config.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", app.Config.OutDir, err)
	}
	app.Logger.Infof("app", "output directory %s", app.Config.OutDir)

	defer app.closePreview()

	renderer := app.resolvedRenderer()
	var favicon []image.Image
	for _, icon := range app.Config.Icons {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := app.renderIcon(renderer, icon)
		if err != nil {
			return fmt.Errorf("%s: %w", icon.Name, err)
		}
		path := filepath.Join(app.Config.OutDir, icon.Name)
		if err := writePNG(path, img); err != nil {
			return fmt.Errorf("%s: %w", icon.Name, err)
		}
		b := img.Bounds()
		app.Logger.Infof("app", "created %s (%dx%d)", icon.Name, b.Dx(), b.Dy())
		app.progress(fmt.Sprintf("Created %s (%dx%d)", path, b.Dx(), b.Dy()))

		if icon.Size <= ico.MaxSize {
			favicon = append(favicon, img)
		}
		if app.Preview != nil {
			if err := app.Preview.Show(img); err != nil {
				app.Logger.Errorf("preview", "show %s: %v", icon.Name, err)
			}
		}
	}

	if app.Config.Favicon == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(app.Config.OutDir, app.Config.Favicon)
	if err := writeICO(path, favicon); err != nil {
		return fmt.Errorf("%s: %w", app.Config.Favicon, err)
	}
	app.Logger.Infof("app", "created %s (%d entries)", app.Config.Favicon, len(favicon))
	app.progress(fmt.Sprintf("Created %s (%d sizes)", path, len(favicon)))
	return nil
}

// resolvedRenderer looks the font up once for the whole run.
func (app *App) resolvedRenderer() *render.Renderer {
	r := &render.Renderer{Logger: app.Logger}
	if app.Renderer != nil {
		*r = *app.Renderer
		if r.Logger == nil {
			r.Logger = app.Logger
		}
	}
	if r.Fonts != nil {
		handle := r.Fonts.Resolve(r.Preferred)
		app.Logger.Infof("app", "using font %s", handle.Name())
		r.Fonts = fonts.Static{Handle: handle}
	}
	return r
}

func (app *App) renderIcon(r *render.Renderer, icon config.Icon) (image.Image, error) {
	var (
		img *image.RGBA
		err error
	)
	switch app.Config.Style {
	case config.StyleFlat:
		img, err = r.RenderFlat(icon.Size)
	default:
		img, err = r.Render(icon.Size)
	}
	if err != nil {
		return nil, err
	}
	if !icon.Transparent {
		return render.Flatten(img, render.Background), nil
	}
	return img, nil
}

func (app *App) closePreview() {
	c, ok := app.Preview.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		app.Logger.Errorf("preview", "close: %v", err)
	}
}

func (app *App) progress(line string) {
	if app.Progress != nil {
		app.Progress(line)
	}
}

func writePNG(path string, img image.Image) error {
	return writeFile(path, func(w io.Writer) error { return png.Encode(w, img) })
}

func writeICO(path string, imgs []image.Image) error {
	return writeFile(path, func(w io.Writer) error { return ico.Encode(w, imgs) })
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
