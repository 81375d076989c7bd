package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/handbok/pwaicons/internal/app"
	"github.com/handbok/pwaicons/internal/config"
	"github.com/handbok/pwaicons/internal/fonts"
	"github.com/handbok/pwaicons/internal/preview"
	"github.com/handbok/pwaicons/internal/render"
)

// pathList collects a repeatable flag.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }
func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	// Flags
	outDir := flag.String("out", "", "output directory (default \"public\"); also PWAICONS_OUT_DIR")
	style := flag.String("style", "", "artwork style, book or flat; also PWAICONS_STYLE")
	configPath := flag.String("config", "", "JSON file describing the icon set")
	var fontPaths pathList
	flag.Var(&fontPaths, "font", "preferred font file, tried before the system fonts (repeatable); also PWAICONS_FONTS")
	bundledFont := flag.Bool("bundled-font", false, "draw the glyph with the embedded Go Bold font")
	favicon := flag.String("favicon", "", "also write a multi-size .ico with this name; also PWAICONS_FAVICON")
	fbPath := flag.String("preview", "", "show each icon on this framebuffer device, e.g. /dev/fb0")
	hold := flag.Duration("preview-hold", 750*time.Millisecond, "how long each icon stays on the preview device")
	debug := flag.Bool("debug", false, "enable debug logging to ./pwaicons-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr to this file; also PWAICONS_STDIO_LOG")
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(config.EnvStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./pwaicons-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *style != "" {
		s, err := config.ParseStyle(*style)
		if err != nil {
			fmt.Println("config error: -style:", err)
			os.Exit(1)
		}
		cfg.Style = s
	}
	if len(fontPaths) > 0 {
		cfg.Fonts = fontPaths
	}
	if *favicon != "" {
		cfg.Favicon = *favicon
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}
	logger.Infof("main", "style %s, %d icons into %s", cfg.Style, len(cfg.Icons), cfg.OutDir)

	renderer := render.New(fonts.FileResolver{Logger: logger}, append(append([]string{}, cfg.Fonts...), fonts.SystemFonts...))
	if *bundledFont {
		renderer = render.New(fonts.Static{Handle: fonts.Bundled()}, nil)
	}

	a := app.New(cfg, renderer)
	a.Logger = logger
	a.Progress = func(line string) { fmt.Println(line) }
	if *fbPath != "" {
		fb := preview.NewFramebuffer(*fbPath, render.Background)
		fb.Hold = *hold
		fb.Logger = logger
		a.Preview = fb
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logger.Errorf("main", "run failed: %v", err)
		fmt.Println("error:", err)
		stop()
		os.Exit(1)
	}
	fmt.Printf("Icons generated in %s\n", cfg.OutDir)
}

// loadConfig layers the optional config file and then the environment on top
// of the defaults.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	return config.FromEnv(cfg)
}
