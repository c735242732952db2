package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/unvolume/internal/config"
	"github.com/san-kum/unvolume/internal/control"
	"github.com/san-kum/unvolume/internal/controls"
	"github.com/san-kum/unvolume/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	ticks      int
)

// main registers commands and launches the interactive menu when no
// subcommand is given. Exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "unvolume",
		Short: "unintuitive volume controls",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run [control]",
		Short: "run a control headless with a scripted gesture",
		Args:  cobra.ExactArgs(1),
		RunE:  runControl,
	}
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().IntVar(&ticks, "ticks", 400, "ticks to simulate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list controls",
		RunE:  listControls,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for name := range config.Presets {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.Preset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return cfg, nil
}

// Headless surface dimensions, in the same units the TUI uses.
const (
	scriptW = 160
	scriptH = 72
)

func runControl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	c, err := controls.New(args[0], rng)
	if err != nil {
		return err
	}
	cfg.Apply(c)
	c.Resize(scriptW, scriptH)
	c.Reset()

	script := scriptFor(c.Name())
	trace := make([]float64, 0, ticks)
	for t := 0; t < ticks; t++ {
		for _, step := range script {
			if step.tick == t {
				c.Pointer(step.ev)
			}
		}
		c.Tick()
		trace = append(trace, float64(c.Volume()))
	}

	graph := asciigraph.Plot(trace,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("volume per tick (%s)", c.Name())))
	fmt.Println(graph)
	fmt.Printf("\nfinal volume: %d\n", c.Volume())
	return nil
}

type scriptStep struct {
	tick int
	ev   control.Pointer
}

func press(tick int, x, y float64) scriptStep {
	return scriptStep{tick, control.Pointer{Kind: control.PointerDown, Pos: control.Point{X: x, Y: y}}}
}

func move(tick int, x, y float64) scriptStep {
	return scriptStep{tick, control.Pointer{Kind: control.PointerMove, Pos: control.Point{X: x, Y: y}}}
}

func release(tick int, x, y float64) scriptStep {
	return scriptStep{tick, control.Pointer{Kind: control.PointerUp, Pos: control.Point{X: x, Y: y}}}
}

// scriptFor builds a canned gesture so every control does something
// watchable without a mouse.
func scriptFor(name string) []scriptStep {
	cx, cy := float64(scriptW)/2, float64(scriptH)/2
	switch name {
	case "gravity":
		// Hold the pointer to the lower right so the bar tilts and the
		// ball slides off toward quiet.
		return []scriptStep{
			press(2, scriptW-1, scriptH-1),
			move(3, scriptW-1, scriptH-1),
			release(200, scriptW-1, scriptH-1),
		}
	case "color":
		// One drag across each channel band.
		return []scriptStep{
			press(2, cx, scriptH*0.1), release(3, cx, scriptH*0.1),
			press(10, cx, scriptH*0.5), release(11, cx, scriptH*0.5),
			press(20, cx, scriptH*0.9), release(21, cx, scriptH*0.9),
		}
	case "slingshot":
		return []scriptStep{
			press(2, cx, scriptH*0.75),
			move(4, cx, scriptH*0.75+40),
			release(6, cx, scriptH*0.75+40),
		}
	case "isotope":
		return []scriptStep{
			press(2, scriptW*0.9, cy),
			release(3, scriptW*0.9, cy),
		}
	case "circle":
		steps := []scriptStep{press(2, cx+30, cy)}
		for i := 1; i < 36; i++ {
			angle := float64(i) * 2 * math.Pi / 36
			steps = append(steps, move(2+i, cx+30*math.Cos(angle), cy+30*math.Sin(angle)))
		}
		return append(steps, release(40, cx+30, cy))
	case "bounce":
		return []scriptStep{
			press(2, cx, 5),
			move(3, cx+2, 5),
			move(4, cx+4, 5),
			release(5, cx+4, 5),
		}
	case "memory":
		// Blind flips; whatever matches, matches.
		var steps []scriptStep
		tick := 2
		for i := 0; i < 16; i++ {
			x := (float64(i%4) + 0.5) * scriptW / 4
			y := (float64(i/4) + 0.5) * scriptH / 4
			steps = append(steps, press(tick, x, y), release(tick+1, x, y))
			tick += 15
		}
		return steps
	}
	return nil
}

func listControls(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tINSTRUCTION")
	for _, info := range controls.Catalog {
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Title, info.Instruction)
	}
	return w.Flush()
}
