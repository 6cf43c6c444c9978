// Package main provides the CLI entrypoint for the start page.
package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/automoto/startpage/config"
	"github.com/automoto/startpage/fonts"
	"github.com/automoto/startpage/scenes"
	"github.com/automoto/startpage/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	configPath string
	winWidth   int
	winHeight  int
	fullscreen bool
	noCursor   bool
	debugMode  bool
)

type Game struct {
	bounds image.Rectangle
	scene  *scenes.StartPageScene
}

func NewGame() *Game {
	return &Game{scene: scenes.NewStartPageScene()}
}

func (g *Game) Update() error {
	g.scene.Update()
	return g.scene.Err()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the page can reflow on resize.
func (g *Game) Layout(width, height int) (int, int) {
	if width > 0 && height > 0 {
		config.C.Width, config.C.Height = width, height
	}
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "startpage",
		Short:        "Decorative start page with search and shortcuts",
		SilenceUsage: true,
		RunE:         runStartPage,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "path to config file")
	rootCmd.Flags().IntVar(&winWidth, "width", config.C.Width, "window width")
	rootCmd.Flags().IntVar(&winHeight, "height", config.C.Height, "window height")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen")
	rootCmd.Flags().BoolVar(&noCursor, "no-cursor", false, "use the system cursor instead of the custom one")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "log frame stats and outline magnetic elements")

	rootCmd.AddCommand(newSitesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func loadFileConfig() error {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg.Apply()
	return nil
}

func runStartPage(cmd *cobra.Command, _ []string) error {
	if err := loadFileConfig(); err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Explicit flags win over the file and saved settings
	applyIntFlag(cmd, "width", &config.C.Width, winWidth)
	applyIntFlag(cmd, "height", &config.C.Height, winHeight)
	applyBoolFlag(cmd, "fullscreen", &config.C.Fullscreen, fullscreen)
	applyBoolFlag(cmd, "debug", &config.Debug.Enabled, debugMode)
	if cmd.Flags().Changed("no-cursor") {
		config.Cursor.Visible = !noCursor
	}
	if config.C.Width <= 0 || config.C.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", config.C.Width, config.C.Height)
	}

	if err := fonts.LoadDefaults(config.Page.BodySize, config.Page.TitleSize, config.Page.SmallSize); err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(config.C.Fullscreen)

	g := NewGame()
	err := ebiten.RunGame(g)
	g.scene.Close()
	if err != nil {
		return fmt.Errorf("failed to run start page: %w", err)
	}
	return nil
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyBoolFlag(cmd *cobra.Command, name string, target *bool, value bool) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func newSitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List the shortcut catalog",
		Args:  cobra.NoArgs,
		RunE:  runSitesCmd,
	}
}

func runSitesCmd(cmd *cobra.Command, _ []string) error {
	if err := loadFileConfig(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, s := range config.Sites {
		fmt.Fprintf(out, "%-24s %s\n", s.Name, s.URL)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), configPath)
			return nil
		},
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigInitCmd,
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the settings saved from the panels",
		Args:  cobra.NoArgs,
		RunE:  runConfigResetCmd,
	})
	return configCmd
}

func runConfigInitCmd(cmd *cobra.Command, _ []string) error {
	created, err := config.WriteTemplate(configPath)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(cmd.OutOrStdout(), "config already exists: %s\n", configPath)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}

func runConfigResetCmd(cmd *cobra.Command, _ []string) error {
	if err := systems.InitPersistence(); err != nil {
		return fmt.Errorf("failed to open saved settings: %w", err)
	}
	if err := systems.ResetSettings(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "saved settings cleared")
	return nil
}
