package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slateos/slate/core"
	"github.com/slateos/slate/hub"
	"github.com/slateos/slate/internal/catalog"
	"github.com/slateos/slate/internal/config"
	"github.com/slateos/slate/internal/instclass"
	"github.com/slateos/slate/internal/inventory"
	"github.com/slateos/slate/internal/profile"
	"github.com/slateos/slate/screens"
)

const probeWorker = "SlateDeviceProbe"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Catalog.Path), 0o755); err != nil {
		log.Fatalf("mkdir catalog dir: %v", err)
	}
	if err := catalog.RunMigrations(cfg.Catalog.Path, cfg.Catalog.MigrationsPath); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("open catalog: %v", err)
	}
	defer cat.Close()
	if err := catalog.SeedDefaults(ctx, cat.DB()); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	prof, err := profile.Load(cfg.Profile.OutputPath)
	if err != nil {
		log.Fatalf("profile: %v", err)
	}

	inv := inventory.NewSysfs()
	workers := core.NewWorkers()
	workers.Start(probeWorker, func(tok *core.Token) {
		if tok.Killed() {
			return
		}
		if err := inv.Probe(); err != nil {
			log.Printf("warn: device probe: %v", err)
		}
	})

	deps := core.Deps{
		Profile:   prof,
		Inventory: inv,
		Payload:   cat,
		Class:     instclass.Default(),
		Workers:   workers,
	}

	reg := core.NewRegistry()
	screens.RegisterAll(reg)

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())

	flow := core.NewFlow(hub.Summary, hub.Progress)
	welcome, err := screens.NewWelcome(deps)
	if err != nil {
		log.Fatalf("welcome screen: %v", err)
	}
	flow.Add(welcome)

	for _, step := range flow.Sequence() {
		if step.IsHub() {
			if err := runHub(step.Hub, reg, deps, keys, cfg); err != nil {
				log.Fatalf("hub %s: %v", step.Hub, err)
			}
			continue
		}
		m := hub.NewStandaloneModel(step.Screen, keys)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			log.Fatalf("standalone %s: %v", step.Screen.Title(), err)
		}
		if m.Aborted() || !m.Advanced() {
			return
		}
	}

	for name, err := range reg.Failures() {
		log.Printf("warn: screen %s unavailable: %v", name, err)
	}
	fmt.Println("Install profile written to", cfg.Profile.OutputPath)
}

func runHub(id core.HubID, reg *core.Registry, deps core.Deps, keys *core.KeyRegistry, cfg config.Config) error {
	m, err := hub.New(id, hubTitle(id), reg, deps, keys)
	if err != nil {
		return err
	}
	switch id {
	case hub.Summary:
		m.BeginInstall = func() tea.Cmd { return tea.Quit }
	case hub.Progress:
		m.StartInstalling()
	}

	prog := tea.NewProgram(m, tea.WithAltScreen())
	if id == hub.Progress {
		go driveInstall(prog, installStep)
	}
	if _, err := prog.Run(); err != nil {
		return err
	}
	// The manifest is written only after the display loop has exited, so no
	// personalization screen can Apply into the profile mid-encode.
	if id == hub.Progress {
		if err := deps.Profile.Save(cfg.Profile.OutputPath); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
	}
	return nil
}

const installStep = 200 * time.Millisecond

// driveInstall feeds the progress hub. The real payload work is out of scope
// for the wizard; the driver only reports progress and never touches the
// shared profile, which belongs to the display thread until the program
// exits.
func driveInstall(prog *tea.Program, step time.Duration) {
	for i := 1; i <= 20; i++ {
		time.Sleep(step)
		prog.Send(core.InstallProgressMsg{Fraction: float64(i) / 20})
	}
	prog.Send(core.StatusMsg{Text: "Installation complete"})
	prog.Quit()
}

func hubTitle(id core.HubID) string {
	switch id {
	case hub.Summary:
		return "Installation Summary"
	case hub.Progress:
		return "Configuration"
	}
	return string(id)
}
