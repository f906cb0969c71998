package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// External runs the programs that live outside the terminal UI: the web
// browser, the system clipboard and the ov pager
type External struct {
	program *tea.Program // reference to Bubble Tea program for terminal management

	browserCommand func(url string) *exec.Cmd
	writeClipboard func(text string) error
	runPager       func(content string) error
}

// NewExternal creates a new External with the system browser and clipboard
func NewExternal() *External {
	e := &External{
		browserCommand: browserCommand,
		writeClipboard: clipboard.WriteAll,
	}
	if clipboard.Unsupported {
		e.writeClipboard = func(string) error { return fmt.Errorf("clipboard not available") }
	}
	e.runPager = e.showInPager
	return e
}

// SetProgram sets the program reference for terminal management
func (e *External) SetProgram(p *tea.Program) {
	e.program = p
}

// OpenURL opens url in the default browser without waiting for it
func (e *External) OpenURL(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-web link %q", url)
	}
	cmd := e.browserCommand(url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// CopyToClipboard writes text to the system clipboard
func (e *External) CopyToClipboard(text string) error {
	if err := e.writeClipboard(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// ShowInPager pages content in ov
func (e *External) ShowInPager(content string) error {
	return e.runPager(content)
}

func (e *External) showInPager(content string) error {
	if e.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := e.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = e.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the document on exit, it would corrupt our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func browserCommand(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}
