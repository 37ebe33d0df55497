package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/iw2rmb/tide"
	"github.com/iw2rmb/tide/editor"
	"github.com/iw2rmb/tide/storage"
)

// debugLogEnv names a file that receives the editor log while running.
const debugLogEnv = "TIDE_DEBUG_LOG"

type model struct {
	editor editor.Model
}

func newModel(filename string, width, height int) model {
	cfg := editor.Config{
		Filename: filename,
		Store:    storage.FileStore{},
		Title:    tide.Name,
		Version:  tide.Version(),
		Width:    width,
		Height:   height,
		Style:    editor.DefaultStyle(),
	}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-version] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(tide.Banner())
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)
	if filename == "" {
		filename = editor.DefaultFilename
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		_, _ = os.Stderr.WriteString("tide: stdin and stdout must be a terminal\n")
		os.Exit(1)
	}

	if path := os.Getenv(debugLogEnv); path != "" {
		f, err := tea.LogToFile(path, tide.Name)
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		log.Printf("tide: terminal size: %v", err)
		width, height = 0, 0
	}

	p := tea.NewProgram(newModel(filename, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
