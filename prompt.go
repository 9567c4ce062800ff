package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	promptMain = "sally> "
	promptCont = "  ...> "

	historyFile = ".sally_history"
)

// prompt reads program lines interactively from a terminal, with line
// editing and history. Lines are evaluated once a blank line is entered, so
// the prompt changes to show when input is being continued.
type prompt struct {
	ln       *liner.State
	histPath string
	cont     bool
}

func newPrompt() *prompt {
	p := &prompt{ln: liner.NewLiner()}
	p.ln.SetCtrlCAborts(true)
	if home, err := os.UserHomeDir(); err == nil {
		p.histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(p.histPath); err == nil {
			p.ln.ReadHistory(f)
			f.Close()
		}
	}
	return p
}

// ReadLine prompts for the next line; an aborted prompt (Ctrl-C) ends input
// like Ctrl-D does.
func (p *prompt) ReadLine() (string, error) {
	text := promptMain
	if p.cont {
		text = promptCont
	}
	line, err := p.ln.Prompt(text)
	if errors.Is(err, liner.ErrPromptAborted) {
		err = io.EOF
	}
	if err != nil {
		return "", err
	}
	p.cont = line != ""
	if strings.TrimSpace(line) != "" {
		p.ln.AppendHistory(line)
	}
	return line, nil
}

// Close saves history and restores the terminal.
func (p *prompt) Close() error {
	if p.histPath != "" {
		if f, err := os.Create(p.histPath); err == nil {
			p.ln.WriteHistory(f)
			f.Close()
		}
	}
	return p.ln.Close()
}
