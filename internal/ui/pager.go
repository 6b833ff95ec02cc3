package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand runs the ov pager on a file. It implements tea.ExecCommand so
// bubbletea releases the terminal while ov owns it.
type pagerCommand struct {
	path string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.Open(c.path)
	if err != nil {
		return err
	}

	// Keep ov from printing the file when it exits
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// openInPager returns a command showing path in the pager
func openInPager(path string) tea.Cmd {
	return tea.Exec(&pagerCommand{path: path}, func(err error) tea.Msg {
		return pagerMsg{path: path, err: err}
	})
}
