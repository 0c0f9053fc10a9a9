// Package shell implements the interactive front ends over a filesystem
// engine: an intuitive mode with plain-word commands, a learning mode that
// teaches the matching Unix commands through a numbered menu, and a full
// Unix mode. All modes drive the same engine and share one session.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/mimicfs/mimicfs"
	"github.com/mimicfs/mimicfs/config"
	"github.com/mimicfs/mimicfs/internal/util"
)

// action is the outcome of one mode iteration.
type action int

const (
	actStay action = iota
	actSwitchMode
	actQuit
)

// Shell runs the interactive session. Input and output are injected so
// scripted sessions can drive it in tests.
type Shell struct {
	fs       mimicfs.Filesystem
	cfg      *config.Config
	in       *bufio.Scanner
	out      io.Writer
	logger   util.Logger
	liveTree bool
}

// New creates a Shell over the given engine, reading commands from in and
// writing everything user-visible to out.
func New(fs mimicfs.Filesystem, cfg *config.Config, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		fs:     fs,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: util.GetLogger("Shell"),
	}
}

// Run shows the mode-selection menu and dispatches into the chosen mode
// until the user exits or input ends.
func (s *Shell) Run() error {
	s.printf("============================================\n")
	s.printf("        FILE MANAGEMENT SYSTEM\n")
	s.printf("============================================\n")

	for {
		s.printMainMenu()
		s.printf("Select mode: ")
		line, ok := s.readLine()
		if !ok {
			return nil
		}

		var act action
		switch strings.TrimSpace(line) {
		case "1":
			act = s.runIntuitive()
		case "2":
			act = s.runLearning()
		case "3":
			act = s.runUnix()
		case "4":
			act = actQuit
		case "":
			continue
		default:
			s.printf("Invalid choice. Please try again.\n")
			continue
		}

		if act == actQuit {
			s.printf("Goodbye!\n")
			return nil
		}
	}
}

func (s *Shell) printMainMenu() {
	s.printf("\n============================================\n")
	s.printf("           FILE MANAGEMENT SYSTEM\n")
	s.printf("============================================\n")
	s.printf("MODE SELECTION:\n")
	s.printf("  1. Intuitive Mode (Easy Commands)\n")
	s.printf("  2. CLI Learning Mode (Learn Unix)\n")
	s.printf("  3. Full CLI Mode (Real Unix Commands)\n")
	s.printf("  4. Exit\n\n")
}

// readLine returns the next input line. The second return is false once
// input is exhausted.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// splitCommand separates a raw input line into the command word and the
// remainder. The remainder keeps internal spaces so names with spaces work.
func splitCommand(line string) (cmd, args string) {
	cmd, args, found := strings.Cut(line, " ")
	if !found {
		return line, ""
	}
	return cmd, strings.TrimSpace(args)
}

// --- shared command bodies ------------------------------------------------
//
// Each mode's dispatcher calls into these so the behavior and messages stay
// identical across modes.

func (s *Shell) doList() {
	s.printf("\n--- Directory: %s ---\n", s.fs.CurrentPath())
	s.printf("[DIR]  ..\n")
	s.printf("[DIR]  .\n")

	entries := s.fs.List()
	if s.cfg.SortListings {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}

	if len(entries) == 0 {
		s.printf("(empty)\n")
	} else {
		for _, e := range entries {
			if e.Kind == mimicfs.KindDirectory {
				s.printf("[DIR]  %s\n", e.Name)
			} else if e.Size > 0 {
				s.printf("[FILE] %s (%d bytes)\n", e.Name, e.Size)
			} else {
				s.printf("[FILE] %s\n", e.Name)
			}
		}
	}
	s.printf("\n")
}

func (s *Shell) doCreateDir(name string) {
	if _, err := s.fs.CreateDir(name); err != nil {
		s.printError(err)
		return
	}
	s.printf("✓ Directory '%s' created\n", name)
	s.afterMutation()
}

func (s *Shell) doChangeDir(target string) {
	if err := s.fs.ChangeDir(target); err != nil {
		s.printError(err)
		return
	}
	switch target {
	case "..":
		s.printf("✓ Changed to parent directory\n")
	case mimicfs.Separator:
		s.printf("✓ Changed to root\n")
	default:
		s.printf("✓ Changed to directory '%s'\n", target)
	}
	s.afterMutation()
}

func (s *Shell) doCreateFile(name string) {
	if _, err := s.fs.CreateFile(name, nil); err != nil {
		s.printError(err)
		return
	}
	s.printf("✓ File '%s' created\n", name)
	s.afterMutation()
}

// doEditFile collects lines until the configured end marker and writes them
// to an existing file.
func (s *Shell) doEditFile(name string) {
	s.printf("Enter content (type '%s' on new line to finish):\n", s.cfg.EndMarker)
	content := s.readContent()
	if err := s.fs.WriteFile(name, content); err != nil {
		s.printError(err)
		return
	}
	s.printf("✓ File '%s' written (%d bytes)\n", name, len(content))
	s.afterMutation()
}

// readContent consumes lines up to the end marker (or EOF). Each kept line
// gets a trailing newline.
func (s *Shell) readContent() []byte {
	var b strings.Builder
	for {
		line, ok := s.readLine()
		if !ok || line == s.cfg.EndMarker {
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func (s *Shell) doViewFile(name string) {
	content, err := s.fs.ReadFile(name)
	if err != nil {
		s.printError(err)
		return
	}
	s.printf("\n--- Content of %s ---\n", name)
	if len(content) == 0 {
		s.printf("(empty)\n")
	} else {
		s.printf("%s", content)
		if content[len(content)-1] != '\n' {
			s.printf("\n")
		}
	}
	s.printf("\n")
}

func (s *Shell) doDelete(name string) {
	if err := s.fs.Delete(name); err != nil {
		s.printError(err)
		return
	}
	s.printf("✓ '%s' deleted\n", name)
	s.afterMutation()
}

func (s *Shell) doSearch(query string) {
	s.printf("Searching for '%s'...\n", query)
	matches := s.fs.Search(query)
	if len(matches) == 0 {
		s.printf("No files found\n")
	} else {
		for _, path := range matches {
			s.printf("Found: %s\n", path)
		}
	}
	s.printf("\n")
}

func (s *Shell) doDetails(name string) {
	info, err := s.fs.Stat(name)
	if err != nil {
		s.printError(err)
		return
	}
	s.printf("\n--- File Info ---\n")
	s.printf("Name: %s\n", info.Name)
	if info.Kind == mimicfs.KindDirectory {
		s.printf("Type: Directory\n")
	} else {
		s.printf("Type: File\n")
	}
	s.printf("Size: %d bytes\n", info.Size)
	s.printf("Created: %s\n", info.CreatedAt.Format(time.ANSIC))
	s.printf("Modified: %s\n", info.ModifiedAt.Format(time.ANSIC))
	s.printf("\n")
}

func (s *Shell) doTree() {
	s.printf("\n--- File System Tree ---\n")
	renderTree(s.out, s.fs)
	s.printf("\n")
}

func (s *Shell) doToggleLiveTree() {
	s.liveTree = !s.liveTree
	if s.liveTree {
		s.printf("Live tree enabled\n")
		s.doTree()
	} else {
		s.printf("Live tree disabled\n")
	}
}

func (s *Shell) doStats() {
	st := s.fs.Stats()
	s.printf("\n--- File System Statistics ---\n")
	s.printf("Total Files: %d\n", st.Files)
	s.printf("Total Directories: %d\n", st.Directories)
	s.printf("Total Size: %d bytes\n", st.TotalBytes)
	s.printf("\n")
}

// afterMutation re-renders the tree when the live tree toggle is on.
func (s *Shell) afterMutation() {
	if s.liveTree {
		s.doTree()
	}
}

// printError renders an engine error the way the session messages read.
// Non-engine errors fall through verbatim.
func (s *Shell) printError(err error) {
	code, ok := mimicfs.CodeOf(err)
	if !ok {
		s.printf("Error: %v\n", err)
		return
	}
	switch code {
	case mimicfs.ErrInvalidName:
		s.printf("Error: Invalid name\n")
	case mimicfs.ErrAlreadyExists:
		s.printf("Error: Already exists\n")
	case mimicfs.ErrFileNotFound:
		s.printf("Error: File not found\n")
	case mimicfs.ErrDirectoryNotFound:
		s.printf("Error: Directory not found\n")
	case mimicfs.ErrDirectoryNotEmpty:
		s.printf("Error: Directory not empty\n")
	default:
		s.printf("Error: %v\n", err)
	}
	s.logger.Debug().Err(err).Msg("Command failed")
}
