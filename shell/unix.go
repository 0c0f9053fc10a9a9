package shell

// unixCommands lists every command word the full CLI mode accepts, used for
// "did you mean" hints.
var unixCommands = []string{
	"ls", "mkdir", "cd", "touch", "cat", "nano", "rm", "find", "stat",
	"pwd", "tree", "livetree", "info", "help", "mode", "exit", "quit",
}

func (s *Shell) printUnixMenu() {
	s.printf("============================================\n")
	s.printf("        FULL CLI MODE\n")
	s.printf("     Use Real Unix Commands!\n")
	s.printf("============================================\n")
	s.printf("AVAILABLE COMMANDS:\n")
	s.printf("  ls                 - List directory\n")
	s.printf("  mkdir [name]       - Create folder\n")
	s.printf("  cd [name]          - Change directory (.. for parent)\n")
	s.printf("  touch [name]       - Create file\n")
	s.printf("  cat [name]         - View file\n")
	s.printf("  nano [name]        - Edit file\n")
	s.printf("  rm [name]          - Delete file/folder\n")
	s.printf("  find [name]        - Search for file\n")
	s.printf("  stat [name]        - Show file details\n")
	s.printf("  pwd                - Show current path\n")
	s.printf("  tree               - Show visual tree diagram (static)\n")
	s.printf("  livetree           - Enable/disable live updating tree\n")
	s.printf("  info               - Show statistics\n")
	s.printf("  mode               - Switch mode\n")
	s.printf("  exit               - Quit\n\n")
}

// runUnix is the real-command loop with a "$ " prompt. It returns when the
// user switches mode or quits.
func (s *Shell) runUnix() action {
	s.printUnixMenu()

	for {
		s.printf("$ ")
		line, ok := s.readLine()
		if !ok {
			return actQuit
		}
		if line == "" {
			continue
		}

		cmd, args := splitCommand(line)
		switch cmd {
		case "ls":
			s.doList()
		case "mkdir":
			if args == "" {
				s.printf("mkdir: missing operand\n")
			} else {
				s.doCreateDir(args)
			}
		case "cd":
			if args == "" {
				s.printf("cd: missing operand\n")
			} else {
				s.doChangeDir(args)
			}
		case "touch":
			if args == "" {
				s.printf("touch: missing operand\n")
			} else {
				s.doCreateFile(args)
			}
		case "cat":
			if args == "" {
				s.printf("cat: missing operand\n")
			} else {
				s.doViewFile(args)
			}
		case "nano":
			if args == "" {
				s.printf("nano: missing operand\n")
			} else {
				s.doEditFile(args)
			}
		case "rm":
			if args == "" {
				s.printf("rm: missing operand\n")
			} else {
				s.doDelete(args)
			}
		case "find":
			if args == "" {
				s.printf("find: missing operand\n")
			} else {
				s.doSearch(args)
			}
		case "stat":
			if args == "" {
				s.printf("stat: missing operand\n")
			} else {
				s.doDetails(args)
			}
		case "pwd":
			s.printf("%s\n", s.fs.CurrentPath())
		case "tree":
			s.doTree()
		case "livetree":
			s.doToggleLiveTree()
		case "info":
			s.doStats()
		case "help":
			s.printf("AVAILABLE COMMANDS:\n")
			s.printf("  ls, mkdir, cd, touch, cat, nano, rm, find, stat, pwd, info\n")
			s.printf("  mode (switch), exit (quit)\n\n")
		case "mode":
			s.printf("Switching mode...\n")
			return actSwitchMode
		case "exit", "quit":
			return actQuit
		default:
			s.printf("Command not found: %s\n", cmd)
			s.suggestUnknown(cmd, unixCommands)
		}
	}
}
