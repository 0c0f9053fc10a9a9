package shell

// intuitiveCommands lists every command word the intuitive mode accepts,
// used for "did you mean" hints.
var intuitiveCommands = []string{
	"list", "createfolder", "openfolder", "createfile", "editfile", "view",
	"delete", "findfile", "details", "where", "tree", "livetree", "report",
	"mode", "exit",
}

func (s *Shell) printIntuitiveMenu() {
	s.printf("============================================\n")
	s.printf("              INTUITIVE MODE\n")
	s.printf("============================================\n")
	s.printf("AVAILABLE COMMANDS:\n")
	s.printf("  list               - List files in current directory\n")
	s.printf("  createfolder [name] - Create a new folder\n")
	s.printf("  openfolder [name]  - Open a folder (.. for parent)\n")
	s.printf("  createfile [name]  - Create a new file\n")
	s.printf("  editfile [name]    - Edit file content\n")
	s.printf("  view [name]        - View file content\n")
	s.printf("  delete [name]      - Delete file/folder\n")
	s.printf("  findfile [name]    - Search for file by name\n")
	s.printf("  details [name]     - Show file details\n")
	s.printf("  where              - Show current directory path\n")
	s.printf("  tree               - Show visual tree diagram (static)\n")
	s.printf("  livetree           - Enable/disable live updating tree\n")
	s.printf("  report             - Show system statistics\n")
	s.printf("  mode               - Switch mode\n")
	s.printf("  exit               - Quit program\n\n")
}

// runIntuitive is the plain-word command loop. It returns when the user
// switches mode or quits.
func (s *Shell) runIntuitive() action {
	s.printIntuitiveMenu()

	for {
		s.printf("%s:%s> ", s.cfg.Prompt, s.fs.CurrentPath())
		line, ok := s.readLine()
		if !ok {
			return actQuit
		}
		if line == "" {
			continue
		}

		cmd, args := splitCommand(line)
		switch cmd {
		case "list":
			s.doList()
		case "createfolder":
			if args == "" {
				s.printf("Usage: createfolder [name]\n")
			} else {
				s.doCreateDir(args)
			}
		case "openfolder":
			if args == "" {
				s.printf("Usage: openfolder [name]\n")
			} else {
				s.doChangeDir(args)
			}
		case "createfile":
			if args == "" {
				s.printf("Usage: createfile [name]\n")
			} else {
				s.doCreateFile(args)
			}
		case "editfile":
			if args == "" {
				s.printf("Usage: editfile [name]\n")
			} else {
				s.doEditFile(args)
			}
		case "view":
			if args == "" {
				s.printf("Usage: view [name]\n")
			} else {
				s.doViewFile(args)
			}
		case "delete":
			if args == "" {
				s.printf("Usage: delete [name]\n")
			} else {
				s.doDelete(args)
			}
		case "findfile":
			if args == "" {
				s.printf("Usage: findfile [name]\n")
			} else {
				s.doSearch(args)
			}
		case "details":
			if args == "" {
				s.printf("Usage: details [name]\n")
			} else {
				s.doDetails(args)
			}
		case "where":
			s.printf("%s\n", s.fs.CurrentPath())
		case "tree":
			s.doTree()
		case "livetree":
			s.doToggleLiveTree()
		case "report":
			s.doStats()
		case "mode":
			return actSwitchMode
		case "exit":
			return actQuit
		default:
			s.printf("Unknown command. Type 'mode' to switch, 'exit' to quit.\n")
			s.suggestUnknown(cmd, intuitiveCommands)
		}
	}
}
