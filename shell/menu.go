package shell

import "strings"

func (s *Shell) printLearningMenu() {
	s.printf("\n============================================\n")
	s.printf("              CLI LEARNING MODE\n")
	s.printf("============================================\n\n")
	s.printf("What do you want to do? (enter number):\n")
	s.printf("  1. See the contents of current folder\n")
	s.printf("  2. Create a new folder\n")
	s.printf("  3. Go into a folder\n")
	s.printf("  4. Go back to parent folder\n")
	s.printf("  5. Create a new file\n")
	s.printf("  6. View a file's content\n")
	s.printf("  7. Edit a file\n")
	s.printf("  8. Delete a file or folder\n")
	s.printf("  9. Find a file\n")
	s.printf(" 10. Show file details\n")
	s.printf(" 11. Show current location\n")
	s.printf(" 12. Show visual tree diagram (static)\n")
	s.printf(" 13. Enable/disable live updating tree\n")
	s.printf(" 14. Show statistics\n")
	s.printf(" 15. Switch to normal mode\n")
	s.printf(" 16. Exit\n\n")
}

// askArg prompts for a single argument, echoing what the equivalent Unix
// invocation would look like.
func (s *Shell) askArg(prompt, unixCmd string) (string, bool) {
	s.printf("%s", prompt)
	arg, ok := s.readLine()
	if !ok {
		return "", false
	}
	arg = strings.TrimSpace(arg)
	s.printf("$ %s %s\n", unixCmd, arg)
	return arg, true
}

// runLearning is the numbered-menu loop. Every choice shows the Unix command
// it corresponds to before running it, so the menu doubles as a tutorial.
func (s *Shell) runLearning() action {
	for {
		s.printLearningMenu()
		s.printf("Enter option: ")
		choice, ok := s.readLine()
		if !ok {
			return actQuit
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.printf("\n--- Unix Command: ls ---\n")
			s.printf("$ ls\n")
			s.doList()
		case "2":
			s.printf("\n--- Unix Command: mkdir ---\n")
			if arg, ok := s.askArg("Enter folder name: ", "mkdir"); ok {
				s.doCreateDir(arg)
			}
		case "3":
			s.printf("\n--- Unix Command: cd ---\n")
			if arg, ok := s.askArg("Enter folder name: ", "cd"); ok {
				s.doChangeDir(arg)
			}
		case "4":
			s.printf("\n--- Unix Command: cd .. ---\n")
			s.printf("$ cd ..\n")
			s.doChangeDir("..")
		case "5":
			s.printf("\n--- Unix Command: touch ---\n")
			if arg, ok := s.askArg("Enter file name: ", "touch"); ok {
				s.doCreateFile(arg)
			}
		case "6":
			s.printf("\n--- Unix Command: cat ---\n")
			if arg, ok := s.askArg("Enter file name: ", "cat"); ok {
				s.doViewFile(arg)
			}
		case "7":
			s.printf("\n--- Unix Command: nano ---\n")
			if arg, ok := s.askArg("Enter file name: ", "nano"); ok {
				s.doEditFile(arg)
			}
		case "8":
			s.printf("\n--- Unix Command: rm ---\n")
			if arg, ok := s.askArg("Enter file/folder name: ", "rm"); ok {
				s.doDelete(arg)
			}
		case "9":
			s.printf("\n--- Unix Command: find ---\n")
			if arg, ok := s.askArg("Enter search term: ", "find"); ok {
				s.doSearch(arg)
			}
		case "10":
			s.printf("\n--- Unix Command: stat ---\n")
			if arg, ok := s.askArg("Enter file name: ", "stat"); ok {
				s.doDetails(arg)
			}
		case "11":
			s.printf("\n--- Unix Command: pwd ---\n")
			s.printf("$ pwd\n")
			s.printf("%s\n", s.fs.CurrentPath())
		case "12":
			s.printf("\n--- Visual Tree Diagram ---\n")
			s.doTree()
		case "13":
			s.doToggleLiveTree()
		case "14":
			s.printf("\n--- Unix Command: info ---\n")
			s.printf("$ info\n")
			s.doStats()
		case "15":
			s.printf("Switching to Normal Mode...\n")
			return actSwitchMode
		case "16":
			return actQuit
		default:
			s.printf("Invalid choice. Try again.\n")
		}
	}
}
