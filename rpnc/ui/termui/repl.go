package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/rpn"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]\n"
var stdprompt = prtxt.FgGreen.Sprintf("%s", "%s> ")

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
//
// The REPL handles a couple of administrative commands itself (help, bye, mode,
// setprompt) and delegates every other line of input to its Interpreter.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	toolname    string
	version     string
	editmode    string
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive commands.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// NewBaseREPL creates a new REPL base object initialized for an interpreter tool
// and a given version.
func NewBaseREPL(toolname, version string) *BaseREPL {
	return &BaseREPL{
		readline: newReadline(toolname),
		toolname: toolname,
		version:  version,
		editmode: "emacs",
	}
}

func newReadline(toolname string) *readline.Instance {
	histfile := filepath.Join(os.TempDir(), toolname+"-repl-history.tmp")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              fmt.Sprintf(stdprompt, toolname),
		HistoryFile:         histfile,
		AutoComplete:        replCompleter,
		InterruptPrompt:     "^C",
		EOFPrompt:           "bye",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// Completer-tree for administrative commands and interpreter statements
var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("bye"),
	readline.PcItem("mode",
		readline.PcItem("vi"),
		readline.PcItem("emacs"),
	),
	readline.PcItem("setprompt"),
	readline.PcItem("verbose",
		readline.PcItem("on"),
		readline.PcItem("off"),
	),
	readline.PcItem("examples"),
)

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt reads lines of input until the user says "bye" or closes the input.
// If exitOnBye is set, the application will be terminated afterwards.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	fmt.Fprintf(repl.readline.Stderr(), welcomeMessage, repl.toolname, repl.version)
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if quit := repl.dispatch(strings.TrimSpace(line)); quit {
			break
		}
	}
	if exitOnBye {
		rpn.Exit(0)
	}
}

// dispatch executes an administrative command or hands the line to the
// interpreter. It returns true if the REPL should terminate.
func (repl *BaseREPL) dispatch(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	stderr := repl.readline.Stderr()
	switch words[0] {
	case "help":
		repl.displayCommands(stderr)
		if repl.Helper != nil {
			repl.Helper(stderr)
		}
	case "bye":
		io.WriteString(stderr, "> goodbye!\n")
		return true
	case "mode":
		if len(words) > 1 && (words[1] == "vi" || words[1] == "emacs") {
			repl.editmode = words[1]
			repl.readline.SetVimMode(repl.editmode == "vi")
		}
		fmt.Fprintf(stderr, "> current input mode: %s\n", repl.editmode)
	case "setprompt":
		prompt := fmt.Sprintf(stdprompt, repl.toolname)
		if len(words) > 1 {
			prompt = strings.TrimSpace(strings.TrimPrefix(line, "setprompt")) + " "
		}
		repl.readline.SetPrompt(prompt)
	default:
		trace().Debugf("call interpreter on: %q", line)
		if repl.Interpreter != nil {
			repl.Interpreter.InterpretCommand(line)
		}
	}
	return false
}

func (repl *BaseREPL) displayCommands(out io.Writer) {
	fmt.Fprintf(out, welcomeMessage, repl.toolname, repl.version)
	io.WriteString(out, "\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
