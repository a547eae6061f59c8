package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/rpn"
	"github.com/npillmayer/rpn/corelang"
	"github.com/npillmayer/rpn/rpnc/ui/termui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rpnc [flags] [expression…]",
	Short: "A calculator for Reverse Polish Notation",
	Long: `Welcome to rpnc V` + version + `

rpnc evaluates arithmetic expressions in Reverse Polish Notation (postfix).
Operands and the operators + - * / ^ are separated by whitespace:

    rpnc 3 4 + 5 '*'        ⟹  35

If called with arguments, rpnc evaluates them as one expression. Use '--' in
front of an expression starting with a negative number. Without arguments,
rpnc prompts for expressions in a terminal REPL.

`,
	Args: cobra.ArbitraryArgs,
	Run:  runRPNCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by rpnc.main().
func Execute() {
	rootCmd.AddCommand(examplesCmd)
	if rootCmd.Execute() != nil {
		rpn.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	flags := rootCmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Force run in interactive mode")
	flags.BoolP("verbose", "v", false, "Show evaluation steps")
	flags.Int("capacity", corelang.DefaultCapacity, "Capacity of the operand stack")
	flags.String("locale", "en", "Language for messages (en, pt-BR)")
	flags.StringP("file", "f", "", "Evaluate expressions from a file, one per line ('-' for stdin)")
	flags.String("logfile", "stderr", "URL of log output location")
	// stop flag parsing at the first operand, so '3 -5 +' works
	rootCmd.Flags().SetInterspersed(false)
}

func runRPNCmd(cmd *cobra.Command, args []string) {
	conf := settingsFrom(rpn.Configuration)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if rpn.Configuration != nil {
		if file := rpn.Configuration.String("file"); file != "" {
			rpn.Exit(runBatchFile(newSession(conf, false, stdout, stderr), file))
		}
		if rpn.Configuration.Bool("interactive") {
			args = nil
		}
	}
	if len(args) > 0 {
		tracer().Debugf("rpnc evaluating arguments %v", args)
		if err := newSession(conf, false, stdout, stderr).evalArgs(args); err != nil {
			rpn.Exit(1)
		}
		return
	}
	runRPNCmdIntpr(conf)
}

func runBatchFile(s *session, file string) int {
	var in io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			fmt.Fprintf(s.errout, "cannot open expression file: %v\n", err)
			return 2
		}
		defer f.Close()
		in = f
	}
	failed, err := s.runBatch(rpn.SignalContext, in)
	if err != nil {
		fmt.Fprintln(s.errout, err.Error())
		return 2
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// --- REPL ------------------------------------------------------------------

func runRPNCmdIntpr(conf settings) {
	tracing.Infof("rpnc interpreter called")
	intp := &rpnCmdIntpr{}
	intp.BaseREPL = termui.NewBaseREPL("rpnc", version)
	intp.Interpreter = intp
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, `
rpnc will interpret the following statements:

  <expression>       : evaluate an RPN expression, e.g. 3 4 + 5 *
  verbose [on|off]   : display or set display of evaluation steps
  examples           : list example expressions

`)
	}
	stdout, stderr := intp.Outputs()
	intp.session = newSession(conf, true, stdout, stderr)
	intp.Prompt(true)
}

type rpnCmdIntpr struct {
	*termui.BaseREPL
	session *session
}

// InterpretCommand evaluates an expression or executes one of the
// calculator's statements.
func (intp *rpnCmdIntpr) InterpretCommand(command string) {
	tracer().Debugf("rpn interpreter: %q", command)
	command = strings.TrimSpace(strings.Trim(command, "\x00"))
	words := strings.Fields(command)
	if len(words) == 0 {
		return
	}
	s := intp.session
	switch words[0] {
	case "verbose":
		if len(words) > 1 {
			s.verbose = words[1] == "on"
		}
		state := msgOff
		if s.verbose {
			state = msgOn
		}
		p := s.format.printer
		s.format.Format(p.Sprintf(msgVerbose, p.Sprintf(state)), s.out)
	case "examples":
		s.listExamples()
	default:
		s.eval("", command)
	}
}
