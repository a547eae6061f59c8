package cli

import (
	"fmt"

	"github.com/npillmayer/rpn"
	"github.com/spf13/cobra"
)

type example struct {
	infix string
	rpn   string
}

var examples = []example{
	{"(3 + 4) * 5", "3 4 + 5 *"},
	{"5 + ((1 + 2) * 4) - 3", "5 1 2 + 4 * + 3 -"},
	{"15 / (7 - (1 + 1)) * 3 - (2 + (1 + 1))", "15 7 1 1 + - / 3 * 2 1 1 + + -"},
	{"(1 + 2) * (3 + 4)", "1 2 + 3 4 + *"},
	{"(4 + 2) + 3 * (5 - 1)", "4 2 + 3 5 1 - * +"},
	{"2 ^ (3 ^ 2)", "2 3 2 ^ ^"},
	{"-5 - 3", "-5 3 -"},
	{"1 / 3", "1 3 /"},
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List example expressions",
	Long: `List example expressions in infix and in Reverse Polish Notation,
together with their values.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession(settingsFrom(rpn.Configuration), false, cmd.OutOrStdout(), cmd.ErrOrStderr())
		s.listExamples()
	},
}

func (s *session) listExamples() {
	tw := s.format.examplesTable(s.ev, examples)
	fmt.Fprintln(s.out, tw.Render())
}
