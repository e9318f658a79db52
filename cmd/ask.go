package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"monastery-guide/internal/domain"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the monastery guide a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		sid := a.chat.StartSession()
		defer a.chat.EndSession(sid)

		view := newTerminalView(cmd.OutOrStdout(), cmd.ErrOrStderr())
		_, err = a.chat.Submit(cmd.Context(), view, sid, strings.Join(args, " "))
		return err
	},
}

// terminalView prints bot replies as rendered markdown. The user's own
// bubble is not echoed.
type terminalView struct {
	out      io.Writer
	status   io.Writer
	renderer *glamour.TermRenderer
}

func newTerminalView(out, status io.Writer) *terminalView {
	v := &terminalView{out: out, status: status}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		v.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	}
	return v
}

func (v *terminalView) AppendBubble(turn domain.Turn, _ string) {
	if turn.Role != domain.RoleBot {
		return
	}
	if v.renderer != nil {
		if rendered, err := v.renderer.Render(turn.Content); err == nil {
			fmt.Fprint(v.out, rendered)
			return
		}
	}
	fmt.Fprintln(v.out, turn.Content)
}

func (v *terminalView) ShowTyping() {
	fmt.Fprint(v.status, "thinking...")
}

func (v *terminalView) HideTyping() {
	fmt.Fprint(v.status, "\r           \r")
}
