package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
	lastArgs []string
}

func (s *stubExec) record(name string, args ...string) error {
	s.calls = append(s.calls, name)
	s.lastArgs = args
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error   { return s.record("logout") }
func (s *stubExec) Whoami(ctx context.Context) error   { return s.record("whoami") }
func (s *stubExec) Profile(ctx context.Context) error  { return s.record("profile") }
func (s *stubExec) Events(ctx context.Context) error   { return s.record("events") }
func (s *stubExec) Show(ctx context.Context, args []string) error {
	return s.record("show", args...)
}
func (s *stubExec) Search(ctx context.Context, args []string) error {
	return s.record("search", args...)
}
func (s *stubExec) Upcoming(ctx context.Context) error   { return s.record("upcoming") }
func (s *stubExec) Past(ctx context.Context) error       { return s.record("past") }
func (s *stubExec) Mine(ctx context.Context) error       { return s.record("mine") }
func (s *stubExec) Categories(ctx context.Context) error { return s.record("categories") }
func (s *stubExec) Create(ctx context.Context) error     { return s.record("create") }
func (s *stubExec) Edit(ctx context.Context, args []string) error {
	return s.record("edit", args...)
}
func (s *stubExec) Delete(ctx context.Context, args []string) error {
	return s.record("delete", args...)
}
func (s *stubExec) Join(ctx context.Context, args []string) error {
	return s.record("join", args...)
}

func runLines(t *testing.T, stub *stubExec, lines ...string) []string {
	t.Helper()

	var output []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, item := range a {
			output = append(output, strings.TrimSpace(toString(item)))
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), stub, func() string { return "guest" }, scanner)
	return output
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub := &stubExec{}
	runLines(t, stub, "events", "show 5", "join 5", "search meetup", "exit")

	assert.Equal(t, []string{"events", "show", "join", "search"}, stub.calls)
	assert.Equal(t, []string{"meetup"}, stub.lastArgs)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	stub := &stubExec{}
	output := runLines(t, stub, "frobnicate", "exit")

	assert.Empty(t, stub.calls)
	assert.Contains(t, output, "Unknown command:")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	stub := &stubExec{}
	output := runLines(t, stub, "help", "exit")
	joined := strings.Join(output, "\n")
	assert.Contains(t, joined, "register, login")

	stub = &stubExec{loggedIn: true}
	output = runLines(t, stub, "help", "exit")
	joined = strings.Join(output, "\n")
	assert.Contains(t, joined, "logout")
	assert.Contains(t, joined, "join <id>")
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	stub := &stubExec{}
	runLines(t, stub, "", "   ", "events")
	// EOF without "exit" still terminates the loop.
	assert.Equal(t, []string{"events"}, stub.calls)
}
