package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	view  string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) Go(ctx context.Context, view string) error {
	f.calls = append(f.calls, "go")
	f.view = view
	return nil
}
func (f *fakeExec) BrowseItems(ctx context.Context) error {
	f.calls = append(f.calls, "items")
	return nil
}
func (f *fakeExec) SearchItems(ctx context.Context) error {
	f.calls = append(f.calls, "search")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"items",
		"go orders",
		"whoami",
		"refresh",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "status" }, sc, &out)

	wantOrder := []string{"login", "items", "go", "whoami", "refresh"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.view != "orders" {
		t.Fatalf("go view = %q, want orders", exec.view)
	}
	if !strings.Contains(out.String(), "Unknown command: foobar") {
		t.Fatalf("unknown command not reported: %s", out.String())
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	input := strings.NewReader("go\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, sc, &out)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if !strings.Contains(out.String(), "Usage: go <view>") {
		t.Fatalf("usage line missing: %s", out.String())
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Fatalf("quit message missing: %s", out.String())
	}
}

func TestRunREPL_EOFExits(t *testing.T) {
	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(""))
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, sc, &out)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
