package commands_test

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
	"taskman/internal/testutil"
)

// newTestEnv builds a config and session store backed by a temp directory.
func newTestEnv(t *testing.T) (*config.Config, *session.Store) {
	t.Helper()

	cfg := &config.Config{Dir: t.TempDir()}
	sess, err := session.Open(cfg.SessionPath())
	if err != nil {
		t.Fatalf("session open failed: %v", err)
	}
	return cfg, sess
}

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, cfg *config.Config, sess *session.Store, svc *testutil.FakeService, args []string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), cfg, sess, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func seedTasks(t *testing.T, svc *testutil.FakeService, n int) []service.Task {
	t.Helper()
	tasks := make([]service.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, svc.AddTask(service.Task{
			Title:       "Task " + string(rune('A'+i)),
			Description: "desc",
			DueDate:     "2025-01-10",
		}))
	}
	return tasks
}

// Tests for version command

func TestVersionCommand(t *testing.T) {
	cfg, sess := newTestEnv(t)
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, cfg, sess, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskman 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command

func TestHelpCommand(t *testing.T) {
	cfg, sess := newTestEnv(t)
	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, cfg, sess, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.Golden(t, "help", []byte(stdout))
}

// Tests for list command

func TestListCommand_Empty(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	cmd.SetPage(1)
	stdout, stderr, code := runCommand(t, cmd, cfg, sess, svc, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks found\npage 1/1\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestListCommand_RowsAndFooter(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	seedTasks(t, svc, 12)

	cmd := &commands.ListCmd{}
	cmd.SetPage(1)
	stdout, _, code := runCommand(t, cmd, cfg, sess, svc, nil)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 11 { // 10 rows + footer
		t.Fatalf("expected 11 lines, got %d:\n%s", len(lines), stdout)
	}
	if !strings.Contains(lines[0], "Task A") || !strings.Contains(lines[0], "pending") {
		t.Errorf("unexpected first row %q", lines[0])
	}
	if lines[10] != "page 1/2 (--page 2 for next)" {
		t.Errorf("unexpected footer %q", lines[10])
	}
}

func TestListCommand_SecondPageFooter(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	seedTasks(t, svc, 12)

	cmd := &commands.ListCmd{}
	cmd.SetPage(2)
	stdout, _, code := runCommand(t, cmd, cfg, sess, svc, nil)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if !strings.HasSuffix(stdout, "page 2/2 (--page 1 for previous)\n") {
		t.Errorf("unexpected footer in %q", stdout)
	}
}

func TestListCommand_InvalidPage(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	cmd.SetPage(0)
	_, stderr, code := runCommand(t, cmd, cfg, sess, svc, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid page number: 0\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// A rejected token clears the stored session so the next run hits the
// login guard.
func TestListCommand_ExpiredTokenClearsSession(t *testing.T) {
	cfg, sess := newTestEnv(t)
	if err := sess.Set("stale-token"); err != nil {
		t.Fatalf("session set failed: %v", err)
	}
	svc := testutil.NewFakeService()
	svc.ListTasksErr = service.NewError(service.KindAuth, "invalid or expired token")

	cmd := &commands.ListCmd{}
	cmd.SetPage(1)
	_, stderr, code := runCommand(t, cmd, cfg, sess, svc, nil)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.Contains(stderr, "run: taskman login") {
		t.Errorf("expected login hint, got %q", stderr)
	}
	if sess.IsAuthenticated() {
		t.Error("expected session to be cleared")
	}
}

// Tests for show command

func TestShowCommand(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	task := svc.AddTask(service.Task{
		Title:       "Inspect pipeline",
		Description: "Check the deploy logs",
		DueDate:     "2025-02-01T00:00:00.000Z",
		Priority:    service.PriorityHigh,
		AssignedTo:  "alice",
	})

	stdout, _, code := runCommand(t, &commands.ShowCmd{}, cfg, sess, svc, []string{task.ID})

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	for _, want := range []string{"Inspect pipeline", task.ID, "high", "2025-02-01", "alice", "Check the deploy logs"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected output to contain %q:\n%s", want, stdout)
		}
	}
}

func TestShowCommand_NotFound(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()

	_, stderr, code := runCommand(t, &commands.ShowCmd{}, cfg, sess, svc, []string{"missing"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "not found") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestShowCommand_MissingArg(t *testing.T) {
	cfg, sess := newTestEnv(t)
	_, stderr, code := runCommand(t, &commands.ShowCmd{}, cfg, sess, testutil.NewFakeService(), nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task id required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for add command

func TestAddCommand(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	cmd.SetFields("Quarterly numbers", "2025-01-10", "high", "")
	stdout, stderr, code := runCommand(t, cmd, cfg, sess, svc, []string{"Ship", "report"})

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr %q)", code, stderr)
	}
	if stdout != "created task-1\n" {
		t.Errorf("unexpected output %q", stdout)
	}

	task, err := svc.GetTask(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task.Title != "Ship report" || task.Priority != service.PriorityHigh {
		t.Errorf("unexpected task %+v", task)
	}
	if task.Status != service.StatusPending {
		t.Errorf("expected pending default, got %s", task.Status)
	}
}

func TestAddCommand_MissingTitle(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()

	_, stderr, code := runCommand(t, &commands.AddCmd{}, cfg, sess, svc, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: title required\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Calls["CreateTask"] != 0 {
		t.Error("expected no request")
	}
}

func TestAddCommand_MissingDescription(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	cmd.SetFields("", "2025-01-10", "medium", "")
	_, stderr, code := runCommand(t, cmd, cfg, sess, svc, []string{"Title"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "description required") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Calls["CreateTask"] != 0 {
		t.Error("expected validation to block the request")
	}
}

// Tests for edit command

func TestEditCommand(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	task := svc.AddTask(service.Task{Title: "Old", Description: "desc", DueDate: "2025-01-10"})

	cmd := &commands.EditCmd{}
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	cmd.RegisterFlags(fs)
	if err := fs.Parse([]string{"--title", "New", "--status", "in-progress", task.ID}); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}
	stdout, stderr, code := runCommand(t, cmd, cfg, sess, svc, fs.Args())

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr %q)", code, stderr)
	}
	if stdout != "updated "+task.ID+"\n" {
		t.Errorf("unexpected output %q", stdout)
	}

	got, _ := svc.GetTask(context.Background(), task.ID)
	if got.Title != "New" || got.Status != service.StatusInProgress {
		t.Errorf("unexpected task %+v", got)
	}
	if got.Description != "desc" {
		t.Errorf("expected untouched description, got %q", got.Description)
	}
}

func TestEditCommand_NotFound(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()

	_, stderr, code := runCommand(t, &commands.EditCmd{}, cfg, sess, svc, []string{"missing"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "not found") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if svc.Calls["UpdateTask"] != 0 {
		t.Error("expected no update after failed fetch")
	}
}

// Tests for status and done commands

func TestStatusCommand(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	task := svc.AddTask(service.Task{Title: "Toggle", Description: "d", DueDate: "2025-01-10"})

	cmd := &commands.StatusCmd{}
	cmd.SetPage(1)
	stdout, stderr, code := runCommand(t, cmd, cfg, sess, svc, []string{task.ID, "in-progress"})

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d (stderr %q)", code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	got, _ := svc.GetTask(context.Background(), task.ID)
	if got.Status != service.StatusInProgress {
		t.Errorf("expected in-progress, got %s", got.Status)
	}
}

func TestStatusCommand_InvalidStatus(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	task := svc.AddTask(service.Task{Title: "Toggle", Description: "d", DueDate: "2025-01-10"})

	cmd := &commands.StatusCmd{}
	cmd.SetPage(1)
	_, stderr, code := runCommand(t, cmd, cfg, sess, svc, []string{task.ID, "archived"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "invalid status") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDoneCommand(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	task := svc.AddTask(service.Task{Title: "Finish", Description: "d", DueDate: "2025-01-10"})

	cmd := &commands.DoneCmd{}
	cmd.SetPage(1)
	stdout, _, code := runCommand(t, cmd, cfg, sess, svc, []string{task.ID})

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if stdout != "ok\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	got, _ := svc.GetTask(context.Background(), task.ID)
	if got.Status != service.StatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}
}

// Tests for rm command

func TestRmCommand_Force(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	task := svc.AddTask(service.Task{Title: "Gone", Description: "d", DueDate: "2025-01-10"})

	cmd := &commands.RmCmd{}
	cmd.SetForce(true)
	cmd.SetPage(1)
	stdout, _, code := runCommand(t, cmd, cfg, sess, svc, []string{task.ID})

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if stdout != "ok\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	if svc.TaskCount() != 0 {
		t.Error("expected task to be deleted")
	}
}

func TestRmCommand_ConfirmYes(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	task := svc.AddTask(service.Task{Title: "Gone", Description: "d", DueDate: "2025-01-10"})

	cmd := &commands.RmCmd{}
	cmd.SetPage(1)
	cmd.SetInput(strings.NewReader("y\n"))
	stdout, stderr, code := runCommand(t, cmd, cfg, sess, svc, []string{task.ID})

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if !strings.Contains(stderr, "Delete task "+task.ID+"?") {
		t.Errorf("expected confirmation prompt, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	if svc.TaskCount() != 0 {
		t.Error("expected task to be deleted")
	}
}

func TestRmCommand_ConfirmDeclined(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()
	task := svc.AddTask(service.Task{Title: "Kept", Description: "d", DueDate: "2025-01-10"})

	cmd := &commands.RmCmd{}
	cmd.SetPage(1)
	cmd.SetInput(strings.NewReader("n\n"))
	stdout, _, code := runCommand(t, cmd, cfg, sess, svc, []string{task.ID})

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if stdout != "cancelled\n" {
		t.Errorf("unexpected output %q", stdout)
	}
	if svc.TaskCount() != 1 {
		t.Error("expected task to remain")
	}
	if svc.Calls["DeleteTask"] != 0 {
		t.Error("expected no delete request")
	}
}

func TestRmCommand_NotFound(t *testing.T) {
	cfg, sess := newTestEnv(t)
	svc := testutil.NewFakeService()

	cmd := &commands.RmCmd{}
	cmd.SetForce(true)
	cmd.SetPage(1)
	_, stderr, code := runCommand(t, cmd, cfg, sess, svc, []string{"missing"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "not found") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
