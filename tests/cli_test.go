package tests

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildSnaxlogBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "snaxlog")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build snaxlog binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runSnaxlog(t *testing.T, binPath, dbPath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--db", dbPath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run snaxlog command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func initDB(t *testing.T, binPath, dbPath string) {
	t.Helper()
	_, stderr, exit := runSnaxlog(t, binPath, dbPath, "init")
	if exit != 0 {
		t.Fatalf("init db failed: exit=%d stderr=%s", exit, stderr)
	}
}

func TestCLIRejectsNonPositiveServings(t *testing.T) {
	binPath := buildSnaxlogBinary(t)
	dbPath := filepath.Join(t.TempDir(), "snaxlog.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runSnaxlog(t, binPath, dbPath,
		"entry", "add",
		"--food", "Banana",
		"--servings", "0",
	)
	if exit == 0 {
		t.Fatalf("expected non-zero exit for zero servings")
	}
	if !strings.Contains(stderr, "servings") {
		t.Fatalf("expected servings error, got: %s", stderr)
	}
}

func TestCLIRejectsUnknownFood(t *testing.T) {
	binPath := buildSnaxlogBinary(t)
	dbPath := filepath.Join(t.TempDir(), "snaxlog.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runSnaxlog(t, binPath, dbPath,
		"entry", "add",
		"--food", "No such food",
	)
	if exit == 0 {
		t.Fatalf("expected non-zero exit for unknown food")
	}
	if !strings.Contains(stderr, "not found") {
		t.Fatalf("expected not-found error, got: %s", stderr)
	}
}

func TestCLIRejectsInvalidDate(t *testing.T) {
	binPath := buildSnaxlogBinary(t)
	dbPath := filepath.Join(t.TempDir(), "snaxlog.db")
	initDB(t, binPath, dbPath)

	_, _, exit := runSnaxlog(t, binPath, dbPath, "day", "--date", "02/20/2026")
	if exit == 0 {
		t.Fatalf("expected non-zero exit for invalid date format")
	}
}

func TestCLIPredefinedGoalCannotBeDeleted(t *testing.T) {
	binPath := buildSnaxlogBinary(t)
	dbPath := filepath.Join(t.TempDir(), "snaxlog.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runSnaxlog(t, binPath, dbPath, "goal", "delete", "Maintain 2000")
	if exit == 0 {
		t.Fatalf("expected non-zero exit for deleting a predefined goal")
	}
	if !strings.Contains(stderr, "predefined") {
		t.Fatalf("expected predefined error, got: %s", stderr)
	}
}
