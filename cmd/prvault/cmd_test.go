// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Covers spec parsing, flags, and end-to-end command execution.
package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/storage"
)

func TestParseExerciseSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Exercise
		wantErr bool
	}{
		{
			name:  "basic spec",
			input: "Bench Press:3:10",
			want:  models.Exercise{Name: "Bench Press", Sets: 3, Reps: 10},
		},
		{
			name:  "trims name whitespace",
			input: " Squat :5:5",
			want:  models.Exercise{Name: "Squat", Sets: 5, Reps: 5},
		},
		{
			name:    "missing reps",
			input:   "Bench Press:3",
			wantErr: true,
		},
		{
			name:    "too many fields",
			input:   "Bench:3:10:extra",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   ":3:10",
			wantErr: true,
		},
		{
			name:    "zero sets",
			input:   "Bench:0:10",
			wantErr: true,
		},
		{
			name:    "non-numeric reps",
			input:   "Bench:3:ten",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseExerciseSpec(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseExerciseSpec(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseExerciseSpec(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseExerciseSpec(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSetSpec(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIndex  int
		wantReps   string
		wantWeight string
		wantErr    bool
	}{
		{
			name:       "index reps weight",
			input:      "0:10:80",
			wantIndex:  0,
			wantReps:   "10",
			wantWeight: "80",
		},
		{
			name:      "index reps only",
			input:     "3:8",
			wantIndex: 3,
			wantReps:  "8",
		},
		{
			name:       "decimal weight",
			input:      "1:8:77.5",
			wantIndex:  1,
			wantReps:   "8",
			wantWeight: "77.5",
		},
		{
			name:    "missing reps",
			input:   "2",
			wantErr: true,
		},
		{
			name:    "negative index",
			input:   "-1:10",
			wantErr: true,
		},
		{
			name:    "non-numeric index",
			input:   "one:10",
			wantErr: true,
		},
		{
			name:    "too many fields",
			input:   "0:10:80:extra",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, reps, weight, err := parseSetSpec(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseSetSpec(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseSetSpec(%q) unexpected error: %v", tt.input, err)
			}
			if index != tt.wantIndex || reps != tt.wantReps || weight != tt.wantWeight {
				t.Errorf("parseSetSpec(%q) = (%d, %q, %q), want (%d, %q, %q)",
					tt.input, index, reps, weight, tt.wantIndex, tt.wantReps, tt.wantWeight)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world this is long", 10, "hello w..."},
		{"", 10, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"hi", 5, "hi   "},
		{"hello", 5, "hello"},
		{"hello world", 5, "hello world"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestRootCmdWiring(t *testing.T) {
	if rootCmd.Use != "prvault" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "prvault")
	}

	expected := []string{
		"register", "login", "logout", "whoami",
		"profile", "bodyweight", "workout", "session",
		"stats", "program", "settings", "account", "mcp",
	}
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range expected {
		if !names[want] {
			t.Errorf("Expected command %q to be registered", want)
		}
	}
}

func TestWorkoutCmdSubcommands(t *testing.T) {
	expected := []string{"create", "delete", "history", "list", "show"}

	names := make(map[string]bool)
	for _, cmd := range workoutCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range expected {
		if !names[want] {
			t.Errorf("Expected workout subcommand %q not found", want)
		}
	}
}

func TestSettingsCmdSubcommands(t *testing.T) {
	expected := []string{"accent", "notifications", "show", "theme"}

	names := make(map[string]bool)
	for _, cmd := range settingsCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range expected {
		if !names[want] {
			t.Errorf("Expected settings subcommand %q not found", want)
		}
	}
}

func TestWorkoutCreateCmdFlags(t *testing.T) {
	if workoutCreateCmd.Flags().Lookup("exercise") == nil {
		t.Error("Expected --exercise flag on workout create command")
	}
	if workoutCreateCmd.Flags().Lookup("description") == nil {
		t.Error("Expected --description flag on workout create command")
	}
}

func TestSessionCmdFlags(t *testing.T) {
	if sessionCmd.Flags().Lookup("set") == nil {
		t.Error("Expected --set flag on session command")
	}
}

func TestProgramCmdFlags(t *testing.T) {
	flag := programCmd.Flags().Lookup("week")
	if flag == nil {
		t.Fatal("Expected --week flag on program command")
	}
	if flag.DefValue != "1" {
		t.Errorf("Expected default week 1, got %s", flag.DefValue)
	}
}

// setupTestCLI redirects data and config to a temp directory so commands
// run against a throwaway database and keyring.
func setupTestCLI(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	// Reset flag state left over from earlier executions.
	authPassword = ""
	workoutExercises = nil
	workoutDescription = ""
	sessionSets = nil

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	return tmpDir
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRegisterAndWhoami(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := runCLI(t, "whoami"); err != nil {
		t.Errorf("whoami after register failed: %v", err)
	}
}

func TestWhoamiWithoutLogin(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "whoami"); err == nil {
		t.Error("Expected error for whoami without login")
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := runCLI(t, "logout"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := runCLI(t, "whoami"); err == nil {
		t.Error("Expected error for whoami after logout")
	}
	if err := runCLI(t, "login", "alice", "--password", "wrong"); err == nil {
		t.Error("Expected error for wrong password")
	}
	if err := runCLI(t, "login", "alice", "--password", "hunter2"); err != nil {
		t.Errorf("login failed: %v", err)
	}
}

func TestWorkoutCreateAndList(t *testing.T) {
	tmpDir := setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	workoutExercises = nil
	if err := runCLI(t, "workout", "create", "Push Day",
		"-e", "Bench Press:3:10", "-e", "Dips:3:8"); err != nil {
		t.Fatalf("workout create failed: %v", err)
	}
	if err := runCLI(t, "workout", "list"); err != nil {
		t.Errorf("workout list failed: %v", err)
	}

	// Verify the template landed in the database.
	db, err := storage.Open(filepath.Join(tmpDir, "prvault", "prvault.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	err = db.FetchFirst(t.Context(), func(r storage.Row) error {
		return r.Scan(&count)
	}, "SELECT COUNT(*) FROM workouts")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 workout, got %d", count)
	}
}

func TestWorkoutCreateRequiresExercises(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	workoutExercises = nil
	if err := runCLI(t, "workout", "create", "Empty Day"); err == nil {
		t.Error("Expected error for create without exercises")
	}
}

func TestProfileSetAndShow(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := runCLI(t, "profile", "set", "--bench", "100", "--bodyweight", "72"); err != nil {
		t.Fatalf("profile set failed: %v", err)
	}
	if err := runCLI(t, "profile", "show"); err != nil {
		t.Errorf("profile show failed: %v", err)
	}
	if err := runCLI(t, "bodyweight"); err != nil {
		t.Errorf("bodyweight failed: %v", err)
	}
}

func TestStatsCmd(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := runCLI(t, "stats"); err != nil {
		t.Errorf("stats failed: %v", err)
	}
}

func TestProgramRequiresPRs(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := runCLI(t, "program"); err == nil {
		t.Error("Expected error for program with no PRs")
	}

	if err := runCLI(t, "profile", "set", "--bench", "100", "--squat", "140", "--deadlift", "180"); err != nil {
		t.Fatalf("profile set failed: %v", err)
	}
	if err := runCLI(t, "program", "--week", "3"); err != nil {
		t.Errorf("program failed: %v", err)
	}
}

func TestSettingsFlow(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := runCLI(t, "settings", "show"); err != nil {
		t.Errorf("settings show failed: %v", err)
	}
	if err := runCLI(t, "settings", "theme", "light"); err != nil {
		t.Errorf("settings theme failed: %v", err)
	}
	if err := runCLI(t, "settings", "accent", "lime"); err != nil {
		t.Errorf("settings accent failed: %v", err)
	}
	if err := runCLI(t, "settings", "accent", "neon"); err == nil {
		t.Error("Expected error for unknown accent")
	}
	if err := runCLI(t, "settings", "notifications", "off"); err != nil {
		t.Errorf("settings notifications failed: %v", err)
	}
}

func TestAccountDelete(t *testing.T) {
	setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := runCLI(t, "account", "delete", "--yes"); err != nil {
		t.Fatalf("account delete failed: %v", err)
	}
	if err := runCLI(t, "login", "alice", "--password", "hunter2"); err == nil {
		t.Error("Expected login to fail after account deletion")
	}
}

func TestSessionFlow(t *testing.T) {
	tmpDir := setupTestCLI(t)

	if err := runCLI(t, "register", "alice", "--password", "hunter2"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	workoutExercises = nil
	if err := runCLI(t, "workout", "create", "Push Day", "-e", "Bench Press:2:10"); err != nil {
		t.Fatalf("workout create failed: %v", err)
	}

	// Find the template ID.
	db, err := storage.Open(filepath.Join(tmpDir, "prvault", "prvault.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	var wid string
	err = db.FetchFirst(t.Context(), func(r storage.Row) error {
		return r.Scan(&wid)
	}, "SELECT id FROM workouts")
	db.Close()
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	// Plan view with no sets.
	sessionSets = nil
	if err := runCLI(t, "session", wid[:8]); err != nil {
		t.Fatalf("session plan failed: %v", err)
	}

	// Record one completed set.
	sessionSets = nil
	if err := runCLI(t, "session", wid[:8], "--set", "0:10:80"); err != nil {
		t.Fatalf("session record failed: %v", err)
	}

	if err := runCLI(t, "workout", "history"); err != nil {
		t.Errorf("workout history failed: %v", err)
	}

	db, err = storage.Open(filepath.Join(tmpDir, "prvault", "prvault.db"))
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	var logs, sets int
	if err := db.FetchFirst(t.Context(), func(r storage.Row) error {
		return r.Scan(&logs)
	}, "SELECT COUNT(*) FROM workout_logs"); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if err := db.FetchFirst(t.Context(), func(r storage.Row) error {
		return r.Scan(&sets)
	}, "SELECT COUNT(*) FROM workout_sets"); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if logs != 1 || sets != 1 {
		t.Errorf("Expected 1 log and 1 set, got %d and %d", logs, sets)
	}
}
