package command

import (
	"context"
	"testing"
	"time"
)

func TestValidateRepoPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid path", "/path/to/repo", false},
		{"relative path", "relative/repo", false},
		{"path with spaces", "/home/user/my repo", false},
		{"command injection semicolon", "/repo; rm -rf /", true},
		{"command injection pipe", "/repo | cat", true},
		{"command injection ampersand", "/repo & echo", true},
		{"command injection dollar", "$(whoami)", true},
		{"command injection backtick", "`whoami`", true},
		{"empty path", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRepoPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRepoPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGitRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"branch name", "main", false},
		{"slashed branch", "feature/scan-depth", false},
		{"tag", "v1.2.3", false},
		{"commit hash", "a1b2c3d", false},
		{"empty ref", "", true},
		{"spaces", "my branch", true},
		{"injection", "main; rm -rf /", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGitRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateGitRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	sb := NewSafeBuilder()

	t.Run("empty command name", func(t *testing.T) {
		_, err := sb.Build(context.Background(), "")
		if err == nil {
			t.Error("expected error for empty command name")
		}
	})

	t.Run("valid command", func(t *testing.T) {
		cmd, err := sb.Build(context.Background(), "git", "status", "--short")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.name != "git" {
			t.Errorf("expected name git, got %s", cmd.name)
		}
		if len(cmd.args) != 2 {
			t.Errorf("expected 2 args, got %d", len(cmd.args))
		}
	})

	t.Run("timeout capped at max", func(t *testing.T) {
		cmd, err := sb.Build(context.Background(), "git")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cmd = cmd.WithTimeout(time.Hour)
		if cmd.timeout != MaxTimeout {
			t.Errorf("expected timeout capped at %v, got %v", MaxTimeout, cmd.timeout)
		}
	})

	t.Run("unknown validator", func(t *testing.T) {
		if err := sb.Validate("unknown", "x"); err == nil {
			t.Error("expected error for unknown validator type")
		}
	})
}
