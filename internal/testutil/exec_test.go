package testutil

import (
	"context"
	"fmt"
	"testing"
)

func TestFakeCommander_ExactMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("oh-my-posh --version", "24.11.4\n", nil)

	out, err := fc.Run(context.Background(), "oh-my-posh", "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "24.11.4\n" {
		t.Errorf("got %q, want %q", string(out), "24.11.4\n")
	}
}

func TestFakeCommander_PrefixMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("oh-my-posh print primary", "❯ ", nil)

	out, err := fc.Run(context.Background(), "oh-my-posh", "print", "primary", "--config=/t.json", "--shell=xonsh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "❯ " {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestFakeCommander_NoMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()

	_, err := fc.Run(context.Background(), "unknown", "command")
	if err == nil {
		t.Fatal("expected error for unregistered command")
	}
}

func TestFakeCommander_DefaultResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{Output: []byte("default"), Err: nil}

	out, err := fc.Run(context.Background(), "any", "command")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "default" {
		t.Errorf("got %q, want %q", string(out), "default")
	}
}

func TestFakeCommander_ErrorResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("oh-my-posh print right", "partial", fmt.Errorf("exit status 1"))

	out, err := fc.Run(context.Background(), "oh-my-posh", "print", "right")
	if err == nil {
		t.Fatal("expected error")
	}
	if string(out) != "partial" {
		t.Errorf("got %q, want %q", string(out), "partial")
	}
}

func TestFakeCommander_RunWithEnv_RecordsEnvCalls(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{}

	fc.RunWithEnv(context.Background(), map[string]string{"POSH_PID": "one"}, "oh-my-posh", "print", "primary")
	fc.RunWithEnv(context.Background(), nil, "oh-my-posh", "print", "right")

	if len(fc.EnvCalls) != 2 {
		t.Fatalf("expected 2 EnvCalls, got %d", len(fc.EnvCalls))
	}
	if fc.EnvCalls[0]["POSH_PID"] != "one" {
		t.Errorf("EnvCalls[0] POSH_PID: got %q, want %q", fc.EnvCalls[0]["POSH_PID"], "one")
	}
	if fc.LastEnv() != nil {
		t.Errorf("expected nil LastEnv, got %v", fc.LastEnv())
	}
	if fc.CallCount("oh-my-posh print") != 2 {
		t.Errorf("expected 2 print calls, got %d", fc.CallCount("oh-my-posh print"))
	}
}

func TestFakeCommander_Start(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	if err := fc.Start("oh-my-posh", "upgrade"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Started) != 1 || fc.Started[0] != "oh-my-posh upgrade" {
		t.Errorf("unexpected Started: %v", fc.Started)
	}
	if fc.Called("oh-my-posh upgrade") {
		t.Error("Start must not be recorded as a synchronous call")
	}

	fc.StartErr = fmt.Errorf("boom")
	if err := fc.Start("oh-my-posh", "upgrade"); err == nil {
		t.Fatal("expected StartErr")
	}
}
