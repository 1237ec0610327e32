package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/atomicstack/tmux-ggg/internal/app"
	"github.com/atomicstack/tmux-ggg/internal/cli"
)

func TestReportExitCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"config", &cli.ConfigError{Err: errors.New("bad data dir")}, 2},
		{"wrapped config", fmt.Errorf("prepare: %w", &cli.ConfigError{Err: errors.New("bad")}), 2},
		{"no roots", &app.NoRootsError{App: "tmux-ggg"}, 1},
		{"missing roots", &app.MissingRootsError{Paths: []string{"/gone"}}, 1},
		{"tmux", errors.New("create session: exit status 1"), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := report(tc.err); got != tc.want {
				t.Fatalf("expected exit %d, got %d", tc.want, got)
			}
		})
	}
}
