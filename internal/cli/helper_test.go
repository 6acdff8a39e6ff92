package cli

import (
	"bytes"
	"time"

	"github.com/spf13/cobra"

	"github.com/arun-karra/release-notes/internal/app"
	"github.com/arun-karra/release-notes/internal/domain"
	"github.com/arun-karra/release-notes/internal/testutil"
)

// frozenTime is the clock value used by command tests.
var frozenTime = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

// newTestContainer builds a container with mock ports and default config.
func newTestContainer(cfg *domain.Config) (*app.Container, *testutil.MockReleaseStore, *testutil.MockConfigManager) {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	store := testutil.NewMockReleaseStore()
	manager := &testutil.MockConfigManager{
		Local:  domain.ConfigInfo{Path: "/work/relnotes.toml"},
		Global: domain.ConfigInfo{Path: "/home/u/.config/relnotes/config.toml"},
	}
	c := app.NewWithDeps(cfg, store, &testutil.MockConfigLoader{Config: cfg}, manager, &testutil.MockClock{NowTime: frozenTime}, testutil.NopLogger{})
	return c, store, manager
}

// execute runs the command and captures stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
