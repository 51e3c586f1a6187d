package convert

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"phb/config"
	"phb/pod"
	"phb/state"
)

func testEnvContext(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("unable to load default configuration: %v", err)
	}
	env.Cfg = cfg
	env.Log = zap.NewNop()
	return ctx, env
}

func testPodDoc(t *testing.T, name, src string) *pod.Document {
	t.Helper()
	d, err := pod.Read(strings.NewReader(src), name, zap.NewNop())
	if err != nil {
		t.Fatalf("unable to read test tree: %v", err)
	}
	return d
}
