package cmd

import (
	"fmt"
	"os"

	"github.com/cairnforge/envrex/internal/command"
	"github.com/cairnforge/envrex/internal/config"
	"github.com/cairnforge/envrex/internal/dsl"
	"github.com/cairnforge/envrex/internal/recorder"
	"github.com/cairnforge/envrex/internal/session"
)

// evalScript loads cfg from configPath (best-effort) and runs the DSL
// source at scriptPath, returning the resulting command log, the
// session stamped on this evaluation, and the loaded config.
func evalScript(scriptPath string) ([]command.Command, session.Session, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, session.Session{}, config.Config{}, err
	}

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, session.Session{}, cfg, fmt.Errorf("cmd: read %s: %w", scriptPath, err)
	}

	rec := recorder.New()
	ns := dsl.New(rec)
	sess := session.New(scriptPath)
	if err := ns.Attrs.Set("session", sess); err != nil {
		return nil, sess, cfg, fmt.Errorf("cmd: stamp session: %w", err)
	}

	if err := dsl.Exec(string(src), ns); err != nil {
		return nil, sess, cfg, fmt.Errorf("cmd: evaluate %s: %w", scriptPath, err)
	}
	return rec.Snapshot(), sess, cfg, nil
}

// parseSepFlags parses ["K=V", ...] into a map, for render's --sep flag.
func parseSepFlags(flags []string) (map[string]string, error) {
	out := make(map[string]string, len(flags))
	for _, f := range flags {
		idx := -1
		for i := 0; i < len(f); i++ {
			if f[i] == '=' {
				idx = i
				break
			}
		}
		if idx <= 0 {
			return nil, fmt.Errorf("cmd: invalid --sep value %q, want KEY=SEP", f)
		}
		out[f[:idx]] = f[idx+1:]
	}
	return out, nil
}
