package app

import (
	"flag"
	"io"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("dla", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{"-scale", "3", "-seed", "9", "-config", "run.yaml", "-set", "particles=500", "-set", " w = 128 "}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Scale != 3 || cfg.Seed != 9 || cfg.Sim != "dla" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	opts := cfg.SimOptions()
	want := map[string]string{"config": "run.yaml", "particles": "500", "w": "128"}
	if len(opts) != len(want) {
		t.Fatalf("SimOptions = %v, want %v", opts, want)
	}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("SimOptions[%q] = %q, want %q", k, opts[k], v)
		}
	}
}

func TestConfigRejectsMalformedSet(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("dla", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "particles"}); err == nil {
		t.Fatal("expected -set without '=' to fail")
	}
}
