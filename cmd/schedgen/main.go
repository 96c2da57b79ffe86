// Command schedgen generates a per-CPU instruction scheduling model
// fragment from an Input JSON instruction description (spec.md §6),
// running the five-pass inference engine and emitting the result in the
// backend's target-description grammar (spec.md §4.H).
//
// CLI flag parsing is explicitly out of scope for the core subject
// (spec.md §1) and built plainly with the standard flag package per
// DESIGN.md (no flags library appears in any pack repo). The boundary
// between the library's returned errors and a process exit lives here,
// translating the teacher's own panic-with-message style
// (core/program.go) to the outermost layer instead of the library layer.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/schedgen/internal/emit"
	"github.com/sarchlab/schedgen/internal/infer"
	"github.com/sarchlab/schedgen/internal/ingest"
	"github.com/sarchlab/schedgen/internal/instr"
	"github.com/sarchlab/schedgen/internal/report"
	"github.com/sarchlab/schedgen/internal/resource"
	"github.com/sarchlab/schedgen/internal/schederr"
	"github.com/sarchlab/schedgen/internal/sched"
	"github.com/sarchlab/schedgen/internal/target"
)

func main() {
	targetName := flag.String("target", "", "target CPU: alderlake-p, sapphirerapids, skylake, skylake-avx512, icelake-server")
	inputPath := flag.String("input", "", "path to the Input JSON instruction description")
	verifyPath := flag.String("verify", "", "optional path to the Verification JSON (cross-checked after inference, warnings only)")
	outputPath := flag.String("o", "-", "output path, or - for standard out")
	overridesPath := flag.String("overrides", "", "optional path to a profile-override YAML file")
	showStats := flag.Bool("stats", false, "write a post-run summary table to stderr")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*targetName, *inputPath, *verifyPath, *outputPath, *overridesPath, *showStats, logger); err != nil {
		fmt.Fprintln(os.Stderr, "schedgen:", err)
		os.Exit(1)
	}
}

func run(targetName, inputPath, verifyPath, outputPath, overridesPath string, showStats bool, logger *slog.Logger) error {
	if targetName == "" {
		return schederr.NewConfigError("missing -target")
	}
	if inputPath == "" {
		return schederr.NewConfigError("missing -input")
	}

	profile, err := target.ByName(targetName)
	if err != nil {
		return err
	}

	reg := sched.NewRegistry()
	profile.SeedSchedWrites(reg)

	if overridesPath != "" {
		ov, err := target.LoadOverrides(overridesPath)
		if err != nil {
			return err
		}
		if err := profile.Apply(reg, ov); err != nil {
			return err
		}
	}

	src := ingest.FileSource{InputPath: inputPath, VerificationPath: verifyPath}
	instrs, measured, err := ingest.Load(src, profile, reg)
	if err != nil {
		return err
	}

	pipeline := infer.New(reg, profile, instrs, logger)
	if err := pipeline.Run(); err != nil {
		return err
	}

	crossCheckMeasured(logger, instrs, measured)

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	emitter := emit.New(reg, profile, instrs)
	if err := emitter.Emit(out); err != nil {
		return err
	}

	if showStats {
		stats := report.Collect(targetName, reg, instrs)
		report.Render(os.Stderr, stats)
	}

	return nil
}

// crossCheckMeasured compares the Verification JSON's independent
// measurements (an external tool's output, spec.md §6) against the
// inference engine's final per-instruction computed values. Mismatches
// are warnings, not fatal errors: the Verification JSON is a secondary,
// optional cross-check, not the engine's own measured-data source (that
// is the Input JSON's "Port"/"Latency"/"Uops" fields, already validated
// by pipeline.Run's own pass 4).
func crossCheckMeasured(logger *slog.Logger, instrs []*instr.Instruction, measured []*instr.Measured) {
	if len(measured) == 0 {
		return
	}
	byOpcode := make(map[string]*instr.Instruction, len(instrs))
	for _, in := range instrs {
		byOpcode[in.Opcode] = in
	}
	for _, m := range measured {
		in, ok := byOpcode[m.Opcode]
		if !ok {
			continue
		}
		if in.ComputeLatency() != m.Latency {
			logger.Warn("verification latency mismatch", "opcode", m.Opcode, "computed", in.ComputeLatency(), "measured", m.Latency)
		}
		if in.ComputeNumUops() != m.NumUops {
			logger.Warn("verification numUops mismatch", "opcode", m.Opcode, "computed", in.ComputeNumUops(), "measured", m.NumUops)
		}
		if !resource.CountEq(in.ComputeResources(), m.Resources, resource.PortSetEq) {
			logger.Warn("verification resources mismatch", "opcode", m.Opcode)
		}
	}
}

func openOutput(path string) (outputCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output %s: %w", path, err)
	}
	return f, nil
}

type outputCloser interface {
	Write(p []byte) (int, error)
	Close() error
}

type nopCloser struct{ *os.File }

func (nopCloser) Close() error { return nil }
