// Command descriptor-gen compiles a directory of JSON display descriptors
// into a Go source file holding a static selector table. It is meant to run
// via go:generate; the checked-in output keeps descriptor parsing out of the
// runtime path entirely.
package main

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/clearsign-labs/clearsign/descriptor"
	"github.com/clearsign-labs/clearsign/pkg/logger"
)

func main() {
	pflag.String("dir", "descriptors", "directory containing *.json display descriptors")
	pflag.String("out", "formats_gen.go", "path of the generated Go file")
	pflag.String("pkg", "formats", "package name for the generated file")
	pflag.Parse()

	v := viper.New()
	v.SetEnvPrefix("DESCRIPTOR_GEN")
	v.AutomaticEnv()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		fatal("bind flags: ", err)
	}

	lggr, err := logger.New(zapcore.InfoLevel)
	if err != nil {
		fatal("init logger: ", err)
	}
	defer func() { _ = lggr.Sync() }()
	lggr = lggr.Named("descriptor-gen")

	dir := v.GetString("dir")
	entries, err := descriptor.CollectEntries(os.DirFS(dir))
	if err != nil {
		lggr.Errorw("Failed to collect descriptor entries", "dir", dir, "err", err)
		os.Exit(1)
	}
	lggr.Infow("Collected descriptor entries", "dir", dir, "entries", len(entries))

	src, err := descriptor.Generate(v.GetString("pkg"), entries)
	if err != nil {
		lggr.Errorw("Failed to generate source", "err", err)
		os.Exit(1)
	}

	out := v.GetString("out")
	if err := os.WriteFile(out, src, 0o644); err != nil {
		lggr.Errorw("Failed to write output", "out", out, "err", err)
		os.Exit(1)
	}
	lggr.Infow("Wrote selector table", "out", out, "bytes", len(src))
}

func fatal(msg string, err error) {
	os.Stderr.WriteString(msg + err.Error() + "\n")
	os.Exit(1)
}
