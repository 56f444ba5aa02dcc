package cmd

import (
	"fmt"
	"runtime"
	rdebug "runtime/debug"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/blackwood/internal/config"
	"github.com/oakwood-commons/blackwood/pkg/settings"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print blackwood version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return nil
		},
	}
}

// buildVersion returns the version stamped by ldflags, the module version,
// or the short VCS revision, in that order of preference.
func buildVersion() string {
	version := settings.VersionInformation.BuildVersion
	if version != "" && version != "v0.0.0-nightly" {
		return version
	}
	info, ok := rdebug.ReadBuildInfo()
	if !ok {
		return version
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return version
}

func versionString() string {
	cfg, _ := config.Default()
	name := cfg.About.Name
	if name == "" {
		name = settings.CliBinaryName
	}
	version := cfg.About.Version
	if version == "" {
		version = buildVersion()
	}
	return fmt.Sprintf("%s %s (go %s)", name, version, runtime.Version())
}
