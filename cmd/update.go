package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build information injected by the linker
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// currentVersion parses the running version. Development builds have none.
func currentVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("development build %q has no release version", version)
	}
	return v, nil
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipClient: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "fredctl %s (built %s, %s %s/%s)\n",
			version, buildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

var checkOnly bool

var updateCmd = &cobra.Command{
	Use:         "update",
	Short:       "Update fredctl to the latest release",
	Long:        `Download the latest GitHub release of fredctl and replace the running binary.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipClient: "true"},
	RunE:        runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check whether an update is available")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	current, err := currentVersion()
	if err != nil {
		return err
	}

	repo := cfg.Update.Repository
	logger.Debug().Str("repository", repo).Str("current", current.String()).Msg("Checking for updates")

	latest, found, err := selfupdate.DetectLatest(cmd.Context(), selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return errors.New("no release found for " + runtime.GOOS + "/" + runtime.GOARCH)
	}

	latestVersion, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("latest release has invalid version %q: %w", latest.Version(), err)
	}

	if current.GTE(latestVersion) {
		fmt.Fprintf(out, "✓ fredctl %s is up to date\n", current)
		return nil
	}

	fmt.Fprintf(out, "New version available: %s -> %s\n", current, latestVersion)
	if latest.URL != "" {
		fmt.Fprintf(out, "Release notes: %s\n", latest.URL)
	}
	if checkOnly {
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := selfupdate.UpdateTo(cmd.Context(), latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	logger.Info().Str("version", latestVersion.String()).Str("path", exe).Msg("Updated fredctl")
	fmt.Fprintf(out, "✓ Updated to %s\n", latestVersion)
	return nil
}
