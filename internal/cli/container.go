package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/makery/internal/schema"
	"github.com/mesh-intelligence/makery/internal/store"
	"github.com/mesh-intelligence/makery/pkg/container"
)

// newContainerCmd creates the "container" command: build the container for
// a profile and report its schema sources and store kinds.
func newContainerCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "container",
		Short: "Build a storage container for a profile",
		Long: "Container resolves the profile's schema sources, opens its stores,\n" +
			"and blocks until every store is ready or one fails.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(resolveConfigDir())
			if err != nil {
				return err
			}

			name := profileName
			if name == "" {
				name = cfg.GetString(cfgKeyProfile)
			}
			profile, err := container.ParseProfile(name)
			if err != nil {
				return err
			}

			dataDir := resolveDataDir(cfg.GetString(cfgKeyDataDir))
			def := profile.Definition(dataDir)

			timeout := time.Duration(cfg.GetInt(cfgKeyBuildTimeout)) * time.Second
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			c, err := container.Build(ctx, def, schema.NewResolver(), store.NewEngine())
			if err != nil {
				return fmt.Errorf("build container: %w", err)
			}
			defer c.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "profile: %s\n", profile)
			fmt.Fprintf(out, "schema sources: %s\n", strings.Join(def.ModelSources, ", "))
			for _, s := range c.Stores() {
				if s.Descriptor.Kind == container.StoreOnDisk {
					fmt.Fprintf(out, "store: %s (%s)\n", s.Descriptor.Kind, s.Descriptor.Location)
				} else {
					fmt.Fprintf(out, "store: %s\n", s.Descriptor.Kind)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "container profile (primary, primary-test, secondary-module-test; default from config)")

	return cmd
}
