package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/makery/pkg/session"
)

// newSessionCmd creates the "session" command: race a number of goroutines
// into the shared-session accessor and report how many distinct instances
// they observed, then contrast with a deps-root session.
func newSessionCmd() *cobra.Command {
	var callers int

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Demonstrate the process-wide session holder",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]string, callers)
			var wg sync.WaitGroup
			for i := range callers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					ids[i] = session.Shared().ID()
				}()
			}
			wg.Wait()

			distinct := map[string]bool{}
			for _, id := range ids {
				distinct[id] = true
			}

			root := session.NewDeps()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shared session: %s\n", session.Shared().ID())
			fmt.Fprintf(out, "callers: %d, distinct instances observed: %d\n", callers, len(distinct))
			fmt.Fprintf(out, "deps-root session: %s\n", root.Session().ID())
			return nil
		},
	}

	cmd.Flags().IntVar(&callers, "callers", 50, "number of concurrent accessors")

	return cmd
}
