// -- cmd/bounds.go --
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pagemark/pagemark/api/schemas"
	"github.com/pagemark/pagemark/internal/observability"
	"github.com/pagemark/pagemark/internal/overlay/annotation"
	"github.com/pagemark/pagemark/internal/overlay/measure"
	"github.com/pagemark/pagemark/internal/snapshot"
)

var boundsID string

var boundsCmd = &cobra.Command{
	Use:   "bounds --id <annotation-id> <snapshot.html>...",
	Short: "Compute the aggregate bounding box of an annotation in each snapshot.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.GetLogger().Named("bounds")

		reports := make([]schemas.BoundsReport, len(args))

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(appCfg.Snapshot.Concurrency)

		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				rep := schemas.BoundsReport{Snapshot: path, AnnotationID: boundsID}
				defer func() { reports[i] = rep }()

				doc, err := snapshot.Load(path)
				if err != nil {
					rep.Error = err.Error()
					return nil
				}

				meas := measure.FromAttributes{}
				loc := annotation.New(meas, logger)

				box, ok, err := loc.Bounds(doc, doc, boundsID)
				if err != nil {
					rep.Error = err.Error()
					return nil
				}
				if ok {
					rep.Found = true
					rep.Bounds = &schemas.Box{X: box.X, Y: box.Y, W: box.W, H: box.H}
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		logger.Info("bounds computed",
			zap.String("annotation_id", boundsID), zap.Int("snapshots", len(args)))

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	},
}

func init() {
	boundsCmd.Flags().StringVar(&boundsID, "id", "", "annotation identifier")
	_ = boundsCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(boundsCmd)
}
