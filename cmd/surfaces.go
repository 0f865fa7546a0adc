// -- cmd/surfaces.go --
package cmd

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagemark/pagemark/api/schemas"
	"github.com/pagemark/pagemark/internal/observability"
	"github.com/pagemark/pagemark/internal/overlay/measure"
	"github.com/pagemark/pagemark/internal/overlay/surface"
	"github.com/pagemark/pagemark/internal/snapshot"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var surfacesCmd = &cobra.Command{
	Use:   "surfaces <snapshot.html>",
	Short: "List the rendered-page surfaces of a snapshot with their metadata.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.GetLogger().Named("surfaces")

		doc, err := snapshot.Load(args[0])
		if err != nil {
			return err
		}

		meas := measure.FromAttributes{}
		var reports []schemas.SurfaceReport

		for _, s := range surface.All(doc) {
			var rep schemas.SurfaceReport

			md, err := surface.MetadataOf(s)
			if err != nil {
				// A broken surface is still worth listing; the defect
				// goes into the report instead of being swallowed.
				logger.Warn("surface metadata defect", zap.Error(err))
				rep.Error = err.Error()
			} else {
				rep.DocumentID = md.DocumentID
				rep.PageNumber = md.PageNumber
				rep.Scale = md.Viewport.Scale
			}

			if r, ok := meas.BoundingRect(s); ok {
				b := r.Box()
				rep.ScreenRect = &schemas.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
			}
			reports = append(reports, rep)
		}

		logger.Info("surfaces enumerated",
			zap.String("snapshot", args[0]), zap.Int("count", len(reports)))

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	},
}

func init() {
	rootCmd.AddCommand(surfacesCmd)
}
