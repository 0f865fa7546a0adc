// -- cmd/hittest.go --
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagemark/pagemark/api/schemas"
	"github.com/pagemark/pagemark/internal/observability"
	"github.com/pagemark/pagemark/internal/overlay/annotation"
	"github.com/pagemark/pagemark/internal/overlay/measure"
	"github.com/pagemark/pagemark/internal/overlay/shape"
	"github.com/pagemark/pagemark/internal/snapshot"
)

var (
	hitX float64
	hitY float64
)

var hittestCmd = &cobra.Command{
	Use:   "hittest <snapshot.html>",
	Short: "Find the annotation under a viewport point.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.GetLogger().Named("hittest")

		doc, err := snapshot.Load(args[0])
		if err != nil {
			return err
		}

		meas := measure.FromAttributes{}
		loc := annotation.New(meas, logger)

		rep := schemas.HitReport{X: hitX, Y: hitY}
		if el := loc.AtPoint(doc, hitX, hitY); el != nil {
			rep.Found = true
			rep.ID = shape.ID(el)
			if kind, err := shape.Of(el); err == nil {
				rep.Kind = kind.String()
			}
			if box, err := shape.Size(meas, doc, el); err == nil {
				rep.Box = &schemas.Box{X: box.X, Y: box.Y, W: box.W, H: box.H}
			} else {
				logger.Debug("hit element not sizable", zap.Error(err))
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	},
}

func init() {
	hittestCmd.Flags().Float64Var(&hitX, "x", 0, "viewport x coordinate")
	hittestCmd.Flags().Float64Var(&hitY, "y", 0, "viewport y coordinate")
	_ = hittestCmd.MarkFlagRequired("x")
	_ = hittestCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(hittestCmd)
}
