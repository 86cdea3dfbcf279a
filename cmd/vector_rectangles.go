package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geosafe/impact-cli/internal/layer"
	"github.com/geosafe/impact-cli/internal/vector"
)

var vectorRectanglesCmd = &cobra.Command{
	Use:   "rectangles",
	Short: "Expand a point layer into rectangles",
	Long:  "Builds one dx-by-dy rectangle per point, with the point at the upper-left corner. Attributes are copied unchanged.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		dx, _ := cmd.Flags().GetFloat64("dx")
		dy, _ := cmd.Flags().GetFloat64("dy")
		crs, _ := cmd.Flags().GetString("crs")
		if crs == "" {
			crs = cfg.Vector.CRS
		}
		if dx <= 0 || dy <= 0 {
			return eris.Errorf("vector rectangles: dx and dy must be positive, got %v x %v", dx, dy)
		}

		points, err := layer.OpenShapefile(input, crs)
		if err != nil {
			return err
		}
		if points.Kind() != layer.KindPoint {
			return eris.Errorf("vector rectangles: %s is a %s layer, expected points", input, points.Kind())
		}

		zap.L().Info("expanding points to rectangles",
			zap.String("input", input),
			zap.Int("features", points.Count()),
			zap.Float64("dx", dx),
			zap.Float64("dy", dy),
		)

		rects, err := vector.PointsToRectangles(points, dx, dy)
		if err != nil {
			return eris.Wrap(err, "vector rectangles")
		}
		if err := writeLayer(rects, output); err != nil {
			return err
		}

		fmt.Printf("Wrote %d rectangles to %s\n", rects.Count(), output)
		return nil
	},
}

func init() {
	vectorRectanglesCmd.Flags().String("input", "", "point layer shapefile")
	vectorRectanglesCmd.Flags().String("output", "rectangles.shp", "output layer path (.shp or .geojson)")
	vectorRectanglesCmd.Flags().Float64("dx", 0, "horizontal rectangle extent")
	vectorRectanglesCmd.Flags().Float64("dy", 0, "vertical rectangle extent")
	vectorRectanglesCmd.Flags().String("crs", "", "coordinate reference system identifier")
	_ = vectorRectanglesCmd.MarkFlagRequired("input")
	_ = vectorRectanglesCmd.MarkFlagRequired("dx")
	_ = vectorRectanglesCmd.MarkFlagRequired("dy")
	vectorCmd.AddCommand(vectorRectanglesCmd)
}
