package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/geosafe/impact-cli/internal/engine"
	"github.com/geosafe/impact-cli/internal/layer"
	"github.com/geosafe/impact-cli/internal/vector"
)

var vectorDissolveCmd = &cobra.Command{
	Use:   "dissolve",
	Short: "Dissolve a layer's geometries into one",
	Long:  "Unions all feature geometries of a layer, skipping combinations that would produce an invalid geometry.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		crs, _ := cmd.Flags().GetString("crs")
		if crs == "" {
			crs = cfg.Vector.CRS
		}

		l, err := layer.OpenShapefile(input, crs)
		if err != nil {
			return err
		}

		zap.L().Info("dissolving layer",
			zap.String("input", input),
			zap.Int("features", l.Count()),
		)

		union, err := vector.UnionGeometry(engine.NewGEOS(), l, nil)
		if err != nil {
			return eris.Wrap(err, "vector dissolve")
		}
		if union == nil {
			fmt.Println("No features to dissolve")
			return nil
		}

		g, err := geojson.Marshal(union)
		if err != nil {
			return eris.Wrap(err, "vector dissolve: encode GeoJSON")
		}
		var pretty json.RawMessage = g
		data, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return eris.Wrap(err, "vector dissolve: indent GeoJSON")
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return eris.Wrapf(err, "vector dissolve: write %s", output)
		}

		fmt.Printf("Wrote dissolved geometry to %s\n", output)
		return nil
	},
}

func init() {
	vectorDissolveCmd.Flags().String("input", "", "layer shapefile")
	vectorDissolveCmd.Flags().String("output", "dissolved.geojson", "output GeoJSON geometry path")
	vectorDissolveCmd.Flags().String("crs", "", "coordinate reference system identifier")
	_ = vectorDissolveCmd.MarkFlagRequired("input")
	vectorCmd.AddCommand(vectorDissolveCmd)
}
