package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geosafe/impact-cli/internal/engine"
	"github.com/geosafe/impact-cli/internal/layer"
	"github.com/geosafe/impact-cli/internal/scenario"
	"github.com/geosafe/impact-cli/internal/vector"
)

var vectorSplitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a layer by a polygon",
	Long:  "Splits line or polygon features by the dissolved outline of a splitter layer, marking inside and outside parts.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		scenarioPath, _ := cmd.Flags().GetString("scenario")

		var sc *scenario.Scenario
		if scenarioPath != "" {
			loaded, err := scenario.Load(scenarioPath)
			if err != nil {
				return err
			}
			sc = loaded
		} else {
			input, _ := cmd.Flags().GetString("input")
			splitter, _ := cmd.Flags().GetString("splitter")
			output, _ := cmd.Flags().GetString("output")
			markField, _ := cmd.Flags().GetString("mark-field")
			markValue, _ := cmd.Flags().GetInt("mark-value")
			crs, _ := cmd.Flags().GetString("crs")
			sc = &scenario.Scenario{
				Input:    input,
				Splitter: splitter,
				Output:   output,
				CRS:      crs,
			}
			if markField != "" {
				sc.Mark = &scenario.MarkConfig{Field: markField, Value: markValue}
			}
			if sc.Input == "" || sc.Splitter == "" {
				return eris.New("vector split: --input and --splitter are required without --scenario")
			}
		}
		if sc.CRS == "" {
			sc.CRS = cfg.Vector.CRS
		}
		if sc.Output == "" {
			sc.Output = "split.shp"
		}

		source, err := layer.OpenShapefile(sc.Input, sc.CRS)
		if err != nil {
			return err
		}
		splitterLayer, err := layer.OpenShapefile(sc.Splitter, sc.CRS)
		if err != nil {
			return err
		}

		ops := engine.NewGEOS()
		polygon, err := vector.UnionGeometry(ops, splitterLayer, nil)
		if err != nil {
			return eris.Wrap(err, "vector split: dissolve splitter")
		}
		if polygon == nil {
			return eris.Errorf("vector split: splitter layer %s has no geometry", sc.Splitter)
		}

		var mark *vector.Mark
		if sc.Mark != nil {
			mark = &vector.Mark{Field: sc.Mark.Field, Value: sc.Mark.Value}
		}

		zap.L().Info("splitting layer by polygon",
			zap.String("input", sc.Input),
			zap.String("splitter", sc.Splitter),
			zap.Int("features", source.Count()),
		)

		result, err := vector.SplitByPolygon(ops, source, polygon, nil, mark)
		if err != nil {
			return eris.Wrap(err, "vector split")
		}
		if err := writeLayer(result, sc.Output); err != nil {
			return err
		}

		fmt.Printf("Wrote %d split features to %s\n", result.Count(), sc.Output)
		return nil
	},
}

func init() {
	vectorSplitCmd.Flags().String("scenario", "", "YAML scenario file describing the split job")
	vectorSplitCmd.Flags().String("input", "", "source layer shapefile")
	vectorSplitCmd.Flags().String("splitter", "", "splitting polygon layer shapefile")
	vectorSplitCmd.Flags().String("output", "split.shp", "output layer path (.shp or .geojson)")
	vectorSplitCmd.Flags().String("mark-field", "", "integer field tagging inside/outside parts")
	vectorSplitCmd.Flags().Int("mark-value", 1, "value written to the mark field on inside parts")
	vectorSplitCmd.Flags().String("crs", "", "coordinate reference system identifier")
	vectorCmd.AddCommand(vectorSplitCmd)
}
