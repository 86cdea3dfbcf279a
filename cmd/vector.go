package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/geosafe/impact-cli/internal/layer"
)

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Vector layer operations",
	Long:  "Expand point layers to rectangles, dissolve layer geometries, and split layers by a polygon.",
}

func init() { rootCmd.AddCommand(vectorCmd) }

// writeLayer writes a layer as GeoJSON or shapefile, chosen by extension.
func writeLayer(l *layer.Layer, path string) error {
	if strings.HasSuffix(path, ".geojson") || strings.HasSuffix(path, ".json") {
		return layer.WriteGeoJSON(l, path)
	}
	return layer.WriteShapefile(l, path)
}
