package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Spheres", "Description"})
	for _, preset := range scene.Presets() {
		sc := preset.Build(scene.Options{})
		table.Append([]string{
			preset.Name,
			fmt.Sprintf("%d", sc.GetPrimitiveCount()),
			preset.Description,
		})
	}
	table.Render()

	_, err := ctx.App.Writer.Write(buf.Bytes())
	return err
}
