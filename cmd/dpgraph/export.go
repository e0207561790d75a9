package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/viant/dpgraph/profile"
	"github.com/viant/dpgraph/store"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the resolved values of the exported data points",
	Long: `Print the resolved values of the exported data points, in display order.
With --output the projection is uploaded to the URL instead, encoded after its extension.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: yaml or json (default: $DPGRAPH_FORMAT or yaml)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Destination URL")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, p, err := open(ctx)
	if err != nil {
		return err
	}
	if exportOutput != "" {
		return p.ExportTo(store.NewExporter(exportOutput).Bind(ctx))
	}
	name := settings.Format
	if exportFormat != "" {
		name = exportFormat
	}
	format, err := profile.ParseFormat(name)
	if err != nil {
		return err
	}
	return p.ExportTo(&writer{out: cmd.OutOrStdout(), format: format})
}

// writer prints the export projection
type writer struct {
	out    io.Writer
	format profile.Format
}

func (w *writer) Export(name string, entries []profile.Entry) error {
	data, err := w.format.Marshal(&store.Payload{Name: name, Entries: entries})
	if err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.out.Write(data)
	return err
}
