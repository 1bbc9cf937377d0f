package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"frame-configurator/internal/blueprint"
)

var (
	exportSetup setup
	exportOut   string
	exportOpt   = blueprint.DefaultOptions()
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a front elevation with dimensions as PNG",
	Long: `export configures the assembly like inspect does and draws its front elevation with the
height and width dimension lines.

Example:
  configurator export --preset 2_3 --width 2400 -o front.png`,
	RunE: runExport,
}

func init() {
	exportSetup.register(exportCmd.Flags())
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "blueprint.png", "PNG file to write")
	exportCmd.Flags().IntVar(&exportOpt.Width, "px-width", exportOpt.Width, "image width in pixels")
	exportCmd.Flags().IntVar(&exportOpt.Height, "px-height", exportOpt.Height, "image height in pixels")
}

func runExport(cmd *cobra.Command, args []string) error {
	v, err := headless(cmd.Context(), &exportSetup)
	if err != nil {
		return err
	}
	defer v.Close()

	s := v.Summary()
	exportOpt.Title = fmt.Sprintf("%s  %.0f x %.0f mm", s.Model, s.Width, s.Height)
	if err := blueprint.SaveFile(v.Model(), exportOut, exportOpt); err != nil {
		return err
	}
	log.Info("blueprint written", zap.String("path", exportOut))
	fmt.Fprintln(cmd.OutOrStdout(), exportOut)
	return nil
}
