package main

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"frame-configurator/internal/viewer"
)

var inspectSetup setup

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Configure the assembly headlessly and print the result as YAML",
	Long: `inspect loads the assembly without opening a window, applies the given flags and prints
the configuration summary, the framed camera and the dimension labels.

Example:
  configurator inspect --height 1500 --width 2000 --modular-width --color frame=Cream`,
	RunE: runInspect,
}

func init() {
	inspectSetup.register(inspectCmd.Flags())
}

type vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func toVec(p r3.Vec) vec { return vec(p) }

type cameraReport struct {
	Position vec `yaml:"position"`
	Target   vec `yaml:"target"`
}

type labelReport struct {
	Kind        string  `yaml:"kind"`
	Text        string  `yaml:"text"`
	Millimeters float64 `yaml:"millimeters"`
	From        vec     `yaml:"from"`
	To          vec     `yaml:"to"`
}

type report struct {
	Summary viewer.Summary `yaml:"summary"`
	Parts   int            `yaml:"parts"`
	Clones  int            `yaml:"clones"`
	Camera  cameraReport   `yaml:"camera"`
	Labels  []labelReport  `yaml:"labels"`
}

func newReport(v *viewer.Viewer) report {
	m, cam := v.Model(), v.Camera()
	r := report{
		Summary: v.Summary(),
		Parts:   len(m.Authored()),
		Clones:  len(m.Clones()),
		Camera: cameraReport{
			Position: toVec(cam.Position),
			Target:   toVec(cam.Target),
		},
	}
	for _, a := range m.Annotations {
		r.Labels = append(r.Labels, labelReport{
			Kind:        a.Kind.String(),
			Text:        a.Text,
			Millimeters: a.Millimeters,
			From:        toVec(a.From),
			To:          toVec(a.To),
		})
	}
	return r
}

func runInspect(cmd *cobra.Command, args []string) error {
	v, err := headless(cmd.Context(), &inspectSetup)
	if err != nil {
		return err
	}
	defer v.Close()

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(newReport(v)); err != nil {
		return err
	}
	return enc.Close()
}
