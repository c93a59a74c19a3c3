package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/notargets/swbench/InputParameters"
	"github.com/notargets/swbench/expr"
	"github.com/notargets/swbench/fem"
	"github.com/notargets/swbench/mesh"
	"github.com/notargets/swbench/model_problems/ShallowWater/williamson1992/case2"
	"github.com/notargets/swbench/model_problems/ShallowWater/williamson1992/case5"
	"github.com/notargets/swbench/planets/earth"
	"github.com/notargets/swbench/units"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type ModelSW struct {
	ICFile  string
	OutFile string
	Profile string
}

// AnalyticCase is implemented by the Williamson test cases
type AnalyticCase interface {
	CoriolisFunction(x, y, z expr.Scalar, Vf *fem.FunctionSpace, nameO ...string) (*fem.Function, error)
	VelocityFunction(x, y, z expr.Scalar, V1 *fem.FunctionSpace, nameO ...string) (*fem.Function, error)
	DepthFunction(x, y, z expr.Scalar, V2 *fem.FunctionSpace, nameO ...string) (*fem.Function, error)
}

// FieldsCmd represents the fields command
var FieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Evaluate a test case's Coriolis, velocity and depth fields on an Earth mesh",
	Long:  `Evaluate a test case's Coriolis, velocity and depth fields on an Earth mesh`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		msw := &ModelSW{}
		if msw.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		if msw.OutFile, err = cmd.Flags().GetString("output"); err != nil {
			panic(err)
		}
		if msw.Profile, err = cmd.Flags().GetString("profile"); err != nil {
			panic(err)
		}
		ip := processInput(msw)
		ip.Print()
		if msw.Profile != "" {
			defer startProfile(msw.Profile).Stop()
		}
		if _, err = RunFields(msw, ip, os.Stdout); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(FieldsCmd)
	FieldsCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Case\n\t- RefinementLevel")
	FieldsCmd.Flags().StringP("output", "o", "", "CSV file to write nodal field values to")
	FieldsCmd.Flags().String("profile", "", "write a profile of the run: cpu or mem")
}

func processInput(msw *ModelSW) (ip *InputParameters.InputParametersSW) {
	var (
		err error
	)
	if len(msw.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
Case: case5 # Can be "case2"
RefinementLevel: 3
MeshDegree: 1
Family: CG
PolynomialOrder: 1
Overrides:
  URef: 20.
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(msw.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersSW{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func startProfile(kind string) interface{ Stop() } {
	switch kind {
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}
}

// NewAnalyticCase builds the case named in the input with its overrides applied
func NewAnalyticCase(ip *InputParameters.InputParametersSW, p earth.Planet, u units.System) AnalyticCase {
	switch ip.Case {
	case "case5":
		c := case5.NewForPlanet(p, u)
		if v, ok := ip.Override("URef"); ok {
			c = c.WithURef(v)
		}
		m := c.Mountain
		if v, ok := ip.Override("MountainRadius"); ok {
			m.Radius = v
		}
		if v, ok := ip.Override("MountainHeight"); ok {
			m.Height = v
		}
		if v, ok := ip.Override("MountainTheta"); ok {
			m.ThetaC = v
		}
		if v, ok := ip.Override("MountainLambda"); ok {
			m.LambdaC = v
		}
		return c.WithMountain(m)
	default:
		c := case2.NewForPlanet(p, u)
		if v, ok := ip.Override("HRef"); ok {
			c = c.WithHRef(v)
		}
		if v, ok := ip.Override("URef"); ok {
			c = c.WithURef(v)
		}
		return c
	}
}

type FieldSummary struct {
	Name                   string
	Min, Max, Mean, StdDev float64
}

func (fs FieldSummary) String() string {
	return fmt.Sprintf("%-10s min=%12.5g max=%12.5g mean=%12.5g std=%12.5g",
		fs.Name, fs.Min, fs.Max, fs.Mean, fs.StdDev)
}

// Summarize reports nodal statistics, vector fields by their magnitude
func Summarize(f *fem.Function) FieldSummary {
	vals := f.Data
	if f.Space.ValueSize == 3 {
		vals = make([]float64, f.Space.NumNodes())
		for i := range vals {
			v := f.VectorValue(i)
			vals[i] = math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		}
	}
	return FieldSummary{
		Name:   f.Name,
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   stat.Mean(vals, nil),
		StdDev: stat.StdDev(vals, nil),
	}
}

// RunFields builds the mesh and spaces, evaluates the case fields and reports
// them to w
func RunFields(msw *ModelSW, ip *InputParameters.InputParametersSW, w io.Writer) (summaries []FieldSummary, err error) {
	var (
		u      = ip.UnitSystem()
		planet = earth.New(u)
		comm   mesh.Comm
		globe  *mesh.Mesh
		family fem.Family
		V, V1  *fem.FunctionSpace
	)
	if comm, err = mesh.NewLocalComm(ip.Rank, ip.Partitions); err != nil {
		return
	}
	if globe, err = planet.IcosahedralMesh(ip.RefinementLevel, ip.MeshDegree, ip.Reorder,
		ip.Distribution(), comm); err != nil {
		return
	}
	fmt.Fprintf(w, "mesh: %s vertices, %s cells, %s owned by rank %d, %s halo\n",
		humanize.Comma(int64(globe.NumVertices())), humanize.Comma(int64(globe.NumCells())),
		humanize.Comma(int64(len(globe.OwnedCells(ip.Rank)))), ip.Rank,
		humanize.Comma(int64(len(globe.HaloCells(ip.Rank)))))
	if family, err = fem.NewFamily(ip.Family); err != nil {
		return
	}
	if V, err = fem.NewFunctionSpace(globe, family, ip.PolynomialOrder); err != nil {
		return
	}
	if V1, err = fem.NewVectorFunctionSpace(globe, family, ip.PolynomialOrder); err != nil {
		return
	}
	logrus.WithFields(logrus.Fields{
		"case":   ip.Case,
		"scalar": V.String(),
		"vector": V1.String(),
	}).Info("evaluating fields")

	var (
		c       = NewAnalyticCase(ip, planet, u)
		x, y, z = globe.SpatialCoordinate()
		fields  = make([]*fem.Function, 3)
	)
	if fields[0], err = c.CoriolisFunction(x, y, z, V); err != nil {
		return
	}
	if fields[1], err = c.VelocityFunction(x, y, z, V1); err != nil {
		return
	}
	if fields[2], err = c.DepthFunction(x, y, z, V); err != nil {
		return
	}
	for _, f := range fields {
		s := Summarize(f)
		summaries = append(summaries, s)
		fmt.Fprintln(w, s)
	}
	if msw.OutFile != "" {
		if err = writeCSV(msw.OutFile, fields); err != nil {
			return
		}
		if st, serr := os.Stat(msw.OutFile); serr == nil {
			fmt.Fprintf(w, "wrote %s (%s)\n", msw.OutFile, humanize.Bytes(uint64(st.Size())))
		}
	}
	return
}

// writeCSV writes one row per node of the scalar space. The fields share node
// locations because they are built on the same family and degree.
func writeCSV(fileName string, fields []*fem.Function) (err error) {
	var (
		file *os.File
		V    = fields[0].Space
	)
	if file, err = os.Create(fileName); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	cw := csv.NewWriter(file)
	header := []string{"x", "y", "z"}
	for _, f := range fields {
		if f.Space.ValueSize == 3 {
			header = append(header, f.Name+"_x", f.Name+"_y", f.Name+"_z")
		} else {
			header = append(header, f.Name)
		}
	}
	if err = cw.Write(header); err != nil {
		return
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', 12, 64) }
	for i, p := range V.Nodes {
		row := []string{ff(p.X), ff(p.Y), ff(p.Z)}
		for _, f := range fields {
			if f.Space.ValueSize == 3 {
				v := f.VectorValue(i)
				row = append(row, ff(v.X), ff(v.Y), ff(v.Z))
			} else {
				row = append(row, ff(f.Value(i)))
			}
		}
		if err = cw.Write(row); err != nil {
			return
		}
	}
	cw.Flush()
	err = cw.Error()
	return
}
