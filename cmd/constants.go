package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/notargets/swbench/model_problems/ShallowWater/williamson1992/case2"
	"github.com/notargets/swbench/model_problems/ShallowWater/williamson1992/case5"
	"github.com/notargets/swbench/planets/earth"
	"github.com/spf13/cobra"
)

// ConstantsCmd represents the constants command
var ConstantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the Earth and test case constants",
	Long:  `Print the Earth and test case constants in SI units`,
	Run: func(cmd *cobra.Command, args []string) {
		PrintConstants(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(ConstantsCmd)
}

func PrintConstants(w io.Writer) {
	dims := earth.Default().Dimensioned()
	keys := make([]string, 0, len(dims))
	for k := range dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(w, "Earth")
	for _, k := range keys {
		fmt.Fprintf(w, "\t%-16s %v\n", k, dims[k])
	}
	fmt.Fprintln(w, "Williamson case 2")
	fmt.Fprintf(w, "\t%-16s %g\n", "gh0", case2.GH0)
	fmt.Fprintf(w, "\t%-16s %g\n", "h0", case2.H0)
	fmt.Fprintf(w, "\t%-16s %g\n", "period (days)", case2.Period)
	fmt.Fprintf(w, "\t%-16s %g\n", "u0", case2.U0)
	fmt.Fprintln(w, "Williamson case 5")
	fmt.Fprintf(w, "\t%-16s %g\n", "h0", case5.H0)
	fmt.Fprintf(w, "\t%-16s %g\n", "u0", case5.U0)
	fmt.Fprintf(w, "\t%-16s %g\n", "mountain height", case5.MountainHeight)
	fmt.Fprintf(w, "\t%-16s %g\n", "mountain radius", case5.MountainRadius)
	fmt.Fprintf(w, "\t%-16s %g\n", "mountain lambda", case5.MountainCentreLambda)
	fmt.Fprintf(w, "\t%-16s %g\n", "mountain theta", case5.MountainCentreTheta)
}
