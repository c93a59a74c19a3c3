package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/notargets/swbench/mesh"
	"github.com/notargets/swbench/units"
)

// Parameters obtained from the YAML input file
type InputParametersSW struct {
	Title           string             `json:"Title"`
	Case            string             `json:"Case"` // case2 or case5
	RefinementLevel int                `json:"RefinementLevel"`
	MeshDegree      int                `json:"MeshDegree"`
	Reorder         *bool              `json:"Reorder"`
	Family          string             `json:"Family"`
	PolynomialOrder int                `json:"PolynomialOrder"`
	Partitions      int                `json:"Partitions"`
	Rank            int                `json:"Rank"`
	Overlap         string             `json:"Overlap"`
	OverlapDepth    int                `json:"OverlapDepth"`
	Units           UnitScales         `json:"Units"`
	Overrides       map[string]float64 `json:"Overrides"` // Keys: HRef, URef, MountainRadius, MountainHeight, MountainTheta, MountainLambda
}

type UnitScales struct {
	Metre  float64 `json:"Metre"`
	Second float64 `json:"Second"`
}

var overrideNames = map[string]bool{
	"HRef": true, "URef": true,
	"MountainRadius": true, "MountainHeight": true, "MountainTheta": true, "MountainLambda": true,
}

func (ip *InputParametersSW) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.setDefaults()
	return ip.validate()
}

func (ip *InputParametersSW) setDefaults() {
	if ip.Case == "" {
		ip.Case = "case2"
	}
	ip.Case = strings.ToLower(ip.Case)
	if ip.MeshDegree == 0 {
		ip.MeshDegree = 1
	}
	if ip.Family == "" {
		ip.Family = "CG"
	}
	if ip.PolynomialOrder == 0 && !strings.EqualFold(ip.Family, "DG") {
		ip.PolynomialOrder = 1
	}
	if ip.Partitions == 0 {
		ip.Partitions = 1
	}
	if ip.Overlap == "" {
		ip.Overlap = "facet"
		if ip.OverlapDepth == 0 {
			ip.OverlapDepth = 1
		}
	}
	if ip.Units.Metre == 0 {
		ip.Units.Metre = units.Metre
	}
	if ip.Units.Second == 0 {
		ip.Units.Second = units.Second
	}
}

func (ip *InputParametersSW) validate() error {
	if ip.Case != "case2" && ip.Case != "case5" {
		return fmt.Errorf("unknown case %q, must be case2 or case5", ip.Case)
	}
	if _, ok := mesh.OverlapNameMap[strings.ToLower(ip.Overlap)]; !ok {
		return fmt.Errorf("unknown overlap %q", ip.Overlap)
	}
	for key := range ip.Overrides {
		if !overrideNames[key] {
			return fmt.Errorf("unknown override %q", key)
		}
	}
	return ip.UnitSystem().Validate()
}

// UnitSystem is the unit system requested by the input
func (ip *InputParametersSW) UnitSystem() units.System {
	return units.NewSystem(ip.Units.Metre, ip.Units.Second)
}

// Distribution returns the mesh distribution parameters
func (ip *InputParametersSW) Distribution() *mesh.DistributionParameters {
	return &mesh.DistributionParameters{
		Partition:    ip.Partitions > 1,
		OverlapType:  mesh.OverlapNameMap[strings.ToLower(ip.Overlap)],
		OverlapDepth: ip.OverlapDepth,
	}
}

// Override returns an override value and whether it was set
func (ip *InputParametersSW) Override(key string) (val float64, ok bool) {
	val, ok = ip.Overrides[key]
	return
}

func (ip *InputParametersSW) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Case\n", ip.Case)
	fmt.Printf("[%d]\t\t\t\t= Refinement Level\n", ip.RefinementLevel)
	fmt.Printf("[%d]\t\t\t\t= Mesh Degree\n", ip.MeshDegree)
	fmt.Printf("[%s%d]\t\t\t\t= Function Space\n", ip.Family, ip.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= Partitions\n", ip.Partitions)
	fmt.Printf("[%s, %d]\t\t\t= Overlap\n", ip.Overlap, ip.OverlapDepth)
	fmt.Printf("%8.5g, %8.5g\t= Metre, Second\n", ip.Units.Metre, ip.Units.Second)
	if ip.Reorder != nil {
		fmt.Printf("[%v]\t\t\t\t= Reorder\n", *ip.Reorder)
	}
	keys := make([]string, len(ip.Overrides))
	i := 0
	for k := range ip.Overrides {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Overrides[%s] = %v\n", key, ip.Overrides[key])
	}
}
