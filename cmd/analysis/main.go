//go:build analysis

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"combinat-kernel/arith"
	"combinat-kernel/crystal"
	"combinat-kernel/partition"
	"combinat-kernel/roots"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type indexPoint struct {
	Level int64 `json:"level"`
	Index int64 `json:"index"`
}

type crystalPoint struct {
	Shape string `json:"shape"`
	Card  int    `json:"cardinality"`
}

type weylPoint struct {
	Type   string `json:"type"`
	Weight string `json:"weight"`
	Dim    string `json:"dim"`
}

type report struct {
	Gamma0Index  []indexPoint   `json:"gamma0_index"`
	CrystalCards []crystalPoint `json:"crystal_cardinalities"`
	WeylDims     []weylPoint    `json:"weyl_dimensions"`
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func toLineItems(vals []int64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func newIndexChart(points []indexPoint) *charts.Line {
	labels := make([]string, len(points))
	vals := make([]int64, len(points))
	for i, p := range points {
		labels[i] = fmt.Sprintf("%d", p.Level)
		vals[i] = p.Index
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Index of Gamma0(N) in SL2(Z)",
			Subtitle: "N * prod_{p|N} (1 + 1/p)",
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "congruence subgroup growth", Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels).AddSeries("index", toLineItems(vals))
	return line
}

func newCrystalChart(points []crystalPoint) *charts.Bar {
	labels := make([]string, len(points))
	vals := make([]int, len(points))
	for i, p := range points {
		labels[i] = p.Shape
		vals[i] = p.Card
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Crystal of tableaux cardinalities",
			Subtitle: "type A, all shapes of the configured degree",
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "crystal cardinalities", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("elements", toBarItems(vals)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func main() {
	maxLevel := flag.Int64("maxlevel", 120, "largest level N for the Gamma0 index series")
	rank := flag.Int("rank", 3, "crystal rank n (letters 1..n+1)")
	degree := flag.Int("degree", 4, "tableau degree for the cardinality chart")
	outDir := flag.String("out", "Analysis_Reports", "output directory for reports")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	var rep report

	for n := int64(1); n <= *maxLevel; n++ {
		idx, err := arith.IndexGamma0(n)
		if err != nil {
			log.Fatalf("index of Gamma0(%d): %v", n, err)
		}
		rep.Gamma0Index = append(rep.Gamma0Index, indexPoint{Level: n, Index: idx})
	}

	c, err := crystal.New(*rank)
	if err != nil {
		log.Fatalf("crystal rank: %v", err)
	}
	for _, shape := range partition.Gen(*degree, 0) {
		if len(shape) > *rank+1 {
			continue
		}
		el, err := c.OfTableaux(shape)
		if err != nil {
			log.Fatalf("crystal of %v: %v", shape, err)
		}
		rep.CrystalCards = append(rep.CrystalCards, crystalPoint{Shape: shape.String(), Card: len(el)})
	}

	// fundamental weight dimensions for a fixed menu of types
	for _, spec := range []struct {
		letter byte
		rank   int
	}{{'A', 3}, {'B', 3}, {'C', 3}, {'D', 4}, {'F', 4}, {'G', 2}, {'E', 6}} {
		ct, err := roots.NewCartanType(spec.letter, spec.rank)
		if err != nil {
			log.Fatalf("cartan type: %v", err)
		}
		for i := 0; i < spec.rank; i++ {
			coeffs := make([]int, spec.rank)
			coeffs[i] = 1
			dim, err := ct.WeylDim(coeffs)
			if err != nil {
				log.Fatalf("weyl dim %s: %v", ct, err)
			}
			rep.WeylDims = append(rep.WeylDims, weylPoint{
				Type:   ct.String(),
				Weight: fmt.Sprintf("Lambda_%d", i+1),
				Dim:    dim.String(),
			})
		}
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("combinat_stats_%s.json", ts))
	if err := saveJSON(jsonPath, rep); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(newIndexChart(rep.Gamma0Index))
	page.AddCharts(newCrystalChart(rep.CrystalCards))

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("combinat_charts_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Charts page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
