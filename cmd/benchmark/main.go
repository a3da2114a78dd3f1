package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cellwire/cellwire/cell"
	"github.com/cellwire/cellwire/collections"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	profilePath := flag.String("profile", "default.pgo", "CPU profile output path")
	flag.Parse()

	f, err := os.Create(*profilePath)
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkChains()
	benchmarkCollections()
}

// benchmarkChains measures full synchronous propagation of one root write
// through w independent chains of h Map nodes each.
func benchmarkChains() {
	tbl := table.NewWriter()
	tbl.SetTitle("Cell Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			root := cell.New(1)
			tails := make([]*cell.Node[int], 0, w)
			for i := 0; i < w; i++ {
				var last cell.ValueListenable[int] = root
				for j := 0; j < h; j++ {
					last = cell.Map(last, func(v int) int { return v + 1 })
				}
				tail := cell.Select(last, func(v int) int { return v })
				tail.AddListener(func() {})
				tails = append(tails, tail)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				root.Set(root.Value() + 1)
				tach.AddTime(time.Since(start))
			}

			metrics := tach.Calc()
			tbl.AppendRow(table.Row{
				fmt.Sprintf("propagate %dx%d", w, h),
				metrics.Time.Avg,
				metrics.Time.Min,
				metrics.Time.P75,
				metrics.Time.P99,
				metrics.Time.Max,
			})

			for _, tail := range tails {
				tail.Dispose()
			}
		}
	}
	tbl.Render()
}

// benchmarkCollections measures transactional mutation throughput for the
// three container types with one registered listener.
func benchmarkCollections() {
	const mutations = 100_000

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"collection", "mode", "mutations", "notifies", "time", "rate/ms"})

	appendRow := func(name string, notifies int, d time.Duration) {
		rate := float64(mutations) / (float64(d) / float64(time.Millisecond))
		tbl.Append([]string{
			name,
			"normal",
			humanize.Comma(int64(mutations)),
			humanize.Comma(int64(notifies)),
			fmt.Sprint(d),
			humanize.Comma(int64(rate)),
		})
	}

	{
		l := collections.NewList[int](nil, collections.WithMode(collections.NotifyNormal))
		notifies := 0
		l.AddListener(func() { notifies++ })
		start := time.Now()
		l.StartTransaction()
		for i := 0; i < mutations; i++ {
			l.Add(i)
		}
		l.EndTransaction()
		appendRow("list tx", notifies, time.Since(start))
	}

	{
		m := collections.NewMap[int, int](nil, collections.WithMode(collections.NotifyNormal))
		notifies := 0
		m.AddListener(func() { notifies++ })
		start := time.Now()
		m.StartTransaction()
		for i := 0; i < mutations; i++ {
			m.Set(i%1024, i)
		}
		m.EndTransaction()
		appendRow("map tx", notifies, time.Since(start))
	}

	{
		s := collections.NewSet[int](nil, collections.WithMode(collections.NotifyNormal))
		notifies := 0
		s.AddListener(func() { notifies++ })
		start := time.Now()
		s.StartTransaction()
		for i := 0; i < mutations; i++ {
			s.Add(i % 1024)
		}
		s.EndTransaction()
		appendRow("set tx", notifies, time.Since(start))
	}

	tbl.Render()
}
