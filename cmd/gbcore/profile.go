package main

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// startPprof serves the runtime profiler on addr until the
// process exits.
func startPprof(addr string, logger log.Logger) {
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Errorf("pprof: %v", err)
		}
	}()
	logger.Infof("pprof available at http://%s/debug/pprof", addr)
}

// startStatsView serves live runtime graphs (heap, GC,
// goroutines) on addr until the process exits.
func startStatsView(addr string, logger log.Logger) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		statsview.New().Start()
	}()
	logger.Infof("stats available at http://%s/debug/statsview", addr)
}
