// Copyright (c) 2025 The voxoctree Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors a render loop updates. Register
// them once per process with Register and pass the same *Metrics to every
// Renderer.
type Metrics struct {
	RaysTraced   prometheus.Counter
	RaysHit      prometheus.Counter
	FrameSeconds prometheus.Histogram

	FillCount   prometheus.Gauge
	NodeCount   prometheus.Gauge
	MaxRefcount prometheus.Gauge
}

// NewMetrics constructs a fresh Metrics with all collectors created but
// not yet registered with any registry.
func NewMetrics() *Metrics {
	return &Metrics{
		RaysTraced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxtrace",
			Name:      "rays_traced_total",
			Help:      "Total number of rays traced across all frames.",
		}),
		RaysHit: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxtrace",
			Name:      "rays_hit_total",
			Help:      "Total number of rays that struck a non-empty voxel.",
		}),
		FrameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxtrace",
			Name:      "frame_seconds",
			Help:      "Wall-clock time to render one frame.",
			Buckets:   prometheus.DefBuckets,
		}),
		FillCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxtrace",
			Name:      "node_table_fillcnt",
			Help:      "Live node-table slot count, per Tree.Stats.",
		}),
		NodeCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxtrace",
			Name:      "node_table_nodecnt",
			Help:      "Sum of live refcounts, per Tree.Stats.",
		}),
		MaxRefcount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxtrace",
			Name:      "node_table_max_refcnt",
			Help:      "Largest refcount observed on a single slot, per Tree.Stats.",
		}),
	}
}

// Register registers every collector with reg.
func (m *Metrics) Register(reg *prometheus.Registry) error {
	for _, c := range []prometheus.Collector{
		m.RaysTraced, m.RaysHit, m.FrameSeconds,
		m.FillCount, m.NodeCount, m.MaxRefcount,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Sample copies a tree's diagnostic counters into the gauges.
func (m *Metrics) Sample(fillCount, nodeCount, maxRefcount uint32) {
	m.FillCount.Set(float64(fillCount))
	m.NodeCount.Set(float64(nodeCount))
	m.MaxRefcount.Set(float64(maxRefcount))
}
