package metrics

import "github.com/prometheus/client_golang/prometheus"

func (r *Recorder) StepsCollector() prometheus.Counter           { return r.steps }
func (r *Recorder) ExpansionsCollector() prometheus.Counter      { return r.expansions }
func (r *Recorder) RelaxationsCollector() *prometheus.CounterVec { return r.relaxations }
func (r *Recorder) SearchesCollector() *prometheus.CounterVec    { return r.searches }
