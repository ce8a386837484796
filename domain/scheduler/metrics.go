package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TaskRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scheduler_task_runs_total",
	Help: "Scheduled task executions, by task and outcome",
}, []string{"task", "outcome"})
