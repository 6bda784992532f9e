package laa

import "sort"

// SchedulingConfig configures the predictive list-scheduling primitive.
type SchedulingConfig struct {
	NumMachines int // must be >= 1
}

// Scheduling assigns jobs to identical machines to minimize makespan,
// ordering the assignment pass by predicted length and packing each
// job's actual length onto the least-loaded machine as it goes.
type Scheduling struct {
	config SchedulingConfig
}

// NewScheduling constructs a Scheduling primitive over numMachines
// identical machines.
func NewScheduling(numMachines int) (*Scheduling, error) {
	if numMachines < 1 {
		return nil, invalidArgf("num_machines", numMachines, "num_machines must be >= 1")
	}
	return &Scheduling{config: SchedulingConfig{NumMachines: numMachines}}, nil
}

// Decide returns, for each job, the 0-indexed machine it is assigned
// to. Jobs are visited in ascending order of predicted length (ties
// broken by original job index, ascending); each visited job is
// appended — using its actual length — to whichever machine currently
// carries the smallest load, ties broken by the lowest machine index.
//
// Visiting shortest-predicted-first is what reproduces the reference
// assignment on ties at load zero: it lets every machine pick up one
// job before any machine accumulates enough load to dominate the
// least-loaded comparison for the jobs that follow.
func (s *Scheduling) Decide(actualLengths, predictedLengths []int) ([]int, error) {
	if len(actualLengths) != len(predictedLengths) {
		return nil, invalidArgf("predicted_lengths", len(predictedLengths),
			"predicted_lengths length %d must equal actual_lengths length %d", len(predictedLengths), len(actualLengths))
	}
	for i, v := range actualLengths {
		if v < 0 {
			return nil, invalidArgf("actual_lengths", v, "actual_lengths[%d] must be >= 0", i)
		}
	}
	for i, v := range predictedLengths {
		if v < 0 {
			return nil, invalidArgf("predicted_lengths", v, "predicted_lengths[%d] must be >= 0", i)
		}
	}

	n := len(actualLengths)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return predictedLengths[order[a]] < predictedLengths[order[b]]
	})

	loads := make([]int64, s.config.NumMachines)
	assignments := make([]int, n)
	for _, job := range order {
		machine := 0
		for m := 1; m < len(loads); m++ {
			if loads[m] < loads[machine] {
				machine = m
			}
		}
		loads[machine] += int64(actualLengths[job])
		assignments[job] = machine
	}
	return assignments, nil
}
