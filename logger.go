package contagiongo

import (
	"sort"

	"github.com/segmentio/ksuid"
)

// TrajectoryLogger is the general definition of a logger that records
// simulation output to file, whether it writes a text file or writes to a
// database, following the teacher's DataLogger split between CSVLogger and
// SQLiteLogger.
type TrajectoryLogger interface {
	// SetBasePath sets the base path of the logger.
	SetBasePath(path string, i int)
	// Init initializes the logger: creating files with header rows, or
	// creating database tables.
	Init() error
	// WriteTrajectory records the compartment-count time series of a single
	// realization.
	WriteTrajectory(c <-chan TrajectoryPointPackage)
	// WriteInfections records every infection event of a single realization.
	WriteInfections(c <-chan InfectionPackage)
	// WriteRecoveries records every recovery event of a single realization.
	WriteRecoveries(c <-chan RecoveryPackage)
}

// TrajectoryPointPackage encapsulates one compartment-count sample to be
// written to the trajectory output.
type TrajectoryPointPackage struct {
	runID      ksuid.KSUID
	instanceID int
	time       float64
	s, i, r    int
}

// InfectionPackage encapsulates one infection event to be written to the
// infection-history output.
type InfectionPackage struct {
	runID      ksuid.KSUID
	instanceID int
	node       int
	time       float64
}

// RecoveryPackage encapsulates one recovery event to be written to the
// recovery-history output.
type RecoveryPackage struct {
	runID      ksuid.KSUID
	instanceID int
	node       int
	time       float64
}

// TrajectoryPoints turns a Trajectory into a channel of
// TrajectoryPointPackage values suitable for WriteTrajectory, closing the
// channel once every sample has been sent.
func TrajectoryPoints(runID ksuid.KSUID, instanceID int, tr *Trajectory) <-chan TrajectoryPointPackage {
	c := make(chan TrajectoryPointPackage)
	go func() {
		defer close(c)
		for idx, t := range tr.Times {
			c <- TrajectoryPointPackage{
				runID: runID, instanceID: instanceID,
				time: t, s: tr.S[idx], i: tr.I[idx], r: valueOrZero(tr.R, idx),
			}
		}
	}()
	return c
}

func valueOrZero(xs []int, idx int) int {
	if idx < len(xs) {
		return xs[idx]
	}
	return 0
}

// InfectionEvents turns a per-node infection-time history into a channel of
// InfectionPackage values, in node order for determinism.
func InfectionEvents(runID ksuid.KSUID, instanceID int, history map[int][]float64) <-chan InfectionPackage {
	c := make(chan InfectionPackage)
	go func() {
		defer close(c)
		for _, node := range sortedKeys(history) {
			for _, t := range history[node] {
				c <- InfectionPackage{runID: runID, instanceID: instanceID, node: node, time: t}
			}
		}
	}()
	return c
}

// RecoveryEvents is the RecoveryPackage counterpart of InfectionEvents.
func RecoveryEvents(runID ksuid.KSUID, instanceID int, history map[int][]float64) <-chan RecoveryPackage {
	c := make(chan RecoveryPackage)
	go func() {
		defer close(c)
		for _, node := range sortedKeys(history) {
			for _, t := range history[node] {
				c <- RecoveryPackage{runID: runID, instanceID: instanceID, node: node, time: t}
			}
		}
	}()
	return c
}

func sortedKeys(m map[int][]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
