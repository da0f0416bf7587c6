// Command contagion runs repeated realizations of a stochastic SIR or SIS
// epidemic simulation over a network, as configured by a TOML file, and logs
// each realization's trajectory and infection/recovery history to CSV or
// SQLite.
package main

import (
	"flag"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	contagion "github.com/kentwait/contagiongo"
)

func main() {
	numCPUPtr := flag.Int("threads", runtime.NumCPU(), "number of CPU threads")
	engineOverride := flag.String("engine", "", "override the config file's engine (event_driven|gillespie)")
	loggerOverride := flag.String("logger", "", "override the config file's logger (csv|sqlite)")
	seedNum := flag.Int64("seed", time.Now().UTC().UnixNano(), "random seed; defaults to the current Unix time in nanoseconds")
	flag.Parse()

	runtime.GOMAXPROCS(*numCPUPtr)

	configPath := flag.Arg(0)
	if configPath == "" {
		log.Fatal("usage: contagion [flags] <config.toml>")
	}
	conf, err := contagion.LoadRunConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *engineOverride != "" {
		conf.Engine = *engineOverride
	}
	if *loggerOverride != "" {
		conf.LoggerType = *loggerOverride
	}

	g, err := contagion.LoadAdjacencyGraph(conf.GraphPath)
	if err != nil {
		log.Fatalf("error loading graph from %s: %s", conf.GraphPath, err)
	}

	firstStart := time.Now()
	for i := 1; i <= int(conf.NumInstances); i++ {
		log.Printf("starting instance %03d\n", i)
		start := time.Now()

		src := contagion.NewSource(*seedNum + int64(i))

		var logger contagion.TrajectoryLogger
		switch strings.ToLower(conf.LoggerType) {
		case "", "csv":
			logger = contagion.NewCSVLogger(conf.LogPath, i)
		case "sqlite":
			logger = contagion.NewSQLiteLogger(conf.LogPath, i)
		default:
			log.Fatalf("%s is not a valid logger type (csv|sqlite)", conf.LoggerType)
		}
		if conf.LogPath != "" {
			if err := logger.Init(); err != nil {
				log.Fatalf("error initializing logger: %s", err)
			}
		}

		runID := ksuid.New()
		tr, infections, recoveries, err := runInstance(conf, g, src)
		if err != nil {
			log.Fatalf("error running instance %03d: %s", i, err)
		}

		if conf.LogPath != "" {
			logger.WriteTrajectory(contagion.TrajectoryPoints(runID, i, tr))
			logger.WriteInfections(contagion.InfectionEvents(runID, i, infections))
			logger.WriteRecoveries(contagion.RecoveryEvents(runID, i, recoveries))
		}

		log.Printf("finished instance %03d in %s\n", i, time.Since(start))
	}
	log.Printf("completed all runs in %s", time.Since(firstStart))
}

func runInstance(conf *contagion.RunConfig, g contagion.Graph, src *contagion.Source) (*contagion.Trajectory, map[int][]float64, map[int][]float64, error) {
	ic := conf.InitialCondition()

	switch strings.ToLower(conf.Model) {
	case "sir":
		opts := contagion.SIROptions{
			InitialCondition:   ic,
			Tmax:               conf.Tmax,
			TransmissionWeight: conf.TransmissionWeight,
			RecoveryWeight:     conf.RecoveryWeight,
			ReturnFullData:     conf.ReturnFullData,
			Source:             src,
		}
		var result *contagion.SIRResult
		var err error
		switch strings.ToLower(conf.Engine) {
		case "gillespie":
			result, err = contagion.GillespieSIR(g, conf.Tau, conf.Gamma, opts)
		default:
			result, err = contagion.FastSIR(g, conf.Tau, conf.Gamma, opts)
		}
		if err != nil {
			return nil, nil, nil, err
		}
		return result.Trajectory, result.InfectionTimes, result.RecoveryTimes, nil

	case "sis":
		opts := contagion.SISOptions{
			InitialCondition:   ic,
			Tmax:               conf.Tmax,
			TransmissionWeight: conf.TransmissionWeight,
			RecoveryWeight:     conf.RecoveryWeight,
			ReturnFullData:     conf.ReturnFullData,
			Source:             src,
		}
		var result *contagion.SISResult
		var err error
		switch strings.ToLower(conf.Engine) {
		case "gillespie":
			result, err = contagion.GillespieSIS(g, conf.Tau, conf.Gamma, opts)
		default:
			result, err = contagion.FastSIS(g, conf.Tau, conf.Gamma, opts)
		}
		if err != nil {
			return nil, nil, nil, err
		}
		return result.Trajectory, result.InfectionTimes, result.RecoveryTimes, nil

	default:
		log.Fatalf("model %s has not been implemented", conf.Model)
		return nil, nil, nil, nil
	}
}
