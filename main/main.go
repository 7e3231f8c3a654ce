package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/latticekit/bgkflow"
	"github.com/latticekit/bgkflow/diag"
	"github.com/latticekit/bgkflow/grid"
	"github.com/latticekit/bgkflow/io"
	"github.com/latticekit/bgkflow/taylorgreen"
	"github.com/latticekit/bgkflow/viz"
)

const (
	bytesPerMiB = 1024.0 * 1024.0
	bytesPerGiB = 1024.0 * 1024.0 * 1024.0
)

func main() {
	var (
		configFile    string
		exampleConfig bool
		threads       int
	)

	flag.StringVar(
		&configFile, "Config", "",
		"Configuration file for the simulation.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	flag.IntVar(
		&threads, "Threads", 0,
		"Number of worker goroutines used for the sweep. Overrides the "+
			"config file. Default is the number of logical cores.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleSimulationFile)
		return
	}
	if configFile == "" {
		log.Fatal("No -Config file given. Run with -ExampleConfig for a template.")
	}

	con, err := io.ReadSimulationConfig(configFile)
	if err != nil { log.Fatal(err.Error()) }

	if !con.ValidGrid() {
		log.Fatal("Invalid 'NX'/'NY' values: the domain must be at least 2x2.")
	} else if !con.ValidNu() {
		log.Fatalf(
			"Invalid 'Nu' value %g: tau = 3 Nu + 0.5 = %g is at or below "+
				"the stability bound 0.5.", con.Nu, con.Tau(),
		)
	} else if !con.ValidUMax() {
		log.Fatal("Invalid/non-existent 'UMax' value.")
	} else if !con.ValidRho0() {
		log.Fatal("Invalid 'Rho0' value.")
	} else if !con.ValidSteps() {
		log.Fatal("Invalid/non-existent 'Steps' value.")
	} else if !con.ValidOutput() {
		log.Fatal("Invalid/non-existent 'Output' value.")
	} else if !con.ValidSaveEvery() {
		log.Fatal("Invalid 'SaveEvery' value.")
	} else if !con.ValidMessageEvery() {
		log.Fatal("Invalid 'MessageEvery' value.")
	}

	if threads > 0 {
		con.Threads = threads
	}

	simulationMain(con)
}

func simulationMain(con *io.SimulationConfig) {
	sol := &taylorgreen.Solution{
		NX: con.NX, NY: con.NY,
		Nu: con.Nu, UMax: con.UMax, Rho0: con.Rho0,
	}
	s := bgkflow.NewSolver(con.NX, con.NY, con.Nu, con.Threads)

	fmt.Printf("Simulating Taylor-Green vortex decay\n")
	fmt.Printf("      domain size: %dx%d\n", con.NX, con.NY)
	fmt.Printf("               nu: %g\n", con.Nu)
	fmt.Printf("              tau: %g\n", s.Tau)
	fmt.Printf("            u_max: %g\n", con.UMax)
	fmt.Printf("             rho0: %g\n", con.Rho0)
	fmt.Printf("        timesteps: %d\n", con.Steps)
	fmt.Printf("       save every: %d\n", con.SaveEvery)
	fmt.Printf("    message every: %d\n", con.MessageEvery)
	fmt.Printf("\n")

	sol.Fill(0, s.Rho, s.Ux, s.Uy)
	s.InitEquilibrium()

	d := diag.New(sol)
	series := &viz.Series{}

	saveFields(con, s, 0)
	if con.ComputeFlowProperties {
		reportFlowProperties(d, series, 0, s)
	}

	start := time.Now()

	for n := 0; n < con.Steps; n++ {
		save, msg, needScalars := stepCadence(n+1, con.SaveEvery, con.MessageEvery)

		// Stream and collide, publishing the macroscopic fields only
		// when this step measures or saves them.
		s.Step(needScalars)

		if save {
			saveFields(con, s, n+1)
		}

		if msg {
			if err := s.CheckDensity(); err != nil {
				log.Fatalf(
					"simulation diverged at timestep %d: %s",
					n+1, err.Error(),
				)
			}
			if con.ComputeFlowProperties {
				reportFlowProperties(d, series, n+1, s)
			}
			if !con.Quiet {
				fmt.Printf("completed timestep %d\n", n+1)
			}
		}
	}

	runtime := time.Since(start).Seconds()
	printPerformance(con, s, runtime)

	if con.PlotFile != "" && series.Len() > 0 {
		if err := series.SavePlot(con.PlotFile); err != nil {
			log.Printf("Error saving plot to %s: %s", con.PlotFile, err.Error())
		} else if !con.Quiet {
			fmt.Printf("Saved plot to %s\n", con.PlotFile)
		}
	}
}

// stepCadence reports whether timestep n dumps fields, prints a message,
// and therefore needs the macroscopic fields published. Message steps
// always publish, even with flow properties off, so the density
// divergence scan runs at every message interval.
func stepCadence(n, saveEvery, messageEvery int) (save, msg, needScalars bool) {
	save = n%saveEvery == 0
	msg = n%messageEvery == 0
	return save, msg, save || msg
}

// saveFields dumps the three macroscopic fields for one timestep. Export
// failures are reported and skipped; they never stop the run.
func saveFields(con *io.SimulationConfig, s *bgkflow.Solver, step int) {
	fields := []struct {
		name   string
		scalar *grid.Scalar
	}{
		{"rho", s.Rho},
		{"ux", s.Ux},
		{"uy", s.Uy},
	}

	for _, field := range fields {
		fname, err := io.SaveScalar(
			con.Output, field.name, step, con.Steps, field.scalar,
		)
		if err != nil {
			log.Printf("Error saving to %s: %s", fname, err.Error())
			continue
		}
		if !con.Quiet {
			fmt.Printf("Saved to %s\n", fname)
		}
	}
}

// reportFlowProperties prints the CSV diagnostic line for timestep n and
// records it for the end-of-run plot.
func reportFlowProperties(
	d *diag.Diagnostics, series *viz.Series, n int, s *bgkflow.Solver,
) {
	p := d.FlowProperties(float64(n), s.Rho, s.Ux, s.Uy)
	fmt.Printf("%d,%g,%g,%g,%g\n", n, p.Energy, p.RhoErr, p.UxErr, p.UyErr)
	series.Append(n, p)
}

// printPerformance mirrors the usual LBM accounting: every node reads and
// writes all nine populations each step and publishes three scalars on
// save steps.
func printPerformance(con *io.SimulationConfig, s *bgkflow.Solver, runtime float64) {
	const (
		doublesRead    = 9
		doublesWritten = 9
		doublesSaved   = 3
	)

	nodesUpdated := int64(con.Steps) * int64(con.NX) * int64(con.NY)
	nodesSaved := int64(con.Steps/con.SaveEvery) * int64(con.NX) * int64(con.NY)
	speed := float64(nodesUpdated) / (1e6 * runtime)

	bandwidth := float64(nodesUpdated*(doublesRead+doublesWritten)+
		nodesSaved*doublesSaved) * 8.0 / (runtime * bytesPerGiB)

	fmt.Printf(" ----- performance information -----\n")
	fmt.Printf(" memory allocated: %.1f (MiB)\n", float64(s.MemBytes())/bytesPerMiB)
	fmt.Printf("        timesteps: %d\n", con.Steps)
	fmt.Printf("          runtime: %.3f (s)\n", runtime)
	fmt.Printf("            speed: %.2f (Mlups)\n", speed)
	fmt.Printf("        bandwidth: %.1f (GiB/s)\n", bandwidth)
}
