package io

import (
	"gopkg.in/gcfg.v1"
)

const ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Lattice domain size in cells.
NX = 128
NY = 128

# Kinematic viscosity in lattice units. The relaxation time is
# tau = 3 Nu + 0.5 and must exceed 0.5, so Nu must be positive.
Nu = 0.05

# Peak velocity of the initial vortex in lattice units. Keep this small
# compared to the lattice sound speed (about 0.577) or compressibility
# error will dominate.
UMax = 0.01

# Reference density.
Rho0 = 1.0

# Number of timesteps to run.
Steps = 2000

# Directory which scalar field dumps will be written to. It must already
# exist.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Dump the rho, ux, and uy fields every SaveEvery steps (and at t=0).
# Default is 100.
# SaveEvery = 100

# Report flow properties every MessageEvery steps. Default is 50.
# MessageEvery = 50

# Compare against the analytic Taylor-Green solution and print a CSV line
# "timestep,energy,rho_err,ux_err,uy_err" at every message interval.
# Default is true.
# ComputeFlowProperties = true

# Suppress progress and save confirmation messages. Default is false.
# Quiet = false

# Number of worker goroutines used for the sweep. Default is the number
# of logical cores.
# Threads = 4

# If set, write a log-scale plot of the measured energy and error series
# to this file at the end of the run. The extension selects the format
# (.png, .pdf, .svg).
# PlotFile = decay.png`

// SimulationConfig mirrors the [Simulation] section of a config file.
type SimulationConfig struct {
	// Required
	NX, NY int
	Nu     float64
	UMax   float64
	Rho0   float64
	Steps  int
	Output string

	// Optional
	SaveEvery             int
	MessageEvery          int
	ComputeFlowProperties bool
	Quiet                 bool
	Threads               int
	PlotFile              string
}

type SimulationWrapper struct {
	Simulation SimulationConfig
}

func DefaultSimulationWrapper() *SimulationWrapper {
	con := SimulationConfig{}
	con.Rho0 = 1.0
	con.SaveEvery = 100
	con.MessageEvery = 50
	con.ComputeFlowProperties = true
	return &SimulationWrapper{con}
}

// ReadSimulationConfig reads and unpacks the [Simulation] section of the
// given file, with defaults applied to unset optional fields.
func ReadSimulationConfig(fname string) (*SimulationConfig, error) {
	wrap := DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Simulation, nil
}

func (con *SimulationConfig) ValidGrid() bool {
	return con.NX >= 2 && con.NY >= 2
}

// ValidNu requires tau = 3 Nu + 0.5 > 0.5, the BGK stability bound.
func (con *SimulationConfig) ValidNu() bool {
	return con.Nu > 0
}

// ValidUMax also protects the diagnostics, which normalize by the
// analytic velocity magnitude.
func (con *SimulationConfig) ValidUMax() bool {
	return con.UMax > 0
}

func (con *SimulationConfig) ValidRho0() bool {
	return con.Rho0 > 0
}

func (con *SimulationConfig) ValidSteps() bool {
	return con.Steps >= 1
}

func (con *SimulationConfig) ValidOutput() bool {
	return con.Output != ""
}

func (con *SimulationConfig) ValidSaveEvery() bool {
	return con.SaveEvery >= 1
}

func (con *SimulationConfig) ValidMessageEvery() bool {
	return con.MessageEvery >= 1
}

// Tau returns the BGK relaxation time implied by the viscosity.
func (con *SimulationConfig) Tau() float64 {
	return 3.0*con.Nu + 0.5
}
