package chain

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Params are all the set of params for the chain
type Params struct {
	Name  string `json:"name"`
	Forks *Forks `json:"forks"`

	// Schedule replaces the fork selected gas schedule when set
	Schedule *Schedule `json:"schedule,omitempty"`
}

var (
	errNoForks          = errors.New("forks are not set")
	errZeroTxGas        = errors.New("schedule tx gas must be positive")
	errCreateBelowCall  = errors.New("schedule create gas is lower than call gas")
	errUnknownFork      = errors.New("unknown fork")
	errNegativeFork     = errors.New("fork block must not be negative")
	errNegativeSchedule = errors.New("schedule values must not be negative")
)

// MainnetParams activates every fork at genesis except the calldata floor.
var MainnetParams = &Params{
	Name: "mainnet",
	Forks: &Forks{
		Homestead: NewFork(0),
		Istanbul:  NewFork(0),
	},
}

// AllForksEnabled should contain all supported forks by current edition
var AllForksEnabled = &Forks{
	Homestead: NewFork(0),
	Istanbul:  NewFork(0),
	Prague:    NewFork(0),
}

// ScheduleAt returns the gas schedule in force at the given block
func (p *Params) ScheduleAt(number uint64) *Schedule {
	if p.Schedule != nil {
		return p.Schedule
	}

	forks := p.Forks.At(number)

	switch {
	case forks.Istanbul:
		return IstanbulSchedule
	case forks.Homestead:
		return HomesteadSchedule
	default:
		return FrontierSchedule
	}
}

// Validate reports every inconsistency in the params at once
func (p *Params) Validate() error {
	var result *multierror.Error

	if p.Forks == nil {
		result = multierror.Append(result, errNoForks)
	} else if err := p.Forks.validateOrder(); err != nil {
		result = multierror.Append(result, err)
	}

	if s := p.Schedule; s != nil {
		if s.TxGas == 0 {
			result = multierror.Append(result, errZeroTxGas)
		}

		if s.TxCreateGas < s.TxGas {
			result = multierror.Append(result, fmt.Errorf("%w: create %d, call %d",
				errCreateBelowCall, s.TxCreateGas, s.TxGas))
		}
	}

	return result.ErrorOrNil()
}

// Forks specifies when each fork is activated
type Forks struct {
	Homestead *Fork `json:"homestead,omitempty"`
	Istanbul  *Fork `json:"istanbul,omitempty"`

	// Prague enables the EIP-7623 calldata floor
	Prague *Fork `json:"prague,omitempty"`
}

func (f *Forks) active(ff *Fork, block uint64) bool {
	if ff == nil {
		return false
	}

	return ff.Active(block)
}

func (f *Forks) IsHomestead(block uint64) bool {
	return f.At(block).Homestead
}

func (f *Forks) IsIstanbul(block uint64) bool {
	return f.At(block).Istanbul
}

func (f *Forks) IsPrague(block uint64) bool {
	return f.At(block).Prague
}

// At returns the forks in force at the given block
func (f *Forks) At(block uint64) ForksInTime {
	if f == nil {
		return ForksInTime{}
	}

	return ForksInTime{
		Homestead: f.active(f.Homestead, block),
		Istanbul:  f.active(f.Istanbul, block),
		Prague:    f.active(f.Prague, block),
	}
}

func (f *Forks) set(name string, block uint64) error {
	switch name {
	case "homestead":
		f.Homestead = NewFork(block)
	case "istanbul":
		f.Istanbul = NewFork(block)
	case "prague":
		f.Prague = NewFork(block)
	default:
		return fmt.Errorf("%w: %s", errUnknownFork, name)
	}

	return nil
}

func (f *Forks) validateOrder() error {
	var (
		last     uint64
		lastName string
	)

	for _, o := range []struct {
		name string
		fork *Fork
	}{
		{"homestead", f.Homestead},
		{"istanbul", f.Istanbul},
		{"prague", f.Prague},
	} {
		if o.fork == nil {
			continue
		}

		if uint64(*o.fork) < last {
			return fmt.Errorf("fork %s at %d activates before %s at %d", o.name, *o.fork, lastName, last)
		}

		last, lastName = uint64(*o.fork), o.name
	}

	return nil
}

type Fork uint64

func NewFork(n uint64) *Fork {
	f := Fork(n)

	return &f
}

func (f Fork) Active(block uint64) bool {
	return block >= uint64(f)
}

type ForksInTime struct {
	Homestead,
	Istanbul,
	Prague bool
}
