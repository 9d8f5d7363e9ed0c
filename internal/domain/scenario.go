package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario describes a recurring-expense hedge: an expense incurred every
// period, at BaselineCost when the hedged event does not occur and at
// AdverseCost when it does, hedged with binary-outcome market shares priced
// at SharePrice.
type Scenario struct {
	// BaselineCost is the per-period amount when the event does not occur.
	BaselineCost decimal.Decimal `yaml:"baseline_cost" json:"baseline_cost"`
	// AdverseCost is the per-period amount when the event occurs. Expected
	// to exceed BaselineCost; the engine propagates inverted inputs as
	// negative share counts rather than rejecting them.
	AdverseCost decimal.Decimal `yaml:"adverse_cost" json:"adverse_cost"`
	// EventProbability is the chance the event occurs in any one period,
	// strictly between 0 and 1.
	EventProbability float64 `yaml:"event_probability" json:"event_probability"`
	// Periods is the number of independent periods per simulated trial.
	Periods int `yaml:"periods" json:"periods"`
	// SharePrice is the market price of one YES share, in (0,1).
	SharePrice decimal.Decimal `yaml:"share_price" json:"share_price"`
	// FeeRate is the fraction of notional the market operator retains on
	// settlement, in [0,1).
	FeeRate decimal.Decimal `yaml:"fee_rate" json:"fee_rate"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Scenario. The YAML
// library does not decode scalars into decimal.Decimal, so money fields go
// through string intermediaries.
func (sc *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		BaselineCost     string  `yaml:"baseline_cost"`
		AdverseCost      string  `yaml:"adverse_cost"`
		EventProbability float64 `yaml:"event_probability"`
		Periods          int     `yaml:"periods"`
		SharePrice       string  `yaml:"share_price"`
		FeeRate          string  `yaml:"fee_rate"`
	}

	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	sc.EventProbability = aux.EventProbability
	sc.Periods = aux.Periods

	for _, f := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{aux.BaselineCost, &sc.BaselineCost},
		{aux.AdverseCost, &sc.AdverseCost},
		{aux.SharePrice, &sc.SharePrice},
		{aux.FeeRate, &sc.FeeRate},
	} {
		if f.raw == "" {
			continue
		}
		val, err := decimal.NewFromString(f.raw)
		if err != nil {
			return err
		}
		*f.dst = val
	}

	return nil
}

// MarshalYAML emits money fields as plain decimal strings.
func (sc Scenario) MarshalYAML() (interface{}, error) {
	return struct {
		BaselineCost     string  `yaml:"baseline_cost"`
		AdverseCost      string  `yaml:"adverse_cost"`
		EventProbability float64 `yaml:"event_probability"`
		Periods          int     `yaml:"periods"`
		SharePrice       string  `yaml:"share_price"`
		FeeRate          string  `yaml:"fee_rate"`
	}{
		BaselineCost:     sc.BaselineCost.String(),
		AdverseCost:      sc.AdverseCost.String(),
		EventProbability: sc.EventProbability,
		Periods:          sc.Periods,
		SharePrice:       sc.SharePrice.String(),
		FeeRate:          sc.FeeRate.String(),
	}, nil
}

// ConsolationScenario describes a single-event consolation hedge: a sunk
// entry cost paid regardless of outcome, with the hedge paying a desired
// consolation amount if the adverse event occurs.
type ConsolationScenario struct {
	// EntryCost is the amount sunk whether or not the event occurs.
	EntryCost decimal.Decimal `yaml:"entry_cost" json:"entry_cost"`
	// Consolation is the desired payout target when the adverse event
	// occurs, scaled by the chosen hedge ratio.
	Consolation decimal.Decimal `yaml:"consolation" json:"consolation"`
	// EventProbability is the chance the adverse event occurs.
	EventProbability float64 `yaml:"event_probability" json:"event_probability"`
	// SharePrice is the market price of one YES share, in (0,1).
	SharePrice decimal.Decimal `yaml:"share_price" json:"share_price"`
	// FeeRate is the fraction of notional retained on settlement.
	FeeRate decimal.Decimal `yaml:"fee_rate" json:"fee_rate"`
}

// UnmarshalYAML implements custom YAML unmarshaling for ConsolationScenario,
// converting money fields through string intermediaries.
func (cs *ConsolationScenario) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		EntryCost        string  `yaml:"entry_cost"`
		Consolation      string  `yaml:"consolation"`
		EventProbability float64 `yaml:"event_probability"`
		SharePrice       string  `yaml:"share_price"`
		FeeRate          string  `yaml:"fee_rate"`
	}

	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	cs.EventProbability = aux.EventProbability

	for _, f := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{aux.EntryCost, &cs.EntryCost},
		{aux.Consolation, &cs.Consolation},
		{aux.SharePrice, &cs.SharePrice},
		{aux.FeeRate, &cs.FeeRate},
	} {
		if f.raw == "" {
			continue
		}
		val, err := decimal.NewFromString(f.raw)
		if err != nil {
			return err
		}
		*f.dst = val
	}

	return nil
}

// MarshalYAML emits money fields as plain decimal strings.
func (cs ConsolationScenario) MarshalYAML() (interface{}, error) {
	return struct {
		EntryCost        string  `yaml:"entry_cost"`
		Consolation      string  `yaml:"consolation"`
		EventProbability float64 `yaml:"event_probability"`
		SharePrice       string  `yaml:"share_price"`
		FeeRate          string  `yaml:"fee_rate"`
	}{
		EntryCost:        cs.EntryCost.String(),
		Consolation:      cs.Consolation.String(),
		EventProbability: cs.EventProbability,
		SharePrice:       cs.SharePrice.String(),
		FeeRate:          cs.FeeRate.String(),
	}, nil
}
