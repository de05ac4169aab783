/* Copyright (C) 2024 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package chromswitch

/* -------------------------------------------------------------------------- */

// Config collects all options of the switch detection pipeline. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
  // preprocessing
  Filter              bool
  FilterAttributes    []string
  FilterThresholds    []float64
  Normalize           bool
  NormalizeAttributes []string
  TailFraction        float64
  // feature matrix strategy: "summary" or "binary"
  Strategy            string
  // summary strategy
  StatAttributes      []string
  UseFraction         bool
  UseCount            bool
  // binary strategy
  Reduce              bool
  Gap                 int
  P                   float64
  IncludeFeatureCount bool
  // clustering
  OptimalClusters     bool
}

func DefaultConfig() Config {
  config := Config{}
  config.TailFraction    = 0.01
  config.Strategy        = "summary"
  config.UseFraction     = true
  config.UseCount        = true
  config.Reduce          = true
  config.Gap             = 300
  config.P               = 0.4
  config.OptimalClusters = true
  return config
}

/* -------------------------------------------------------------------------- */

// Validate checks the configuration before any region is processed, so that
// configuration mistakes abort the run early.
func (config Config) Validate() error {
  if config.Filter && len(config.FilterAttributes) != len(config.FilterThresholds) {
    return newConfigError("config: %d filter attributes but %d thresholds",
      len(config.FilterAttributes), len(config.FilterThresholds))
  }
  if config.TailFraction < 0.0 || config.TailFraction > 1.0 {
    return newConfigError("config: tail fraction %f not in [0,1]", config.TailFraction)
  }
  switch config.Strategy {
  case "summary":
    if len(config.StatAttributes) == 0 && !config.UseFraction && !config.UseCount {
      return newConfigError("config: summary strategy without any feature columns")
    }
  case "binary":
    if config.P <= 0.0 || config.P > 1.0 {
      return newConfigError("config: p = %f not in (0,1]", config.P)
    }
    if config.Gap < 0 {
      return newConfigError("config: gap = %d is negative", config.Gap)
    }
  default:
    return newConfigError("config: unknown strategy `%s'", config.Strategy)
  }
  return nil
}

// FilterThresholdMap returns the filter options as an attribute to minimum
// value mapping.
func (config Config) FilterThresholdMap() map[string]float64 {
  thresholds := make(map[string]float64)
  for i, attribute := range config.FilterAttributes {
    thresholds[attribute] = config.FilterThresholds[i]
  }
  return thresholds
}
