/* Copyright (C) 2025 The polmodel dataprocess authors
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


package dataprocess

/* -------------------------------------------------------------------------- */

import "fmt"

import "github.com/spf13/viper"

/* -------------------------------------------------------------------------- */

// Parameters read from a configuration file (YAML, TOML, JSON, ...). Keys
// are the long option names of the tools. A zero value holds no
// parameters.
type Parameters struct {
  v *viper.Viper
}

func ImportParameters(filename string) (Parameters, error) {
  v := viper.New()
  v.SetConfigFile(filename)
  if err := v.ReadInConfig(); err != nil {
    return Parameters{}, fmt.Errorf("reading parameters from `%s' failed: %w", filename, err)
  }
  return Parameters{v}, nil
}

/* -------------------------------------------------------------------------- */

func (parameters Parameters) IsSet(key string) bool {
  return parameters.v != nil && parameters.v.IsSet(key)
}

func (parameters Parameters) GetInt(key string, def int) int {
  if !parameters.IsSet(key) {
    return def
  }
  return parameters.v.GetInt(key)
}

func (parameters Parameters) GetFloat64(key string, def float64) float64 {
  if !parameters.IsSet(key) {
    return def
  }
  return parameters.v.GetFloat64(key)
}

func (parameters Parameters) GetString(key string, def string) string {
  if !parameters.IsSet(key) {
    return def
  }
  return parameters.v.GetString(key)
}

func (parameters Parameters) GetBool(key string, def bool) bool {
  if !parameters.IsSet(key) {
    return def
  }
  return parameters.v.GetBool(key)
}
