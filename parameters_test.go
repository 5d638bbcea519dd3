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

import   "os"
import   "path/filepath"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestParameters1(t *testing.T) {
  filename := filepath.Join(t.TempDir(), "parameters.yaml")
  if err := os.WriteFile(filename, []byte("gene-length: 200\nsigma: 2.5\nprefix: cis\nstrict: true\n"), 0644); err != nil {
    t.Fatal(err)
  }
  parameters, err := ImportParameters(filename)
  if err != nil {
    t.Fatal(err)
  }
  if r := parameters.GetInt("gene-length", 1000); r != 200 {
    t.Errorf("TestParameters1 failed: %d", r)
  }
  if r := parameters.GetFloat64("sigma", 5); r != 2.5 {
    t.Errorf("TestParameters1 failed: %f", r)
  }
  if r := parameters.GetString("prefix", "trans"); r != "cis" {
    t.Errorf("TestParameters1 failed: %s", r)
  }
  if r := parameters.GetBool("strict", false); !r {
    t.Error("TestParameters1 failed!")
  }
  if r := parameters.GetInt("runs", 500); r != 500 {
    t.Errorf("TestParameters1 failed: %d", r)
  }
}

func TestParameters2(t *testing.T) {
  parameters := Parameters{}
  if parameters.IsSet("runs") || parameters.GetInt("runs", 500) != 500 {
    t.Error("TestParameters2 failed!")
  }
  if _, err := ImportParameters(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
    t.Error("TestParameters2 failed!")
  }
}
