// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// +build debug

package bdd

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

func init() {
	log.SetOutput(os.Stdout)
}

// LogTable dumps the current content of the node table, one line per slot
// (terminals and tombstoned slots included), for use while debugging a
// session built with the debug build tag.
func (t *Table) LogTable() {
	for id, n := range t.nodes {
		switch n.variable {
		case terminal:
			log.Printf("%-4d terminal\n", id)
		case tombstone:
			log.Printf("%-4d tombstone\n", id)
		default:
			log.Printf("%-4d var=%-3d low=%-4d high=%-4d\n", id, n.variable, n.low, n.high)
		}
	}
}
