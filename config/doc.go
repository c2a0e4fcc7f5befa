// SPDX-License-Identifier: MIT

// Package config loads run settings and problem instances from YAML.
//
// A settings file only needs the keys it overrides; everything else keeps
// the value from Default:
//
//	release:
//	  horizon: 30          # single-agent time budget
//	  setup_overhead: 4    # subtracted from horizon for two agents
//	  start: AA
//	economy:
//	  horizon: 24
//	  producer_cap: true
//	batch:
//	  workers: 0           # 0 = GOMAXPROCS
//	log:
//	  level: info
//
// Instance files describe a release network (a list of sites plus an
// optional start) or a list of production blueprints whose costs are keyed
// by resource kind name; see ParseNetwork and ParseBlueprints.
package config
