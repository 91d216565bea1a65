// Package config loads and stores diced configuration files.
//
// A configuration holds flag defaults under "options" and named dice sets
// grouped into profiles under "profiles". Files are YAML or TOML, selected by
// extension:
//
//	options:
//	  color: true
//	profiles:
//	  - ident: fighter
//	    sets:
//	      - name: attack
//	        dice: [1d20+5]
//	      - name: damage
//	        dice: [2d6+3]
//
// A missing configuration file is equivalent to an empty configuration.
package config
