/*
Package config manages configuration parsing and validation for translaterc.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Loads the config file and picks a parser by extension
- Validates values and fills in defaults (language, marker, manifest,
  destination)
- Hashes the config so the lock file can detect drift

📝 Design Philosophy:
The config package is the source of truth for a run. Everything downstream
receives a validated *Config and never re-checks defaults.
*/
package config
