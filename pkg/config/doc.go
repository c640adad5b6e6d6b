/*
Package config manages configuration parsing and validation for ptrn.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  HCL   | |  JSON   |
	| Parser    | | Parser | | Parser  |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Manages configuration loading and parsing
- Validates extensions, prefixes and the target directory
- Supplies phone-import defaults when no file is present
- Supports multiple config formats behind one interface

🔄 Flow:
1. Reads configuration from file (or starts from DefaultConfig)
2. Parses format-specific syntax; a .ptrnrc file tries YAML, then HCL
3. Overlays the document onto the defaults
4. Validates the merged result and hands it to the orchestrator

⚡ Key Responsibilities:
- Configuration parsing
- Default value management
- Extension and prefix validation
- Format abstraction

📝 Design Philosophy:
The config package is the source of truth for a run's settings. Every knob
has a default that matches a phone import, so `ptrn rename` works in the
common case with no file at all, and a config file only narrows or widens
the run.

🔍 Example:

	cfg, err := config.Load(ctx, ".ptrnrc")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
*/
package config
