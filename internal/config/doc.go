// Package config provides the YAML configuration for vitrine.
//
// The configuration file holds the page's timings and geometry, the slide
// deck, and the copy shown in the details dialog. Every setting has a
// built-in default, so a missing file is not an error: the page simply runs
// with the stock demo deck.
//
// # Configuration File Location
//
// The file is looked up in this order:
//  1. an explicit path (the --config flag)
//  2. the VITRINE_CONFIG environment variable
//  3. the platform default:
//     - Linux: $XDG_CONFIG_HOME/vitrine/config.yaml or $HOME/.config/vitrine/config.yaml
//     - macOS: $HOME/.config/vitrine/config.yaml
//     - Windows: %LOCALAPPDATA%\vitrine\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := cfg.Carousel.Options()
//
// # Units
//
// Durations are stored in milliseconds. Geometry (gap, drag threshold,
// touch step) is measured in terminal cells.
package config
