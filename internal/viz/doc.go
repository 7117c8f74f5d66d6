// Package viz renders mechlab results in the terminal.
//
// [OrbitModel] is a bubbletea program that advances a gravity session one
// step per tick and redraws between steps. [Bodies] and [Beam] render
// plain tables for the non-interactive commands.
package viz
