// meta/meta.go
package meta

// DEPTH is the default search depth in rounds.
const DEPTH = 2

// MAX_TURNS caps the number of rounds of a single game.
const MAX_TURNS = 300

// GAMES is the number of games played per configuration in an experiment.
const GAMES = 10

// SCARED_TIME is the number of adversary moves a special objective keeps adversaries vulnerable.
const SCARED_TIME = 40
