// meta/meta.go
package meta

import "time"

// DEFAULT_HOST and DEFAULT_PORT address the local game server.
const DEFAULT_HOST = "localhost"

const DEFAULT_PORT = 13050

// MOVE_BUDGET is the search time per move, below the server's two seconds.
const MOVE_BUDGET = 1900 * time.Millisecond

// BATTLE_BUDGET is the search time per move in local battles.
const BATTLE_BUDGET = 100 * time.Millisecond

// OUTPUT_DIR receives experiment records.
const OUTPUT_DIR = "experiments"
