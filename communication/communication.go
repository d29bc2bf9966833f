package communication

import "github.com/jarvarvarvis/rostware23/game"

// Message is anything the game server sends to a joined client.
type Message interface {
	message()
}

// Welcome assigns the team this client plays.
type Welcome struct {
	Team game.Team
}

// Memento carries the authoritative state after every move.
type Memento struct {
	State game.State
}

type MoveRequest struct{}

// Result ends the game. Scores hold the fish collected per team.
type Result struct {
	Winner game.Team
	Draw   bool
	Scores [2]int
}

// Left is sent when the room is closed.
type Left struct{}

func (Welcome) message()     {}
func (Memento) message()     {}
func (MoveRequest) message() {}
func (Result) message()      {}
func (Left) message()        {}

// Communicator is an interface that abstracts the connection to the game server.
type Communicator interface {
	Join() (roomID string, err error)
	Receive() (Message, error)
	Send(move game.Move) error
	Close() error
}
