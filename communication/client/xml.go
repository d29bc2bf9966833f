package client

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/jarvarvarvis/rostware23/communication"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/pkg/errors"
)

type joinRoom struct {
	XMLName xml.Name `xml:"joinRoom"`
	RoomID  string   `xml:"roomId,attr"`
}

type joinPrepared struct {
	XMLName         xml.Name `xml:"joinPrepared"`
	ReservationCode string   `xml:"reservationCode,attr"`
}

type joined struct {
	RoomID string `xml:"roomId,attr"`
}

type errorPacket struct {
	Message string `xml:"message,attr"`
}

type position struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

type moveData struct {
	Class string    `xml:"class,attr"`
	From  *position `xml:"from,omitempty"`
	To    position  `xml:"to"`
}

type outgoingRoom struct {
	XMLName xml.Name `xml:"room"`
	RoomID  string   `xml:"roomId,attr"`
	Data    moveData `xml:"data"`
}

type incomingRoom struct {
	RoomID string `xml:"roomId,attr"`
	Data   data   `xml:"data"`
}

type data struct {
	Class  string        `xml:"class,attr"`
	Color  string        `xml:"color,attr"`
	State  *stateElement `xml:"state"`
	Scores []scoreEntry  `xml:"scores>entry"`
	Winner *winner       `xml:"winner"`
}

type stateElement struct {
	Turn      int    `xml:"turn,attr"`
	StartTeam string `xml:"startTeam"`
	Rows      []row  `xml:"board>list"`
	Fishes    []int  `xml:"fishes>int"`
}

type row struct {
	Fields []string `xml:"field"`
}

type scoreEntry struct {
	Player struct {
		Name string `xml:"name,attr"`
		Team string `xml:"team,attr"`
	} `xml:"player"`
	Parts []int `xml:"score>part"`
}

type winner struct {
	Team string `xml:"team,attr"`
}

// encodeMove writes a move addressed to room. Coordinates are doubled.
func encodeMove(roomID string, m game.Move) ([]byte, error) {
	out := outgoingRoom{
		RoomID: roomID,
		Data: moveData{
			Class: "move",
			To:    position{X: m.To.X, Y: m.To.Y},
		},
	}
	if from, ok := m.Source(); ok {
		out.Data.From = &position{X: from.X, Y: from.Y}
	}
	b, err := xml.Marshal(out)
	return b, errors.Wrapf(err, "failed to encode move %s", m)
}

func decodeRoom(room incomingRoom) (communication.Message, error) {
	switch room.Data.Class {
	case "welcomeMessage":
		team, err := game.ParseTeam(room.Data.Color)
		if err != nil {
			return nil, errors.Wrap(err, "invalid welcome message")
		}
		return communication.Welcome{Team: team}, nil
	case "memento":
		if room.Data.State == nil {
			return nil, errors.New("memento without state")
		}
		state, err := decodeState(*room.Data.State)
		if err != nil {
			return nil, errors.Wrap(err, "invalid memento")
		}
		return communication.Memento{State: state}, nil
	case "moveRequest":
		return communication.MoveRequest{}, nil
	case "result":
		return decodeResult(room.Data)
	}
	return nil, nil
}

func decodeState(s stateElement) (game.State, error) {
	start, err := game.ParseTeam(strings.TrimSpace(s.StartTeam))
	if err != nil {
		return game.State{}, err
	}
	if len(s.Rows) != game.BoardHeight {
		return game.State{}, errors.Errorf("board has %d rows", len(s.Rows))
	}

	var board game.Board
	for y, r := range s.Rows {
		if len(r.Fields) != game.BoardWidth {
			return game.State{}, errors.Errorf("row %d has %d fields", y, len(r.Fields))
		}
		for x, field := range r.Fields {
			tile, err := decodeField(field)
			if err != nil {
				return game.State{}, errors.Wrapf(err, "row %d field %d", y, x)
			}
			if err := board.Set(game.FromOddR(x, y), tile); err != nil {
				return game.State{}, errors.Wrapf(err, "row %d field %d", y, x)
			}
		}
	}

	state := game.NewState(board, start)
	state.Turn = s.Turn
	for i := 0; i < len(s.Fishes) && i < len(state.Fish); i++ {
		state.Fish[i] = s.Fishes[i]
	}
	return state, nil
}

func decodeField(field string) (game.Tile, error) {
	field = strings.TrimSpace(field)
	switch field {
	case "ONE", "TWO":
		team, err := game.ParseTeam(field)
		return game.OwnedTile(team), err
	case "0", "":
		return game.EmptyTile(), nil
	}
	fish, err := strconv.Atoi(field)
	if err != nil || fish < 1 || fish > 4 {
		return game.Tile{}, errors.Errorf("unknown field %q", field)
	}
	return game.FishTile(fish), nil
}

func decodeResult(d data) (communication.Message, error) {
	result := communication.Result{Draw: d.Winner == nil}
	if d.Winner != nil {
		team, err := game.ParseTeam(d.Winner.Team)
		if err != nil {
			return nil, errors.Wrap(err, "invalid winner")
		}
		result.Winner = team
	}
	for _, entry := range d.Scores {
		team, err := game.ParseTeam(entry.Player.Team)
		if err != nil {
			return nil, errors.Wrap(err, "invalid score entry")
		}
		// The first part holds the ranking points, the second the fish
		if len(entry.Parts) > 1 {
			result.Scores[team] = entry.Parts[1]
		}
	}
	return result, nil
}
