package client

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jarvarvarvis/rostware23/communication"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	io.Reader
	out    bytes.Buffer
	closed bool
}

func (f *fakeConn) Write(p []byte) (int, error) { return f.out.Write(p) }
func (f *fakeConn) Close() error                { f.closed = true; return nil }

func newFake(input string) *fakeConn {
	return &fakeConn{Reader: strings.NewReader(input)}
}

// stateXML renders a state the way the server does.
func stateXML(s game.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<state class="state" turn="%d"><startTeam>%s</startTeam><board>`, s.Turn, s.StartTeam)
	for y := 0; y < game.BoardHeight; y++ {
		sb.WriteString("<list>")
		for x := 0; x < game.BoardWidth; x++ {
			tile := s.Board.At(game.FromOddR(x, y))
			field := strconvTile(tile)
			fmt.Fprintf(&sb, "<field>%s</field>", field)
		}
		sb.WriteString("</list>")
	}
	fmt.Fprintf(&sb, `</board><fishes><int>%d</int><int>%d</int></fishes></state>`, s.Fish[game.One], s.Fish[game.Two])
	return sb.String()
}

func strconvTile(t game.Tile) string {
	if team, ok := t.Owner(); ok {
		return team.String()
	}
	return fmt.Sprint(t.FishCount())
}

func TestClientSession(t *testing.T) {
	b, err := game.ParseBoard("= G G G G\n . -\n\n\n\n\n\n P P P P")
	require.NoError(t, err)
	want := game.NewState(b, game.One)
	want.Turn = 8
	want.Fish = [2]int{5, 7}

	input := `<protocol>
  <joined roomId="R1"/>
  <room roomId="R1"><data class="welcomeMessage" color="ONE"></data></room>
  <room roomId="R1"><data class="memento">` + stateXML(want) + `</data></room>
  <room roomId="R1"><data class="moveRequest"/></room>
  <room roomId="R1"><data class="result">
    <definition><fragment name="Siegpunkte"><aggregation>SUM</aggregation><relevantForRanking>true</relevantForRanking></fragment></definition>
    <scores>
      <entry><player name="a" team="ONE"/><score cause="REGULAR" reason=""><part>0</part><part>20</part></score></entry>
      <entry><player name="b" team="TWO"/><score cause="REGULAR" reason=""><part>2</part><part>31</part></score></entry>
    </scores>
    <winner team="TWO"/>
  </data></room>
  <left roomId="R1"/>
</protocol>`
	conn := newFake(input)
	c := New(conn, "", "")

	roomID, err := c.Join()
	require.NoError(t, err)
	require.Equal(t, "R1", roomID)
	require.Equal(t, "<protocol><join></join>", conn.out.String(), "should open the protocol and join any room")

	msg, err := c.Receive()
	require.NoError(t, err)
	require.Equal(t, communication.Welcome{Team: game.One}, msg)

	msg, err = c.Receive()
	require.NoError(t, err)
	memento, ok := msg.(communication.Memento)
	require.True(t, ok, "expected a memento, got %T", msg)
	require.Equal(t, want, memento.State, "state should survive the wire format")
	require.NoError(t, memento.State.Board.Validate())

	msg, err = c.Receive()
	require.NoError(t, err)
	require.Equal(t, communication.MoveRequest{}, msg)

	conn.out.Reset()
	move := game.Slide(game.Coordinate{X: 2, Y: 0}, game.Coordinate{X: 0, Y: 0})
	require.NoError(t, c.Send(move))
	require.Equal(t, `<room roomId="R1"><data class="move"><from x="2" y="0"></from><to x="0" y="0"></to></data></room>`, conn.out.String())

	msg, err = c.Receive()
	require.NoError(t, err)
	require.Equal(t, communication.Result{Winner: game.Two, Scores: [2]int{20, 31}}, msg)

	msg, err = c.Receive()
	require.NoError(t, err)
	require.Equal(t, communication.Left{}, msg)

	require.NoError(t, c.Close())
	require.True(t, conn.closed)
}

func TestClientJoin(t *testing.T) {
	t.Run("reservation", func(t *testing.T) {
		conn := newFake(`<protocol><joined roomId="R2"/>`)
		_, err := New(conn, "abc", "room").Join()
		require.NoError(t, err)
		require.Equal(t, `<protocol><joinPrepared reservationCode="abc"></joinPrepared>`, conn.out.String())
	})

	t.Run("room", func(t *testing.T) {
		conn := newFake(`<protocol><joined roomId="R3"/>`)
		roomID, err := New(conn, "", "R3").Join()
		require.NoError(t, err)
		require.Equal(t, "R3", roomID)
		require.Equal(t, `<protocol><joinRoom roomId="R3"></joinRoom>`, conn.out.String())
	})

	t.Run("rejected", func(t *testing.T) {
		conn := newFake(`<protocol><errorpacket message="unknown reservation"/>`)
		_, err := New(conn, "abc", "").Join()
		require.ErrorContains(t, err, "unknown reservation")
	})

	t.Run("send before join", func(t *testing.T) {
		err := New(newFake(""), "", "").Send(game.Place(game.Coordinate{}))
		require.ErrorIs(t, err, ErrNotJoined)
	})
}

func TestEncodeMove(t *testing.T) {
	b, err := encodeMove("R", game.Place(game.Coordinate{X: 3, Y: 7}))
	require.NoError(t, err)
	require.Equal(t, `<room roomId="R"><data class="move"><to x="3" y="7"></to></data></room>`, string(b),
		"placements have no source")
}

func TestDecodeField(t *testing.T) {
	tile, err := decodeField(" 3 ")
	require.NoError(t, err)
	require.Equal(t, game.FishTile(3), tile)

	tile, err = decodeField("0")
	require.NoError(t, err)
	require.Equal(t, game.EmptyTile(), tile)

	tile, err = decodeField("TWO")
	require.NoError(t, err)
	require.Equal(t, game.OwnedTile(game.Two), tile)

	_, err = decodeField("5")
	require.Error(t, err)
	_, err = decodeField("THREE")
	require.Error(t, err)
}

func TestDecodeResultDraw(t *testing.T) {
	msg, err := decodeResult(data{Class: "result"})
	require.NoError(t, err)
	require.Equal(t, communication.Result{Draw: true}, msg)
}
