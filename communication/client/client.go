package client

import (
	"bufio"
	"encoding/xml"
	"io"
	"net"
	"strconv"

	"github.com/jarvarvarvis/rostware23/communication"
	"github.com/jarvarvarvis/rostware23/game"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const protocolStart = "<protocol>"

var ErrNotJoined = errors.New("not joined to a room")

// Client talks XML over a plain TCP connection to the game server.
type Client struct {
	conn        io.ReadWriteCloser
	writer      *bufio.Writer
	decoder     *xml.Decoder
	reservation string
	room        string
	roomID      string
}

// Dial connects to host:port. A reservation code takes precedence over a
// room id; with neither the server picks any open room.
func Dial(host string, port int, reservation, room string) (*Client, error) {
	address := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", address)
	}
	log.Info().Msgf("connected to %s", address)
	return New(conn, reservation, room), nil
}

func New(conn io.ReadWriteCloser, reservation, room string) *Client {
	return &Client{
		conn:        conn,
		writer:      bufio.NewWriter(conn),
		decoder:     xml.NewDecoder(conn),
		reservation: reservation,
		room:        room,
	}
}

var _ communication.Communicator = (*Client)(nil)

func (c *Client) Join() (string, error) {
	if _, err := c.writer.WriteString(protocolStart); err != nil {
		return "", errors.Wrap(err, "failed to open protocol")
	}

	var request any = struct {
		XMLName xml.Name `xml:"join"`
	}{}
	switch {
	case c.reservation != "":
		request = joinPrepared{ReservationCode: c.reservation}
	case c.room != "":
		request = joinRoom{RoomID: c.room}
	}
	if err := c.write(request); err != nil {
		return "", errors.Wrap(err, "failed to send join request")
	}

	for {
		start, err := c.nextElement()
		if err != nil {
			return "", errors.Wrap(err, "failed to receive join response")
		}
		switch start.Name.Local {
		case "joined":
			var j joined
			if err := c.decoder.DecodeElement(&j, &start); err != nil {
				return "", errors.Wrap(err, "failed to decode join response")
			}
			c.roomID = j.RoomID
			log.Info().Msgf("joined room %s", c.roomID)
			return c.roomID, nil
		case "errorpacket":
			return "", c.serverError(start)
		default:
			if err := c.decoder.Skip(); err != nil {
				return "", errors.Wrapf(err, "failed to skip %s", start.Name.Local)
			}
		}
	}
}

// Receive blocks until the next message of the room arrives. Messages the
// client does not need are skipped.
func (c *Client) Receive() (communication.Message, error) {
	for {
		start, err := c.nextElement()
		if errors.Is(err, io.EOF) {
			return communication.Left{}, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to receive message")
		}

		switch start.Name.Local {
		case "room":
			var room incomingRoom
			if err := c.decoder.DecodeElement(&room, &start); err != nil {
				return nil, errors.Wrap(err, "failed to decode room message")
			}
			msg, err := decodeRoom(room)
			if err != nil {
				return nil, err
			}
			if msg == nil {
				log.Debug().Msgf("ignoring room message of class %q", room.Data.Class)
				continue
			}
			return msg, nil
		case "left":
			if err := c.decoder.Skip(); err != nil {
				return nil, errors.Wrap(err, "failed to read left message")
			}
			return communication.Left{}, nil
		case "errorpacket":
			return nil, c.serverError(start)
		default:
			if err := c.decoder.Skip(); err != nil {
				return nil, errors.Wrapf(err, "failed to skip %s", start.Name.Local)
			}
		}
	}
}

func (c *Client) Send(move game.Move) error {
	if c.roomID == "" {
		return ErrNotJoined
	}
	b, err := encodeMove(c.roomID, move)
	if err != nil {
		return err
	}
	if _, err := c.writer.Write(b); err != nil {
		return errors.Wrap(err, "failed to send move")
	}
	return errors.Wrap(c.writer.Flush(), "failed to send move")
}

func (c *Client) Close() error {
	_, err := c.writer.WriteString("</protocol>")
	if err == nil {
		err = c.writer.Flush()
	}
	if cerr := c.conn.Close(); cerr != nil {
		return errors.Wrap(cerr, "failed to close connection")
	}
	return errors.Wrap(err, "failed to close protocol")
}

func (c *Client) write(v any) error {
	b, err := xml.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := c.writer.Write(b); err != nil {
		return err
	}
	return c.writer.Flush()
}

// nextElement returns the next start element below <protocol>.
func (c *Client) nextElement() (xml.StartElement, error) {
	for {
		tok, err := c.decoder.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "protocol" {
				continue
			}
			return t, nil
		case xml.EndElement:
			if t.Name.Local == "protocol" {
				return xml.StartElement{}, io.EOF
			}
		}
	}
}

func (c *Client) serverError(start xml.StartElement) error {
	var packet errorPacket
	if err := c.decoder.DecodeElement(&packet, &start); err != nil {
		return errors.Wrap(err, "failed to decode error packet")
	}
	return errors.Errorf("server error: %s", packet.Message)
}
