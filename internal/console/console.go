// Package console runs the game as a plain line-oriented loop, one
// keystroke symbol per turn, for terminals where the full screen UI is
// unavailable or unwanted.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/vinser/go2048/internal/game"
)

// Run draws the board, reads a symbol and plays a turn until the board is
// full or the input ends.
func Run(r io.Reader, w io.Writer, g *game.Game) error {
	reader := bufio.NewReader(r)

	for {
		if _, err := fmt.Fprint(w, g.Grid()); err != nil {
			return err
		}
		symbol, err := nextSymbol(reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read move: %w", err)
		}
		if !g.Turn(symbol) {
			break
		}
	}

	fmt.Fprint(w, g.Grid())
	_, err := fmt.Fprintf(w, "No free cells left after %d moves.\n", g.Moves())
	return err
}

// nextSymbol returns the next non-space character.
func nextSymbol(r *bufio.Reader) (string, error) {
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(ch) {
			return string(ch), nil
		}
	}
}
