package board

// Face is the visible state of a tile.
type Face int

const (
	FaceDown Face = iota
	FaceUp
	Matched
)

// String returns the string representation of a Face.
func (f Face) String() string {
	switch f {
	case FaceDown:
		return "facedown"
	case FaceUp:
		return "faceup"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Tile is one cell of the board. Matched is terminal: once a tile is
// matched no transition changes it again.
type Tile struct {
	ID     int
	Symbol Symbol
	face   Face
}

// NewTile returns a face-down tile.
func NewTile(id int, sym Symbol) *Tile {
	return &Tile{ID: id, Symbol: sym}
}

func (t *Tile) Face() Face { return t.face }

// Flipped reports whether the symbol is visible. Matched tiles stay visible.
func (t *Tile) Flipped() bool { return t.face != FaceDown }

func (t *Tile) Matched() bool { return t.face == Matched }

// Flip turns a face-down tile up. It reports whether the tile changed.
func (t *Tile) Flip() bool {
	if t.face != FaceDown {
		return false
	}
	t.face = FaceUp
	return true
}

// Unflip turns a face-up tile back down. Matched tiles are left alone.
func (t *Tile) Unflip() bool {
	if t.face != FaceUp {
		return false
	}
	t.face = FaceDown
	return true
}

// MarkMatched locks a face-up tile as matched. Callers must only pass
// face-up tiles; anything else is ignored and reported as false.
func (t *Tile) MarkMatched() bool {
	if t.face != FaceUp {
		return false
	}
	t.face = Matched
	return true
}
