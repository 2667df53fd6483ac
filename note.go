package phosphene

type (
	// Note is a single MIDI note inside a Block. Start is in beats, relative
	// to the start of the block that owns the note; Duration is in beats.
	Note struct {
		ID       string  `yaml:"id,omitempty" json:"id,omitempty"`
		Pitch    int     `yaml:"pitch" json:"pitch"`       // 0..127
		Velocity int     `yaml:"velocity" json:"velocity"` // 0..127
		Start    float64 `yaml:"start" json:"start"`
		Duration float64 `yaml:"duration" json:"duration"`
	}

	// Block is a placed region of notes on a track. Start and End are absolute
	// track beats and End should be >= Start; blocks violating that are
	// treated as permanently inactive rather than as errors.
	Block struct {
		ID    string  `yaml:"id,omitempty" json:"id,omitempty"`
		Start float64 `yaml:"start" json:"start"`
		End   float64 `yaml:"end" json:"end"`
		Notes []Note  `yaml:"notes" json:"notes"`
	}
)

// Valid reports whether the note can ever sound. Notes with nonpositive
// duration or a pitch outside the MIDI range never activate.
func (n Note) Valid() bool {
	return n.Duration > 0 && n.Pitch >= 0 && n.Pitch <= 127
}

// Valid reports whether the block can ever contain active notes.
func (b *Block) Valid() bool {
	return b.End >= b.Start
}

// Spans reports whether the block's span, extended by tail beats past its end,
// contains the given absolute beat. Used to skip whole blocks cheaply before
// looking at individual notes; tail accounts for release phases still sounding
// after their note ended.
func (b *Block) Spans(beat, tail float64) bool {
	return b.Valid() && beat >= b.Start && beat < b.End+tail
}

// Copy makes a deep copy of a Block.
func (b *Block) Copy() Block {
	notes := make([]Note, len(b.Notes))
	copy(notes, b.Notes)
	return Block{ID: b.ID, Start: b.Start, End: b.End, Notes: notes}
}

// CopyBlocks makes a deep copy of a slice of Blocks.
func CopyBlocks(blocks []Block) []Block {
	ret := make([]Block, len(blocks))
	for i := range blocks {
		ret[i] = blocks[i].Copy()
	}
	return ret
}
