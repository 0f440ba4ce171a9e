package dashboard

// Sequencer issues monotonically increasing request numbers per kind so late
// responses can be recognised and dropped. The zero value is ready to use.
type Sequencer struct {
	latest map[Kind]uint64
}

// Next issues the next sequence number for kind.
func (s *Sequencer) Next(kind Kind) uint64 {
	if s.latest == nil {
		s.latest = make(map[Kind]uint64)
	}
	s.latest[kind]++
	return s.latest[kind]
}

// IsLatest reports whether seq is the most recent number issued for kind.
func (s *Sequencer) IsLatest(kind Kind, seq uint64) bool {
	return seq != 0 && s.latest[kind] == seq
}
